package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"newsagent/models"
)

// wpPost is the shape the WordPress REST API returns with the _fields filter
// applied.
type wpPost struct {
	Date  string `json:"date"`
	Link  string `json:"link"`
	Title struct {
		Rendered string `json:"rendered"`
	} `json:"title"`
	Excerpt struct {
		Rendered string `json:"rendered"`
	} `json:"excerpt"`
}

type wpStrategy struct {
	client *Client
}

func (s *wpStrategy) Name() string { return StrategyWPAPI }

// Fetch pulls one page of 100 posts, the REST API maximum.
func (s *wpStrategy) Fetch(ctx context.Context, src models.Source) ([]models.NewsItem, error) {
	params := url.Values{}
	params.Set("per_page", "100")
	params.Set("_fields", "link,title,excerpt,date")

	body, err := s.client.Get(ctx, endpoint(src.BaseURL, src.APIPath)+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("querying posts API: %w", err)
	}

	var posts []wpPost
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("decoding posts API response: %w", err)
	}

	items := make([]models.NewsItem, 0, len(posts))
	for _, p := range posts {
		item := models.NewsItem{
			Title:   StripHTML(p.Title.Rendered),
			URL:     p.Link,
			Excerpt: StripHTML(p.Excerpt.Rendered),
			Date:    p.Date,
		}
		if item.Title == "" || item.URL == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
