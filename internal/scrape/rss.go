package scrape

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"newsagent/models"
)

type rssStrategy struct {
	client *Client
}

func (s *rssStrategy) Name() string { return StrategyRSS }

func (s *rssStrategy) Fetch(ctx context.Context, src models.Source) ([]models.NewsItem, error) {
	body, err := s.client.Get(ctx, endpoint(src.BaseURL, src.FeedPath))
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	items := make([]models.NewsItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Title == "" || entry.Link == "" {
			continue
		}
		items = append(items, models.NewsItem{
			Title:   entry.Title,
			URL:     entry.Link,
			Excerpt: StripHTML(entry.Description),
			Date:    feedDate(entry),
		})
	}
	return items, nil
}

// feedDate renders the entry timestamp at second precision without a zone
// suffix, matching the date format the posts API emits.
func feedDate(entry *gofeed.Item) string {
	if entry.PublishedParsed == nil {
		return ""
	}
	return entry.PublishedParsed.UTC().Format("2006-01-02T15:04:05")
}
