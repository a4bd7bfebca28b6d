package scrape

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"newsagent/models"
)

// htmlStrategy scrapes a source's front page directly. Last resort: no dates,
// and selectors drift as site themes change.
type htmlStrategy struct {
	client *Client
}

func (s *htmlStrategy) Name() string { return StrategyHTML }

func (s *htmlStrategy) Fetch(ctx context.Context, src models.Source) ([]models.NewsItem, error) {
	body, err := s.client.Get(ctx, src.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("fetching front page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing front page: %w", err)
	}

	base, err := url.Parse(src.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	var items []models.NewsItem
	doc.Find(src.ArticleSelector).Each(func(_ int, art *goquery.Selection) {
		link := art.Find("h1 a[href], h2 a[href]").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		title := collapseSpace(link.Text())
		if title == "" || href == "" {
			return
		}

		items = append(items, models.NewsItem{
			Title:   title,
			URL:     resolveURL(base, href),
			Excerpt: articleExcerpt(art, src.ExcerptSelector),
		})
	})
	return items, nil
}

// articleExcerpt prefers a theme's excerpt container and falls back to the
// first paragraph.
func articleExcerpt(art *goquery.Selection, selector string) string {
	if selector == "" {
		selector = "div[class*='excerpt'], div[class*='summary']"
	}
	if div := art.Find(selector).First(); div.Length() > 0 {
		return collapseSpace(div.Text())
	}
	if p := art.Find("p").First(); p.Length() > 0 {
		return collapseSpace(p.Text())
	}
	return ""
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
