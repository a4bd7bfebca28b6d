package scrape

import (
	"context"
	"fmt"
	"strings"

	"newsagent/models"
)

// Strategy names as they appear in source configuration.
const (
	StrategyWPAPI = "wp-api"
	StrategyRSS   = "rss"
	StrategyHTML  = "html"
)

// Strategy is one way of pulling headlines out of a site. Strategies for a
// source are tried in configured order; the first one returning items wins.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, src models.Source) ([]models.NewsItem, error)
}

func KnownStrategy(name string) bool {
	switch name {
	case StrategyWPAPI, StrategyRSS, StrategyHTML:
		return true
	}
	return false
}

// endpoint joins a configured path onto a source's base URL.
func endpoint(base, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + path
}

// ForSource builds the strategy chain a source configures.
func ForSource(client *Client, src models.Source) ([]Strategy, error) {
	strategies := make([]Strategy, 0, len(src.Strategies))
	for _, name := range src.Strategies {
		switch name {
		case StrategyWPAPI:
			strategies = append(strategies, &wpStrategy{client: client})
		case StrategyRSS:
			strategies = append(strategies, &rssStrategy{client: client})
		case StrategyHTML:
			strategies = append(strategies, &htmlStrategy{client: client})
		default:
			return nil, fmt.Errorf("building strategies for %s: unknown strategy %q", src.Name, name)
		}
	}
	return strategies, nil
}
