package service

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"newsagent/internal/scrape"
	"newsagent/models"
)

// Collected is one source's fetch outcome: the items and the strategy that
// produced them. Strategy is empty when every strategy came back empty.
type Collected struct {
	Items    []models.NewsItem
	Strategy string
}

type NewsFetcher interface {
	Collect(ctx context.Context, src models.Source) (*Collected, error)
}

type newsFetcher struct {
	client *scrape.Client
	log    *zap.Logger
}

func NewNewsFetcher(client *scrape.Client, log *zap.Logger) NewsFetcher {
	return &newsFetcher{client: client, log: log}
}

// Collect tries the source's strategies in order and returns the first
// non-empty result, filtered through the source's allow globs and capped at
// its limit. Strategy failures only surface when the whole chain comes up
// empty-handed.
func (s *newsFetcher) Collect(ctx context.Context, src models.Source) (*Collected, error) {
	strategies, err := scrape.ForSource(s.client, src)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, strategy := range strategies {
		items, err := strategy.Fetch(ctx, src)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.log.Warn("strategy failed",
				zap.String("source", src.Name),
				zap.String("strategy", strategy.Name()),
				zap.Error(err))
			lastErr = err
			continue
		}
		if len(items) == 0 {
			continue
		}

		items = filterAllowed(items, src.Allow)
		if src.Limit > 0 && len(items) > src.Limit {
			items = items[:src.Limit]
		}

		s.log.Info("collected news",
			zap.String("source", src.Name),
			zap.String("strategy", strategy.Name()),
			zap.Int("items", len(items)))

		return &Collected{Items: items, Strategy: strategy.Name()}, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("collecting %s: %w", src.Name, lastErr)
	}
	return &Collected{}, nil
}

// filterAllowed keeps items whose URL matches at least one allow pattern.
// No patterns means everything passes.
func filterAllowed(items []models.NewsItem, patterns []string) []models.NewsItem {
	if len(patterns) == 0 {
		return items
	}

	kept := make([]models.NewsItem, 0, len(items))
	for _, item := range items {
		for _, pattern := range patterns {
			if ok, err := doublestar.Match(pattern, item.URL); err == nil && ok {
				kept = append(kept, item)
				break
			}
		}
	}
	return kept
}
