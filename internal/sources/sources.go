package sources

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newsagent/internal/scrape"
	"newsagent/models"
)

//go:embed default.yaml
var defaultYAML []byte

type file struct {
	Sources []models.Source `yaml:"sources"`
}

// FromYAML parses a source list, fills in per-source defaults and validates
// the result.
func FromYAML(data []byte) ([]models.Source, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing sources: %w", err)
	}
	if len(f.Sources) == 0 {
		return nil, fmt.Errorf("parsing sources: no sources defined")
	}

	seen := make(map[string]bool, len(f.Sources))
	for i := range f.Sources {
		applyDefaults(&f.Sources[i])
		if err := validate(f.Sources[i]); err != nil {
			return nil, err
		}
		if seen[f.Sources[i].Name] {
			return nil, fmt.Errorf("parsing sources: duplicate source %q", f.Sources[i].Name)
		}
		seen[f.Sources[i].Name] = true
	}
	return f.Sources, nil
}

func Load(path string) ([]models.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}
	return FromYAML(data)
}

// Default returns the built-in source list.
func Default() []models.Source {
	srcs, err := FromYAML(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default.yaml: %v", err))
	}
	return srcs
}

func applyDefaults(src *models.Source) {
	if len(src.Strategies) == 0 {
		src.Strategies = []string{scrape.StrategyWPAPI, scrape.StrategyRSS, scrape.StrategyHTML}
	}
	if src.APIPath == "" {
		src.APIPath = "/wp-json/wp/v2/posts"
	}
	if src.FeedPath == "" {
		src.FeedPath = "/feed/"
	}
	if src.ArticleSelector == "" {
		src.ArticleSelector = "article, div.post, div[class*='entry']"
	}
}

func validate(src models.Source) error {
	if src.Name == "" {
		return fmt.Errorf("validating sources: source with empty name")
	}
	if src.BaseURL == "" {
		return fmt.Errorf("validating source %q: base_url is required", src.Name)
	}
	for _, s := range src.Strategies {
		if !scrape.KnownStrategy(s) {
			return fmt.Errorf("validating source %q: unknown strategy %q", src.Name, s)
		}
	}
	return nil
}
