package models

// Source describes one news site to collect from.
type Source struct {
	Name       string   `yaml:"name"`
	BaseURL    string   `yaml:"base_url"`
	Strategies []string `yaml:"strategies"` // tried in order; first non-empty result wins

	FeedPath string `yaml:"feed_path"` // e.g. "/feed/"
	APIPath  string `yaml:"api_path"`  // e.g. "/wp-json/wp/v2/posts"

	ArticleSelector string `yaml:"article_selector"` // html strategy
	ExcerptSelector string `yaml:"excerpt_selector"`

	// Allow lists URL glob patterns; collected items whose URL matches none
	// of them are dropped. Empty means allow everything.
	Allow []string `yaml:"allow"`

	Limit int `yaml:"limit"` // 0 = unlimited
}
