package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	MongoURI        string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/"`
	MongoDB         string `env:"MONGO_DB" envDefault:"lowcy_gier"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"data"`

	// GithubToken and GithubRepo enable snapshot publishing. Both empty is
	// fine: publishing is simply skipped.
	GithubToken  string `env:"GITHUB_TOKEN"`
	GithubRepo   string `env:"GITHUB_REPO"` // "owner/name"
	GithubBranch string `env:"GITHUB_BRANCH" envDefault:"main"`
	SnapshotPath string `env:"SNAPSHOT_REPO_PATH" envDefault:"output.json"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.GithubRepo != "" {
		if _, _, err := cfg.SplitRepo(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// PublishEnabled reports whether the config carries enough to push snapshots
// to GitHub.
func (c *Config) PublishEnabled() bool {
	return c.GithubToken != "" && c.GithubRepo != ""
}

func (c *Config) SplitRepo() (owner, name string, err error) {
	parts := strings.Split(c.GithubRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("parsing GITHUB_REPO %q: want owner/name", c.GithubRepo)
	}
	return parts[0], parts[1], nil
}
