package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// Client is the slice of the GitHub API the snapshot publisher needs. The
// owner/repo pair is fixed at construction; all paths are relative to that
// repository.
type Client interface {
	GetFileContent(ctx context.Context, path, ref string) (string, string, error)
	CreateOrUpdateFile(ctx context.Context, path, branch, message, content string, fileSHA *string) error
}

// RepositoriesAdapter mirrors the go-github repositories service methods the
// client calls.
type RepositoriesAdapter interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	CreateFile(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentFileOptions) (*gh.RepositoryContentResponse, *gh.Response, error)
	UpdateFile(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentFileOptions) (*gh.RepositoryContentResponse, *gh.Response, error)
}

type client struct {
	github       *gh.Client
	repositories RepositoriesAdapter
	owner        string
	repo         string
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

func New(token, owner, repo string) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	ghClient := gh.NewClient(httpClient)
	return &client{
		github:       ghClient,
		repositories: ghClient.Repositories,
		owner:        owner,
		repo:         repo,
	}
}
