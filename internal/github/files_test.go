package github

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	githubMocks "newsagent/internal/github/mocks"
)

func TestGetFileContent_Success(t *testing.T) {
	ctx := context.Background()
	repoSvc := githubMocks.NewMockRepositoriesAdapter(t)

	fileContent := `[{"title":"Gra za darmo"}]`
	encodedContent := base64.StdEncoding.EncodeToString([]byte(fileContent))

	repoSvc.
		EXPECT().
		GetContents(mock.Anything, "acme", "news-snapshots", "output.json",
			mock.MatchedBy(func(opts *gh.RepositoryContentGetOptions) bool {
				return opts.Ref == "main"
			}),
		).
		Once().
		Return(
			&gh.RepositoryContent{
				Content:  gh.Ptr(encodedContent),
				Encoding: gh.Ptr("base64"),
				SHA:      gh.Ptr("abc123"),
			},
			nil,
			&gh.Response{},
			nil,
		)

	c := &client{repositories: repoSvc, owner: "acme", repo: "news-snapshots"}

	content, sha, err := c.GetFileContent(ctx, "output.json", "main")

	assert.NoError(t, err)
	assert.Equal(t, fileContent, content)
	assert.Equal(t, "abc123", sha)
}

func TestGetFileContent_NotFound(t *testing.T) {
	ctx := context.Background()
	repoSvc := githubMocks.NewMockRepositoriesAdapter(t)

	repoSvc.
		EXPECT().
		GetContents(mock.Anything, "acme", "news-snapshots", "output.json", mock.Anything).
		Once().
		Return(nil, nil, nil, errors.New("not found"))

	c := &client{repositories: repoSvc, owner: "acme", repo: "news-snapshots"}

	content, sha, err := c.GetFileContent(ctx, "output.json", "main")

	assert.Error(t, err)
	assert.Empty(t, content)
	assert.Empty(t, sha)
}

func TestCreateOrUpdateFile_Create(t *testing.T) {
	ctx := context.Background()
	repoSvc := githubMocks.NewMockRepositoriesAdapter(t)

	repoSvc.
		EXPECT().
		CreateFile(mock.Anything, "acme", "news-snapshots", "output.json",
			mock.MatchedBy(func(opts *gh.RepositoryContentFileOptions) bool {
				return opts.GetMessage() == "Update news snapshot" &&
					opts.GetBranch() == "main" &&
					string(opts.Content) == `[]` &&
					opts.SHA == nil
			}),
		).
		Once().
		Return(&gh.RepositoryContentResponse{}, &gh.Response{}, nil)

	c := &client{repositories: repoSvc, owner: "acme", repo: "news-snapshots"}

	err := c.CreateOrUpdateFile(ctx, "output.json", "main", "Update news snapshot", `[]`, nil)

	assert.NoError(t, err)
}

func TestCreateOrUpdateFile_Update(t *testing.T) {
	ctx := context.Background()
	repoSvc := githubMocks.NewMockRepositoriesAdapter(t)

	fileSHA := "existing-sha"

	repoSvc.
		EXPECT().
		UpdateFile(mock.Anything, "acme", "news-snapshots", "output.json",
			mock.MatchedBy(func(opts *gh.RepositoryContentFileOptions) bool {
				return opts.GetMessage() == "Update news snapshot" &&
					opts.GetBranch() == "main" &&
					string(opts.Content) == `[{"title":"nowa gra"}]` &&
					opts.GetSHA() == "existing-sha"
			}),
		).
		Once().
		Return(&gh.RepositoryContentResponse{}, &gh.Response{}, nil)

	c := &client{repositories: repoSvc, owner: "acme", repo: "news-snapshots"}

	err := c.CreateOrUpdateFile(ctx, "output.json", "main", "Update news snapshot", `[{"title":"nowa gra"}]`, &fileSHA)

	assert.NoError(t, err)
}

func TestCreateOrUpdateFile_CreateError(t *testing.T) {
	ctx := context.Background()
	repoSvc := githubMocks.NewMockRepositoriesAdapter(t)

	repoSvc.
		EXPECT().
		CreateFile(mock.Anything, "acme", "news-snapshots", mock.Anything, mock.Anything).
		Once().
		Return(nil, nil, errors.New("permission denied"))

	c := &client{repositories: repoSvc, owner: "acme", repo: "news-snapshots"}

	err := c.CreateOrUpdateFile(ctx, "output.json", "main", "Update news snapshot", "content", nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestCreateOrUpdateFile_UpdateError(t *testing.T) {
	ctx := context.Background()
	repoSvc := githubMocks.NewMockRepositoriesAdapter(t)

	fileSHA := "existing-sha"

	repoSvc.
		EXPECT().
		UpdateFile(mock.Anything, "acme", "news-snapshots", mock.Anything, mock.Anything).
		Once().
		Return(nil, nil, errors.New("conflict"))

	c := &client{repositories: repoSvc, owner: "acme", repo: "news-snapshots"}

	err := c.CreateOrUpdateFile(ctx, "output.json", "main", "Update news snapshot", "content", &fileSHA)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "conflict")
}
