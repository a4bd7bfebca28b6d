package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"newsagent/internal/github"
	"newsagent/models"
)

type PublishResult struct {
	Action string // "created", "updated", "skipped"
	Path   string
}

// SnapshotPublisher commits the JSON snapshot to a GitHub repository so the
// latest collection result is tracked alongside the workflow that produced
// it.
type SnapshotPublisher interface {
	Publish(ctx context.Context, items []models.NewsItem) (*PublishResult, error)
}

type snapshotPublisher struct {
	gh     github.Client
	path   string
	branch string
	log    *zap.Logger
}

func NewSnapshotPublisher(gh github.Client, path, branch string, log *zap.Logger) SnapshotPublisher {
	return &snapshotPublisher{
		gh:     gh,
		path:   path,
		branch: branch,
		log:    log,
	}
}

func (s *snapshotPublisher) Publish(ctx context.Context, items []models.NewsItem) (*PublishResult, error) {
	data, err := encodeSnapshot(items)
	if err != nil {
		return nil, err
	}
	content := string(data)

	currentContent, fileSHA, err := s.gh.GetFileContent(ctx, s.path, s.branch)
	if err != nil {
		// File doesn't exist yet - create it.
		currentContent = ""
		fileSHA = ""
	}

	if currentContent == content {
		return &PublishResult{Action: "skipped", Path: s.path}, nil
	}

	commitMsg := fmt.Sprintf("Update news snapshot (%d items)", len(items))
	var sha *string
	if fileSHA != "" {
		sha = &fileSHA
	}

	if err := s.gh.CreateOrUpdateFile(ctx, s.path, s.branch, commitMsg, content, sha); err != nil {
		return nil, fmt.Errorf("publishing snapshot: %w", err)
	}

	action := "updated"
	if sha == nil {
		action = "created"
	}
	s.log.Info("snapshot published",
		zap.String("path", s.path),
		zap.String("action", action),
		zap.Int("items", len(items)))

	return &PublishResult{Action: action, Path: s.path}, nil
}
