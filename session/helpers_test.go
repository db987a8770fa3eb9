package session

import (
	"context"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/domain"
)

// stubCommentService lets each test inject fetch behavior.
type stubCommentService struct {
	listComments func(ctx context.Context, videoID, pageToken string, maxResults int) (domain.CommentPage, int, error)
	listReplies  func(ctx context.Context, commentID string) ([]domain.Comment, error)
}

func (s *stubCommentService) ListComments(ctx context.Context, videoID, pageToken string, maxResults int) (domain.CommentPage, int, error) {
	if s.listComments == nil {
		return domain.CommentPage{}, 0, nil
	}
	return s.listComments(ctx, videoID, pageToken, maxResults)
}

func (s *stubCommentService) ListReplies(ctx context.Context, commentID string) ([]domain.Comment, error) {
	if s.listReplies == nil {
		return nil, nil
	}
	return s.listReplies(ctx, commentID)
}

// stubUmpireService lets each test inject judge behavior.
type stubUmpireService struct {
	analyze func(ctx context.Context, req app.AnalysisRequest) (domain.AnalysisResult, error)
	protest func(ctx context.Context, req app.ProtestRequest) (app.ProtestResponse, error)
}

func (s *stubUmpireService) Analyze(ctx context.Context, req app.AnalysisRequest) (domain.AnalysisResult, error) {
	if s.analyze == nil {
		return domain.AnalysisResult{}, nil
	}
	return s.analyze(ctx, req)
}

func (s *stubUmpireService) Protest(ctx context.Context, req app.ProtestRequest) (app.ProtestResponse, error) {
	if s.protest == nil {
		return app.ProtestResponse{}, nil
	}
	return s.protest(ctx, req)
}

func root(id string) domain.Comment {
	return domain.Comment{ID: id, Text: "text-" + id, Author: "author-" + id}
}

func reply(id, parentID string) domain.Comment {
	c := root(id)
	c.ParentID = parentID
	return c
}

func rootIDs(t *Tree) []string {
	var ids []string
	for c := range t.Roots() {
		ids = append(ids, c.ID)
	}
	return ids
}
