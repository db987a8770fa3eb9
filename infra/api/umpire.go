package api

import (
	"context"
	"fmt"
	"time"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/domain"
)

// umpireService implements app.UmpireService against the backend.
type umpireService struct {
	client *Client
}

// NewUmpireService creates an UmpireService backed by the Comment Umpire API.
func NewUmpireService(client *Client) *umpireService {
	return &umpireService{client: client}
}

// analysisResultDTO is the wire shape of a verdict. It round-trips: protest
// requests carry the original verdict back to the backend.
type analysisResultDTO struct {
	Category           []string `json:"category"`
	IsCounter          bool     `json:"is_counter"`
	GrahamHierarchy    string   `json:"graham_hierarchy,omitempty"`
	LogicalFallacy     string   `json:"logical_fallacy,omitempty"`
	ValidityAssessment string   `json:"validity_assessment"`
	SafeOrOut          string   `json:"safe_or_out"`
	Explanation        string   `json:"explanation"`
	ValidityReason     string   `json:"validity_reason"`
}

type analyzeRequest struct {
	CommentText     string       `json:"comment_text"`
	ContextComments []commentDTO `json:"context_comments,omitempty"`
}

type protestMessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type protestRequest struct {
	CommentText         string              `json:"comment_text"`
	OriginalResult      analysisResultDTO   `json:"original_result"`
	ProtestMessage      string              `json:"protest_message"`
	ConversationHistory []protestMessageDTO `json:"conversation_history"`
}

type protestResponse struct {
	UmpireResponse  string             `json:"umpire_response"`
	JudgmentChanged bool               `json:"judgment_changed"`
	NewResult       *analysisResultDTO `json:"new_result"`
}

func (s *umpireService) Analyze(ctx context.Context, req app.AnalysisRequest) (domain.AnalysisResult, error) {
	wire := analyzeRequest{
		CommentText:     req.CommentText,
		ContextComments: toWireComments(req.ContextComments),
	}
	var dto analysisResultDTO
	if err := s.client.Post(ctx, "/comments/analyze", wire, &dto); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("analyzing comment: %w", err)
	}
	return fromWireResult(dto), nil
}

func (s *umpireService) Protest(ctx context.Context, req app.ProtestRequest) (app.ProtestResponse, error) {
	history := make([]protestMessageDTO, 0, len(req.ConversationHistory))
	for _, m := range req.ConversationHistory {
		history = append(history, protestMessageDTO{Role: m.Role, Content: m.Content})
	}
	wire := protestRequest{
		CommentText:         req.CommentText,
		OriginalResult:      toWireResult(req.OriginalResult),
		ProtestMessage:      req.ProtestMessage,
		ConversationHistory: history,
	}
	var resp protestResponse
	if err := s.client.Post(ctx, "/comments/protest", wire, &resp); err != nil {
		return app.ProtestResponse{}, fmt.Errorf("protesting judgment: %w", err)
	}
	out := app.ProtestResponse{
		UmpireResponse:  resp.UmpireResponse,
		JudgmentChanged: resp.JudgmentChanged,
	}
	if resp.NewResult != nil {
		r := fromWireResult(*resp.NewResult)
		out.NewResult = &r
	}
	return out, nil
}

func toWireComments(comments []domain.Comment) []commentDTO {
	if len(comments) == 0 {
		return nil
	}
	dtos := make([]commentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, commentDTO{
			ID:          c.ID,
			Text:        c.Text,
			Author:      c.Author,
			PublishedAt: c.PublishedAt.UTC().Format(time.RFC3339),
			LikeCount:   c.LikeCount,
			ReplyCount:  c.ReplyCount,
			ParentID:    c.ParentID,
		})
	}
	return dtos
}

func toWireResult(r domain.AnalysisResult) analysisResultDTO {
	return analysisResultDTO{
		Category:           r.Category,
		IsCounter:          r.IsCounter,
		GrahamHierarchy:    r.GrahamHierarchy,
		LogicalFallacy:     r.LogicalFallacy,
		ValidityAssessment: r.ValidityAssessment,
		SafeOrOut:          r.SafeOrOut,
		Explanation:        r.Explanation,
		ValidityReason:     r.ValidityReason,
	}
}

func fromWireResult(dto analysisResultDTO) domain.AnalysisResult {
	return domain.AnalysisResult{
		Category:           dto.Category,
		IsCounter:          dto.IsCounter,
		GrahamHierarchy:    dto.GrahamHierarchy,
		LogicalFallacy:     dto.LogicalFallacy,
		ValidityAssessment: dto.ValidityAssessment,
		SafeOrOut:          dto.SafeOrOut,
		Explanation:        dto.Explanation,
		ValidityReason:     dto.ValidityReason,
	}
}
