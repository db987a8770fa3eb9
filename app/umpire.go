package app

import (
	"context"

	"github.com/sonicboom719/comment-umpire/domain"
)

// AnalysisRequest asks the umpire to judge one comment. ContextComments is
// the thread history leading up to the comment, oldest first, and must be
// omitted on the wire when empty.
type AnalysisRequest struct {
	CommentText     string
	ContextComments []domain.Comment
}

// ProtestRequest contests a verdict with one more user message.
// ConversationHistory is the dialog so far, excluding the new message.
type ProtestRequest struct {
	CommentText         string
	OriginalResult      domain.AnalysisResult
	ProtestMessage      string
	ConversationHistory []domain.ProtestMessage
}

// ProtestResponse is the umpire's reply to a protest turn. NewResult is only
// set when JudgmentChanged is true, and even then may be absent.
type ProtestResponse struct {
	UmpireResponse  string
	JudgmentChanged bool
	NewResult       *domain.AnalysisResult
}

// UmpireService is the AI judge.
type UmpireService interface {
	// Analyze produces a verdict for one comment.
	Analyze(ctx context.Context, req AnalysisRequest) (domain.AnalysisResult, error)

	// Protest argues against an earlier verdict and may obtain a replacement.
	Protest(ctx context.Context, req ProtestRequest) (ProtestResponse, error)
}
