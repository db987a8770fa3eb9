package app

import (
	"context"

	"github.com/sonicboom719/comment-umpire/domain"
)

// CommentService fetches pages of root comments and per-comment replies.
type CommentService interface {
	// ListComments returns one page of root comments for a video, the
	// server-reported total comment count (0 when unknown), starting at
	// pageToken ("" for the first page).
	ListComments(ctx context.Context, videoID, pageToken string, maxResults int) (domain.CommentPage, int, error)

	// ListReplies returns every reply under a root comment, oldest first.
	ListReplies(ctx context.Context, commentID string) ([]domain.Comment, error)
}
