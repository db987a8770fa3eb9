package api

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/sonicboom719/comment-umpire/domain"
)

// commentService implements app.CommentService against the backend.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the Comment Umpire API.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

// commentDTO is the wire shape of a comment. parent_id is absent for roots.
type commentDTO struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Author      string `json:"author"`
	PublishedAt string `json:"published_at"`
	LikeCount   int    `json:"like_count"`
	ReplyCount  int    `json:"reply_count"`
	ParentID    string `json:"parent_id,omitempty"`
}

type commentsResponse struct {
	Comments      []commentDTO `json:"comments"`
	NextPageToken string       `json:"next_page_token"`
	TotalCount    int          `json:"total_count"`
}

func (s *commentService) ListComments(ctx context.Context, videoID, pageToken string, maxResults int) (domain.CommentPage, int, error) {
	q := url.Values{}
	if pageToken != "" {
		q.Set("page_token", pageToken)
	}
	q.Set("max_results", strconv.Itoa(maxResults))
	path := fmt.Sprintf("/videos/%s/comments?%s", url.PathEscape(videoID), q.Encode())

	var resp commentsResponse
	if err := s.client.Get(ctx, path, &resp); err != nil {
		return domain.CommentPage{}, 0, fmt.Errorf("fetching comments: %w", err)
	}
	return domain.CommentPage{
		Comments:   mapComments(resp.Comments),
		NextCursor: resp.NextPageToken,
	}, resp.TotalCount, nil
}

func (s *commentService) ListReplies(ctx context.Context, commentID string) ([]domain.Comment, error) {
	var dtos []commentDTO
	path := fmt.Sprintf("/comments/%s/replies", url.PathEscape(commentID))
	if err := s.client.Get(ctx, path, &dtos); err != nil {
		return nil, fmt.Errorf("fetching replies: %w", err)
	}
	return mapComments(dtos), nil
}

func mapComments(dtos []commentDTO) []domain.Comment {
	comments := make([]domain.Comment, 0, len(dtos))
	for _, d := range dtos {
		publishedAt, _ := time.Parse(time.RFC3339, d.PublishedAt)
		comments = append(comments, domain.Comment{
			ID:          d.ID,
			Text:        stripHTML(d.Text),
			Author:      d.Author,
			PublishedAt: publishedAt,
			LikeCount:   d.LikeCount,
			ReplyCount:  d.ReplyCount,
			ParentID:    d.ParentID,
		})
	}
	return comments
}

// stripHTML removes the markup YouTube embeds in comment text.
// Good enough for terminal display; not a security boundary.
var (
	htmlTagRe   = regexp.MustCompile(`<[^>]*>`)
	lineBreakRe = regexp.MustCompile(`(?i)<br\s*/?>`)
)

func stripHTML(s string) string {
	s = lineBreakRe.ReplaceAllString(s, "\n")
	return htmlTagRe.ReplaceAllString(s, "")
}
