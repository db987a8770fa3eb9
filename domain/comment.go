package domain

import "time"

// Comment is a single YouTube comment, root or reply.
type Comment struct {
	ID          string
	Text        string // Plain text, HTML stripped
	Author      string
	PublishedAt time.Time
	LikeCount   int
	ReplyCount  int    // Server-reported total; may exceed what is loaded locally
	ParentID    string // Empty for root comments
}

// IsReply reports whether the comment belongs to a thread under a root comment.
func (c Comment) IsReply() bool {
	return c.ParentID != ""
}

// CommentPage is one page of root-level comments plus the cursor for the next.
// An empty NextCursor means no further pages exist.
type CommentPage struct {
	Comments   []Comment
	NextCursor string
}

// VideoInfo describes the video whose comments are being browsed.
type VideoInfo struct {
	VideoID      string
	Title        string
	ChannelName  string
	ThumbnailURL string
	PublishedAt  string
}
