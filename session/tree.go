package session

import (
	"iter"
	"sync"

	"github.com/sonicboom719/comment-umpire/domain"
)

// Tree holds the flat collection of loaded comments for the current video
// plus the pagination cursor for root comments. Pages may bundle replies
// alongside roots; both live in the same ordered collection. Pure data
// holding: every fallible operation lives in the collaborator that supplies
// pages.
//
// Append performs no de-duplication by id. Re-requesting an already-seen
// cursor produces duplicates; callers must not do that.
type Tree struct {
	mu       sync.RWMutex
	comments []domain.Comment
	cursor   string
}

// NewTree returns an empty comment tree.
func NewTree() *Tree {
	return &Tree{}
}

// Load replaces the collection and cursor with the given page.
// Used for the first page of a new video.
func (t *Tree) Load(page domain.CommentPage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.comments = append([]domain.Comment(nil), page.Comments...)
	t.cursor = page.NextCursor
}

// Append adds the page's comments after the existing ones, preserving
// order, and replaces the cursor with the page's.
func (t *Tree) Append(page domain.CommentPage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.comments = append(t.comments, page.Comments...)
	t.cursor = page.NextCursor
}

// Roots is a restartable, order-preserving projection of the comments with
// no parent. It reads live state; callers on the update loop see a
// consistent snapshot because mutation only happens there too.
func (t *Tree) Roots() iter.Seq[domain.Comment] {
	return func(yield func(domain.Comment) bool) {
		t.mu.RLock()
		defer t.mu.RUnlock()
		for _, c := range t.comments {
			if c.IsReply() {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// RootCount returns the number of loaded root comments.
func (t *Tree) RootCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, c := range t.comments {
		if !c.IsReply() {
			n++
		}
	}
	return n
}

// Find returns the loaded comment with the given id.
func (t *Tree) Find(id string) (domain.Comment, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, c := range t.comments {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Comment{}, false
}

// RepliesOf returns the replies that arrived bundled in comment pages for
// the given parent, in page order. This is the declared tree shape, distinct
// from the reply cache's materialized lists; the parent's own ReplyCount
// carries the server-declared total.
func (t *Tree) RepliesOf(parentID string) []domain.Comment {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var replies []domain.Comment
	for _, c := range t.comments {
		if c.ParentID == parentID {
			replies = append(replies, c)
		}
	}
	return replies
}

// Cursor returns the pagination cursor and whether further pages exist.
func (t *Tree) Cursor() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor, t.cursor != ""
}
