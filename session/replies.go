package session

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/domain"
)

// ReplyCache materializes reply lists per parent comment, whether they
// arrived bundled with a root page or were fetched on first expand. Both
// paths go through Seed, whose first-writer-wins semantics collapse them
// into one mechanism. A seeded entry with zero replies is distinct from an
// entry that was never loaded.
type ReplyCache struct {
	svc     app.CommentService
	entries *gocache.Cache // parentID -> []domain.Comment, never expires

	mu       sync.Mutex
	expanded map[string]bool
}

// NewReplyCache returns an empty cache fetching through svc.
func NewReplyCache(svc app.CommentService) *ReplyCache {
	return &ReplyCache{
		svc:      svc,
		entries:  gocache.New(gocache.NoExpiration, 0),
		expanded: make(map[string]bool),
	}
}

// Seed stores the replies for a parent unless an entry already exists;
// the first writer wins and later seeds are no-ops.
func (c *ReplyCache) Seed(parentID string, replies []domain.Comment) {
	if replies == nil {
		replies = []domain.Comment{}
	}
	_ = c.entries.Add(parentID, append([]domain.Comment(nil), replies...), gocache.NoExpiration)
}

// Loaded returns the cached replies for a parent and whether the entry has
// been seeded at all.
func (c *ReplyCache) Loaded(parentID string) ([]domain.Comment, bool) {
	v, ok := c.entries.Get(parentID)
	if !ok {
		return nil, false
	}
	return v.([]domain.Comment), true
}

// EnsureLoaded returns the replies for a parent, fetching them from the
// collaborator only if no entry exists yet. A fetch failure leaves the
// entry unseeded so a later expand retries. Two concurrent first expands
// may both fetch; the first seed wins and both return the winner's list.
func (c *ReplyCache) EnsureLoaded(ctx context.Context, parentID string) ([]domain.Comment, error) {
	if replies, ok := c.Loaded(parentID); ok {
		return replies, nil
	}
	replies, err := c.svc.ListReplies(ctx, parentID)
	if err != nil {
		return nil, err
	}
	c.Seed(parentID, replies)
	winner, _ := c.Loaded(parentID)
	return winner, nil
}

// ToggleExpanded flips the visibility flag for a parent, independent of
// load state, and returns the new value. The first expand is the caller's
// cue to invoke EnsureLoaded.
func (c *ReplyCache) ToggleExpanded(parentID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded[parentID] = !c.expanded[parentID]
	return c.expanded[parentID]
}

// Expanded reports whether a parent's replies are currently shown.
func (c *ReplyCache) Expanded(parentID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded[parentID]
}
