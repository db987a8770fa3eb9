// Package session is the client-side data layer behind the comment browser:
// the paginated comment tree, the lazily materialized reply lists, the
// single-flight analysis session and the protest conversation. It holds no
// rendering state and talks to the backend only through the app interfaces.
package session

import (
	"sync"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/domain"
)

// Session owns all per-video state. There is exactly one, created at
// startup and passed by reference to the views; submitting a new URL calls
// Reset, which reinitializes every component atomically and advances the
// generation.
//
// Reset does not cancel in-flight requests. It replaces the component
// instances instead, so a late completion writes into an orphaned object
// and can never touch fresh state. Messages flowing back into the UI carry
// the generation they were issued under and are discarded on mismatch.
type Session struct {
	comments app.CommentService
	umpire   app.UmpireService

	mu       sync.Mutex
	gen      uint64
	video    *domain.VideoInfo
	total    int
	tree     *Tree
	replies  *ReplyCache
	analysis *Analysis
}

// New creates an empty session fetching through the given services.
func New(comments app.CommentService, umpire app.UmpireService) *Session {
	s := &Session{comments: comments, umpire: umpire}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.video = nil
	s.total = 0
	s.tree = NewTree()
	s.replies = NewReplyCache(s.comments)
	s.analysis = NewAnalysis(s.umpire)
}

// Reset clears all per-video state and advances the generation. Called
// synchronously when a new URL is submitted.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.reset()
}

// Generation returns the current session generation. Commands capture it at
// issue time; their completion messages are stale once it moves on.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Stale reports whether a completion tagged with gen belongs to a reset-away
// session.
func (s *Session) Stale(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen != s.gen
}

// SetVideo records the extracted video for the current session.
func (s *Session) SetVideo(v domain.VideoInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.video = &v
}

// Video returns the current video, if one has been loaded.
func (s *Session) Video() (domain.VideoInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video == nil {
		return domain.VideoInfo{}, false
	}
	return *s.video, true
}

// SetTotalComments records the server-reported comment total.
func (s *Session) SetTotalComments(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > 0 {
		s.total = n
	}
}

// TotalComments returns the server-reported comment total, 0 when unknown.
func (s *Session) TotalComments() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Tree returns the comment tree store for the current video.
func (s *Session) Tree() *Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// Replies returns the reply cache for the current video.
func (s *Session) Replies() *ReplyCache {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replies
}

// Analysis returns the analysis session for the current video.
func (s *Session) Analysis() *Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysis
}

// SeedBundledReplies stores any replies that arrived inside a comment page
// into the reply cache, without a network call. Only parents that actually
// had replies bundled are seeded; everyone else stays "not yet loaded" so a
// first expand still fetches. Seeding is first-writer-wins, so re-seeding an
// already-fetched parent is a no-op.
func (s *Session) SeedBundledReplies(page domain.CommentPage) {
	s.mu.Lock()
	replies := s.replies
	s.mu.Unlock()

	byParent := make(map[string][]domain.Comment)
	for _, c := range page.Comments {
		if c.IsReply() {
			byParent[c.ParentID] = append(byParent[c.ParentID], c)
		}
	}
	for parentID, bundled := range byParent {
		replies.Seed(parentID, bundled)
	}
}

// NewProtest opens a protest against the current verdict. The protest dies
// with its dialog; the session keeps no reference to it.
func (s *Session) NewProtest(commentText string, original domain.AnalysisResult) *Protest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewProtest(s.umpire, s.analysis, commentText, original)
}
