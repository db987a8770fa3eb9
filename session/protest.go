package session

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/domain"
)

// Protest is a short-lived conversation arguing against one verdict. It is
// bound to one (comment text, verdict) pair, lives for exactly one dialog,
// and its history is append-only and never persisted. A successful turn may
// overturn the judgment, which is applied to the owning Analysis session
// through ReplaceResult; the protest never mutates the verdict directly.
type Protest struct {
	id          string
	svc         app.UmpireService
	owner       *Analysis
	commentText string
	original    domain.AnalysisResult

	mu       sync.Mutex
	messages []domain.ProtestMessage
	sending  bool
	replaced bool
}

// NewProtest opens a protest against the given verdict.
func NewProtest(svc app.UmpireService, owner *Analysis, commentText string, original domain.AnalysisResult) *Protest {
	return &Protest{
		id:          uuid.NewString(),
		svc:         svc,
		owner:       owner,
		commentText: commentText,
		original:    original,
	}
}

// ID identifies this protest session in logs.
func (p *Protest) ID() string { return p.id }

// Send submits one protest turn. Empty or whitespace-only text returns
// domain.ErrEmptyProtest; a turn already awaiting its response returns
// domain.ErrProtestInFlight. The user message is appended before the
// collaborator call, and the history sent on the wire is the dialog as it
// stood before that append. On failure no umpire message is appended and
// the conversation survives for a retry.
func (p *Protest) Send(ctx context.Context, text string) (domain.ProtestMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ProtestMessage{}, domain.ErrEmptyProtest
	}

	p.mu.Lock()
	if p.sending {
		p.mu.Unlock()
		return domain.ProtestMessage{}, domain.ErrProtestInFlight
	}
	p.sending = true
	history := append([]domain.ProtestMessage(nil), p.messages...)
	p.messages = append(p.messages, domain.ProtestMessage{Role: domain.RoleUser, Content: text})
	p.mu.Unlock()

	resp, err := p.svc.Protest(ctx, app.ProtestRequest{
		CommentText:         p.commentText,
		OriginalResult:      p.original,
		ProtestMessage:      text,
		ConversationHistory: history,
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	p.sending = false
	if err != nil {
		return domain.ProtestMessage{}, err
	}

	umpire := domain.ProtestMessage{Role: domain.RoleUmpire, Content: resp.UmpireResponse}
	p.messages = append(p.messages, umpire)

	// The umpire may concede. Only a complete replacement verdict is applied.
	if resp.JudgmentChanged && resp.NewResult != nil {
		p.owner.ReplaceResult(*resp.NewResult)
		p.replaced = true
	}
	return umpire, nil
}

// Messages returns the conversation so far, oldest first.
func (p *Protest) Messages() []domain.ProtestMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ProtestMessage(nil), p.messages...)
}

// Sending reports whether a turn is awaiting its response.
func (p *Protest) Sending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sending
}

// Replaced reports whether any turn of this protest overturned the verdict.
func (p *Protest) Replaced() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.replaced
}
