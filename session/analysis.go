package session

import (
	"context"
	"sync"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/domain"
)

// Analysis coordinates who is being judged right now. At most one judgment
// may be in flight across the whole comment tree; the guard is acquired by
// StartAnalysis and released when the collaborator call settles, success or
// not. The current verdict and the comment it belongs to always move
// together.
type Analysis struct {
	svc app.UmpireService

	mu          sync.Mutex
	analyzingID string
	selectedID  string
	result      *domain.AnalysisResult
}

// AnalysisState is a render snapshot of the session.
type AnalysisState struct {
	AnalyzingID string
	SelectedID  string
	Result      *domain.AnalysisResult
}

// NewAnalysis returns an idle analysis session judging through svc.
func NewAnalysis(svc app.UmpireService) *Analysis {
	return &Analysis{svc: svc}
}

// StartAnalysis judges one comment. For a reply, parent and precedingReplies
// form the context window [parent, preceding...]: the thread history up to
// but excluding the comment itself, in conversational order. Root comments
// get no window.
//
// Returns domain.ErrJudgmentInFlight without calling the collaborator when
// another judgment has not settled yet. On failure the verdict stays nil;
// the guard is always released.
func (a *Analysis) StartAnalysis(ctx context.Context, comment domain.Comment, parent *domain.Comment, precedingReplies []domain.Comment) (*domain.AnalysisResult, error) {
	a.mu.Lock()
	if a.analyzingID != "" {
		a.mu.Unlock()
		return nil, domain.ErrJudgmentInFlight
	}
	a.analyzingID = comment.ID
	a.selectedID = comment.ID
	a.result = nil
	a.mu.Unlock()

	var window []domain.Comment
	if comment.IsReply() && parent != nil {
		window = append(window, *parent)
		window = append(window, precedingReplies...)
	}

	res, err := a.svc.Analyze(ctx, app.AnalysisRequest{
		CommentText:     comment.Text,
		ContextComments: window,
	})

	a.mu.Lock()
	defer a.mu.Unlock()
	a.analyzingID = ""
	if err != nil {
		return nil, err
	}
	a.result = &res
	return &res, nil
}

// Select re-targets the selection while no judgment is in flight, clearing
// the verdict along with it so the pair never goes inconsistent.
func (a *Analysis) Select(commentID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.analyzingID != "" {
		return
	}
	a.selectedID = commentID
	a.result = nil
}

// ReplaceResult swaps in a replacement verdict for the currently selected
// comment, keeping the selection unchanged. This is how a protest session
// overturns a judgment.
func (a *Analysis) ReplaceResult(result domain.AnalysisResult) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.result = &result
}

// Snapshot returns the current state for rendering.
func (a *Analysis) Snapshot() AnalysisState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AnalysisState{
		AnalyzingID: a.analyzingID,
		SelectedID:  a.selectedID,
		Result:      a.result,
	}
}

// Analyzing reports whether a judgment is currently in flight.
func (a *Analysis) Analyzing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.analyzingID != ""
}
