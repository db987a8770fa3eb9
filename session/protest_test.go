package session

import (
	"context"
	"errors"
	"testing"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/domain"
)

func newTestProtest(svc *stubUmpireService) (*Protest, *Analysis) {
	owner := NewAnalysis(svc)
	owner.Select("A")
	original := safeResult()
	return NewProtest(svc, owner, "text-A", original), owner
}

func TestSendAppendsUserThenUmpire(t *testing.T) {
	svc := &stubUmpireService{
		protest: func(context.Context, app.ProtestRequest) (app.ProtestResponse, error) {
			return app.ProtestResponse{UmpireResponse: "The call stands."}, nil
		},
	}
	p, _ := newTestProtest(svc)

	umpire, err := p.Send(context.Background(), "That was clearly safe!")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if umpire.Role != domain.RoleUmpire || umpire.Content != "The call stands." {
		t.Fatalf("returned message = %+v", umpire)
	}

	msgs := p.Messages()
	if len(msgs) != 2 {
		t.Fatalf("conversation has %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != domain.RoleUser || msgs[0].Content != "That was clearly safe!" {
		t.Fatalf("first message = %+v, want the user turn", msgs[0])
	}
	if msgs[1].Role != domain.RoleUmpire {
		t.Fatalf("second message = %+v, want the umpire turn", msgs[1])
	}
}

func TestSendWiresPreAppendHistory(t *testing.T) {
	var got app.ProtestRequest
	turn := 0
	svc := &stubUmpireService{
		protest: func(_ context.Context, req app.ProtestRequest) (app.ProtestResponse, error) {
			turn++
			got = req
			return app.ProtestResponse{UmpireResponse: "Noted."}, nil
		},
	}
	p, _ := newTestProtest(svc)

	if _, err := p.Send(context.Background(), "first"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(got.ConversationHistory) != 0 {
		t.Fatalf("first turn sent history %v, want empty", got.ConversationHistory)
	}

	if _, err := p.Send(context.Background(), "second"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	// History excludes the message being sent.
	if len(got.ConversationHistory) != 2 {
		t.Fatalf("second turn sent %d history messages, want 2", len(got.ConversationHistory))
	}
	if got.ConversationHistory[0].Content != "first" || got.ConversationHistory[1].Content != "Noted." {
		t.Fatalf("history = %v", got.ConversationHistory)
	}
	if got.ProtestMessage != "second" {
		t.Fatalf("ProtestMessage = %q, want second", got.ProtestMessage)
	}
	if got.CommentText != "text-A" {
		t.Fatalf("CommentText = %q", got.CommentText)
	}
}

func TestSendOverturnsJudgment(t *testing.T) {
	replacement := safeResult()
	replacement.SafeOrOut = "out"
	svc := &stubUmpireService{
		protest: func(context.Context, app.ProtestRequest) (app.ProtestResponse, error) {
			return app.ProtestResponse{
				UmpireResponse:  "You are right, the call is reversed.",
				JudgmentChanged: true,
				NewResult:       &replacement,
			}, nil
		},
	}
	p, owner := newTestProtest(svc)

	if _, err := p.Send(context.Background(), "appeal"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !p.Replaced() {
		t.Fatal("Replaced should report true after an overturn")
	}
	snap := owner.Snapshot()
	if snap.SelectedID != "A" {
		t.Fatalf("overturn moved the selection to %q", snap.SelectedID)
	}
	if snap.Result == nil || !snap.Result.IsOut() {
		t.Fatalf("owner verdict = %+v, want the replacement", snap.Result)
	}
}

func TestSendChangedWithoutResultDoesNotReplace(t *testing.T) {
	svc := &stubUmpireService{
		protest: func(context.Context, app.ProtestRequest) (app.ProtestResponse, error) {
			return app.ProtestResponse{UmpireResponse: "Hmm.", JudgmentChanged: true}, nil
		},
	}
	p, owner := newTestProtest(svc)
	before := owner.Snapshot().Result

	if _, err := p.Send(context.Background(), "appeal"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if p.Replaced() {
		t.Fatal("a concession without a replacement verdict must not replace")
	}
	if after := owner.Snapshot().Result; after != before {
		t.Fatalf("owner verdict changed: %v -> %v", before, after)
	}
}

func TestSendFailurePreservesConversation(t *testing.T) {
	svc := &stubUmpireService{
		protest: func(context.Context, app.ProtestRequest) (app.ProtestResponse, error) {
			return app.ProtestResponse{}, errors.New("umpire walked off")
		},
	}
	p, _ := newTestProtest(svc)

	if _, err := p.Send(context.Background(), "appeal"); err == nil {
		t.Fatal("expected send error")
	}
	msgs := p.Messages()
	if len(msgs) != 1 || msgs[0].Role != domain.RoleUser {
		t.Fatalf("messages after failure = %v, want just the user turn", msgs)
	}
	if p.Sending() {
		t.Fatal("sending flag must clear on failure")
	}
}

func TestSendEmptyIsRejected(t *testing.T) {
	called := false
	svc := &stubUmpireService{
		protest: func(context.Context, app.ProtestRequest) (app.ProtestResponse, error) {
			called = true
			return app.ProtestResponse{}, nil
		},
	}
	p, _ := newTestProtest(svc)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := p.Send(context.Background(), text); !errors.Is(err, domain.ErrEmptyProtest) {
			t.Fatalf("Send(%q) = %v, want ErrEmptyProtest", text, err)
		}
	}
	if called {
		t.Fatal("empty protests must not hit the collaborator")
	}
	if len(p.Messages()) != 0 {
		t.Fatal("empty protests must not be appended")
	}
}

func TestSendWhileSendingIsRejected(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	svc := &stubUmpireService{
		protest: func(context.Context, app.ProtestRequest) (app.ProtestResponse, error) {
			close(entered)
			<-release
			return app.ProtestResponse{UmpireResponse: "ok"}, nil
		},
	}
	p, _ := newTestProtest(svc)

	done := make(chan struct{})
	go func() {
		p.Send(context.Background(), "first")
		close(done)
	}()
	<-entered

	if _, err := p.Send(context.Background(), "second"); !errors.Is(err, domain.ErrProtestInFlight) {
		t.Fatalf("concurrent Send = %v, want ErrProtestInFlight", err)
	}
	close(release)
	<-done

	msgs := p.Messages()
	if len(msgs) != 2 {
		t.Fatalf("conversation has %d messages, want only the first turn's pair", len(msgs))
	}
}
