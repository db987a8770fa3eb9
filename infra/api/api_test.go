package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sonicboom719/comment-umpire/app"
	"github.com/sonicboom719/comment-umpire/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zerolog.Nop())
}

func TestStripHTML(t *testing.T) {
	in := `Nice video!<br>Second line<BR/>Third <b>bold</b> &amp; done`
	got := stripHTML(in)
	if strings.Contains(got, "<") {
		t.Fatalf("tags must be stripped: %q", got)
	}
	if !strings.Contains(got, "Second line") || strings.Count(got, "\n") != 2 {
		t.Fatalf("br tags must become line breaks: %q", got)
	}
	if !strings.Contains(got, "bold") {
		t.Fatalf("tag contents must survive: %q", got)
	}
}

func TestListCommentsMapsWireShape(t *testing.T) {
	var gotPath, gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{
			"comments": [
				{"id": "A", "text": "root<br>text", "author": "alice", "published_at": "2025-06-01T10:00:00Z", "like_count": 3, "reply_count": 2},
				{"id": "R1", "text": "reply", "author": "bob", "published_at": "bogus", "parent_id": "A"}
			],
			"next_page_token": "tok2",
			"total_count": 57
		}`)
	})
	svc := NewCommentService(client)

	page, total, err := svc.ListComments(context.Background(), "vid1", "tok1", 50)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if gotPath != "/videos/vid1/comments" {
		t.Fatalf("path = %q", gotPath)
	}
	if !strings.Contains(gotQuery, "page_token=tok1") || !strings.Contains(gotQuery, "max_results=50") {
		t.Fatalf("query = %q", gotQuery)
	}
	if total != 57 {
		t.Fatalf("total = %d, want 57", total)
	}
	if page.NextCursor != "tok2" {
		t.Fatalf("cursor = %q, want tok2", page.NextCursor)
	}
	if len(page.Comments) != 2 {
		t.Fatalf("got %d comments", len(page.Comments))
	}
	a := page.Comments[0]
	if a.IsReply() || a.Text != "root\ntext" || a.LikeCount != 3 || a.ReplyCount != 2 {
		t.Fatalf("root mapped badly: %+v", a)
	}
	if a.PublishedAt.IsZero() {
		t.Fatal("valid timestamp must parse")
	}
	r := page.Comments[1]
	if !r.IsReply() || r.ParentID != "A" {
		t.Fatalf("reply mapped badly: %+v", r)
	}
	if !r.PublishedAt.IsZero() {
		t.Fatal("a bogus timestamp maps to the zero time, not an error")
	}
}

func TestListCommentsFirstPageOmitsToken(t *testing.T) {
	var gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"comments": []}`)
	})
	svc := NewCommentService(client)

	if _, _, err := svc.ListComments(context.Background(), "vid1", "", 100); err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if strings.Contains(gotQuery, "page_token") {
		t.Fatalf("first page must not send page_token: %q", gotQuery)
	}
}

func TestListRepliesMapsList(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments/A/replies" {
			t.Errorf("path = %q", r.URL.Path)
		}
		io.WriteString(w, `[{"id": "R1", "text": "hi", "author": "bob", "published_at": "2025-06-01T10:00:00Z", "parent_id": "A"}]`)
	})
	svc := NewCommentService(client)

	replies, err := svc.ListReplies(context.Background(), "A")
	if err != nil {
		t.Fatalf("ListReplies: %v", err)
	}
	if len(replies) != 1 || replies[0].ID != "R1" || replies[0].ParentID != "A" {
		t.Fatalf("replies = %+v", replies)
	}
}

func TestErrorDetailIsSurfaced(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error": "invalid_url", "detail": "not a YouTube URL"}`)
	})
	svc := NewVideoService(client)

	_, err := svc.Extract(context.Background(), "https://example.com")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not a YouTube URL") {
		t.Fatalf("error must carry the backend detail: %v", err)
	}
}

func TestErrorWithoutDetailFallsBackToStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `upstream broke`)
	})
	svc := NewVideoService(client)

	_, err := svc.Extract(context.Background(), "https://example.com")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("error must name the status: %v", err)
	}
}

func TestAnalyzeOmitsEmptyContextWindow(t *testing.T) {
	var body map[string]json.RawMessage
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &body)
		io.WriteString(w, `{"category": ["意見"], "safe_or_out": "safe", "validity_assessment": "高い", "explanation": "ok", "validity_reason": "r"}`)
	})
	svc := NewUmpireService(client)

	res, err := svc.Analyze(context.Background(), app.AnalysisRequest{CommentText: "hello"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if _, present := body["context_comments"]; present {
		t.Fatal("context_comments must be absent for a root comment")
	}
	if res.SafeOrOut != "safe" || len(res.Category) != 1 {
		t.Fatalf("result = %+v", res)
	}
}

func TestAnalyzeSendsContextWindow(t *testing.T) {
	var got analyzeRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &got)
		io.WriteString(w, `{"category": [], "safe_or_out": "out", "validity_assessment": "低い", "explanation": "", "validity_reason": ""}`)
	})
	svc := NewUmpireService(client)

	_, err := svc.Analyze(context.Background(), app.AnalysisRequest{
		CommentText: "reply text",
		ContextComments: []domain.Comment{
			{ID: "P", Text: "parent"},
			{ID: "S1", Text: "sibling", ParentID: "P"},
		},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(got.ContextComments) != 2 || got.ContextComments[0].ID != "P" || got.ContextComments[1].ParentID != "P" {
		t.Fatalf("context window on the wire = %+v", got.ContextComments)
	}
}

func TestProtestRoundTrip(t *testing.T) {
	var got protestRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments/protest" {
			t.Errorf("path = %q", r.URL.Path)
		}
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &got)
		io.WriteString(w, `{
			"umpire_response": "Call reversed.",
			"judgment_changed": true,
			"new_result": {"category": ["批判"], "safe_or_out": "out", "validity_assessment": "低い", "explanation": "e", "validity_reason": "v"}
		}`)
	})
	svc := NewUmpireService(client)

	resp, err := svc.Protest(context.Background(), app.ProtestRequest{
		CommentText:    "the comment",
		OriginalResult: domain.AnalysisResult{SafeOrOut: "safe", ValidityAssessment: "高い"},
		ProtestMessage: "appeal",
		ConversationHistory: []domain.ProtestMessage{
			{Role: domain.RoleUser, Content: "earlier"},
			{Role: domain.RoleUmpire, Content: "stands"},
		},
	})
	if err != nil {
		t.Fatalf("Protest: %v", err)
	}

	if got.OriginalResult.SafeOrOut != "safe" {
		t.Fatalf("original verdict on the wire = %+v", got.OriginalResult)
	}
	if len(got.ConversationHistory) != 2 || got.ConversationHistory[1].Role != domain.RoleUmpire {
		t.Fatalf("history on the wire = %+v", got.ConversationHistory)
	}
	if !resp.JudgmentChanged || resp.NewResult == nil || !resp.NewResult.IsOut() {
		t.Fatalf("response = %+v", resp)
	}
	if resp.UmpireResponse != "Call reversed." {
		t.Fatalf("umpire response = %q", resp.UmpireResponse)
	}
}

func TestExtractMapsVideoInfo(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos/extract" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{"video_id": "abc123", "title": "T", "channel_name": "C", "thumbnail_url": "u", "published_at": "2025-06-01"}`)
	})
	svc := NewVideoService(client)

	info, err := svc.Extract(context.Background(), "https://youtube.com/watch?v=abc123")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if info.VideoID != "abc123" || info.Title != "T" || info.ChannelName != "C" {
		t.Fatalf("info = %+v", info)
	}
}
