package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/mindease/mindease-backend/internal/data/repos"
	"github.com/mindease/mindease-backend/internal/data/repos/testutil"
	domainchat "github.com/mindease/mindease-backend/internal/domain/chat"
	"github.com/mindease/mindease-backend/internal/modules/companion"
)

type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

type cannedGenerator struct {
	text string
	err  error
}

func (g cannedGenerator) Generate(context.Context, string) (string, error) { return g.text, g.err }

func newTestChat(t *testing.T, gen companion.Generator) (*chatService, uuid.UUID) {
	t.Helper()
	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	u := testutil.SeedUser(t, context.Background(), db, "chat@example.com")
	replier := companion.NewReplier(log, companion.ReplierConfig{
		Generator: gen,
		Picker:    companion.NewPicker(firstSource{}),
	})
	svc := NewChatService(db, log, repos.NewChatSessionRepo(db, log), repos.NewChatMessageRepo(db, log), replier, nil)
	return svc.(*chatService), u.ID
}

func TestChatSessionLifecycle(t *testing.T) {
	svc, userID := newTestChat(t, nil)
	ctx := asUser(userID)

	session, err := svc.CreateSession(ctx, "sad")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if session.Title != domainchat.DefaultSessionTitle || len(session.Messages) != 1 || session.Messages[0].Content != WelcomeMessage {
		t.Fatalf("unexpected new session: %+v", session)
	}

	reply, err := svc.SendMessage(ctx, SendMessageInput{SessionID: session.ID, Message: "I feel so lonely today"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply.Message != companion.FallbackPool("sad")[0] {
		t.Fatalf("expected the session mood's fallback, got %q", reply.Message)
	}
	if reply.Emotion != companion.Classify("I feel so lonely today") || reply.Session.ID != session.ID || reply.Session.Mood != "sad" {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	reply, err = svc.SendMessage(ctx, SendMessageInput{SessionID: session.ID, Message: "work is a lot", Mood: "stressed"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply.Message != companion.FallbackPool("stressed")[0] {
		t.Fatalf("expected the request mood's fallback, got %q", reply.Message)
	}
	if reply.Session.Mood != "stressed" {
		t.Fatalf("reply session mood = %q", reply.Session.Mood)
	}

	full, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if full.Mood != "stressed" || full.MessageCount != 5 || len(full.Messages) != 5 {
		t.Fatalf("unexpected session state: mood=%s count=%d msgs=%d", full.Mood, full.MessageCount, len(full.Messages))
	}
	wantRoles := []string{domainchat.RoleAssistant, domainchat.RoleUser, domainchat.RoleAssistant, domainchat.RoleUser, domainchat.RoleAssistant}
	for i, m := range full.Messages {
		if m.Seq != int64(i) || m.Role != wantRoles[i] {
			t.Fatalf("message %d = seq %d role %s", i, m.Seq, m.Role)
		}
	}
	if full.Messages[1].Emotion != "" || full.Messages[2].Emotion == "" {
		t.Fatalf("emotion belongs on assistant entries only")
	}

	history, err := svc.History(ctx)
	if err != nil || len(history) != 1 || history[0].MessageCount != 5 {
		t.Fatalf("History = %+v, %v", history, err)
	}
}

func TestChatUsesGeneratorWhenAvailable(t *testing.T) {
	svc, userID := newTestChat(t, cannedGenerator{text: "  That sounds hard. I'm listening.  "})
	ctx := asUser(userID)

	session, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	reply, err := svc.SendMessage(ctx, SendMessageInput{SessionID: session.ID, Message: "hello"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply.Message != "That sounds hard. I'm listening." {
		t.Fatalf("unexpected response %q", reply.Message)
	}
}

func TestChatGeneratorFailureFallsBack(t *testing.T) {
	svc, userID := newTestChat(t, cannedGenerator{err: errors.New("upstream 503")})
	ctx := asUser(userID)

	session, err := svc.CreateSession(ctx, "anxious")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	reply, err := svc.SendMessage(ctx, SendMessageInput{SessionID: session.ID, Message: "hello"})
	if err != nil {
		t.Fatalf("SendMessage should absorb provider errors: %v", err)
	}
	if reply.Message != companion.FallbackPool("anxious")[0] {
		t.Fatalf("unexpected fallback %q", reply.Message)
	}
}

func TestChatMoodDefaultsAndExactMatch(t *testing.T) {
	svc, userID := newTestChat(t, nil)
	ctx := asUser(userID)

	session, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if session.Mood != DefaultSessionMood {
		t.Fatalf("session mood = %q, want %q", session.Mood, DefaultSessionMood)
	}

	reply, err := svc.SendMessage(ctx, SendMessageInput{SessionID: session.ID, Message: "hello"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply.Message != companion.FallbackPool("default")[0] || reply.Session.Mood != DefaultSessionMood {
		t.Fatalf("neutral session should use the default pool: %+v", reply)
	}

	reply, err = svc.SendMessage(ctx, SendMessageInput{SessionID: session.ID, Message: "hello", Mood: " sad"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply.Message != companion.FallbackPool("default")[0] {
		t.Fatalf("padded mood should not match the sad pool, got %q", reply.Message)
	}
	if reply.Session.Mood != " sad" {
		t.Fatalf("mood should be kept as sent, got %q", reply.Session.Mood)
	}
}

func TestChatOwnershipAndValidation(t *testing.T) {
	svc, userID := newTestChat(t, nil)
	ctx := asUser(userID)

	session, err := svc.CreateSession(ctx, "calm")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	stranger := asUser(uuid.New())
	_, err = svc.GetSession(stranger, session.ID)
	requireCode(t, err, http.StatusNotFound, "not_found")
	_, err = svc.SendMessage(stranger, SendMessageInput{SessionID: session.ID, Message: "hi"})
	requireCode(t, err, http.StatusNotFound, "not_found")

	_, err = svc.SendMessage(ctx, SendMessageInput{SessionID: session.ID, Message: "   "})
	requireCode(t, err, http.StatusBadRequest, "invalid_request")
	_, err = svc.SendMessage(ctx, SendMessageInput{Message: "hi"})
	requireCode(t, err, http.StatusBadRequest, "invalid_request")
}
