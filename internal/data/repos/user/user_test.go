package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mindease/mindease-backend/internal/data/repos/testutil"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	repo := NewUserRepo(db, testutil.Logger(t))
	email := "userrepo-" + uuid.NewString()[:8] + "@example.com"

	u := &types.User{Name: "Asha", Email: email, Password: "hash"}
	if err := repo.Create(dbc, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Fatalf("Create: expected id to be assigned")
	}

	got, err := repo.GetByID(dbc, u.ID)
	if err != nil || got == nil || got.Email != email {
		t.Fatalf("GetByID: got=%+v err=%v", got, err)
	}
	if got.Avatar != "default-avatar.png" || !got.NotificationsEnabled {
		t.Fatalf("GetByID: defaults not applied: %+v", got)
	}

	byEmail, err := repo.GetByEmail(dbc, "  "+email+" ")
	if err != nil || byEmail == nil || byEmail.ID != u.ID {
		t.Fatalf("GetByEmail: got=%+v err=%v", byEmail, err)
	}

	exists, err := repo.EmailExists(dbc, email)
	if err != nil || !exists {
		t.Fatalf("EmailExists: exists=%v err=%v", exists, err)
	}
	exists, err = repo.EmailExists(dbc, "does-not-exist@example.com")
	if err != nil || exists {
		t.Fatalf("EmailExists (missing): exists=%v err=%v", exists, err)
	}

	missing, err := repo.GetByID(dbc, uuid.New())
	if err != nil || missing != nil {
		t.Fatalf("GetByID (missing): got=%+v err=%v", missing, err)
	}
}

func TestMoodEntryRepoNewestFirst(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	owner := testutil.SeedUser(t, ctx, tx, "moods-"+uuid.NewString()[:8]+"@example.com")
	repo := NewMoodEntryRepo(db, testutil.Logger(t))

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	for i, mood := range []string{"sad", "calm", "happy"} {
		if err := repo.Append(dbc, &types.MoodEntry{
			UserID:    owner.ID,
			Mood:      mood,
			Intensity: i + 3,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("Append(%s): %v", mood, err)
		}
	}

	got, err := repo.ListByUser(dbc, owner.ID, 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 || got[0].Mood != "happy" || got[1].Mood != "calm" {
		t.Fatalf("ListByUser: unexpected order %+v", got)
	}

	if err := repo.Append(dbc, &types.MoodEntry{Mood: "sad"}); err == nil {
		t.Fatalf("Append without user should fail")
	}
}
