package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/mindease/mindease-backend/internal/data/repos"
	"github.com/mindease/mindease-backend/internal/data/repos/testutil"
	"github.com/mindease/mindease-backend/internal/platform/ctxutil"
)

func newTestAuth(t *testing.T) *authService {
	t.Helper()
	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	return NewAuthService(log, repos.NewUserRepo(db, log), "test-secret", time.Hour).(*authService)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	as := newTestAuth(t)
	ctx := context.Background()

	age := 29
	res, err := as.Register(ctx, RegisterInput{
		Name:     "Maya",
		Email:    "  Maya@Example.com ",
		Password: "secret1",
		Age:      &age,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Token == "" || res.User.Email != "maya@example.com" {
		t.Fatalf("unexpected register result: %+v", res.User)
	}
	if res.User.Password == "secret1" {
		t.Fatalf("password stored in clear text")
	}

	_, err = as.Register(ctx, RegisterInput{Name: "Other", Email: "maya@example.com", Password: "secret2"})
	requireCode(t, err, http.StatusBadRequest, "email_taken")

	login, err := as.Login(ctx, "MAYA@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != res.User.ID {
		t.Fatalf("login returned a different user")
	}

	_, err = as.Login(ctx, "maya@example.com", "wrong-pass")
	requireCode(t, err, http.StatusUnauthorized, "invalid_credentials")
	_, err = as.Login(ctx, "nobody@example.com", "secret1")
	requireCode(t, err, http.StatusUnauthorized, "invalid_credentials")

	authed, err := as.SetContextFromToken(ctx, login.Token)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	if ctxutil.UserID(authed) != res.User.ID {
		t.Fatalf("token subject mismatch")
	}
	me, err := as.Me(authed)
	if err != nil || me.ID != res.User.ID {
		t.Fatalf("Me = %v, %v", me, err)
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	as := newTestAuth(t)
	young := 12
	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@example.com", Password: "secret1"}},
		{"missing email", RegisterInput{Name: "A", Password: "secret1"}},
		{"short password", RegisterInput{Name: "A", Email: "a@example.com", Password: "12345"}},
		{"too young", RegisterInput{Name: "A", Email: "a@example.com", Password: "secret1", Age: &young}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := as.Register(context.Background(), tc.in)
			requireCode(t, err, http.StatusBadRequest, "invalid_request")
		})
	}
}

func TestAuthRejectsBadTokens(t *testing.T) {
	as := newTestAuth(t)
	ctx := context.Background()

	res, err := as.Register(ctx, RegisterInput{Name: "T", Email: "t@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	as.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := as.generateAccessToken(res.User.ID)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}
	as.now = time.Now

	other := NewAuthService(testutil.Logger(t), nil, "another-secret", time.Hour).(*authService)
	forged, err := other.generateAccessToken(res.User.ID)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}

	for name, tok := range map[string]string{
		"empty":   "",
		"garbage": "not-a-token",
		"expired": expired,
		"forged":  forged,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := as.SetContextFromToken(ctx, tok)
			requireCode(t, err, http.StatusUnauthorized, "unauthorized")
		})
	}

	_, err = as.Me(ctx)
	requireCode(t, err, http.StatusUnauthorized, "unauthorized")
}
