package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindease/mindease-backend/internal/data/repos"
	"github.com/mindease/mindease-backend/internal/data/repos/testutil"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/modules/selfcare"
	"github.com/mindease/mindease-backend/internal/services"
)

func serve(t *testing.T, r *gin.Engine, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	out := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v (%s)", path, err, w.Body.String())
	}
	return w, out
}

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"up", nil, http.StatusOK},
		{"down", errors.New("connection refused"), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := NewHealthHandler(pingerFunc(func(context.Context) error { return tc.err }))
			r := gin.New()
			r.GET("/healthcheck", h.HealthCheck)
			w, body := serve(t, r, http.MethodGet, "/healthcheck")
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if tc.err == nil && body["status"] != "ok" {
				t.Fatalf("unexpected body: %v", body)
			}
		})
	}
}

func TestActivityHandler(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	lib, err := selfcare.Load()
	if err != nil {
		t.Fatalf("load library: %v", err)
	}
	h := NewActivityHandler(lib)
	h.now = func() time.Time { return time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.GET("/daily-tip", h.DailyTip)
	r.GET("/recommendations", h.Recommendations)
	r.GET("/meditation", h.Meditations)
	r.GET("/breathing", h.Breathing)

	_, body := serve(t, r, http.MethodGet, "/daily-tip")
	if body["date"] != "2026-03-07" || body["tip"] != lib.Tips[7%len(lib.Tips)] {
		t.Fatalf("unexpected tip: %v", body)
	}

	_, body = serve(t, r, http.MethodGet, "/recommendations?mood=unknown")
	acts, _ := body["activities"].([]any)
	if len(acts) != len(lib.ActivitiesFor("calm")) {
		t.Fatalf("unknown mood should fall back to calm, got %v", body)
	}

	_, body = serve(t, r, http.MethodGet, "/meditation")
	if meds, _ := body["meditations"].([]any); len(meds) != 5 {
		t.Fatalf("want 5 meditations, got %d", len(meds))
	}
	_, body = serve(t, r, http.MethodGet, "/breathing")
	if ex, _ := body["exercises"].([]any); len(ex) != 3 {
		t.Fatalf("want 3 breathing exercises, got %d", len(ex))
	}
}

func TestTherapistHandlerSearch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	testutil.SeedTherapist(t, ctx, db, "Asha Rao", func(th *types.Therapist) {
		th.Location.City = "Mumbai"
		th.Rating.Average = 4.8
	})
	testutil.SeedTherapist(t, ctx, db, "Dev Mehta", func(th *types.Therapist) {
		th.Location.City = "Pune"
		th.Pricing.Min, th.Pricing.Max = 3000, 5000
	})

	h := NewTherapistHandler(services.NewTherapistService(log, repos.NewTherapistRepo(db, log)))
	r := gin.New()
	r.GET("/therapists/search", h.Search)
	r.GET("/therapists/:id", h.Get)

	w, body := serve(t, r, http.MethodGet, "/therapists/search?location=mum&maxPrice=2500")
	if w.Code != http.StatusOK {
		t.Fatalf("search: %d %s", w.Code, w.Body.String())
	}
	list, _ := body["therapists"].([]any)
	pag, _ := body["pagination"].(map[string]any)
	if len(list) != 1 || pag["total"] != float64(1) || pag["pages"] != float64(1) {
		t.Fatalf("unexpected search result: %v", body)
	}

	w, _ = serve(t, r, http.MethodGet, "/therapists/"+uuid.NewString())
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing therapist: %d", w.Code)
	}
	w, _ = serve(t, r, http.MethodGet, "/therapists/not-a-uuid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: %d", w.Code)
	}
}

func TestArticleHandlerViews(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	a := testutil.SeedArticle(t, ctx, db, "Sleep Hygiene Basics", func(a *types.Article) {
		a.Slug = "sleep-hygiene-basics"
	})
	testutil.SeedArticle(t, ctx, db, "Draft", func(a *types.Article) {
		a.Slug = "draft"
		a.Published = false
	})

	svc := services.NewArticleService(db, log, repos.NewArticleRepo(db, log), repos.NewArticleLikeRepo(db, log))
	h := NewArticleHandler(svc)
	r := gin.New()
	r.GET("/articles", h.List)
	r.GET("/articles/:slug", h.GetBySlug)

	_, body := serve(t, r, http.MethodGet, "/articles")
	if list, _ := body["articles"].([]any); len(list) != 1 {
		t.Fatalf("only published articles should list, got %v", body)
	}

	for want := 1; want <= 2; want++ {
		w, body := serve(t, r, http.MethodGet, "/articles/"+a.Slug)
		art, _ := body["article"].(map[string]any)
		if w.Code != http.StatusOK || art["views"] != float64(want) {
			t.Fatalf("view %d: %d %v", want, w.Code, body)
		}
	}

	w, _ := serve(t, r, http.MethodGet, "/articles/draft")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unpublished article should 404, got %d", w.Code)
	}
}
