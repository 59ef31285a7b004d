package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/mindease/mindease-backend/internal/data/repos"
	"github.com/mindease/mindease-backend/internal/data/repos/testutil"
	types "github.com/mindease/mindease-backend/internal/domain"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()
	cases := []struct {
		total       int64
		page, limit int
		wantPages   int64
	}{
		{0, 1, 10, 0},
		{1, 1, 10, 1},
		{10, 1, 10, 1},
		{11, 2, 10, 2},
		{25, 3, 12, 3},
	}
	for _, tc := range cases {
		got := newPagination(tc.total, tc.page, tc.limit)
		if got.Pages != tc.wantPages || got.Total != tc.total || got.Page != tc.page {
			t.Fatalf("newPagination(%d, %d, %d) = %+v", tc.total, tc.page, tc.limit, got)
		}
	}
}

func TestTherapistSearchPaginates(t *testing.T) {
	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	ctx := context.Background()
	svc := NewTherapistService(log, repos.NewTherapistRepo(db, log))

	for i := 0; i < 12; i++ {
		testutil.SeedTherapist(t, ctx, db, fmt.Sprintf("Therapist %02d", i), func(th *types.Therapist) {
			th.Specializations = []string{"Anxiety"}
			th.Rating.Average = float64(i%5) + 0.5
		})
	}
	hidden := testutil.SeedTherapist(t, ctx, db, "Hidden", func(th *types.Therapist) { th.IsActive = false })

	page, err := svc.Search(ctx, repos.TherapistFilter{Specialization: "Anxiety"}, 2, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Pagination.Total != 12 || page.Pagination.Pages != 3 || page.Pagination.Page != 2 {
		t.Fatalf("unexpected pagination: %+v", page.Pagination)
	}
	if len(page.Therapists) != 5 {
		t.Fatalf("expected 5 therapists on page 2, got %d", len(page.Therapists))
	}

	capped, err := svc.Search(ctx, repos.TherapistFilter{}, 1, 500)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(capped.Therapists) != 12 || capped.Pagination.Pages != 1 {
		t.Fatalf("limit should cap at the max page size: %+v", capped.Pagination)
	}

	_, err = svc.Get(ctx, hidden.ID)
	requireCode(t, err, http.StatusNotFound, "not_found")
	if len(svc.Types()) != 12 || len(svc.Specializations()) != 14 {
		t.Fatalf("unexpected enum sizes")
	}
}

func TestArticleLikeToggle(t *testing.T) {
	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	ctx := context.Background()
	svc := NewArticleService(db, log, repos.NewArticleRepo(db, log), repos.NewArticleLikeRepo(db, log))

	a := testutil.SeedArticle(t, ctx, db, "Kindness")
	alice := testutil.SeedUser(t, ctx, db, "alice@example.com")
	bob := testutil.SeedUser(t, ctx, db, "bob@example.com")

	steps := []struct {
		who       uuid.UUID
		wantLiked bool
		wantLikes int64
	}{
		{alice.ID, true, 1},
		{bob.ID, true, 2},
		{alice.ID, false, 1},
		{alice.ID, true, 2},
		{bob.ID, false, 1},
	}
	for i, step := range steps {
		res, err := svc.ToggleLike(asUser(step.who), a.ID)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if res.Liked != step.wantLiked || res.Likes != step.wantLikes {
			t.Fatalf("step %d = %+v, want liked=%v likes=%d", i, res, step.wantLiked, step.wantLikes)
		}
	}

	_, err := svc.ToggleLike(asUser(alice.ID), uuid.New())
	requireCode(t, err, http.StatusNotFound, "not_found")
	_, err = svc.ToggleLike(ctx, a.ID)
	requireCode(t, err, http.StatusUnauthorized, "unauthorized")
}

func TestArticleGetBySlugCountsViews(t *testing.T) {
	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	ctx := context.Background()
	svc := NewArticleService(db, log, repos.NewArticleRepo(db, log), repos.NewArticleLikeRepo(db, log))

	a := testutil.SeedArticle(t, ctx, db, "Views")
	draft := testutil.SeedArticle(t, ctx, db, "Draft", func(a *types.Article) { a.Published = false })

	for want := int64(1); want <= 3; want++ {
		got, err := svc.GetBySlug(ctx, a.Slug)
		if err != nil {
			t.Fatalf("GetBySlug: %v", err)
		}
		if got.Views != want {
			t.Fatalf("views = %d, want %d", got.Views, want)
		}
	}
	_, err := svc.GetBySlug(ctx, draft.Slug)
	requireCode(t, err, http.StatusNotFound, "not_found")

	page, err := svc.List(ctx, repos.ArticleFilter{}, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Pagination.Total != 1 || len(page.Articles) != 1 || page.Pagination.Page != 1 {
		t.Fatalf("unexpected listing: %+v", page.Pagination)
	}
}
