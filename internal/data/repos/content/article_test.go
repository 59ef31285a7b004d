package content

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mindease/mindease-backend/internal/data/repos/testutil"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
)

func TestArticleRepoListing(t *testing.T) {
	db := testutil.SQLite(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	repo := NewArticleRepo(db, testutil.Logger(t))

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	at := func(h int) func(*types.Article) {
		return func(a *types.Article) { a.CreatedAt = base.Add(time.Duration(h) * time.Hour) }
	}
	testutil.SeedArticle(t, ctx, db, "Breathe Through Stress", at(1), func(a *types.Article) {
		a.Category = "Stress Management"
		a.Tags = []string{"stress", "breathing"}
		a.Featured = true
	})
	testutil.SeedArticle(t, ctx, db, "Sleep Better Tonight", at(2), func(a *types.Article) {
		a.Category = "Sleep"
		a.Tags = []string{"sleep", "stress"}
		a.Excerpt = "Small habits for 100% better rest"
	})
	testutil.SeedArticle(t, ctx, db, "Mindful Mornings", at(3), func(a *types.Article) {
		a.Category = "Mindfulness"
		a.Tags = []string{"mindfulness"}
		a.Featured = true
	})
	testutil.SeedArticle(t, ctx, db, "Draft Piece", at(4), func(a *types.Article) {
		a.Tags = []string{"stress", "draft"}
		a.Featured = true
		a.Published = false
	})

	cases := []struct {
		name string
		f    ArticleFilter
		want []string
	}{
		{"published newest first", ArticleFilter{}, []string{"Mindful Mornings", "Sleep Better Tonight", "Breathe Through Stress"}},
		{"category", ArticleFilter{Category: "Sleep"}, []string{"Sleep Better Tonight"}},
		{"tag", ArticleFilter{Tag: "stress"}, []string{"Sleep Better Tonight", "Breathe Through Stress"}},
		{"search title", ArticleFilter{Search: "MINDFUL"}, []string{"Mindful Mornings"}},
		{"search excerpt", ArticleFilter{Search: "habits"}, []string{"Sleep Better Tonight"}},
		{"search escapes wildcards", ArticleFilter{Search: "100%"}, []string{"Sleep Better Tonight"}},
		{"search draft hidden", ArticleFilter{Search: "draft"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(dbc, tc.f, 0, 12)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d articles, want %v", len(got), tc.want)
			}
			for i := range got {
				if got[i].Title != tc.want[i] {
					t.Fatalf("row %d = %q, want %q", i, got[i].Title, tc.want[i])
				}
				if got[i].Content != "" {
					t.Fatalf("listing should omit content")
				}
			}
			n, err := repo.Count(dbc, tc.f)
			if err != nil || n != int64(len(tc.want)) {
				t.Fatalf("Count = %d, %v; want %d", n, err, len(tc.want))
			}
		})
	}

	featured, err := repo.Featured(dbc, 6)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(featured) != 2 || featured[0].Title != "Mindful Mornings" {
		t.Fatalf("unexpected featured: %+v", featured)
	}

	tags, err := repo.PublishedTags(dbc)
	if err != nil {
		t.Fatalf("PublishedTags: %v", err)
	}
	want := []TagCount{{"stress", 2}, {"breathing", 1}, {"mindfulness", 1}, {"sleep", 1}}
	if len(tags) != len(want) {
		t.Fatalf("tags = %+v, want %+v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("tag %d = %+v, want %+v", i, tags[i], want[i])
		}
	}
}

func TestArticleCountersAndLikes(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	articles := NewArticleRepo(db, testutil.Logger(t))
	likes := NewArticleLikeRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "likes-"+uuid.NewString()[:8]+"@example.com")
	a := testutil.SeedArticle(t, ctx, tx, "Counters")

	for i := 0; i < 3; i++ {
		if err := articles.IncrementViews(dbc, a.ID); err != nil {
			t.Fatalf("IncrementViews: %v", err)
		}
	}
	got, err := articles.GetPublishedBySlug(dbc, a.Slug)
	if err != nil || got == nil {
		t.Fatalf("GetPublishedBySlug: %v, %v", got, err)
	}
	if got.Views != 3 || got.Content == "" {
		t.Fatalf("views=%d content=%q", got.Views, got.Content)
	}

	liked, err := likes.Exists(dbc, a.ID, u.ID)
	if err != nil || liked {
		t.Fatalf("Exists before like = %v, %v", liked, err)
	}
	if err := likes.Create(dbc, a.ID, u.ID); err != nil {
		t.Fatalf("Create like: %v", err)
	}
	n, err := articles.AddLikes(dbc, a.ID, 1)
	if err != nil || n != 1 {
		t.Fatalf("AddLikes(+1) = %d, %v", n, err)
	}
	if liked, _ := likes.Exists(dbc, a.ID, u.ID); !liked {
		t.Fatalf("like not recorded")
	}
	if err := likes.Delete(dbc, a.ID, u.ID); err != nil {
		t.Fatalf("Delete like: %v", err)
	}
	n, err = articles.AddLikes(dbc, a.ID, -1)
	if err != nil || n != 0 {
		t.Fatalf("AddLikes(-1) = %d, %v", n, err)
	}
	n, err = articles.AddLikes(dbc, a.ID, -1)
	if err != nil || n != 0 {
		t.Fatalf("likes must not go negative: %d, %v", n, err)
	}
	if _, err := articles.AddLikes(dbc, uuid.New(), 1); err == nil {
		t.Fatalf("AddLikes on missing article should fail")
	}
}

func TestArticleUpsertBySlugKeepsCounters(t *testing.T) {
	db := testutil.SQLite(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	repo := NewArticleRepo(db, testutil.Logger(t))

	slug := "coping-with-change"
	first := &types.Article{Title: "Coping", Slug: slug, Category: "Self-Care", Excerpt: "e", Content: "v1", Published: true}
	if err := repo.UpsertBySlug(dbc, []*types.Article{first}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.IncrementViews(dbc, first.ID); err != nil {
		t.Fatalf("IncrementViews: %v", err)
	}

	second := &types.Article{Title: "Coping With Change", Slug: slug, Category: "Self-Care", Excerpt: "e", Content: "v2", Published: true}
	if err := repo.UpsertBySlug(dbc, []*types.Article{second}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.GetPublishedBySlug(dbc, slug)
	if err != nil || got == nil {
		t.Fatalf("GetPublishedBySlug: %v, %v", got, err)
	}
	if got.ID != first.ID || got.Title != "Coping With Change" || got.Content != "v2" || got.Views != 1 {
		t.Fatalf("unexpected row after upsert: %+v", got)
	}

	deleted, err := repo.DeleteAll(dbc)
	if err != nil || deleted != 1 {
		t.Fatalf("DeleteAll = %d, %v", deleted, err)
	}
	if got, _ := repo.GetPublishedBySlug(dbc, slug); got != nil {
		t.Fatalf("article survived DeleteAll")
	}
}
