// Package seed loads the directory and article fixtures shipped with the
// binary into the database.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/mindease/mindease-backend/internal/data/repos"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/domain/content"
	"github.com/mindease/mindease-backend/internal/domain/therapist"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/logger"
	"github.com/mindease/mindease-backend/internal/platform/slug"
)

//go:embed seed.yaml
var seedYAML []byte

type Document struct {
	Therapists []*types.Therapist `yaml:"therapists"`
	Articles   []*types.Article   `yaml:"articles"`
}

type Options struct {
	DropArticles bool
}

type Result struct {
	Therapists      int
	Articles        int
	ArticlesDropped int64
}

// Parse decodes a seed document, derives article slugs and rejects values
// outside the domain enums.
func Parse(raw []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i, t := range doc.Therapists {
		if t.Email == "" {
			return nil, fmt.Errorf("therapist %d has no email", i)
		}
		if !slices.Contains(therapist.Types, t.Type) {
			return nil, fmt.Errorf("therapist %s: unknown type %q", t.Email, t.Type)
		}
		for _, s := range t.Specializations {
			if !slices.Contains(therapist.Specializations, s) {
				return nil, fmt.Errorf("therapist %s: unknown specialization %q", t.Email, s)
			}
		}
		for _, m := range t.SessionMode {
			if !slices.Contains(therapist.SessionModes, m) {
				return nil, fmt.Errorf("therapist %s: unknown session mode %q", t.Email, m)
			}
		}
		if t.Location.Country == "" {
			t.Location.Country = "India"
		}
	}
	seen := map[string]struct{}{}
	for _, a := range doc.Articles {
		a.Slug = slug.Make(a.Title)
		if a.Slug == "" {
			return nil, fmt.Errorf("article %q has no usable slug", a.Title)
		}
		if _, dup := seen[a.Slug]; dup {
			return nil, fmt.Errorf("duplicate article slug %q", a.Slug)
		}
		seen[a.Slug] = struct{}{}
		if !slices.Contains(content.Categories, a.Category) {
			return nil, fmt.Errorf("article %q: unknown category %q", a.Title, a.Category)
		}
		if len(a.Excerpt) > 200 {
			return nil, fmt.Errorf("article %q: excerpt longer than 200 characters", a.Title)
		}
		if a.ReadTime == 0 {
			a.ReadTime = 5
		}
	}
	return &doc, nil
}

// Load parses the embedded seed document.
func Load() (*Document, error) {
	return Parse(seedYAML)
}

// Run upserts the document in one transaction: therapists keyed by email and
// articles keyed by slug.
func Run(ctx context.Context, db *gorm.DB, log *logger.Logger, doc *Document, opts Options) (*Result, error) {
	log = log.With("component", "Seeder")
	therapistRepo := repos.NewTherapistRepo(db, log)
	articleRepo := repos.NewArticleRepo(db, log)

	res := &Result{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if opts.DropArticles {
			n, err := articleRepo.DeleteAll(dbc)
			if err != nil {
				return fmt.Errorf("drop articles: %w", err)
			}
			res.ArticlesDropped = n
			log.Info("articles dropped", "count", n)
		}
		if err := therapistRepo.UpsertByEmail(dbc, doc.Therapists); err != nil {
			return fmt.Errorf("upsert therapists: %w", err)
		}
		if err := articleRepo.UpsertBySlug(dbc, doc.Articles); err != nil {
			return fmt.Errorf("upsert articles: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Therapists = len(doc.Therapists)
	res.Articles = len(doc.Articles)
	log.Info("seed complete", "therapists", res.Therapists, "articles", res.Articles)
	return res, nil
}
