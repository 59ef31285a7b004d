package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/mindease/mindease-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    email,
		Password: "pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

type TherapistOpt func(*types.Therapist)

func SeedTherapist(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, opts ...TherapistOpt) *types.Therapist {
	tb.Helper()
	th := &types.Therapist{
		Name:          name,
		Email:         fmt.Sprintf("%s@clinic.test", uuid.NewString()[:8]),
		Phone:         "+91-00000-00000",
		Type:          "Psychologist",
		LicenseNumber: "LIC-" + uuid.NewString()[:6],
		IsActive:      true,
	}
	th.Pricing.Min, th.Pricing.Max, th.Pricing.Currency = 1000, 2000, "INR"
	th.Location.Country = "India"
	for _, opt := range opts {
		opt(th)
	}
	active := th.IsActive
	if err := tx.WithContext(ctx).Create(th).Error; err != nil {
		tb.Fatalf("seed therapist: %v", err)
	}
	// gorm skips zero values that carry a column default.
	if !active {
		if err := tx.WithContext(ctx).Model(th).Update("is_active", false).Error; err != nil {
			tb.Fatalf("deactivate therapist: %v", err)
		}
		th.IsActive = false
	}
	return th
}

type ArticleOpt func(*types.Article)

func SeedArticle(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, opts ...ArticleOpt) *types.Article {
	tb.Helper()
	a := &types.Article{
		Title:     title,
		Slug:      uuid.NewString(),
		Category:  "General Wellness",
		Excerpt:   "excerpt for " + title,
		Content:   "content for " + title,
		Published: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	published := a.Published
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed article: %v", err)
	}
	if !published {
		if err := tx.WithContext(ctx).Model(a).Update("published", false).Error; err != nil {
			tb.Fatalf("unpublish article: %v", err)
		}
		a.Published = false
	}
	return a
}
