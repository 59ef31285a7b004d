package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/mindease/mindease-backend/internal/data/repos"
	"github.com/mindease/mindease-backend/internal/data/repos/dbquery"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/domain/content"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/apierr"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const (
	articlePageDefault = 12
	articlePageMax     = 50
	featuredLimit      = 6
)

type ArticlePage struct {
	Articles   []*types.Article `json:"articles"`
	Pagination Pagination       `json:"pagination"`
}

type LikeResult struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type ArticleService interface {
	List(ctx context.Context, f repos.ArticleFilter, page, limit int) (*ArticlePage, error)
	Featured(ctx context.Context) ([]*types.Article, error)
	GetBySlug(ctx context.Context, slug string) (*types.Article, error)
	ToggleLike(ctx context.Context, articleID uuid.UUID) (*LikeResult, error)
	Categories() []string
	Tags(ctx context.Context) ([]repos.TagCount, error)
}

type articleService struct {
	db          *gorm.DB
	log         *logger.Logger
	articleRepo repos.ArticleRepo
	likeRepo    repos.ArticleLikeRepo
}

func NewArticleService(db *gorm.DB, log *logger.Logger, articleRepo repos.ArticleRepo, likeRepo repos.ArticleLikeRepo) ArticleService {
	return &articleService{
		db:          db,
		log:         log.With("service", "ArticleService"),
		articleRepo: articleRepo,
		likeRepo:    likeRepo,
	}
}

func (s *articleService) List(ctx context.Context, f repos.ArticleFilter, page, limit int) (*ArticlePage, error) {
	page, limit, offset := dbquery.Page(page, limit, articlePageDefault, articlePageMax)

	var (
		rows  []*types.Article
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.articleRepo.List(dbctx.Context{Ctx: gctx}, f, offset, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.articleRepo.Count(dbctx.Context{Ctx: gctx}, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return &ArticlePage{Articles: rows, Pagination: newPagination(total, page, limit)}, nil
}

func (s *articleService) Featured(ctx context.Context) ([]*types.Article, error) {
	return s.articleRepo.Featured(dbctx.Context{Ctx: ctx}, featuredLimit)
}

// GetBySlug counts the read. The returned article includes the new view.
func (s *articleService) GetBySlug(ctx context.Context, slug string) (*types.Article, error) {
	dbc := dbctx.Context{Ctx: ctx}
	article, err := s.articleRepo.GetPublishedBySlug(dbc, slug)
	if err != nil {
		return nil, fmt.Errorf("load article: %w", err)
	}
	if article == nil {
		return nil, apierr.NotFound("article")
	}
	if err := s.articleRepo.IncrementViews(dbc, article.ID); err != nil {
		return nil, fmt.Errorf("count view: %w", err)
	}
	article.Views++
	return article, nil
}

func (s *articleService) ToggleLike(ctx context.Context, articleID uuid.UUID) (*LikeResult, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	var out LikeResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		article, err := s.articleRepo.LockByID(dbc, articleID)
		if err != nil {
			return fmt.Errorf("lock article: %w", err)
		}
		if article == nil || !article.Published {
			return apierr.NotFound("article")
		}
		liked, err := s.likeRepo.Exists(dbc, articleID, userID)
		if err != nil {
			return fmt.Errorf("check like: %w", err)
		}
		delta := int64(1)
		if liked {
			if err := s.likeRepo.Delete(dbc, articleID, userID); err != nil {
				return fmt.Errorf("remove like: %w", err)
			}
			delta = -1
		} else if err := s.likeRepo.Create(dbc, articleID, userID); err != nil {
			return fmt.Errorf("add like: %w", err)
		}
		likes, err := s.articleRepo.AddLikes(dbc, articleID, delta)
		if err != nil {
			return fmt.Errorf("update likes: %w", err)
		}
		out = LikeResult{Liked: !liked, Likes: likes}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *articleService) Categories() []string {
	return append([]string(nil), content.Categories...)
}

func (s *articleService) Tags(ctx context.Context) ([]repos.TagCount, error) {
	return s.articleRepo.PublishedTags(dbctx.Context{Ctx: ctx})
}
