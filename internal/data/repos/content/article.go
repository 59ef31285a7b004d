package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mindease/mindease-backend/internal/data/repos/dbquery"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type ArticleFilter struct {
	Category string
	Tag      string
	Search   string
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type ArticleRepo interface {
	List(dbc dbctx.Context, f ArticleFilter, offset, limit int) ([]*types.Article, error)
	Count(dbc dbctx.Context, f ArticleFilter) (int64, error)
	Featured(dbc dbctx.Context, limit int) ([]*types.Article, error)
	GetPublishedBySlug(dbc dbctx.Context, slug string) (*types.Article, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Article, error)
	LockByID(dbc dbctx.Context, id uuid.UUID) (*types.Article, error)
	IncrementViews(dbc dbctx.Context, id uuid.UUID) error
	AddLikes(dbc dbctx.Context, id uuid.UUID, delta int64) (int64, error)
	PublishedTags(dbc dbctx.Context) ([]TagCount, error)
	UpsertBySlug(dbc dbctx.Context, rows []*types.Article) error
	DeleteAll(dbc dbctx.Context) (int64, error)
}

type articleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArticleRepo(db *gorm.DB, baseLog *logger.Logger) ArticleRepo {
	return &articleRepo{db: db, log: baseLog.With("repo", "ArticleRepo")}
}

func (r *articleRepo) published(dbc dbctx.Context, f ArticleFilter) *gorm.DB {
	q := dbc.Conn(r.db).Model(&types.Article{}).Where("published = ?", true)
	if v := strings.TrimSpace(f.Category); v != "" {
		q = q.Where("category = ?", v)
	}
	if v := strings.TrimSpace(f.Tag); v != "" {
		cond, args := dbquery.JSONArrayContains(q, "tags", v)
		q = q.Where(cond, args...)
	}
	if v := strings.TrimSpace(f.Search); v != "" {
		titleCond, titleArg := dbquery.ContainsFold("title", v)
		excerptCond, excerptArg := dbquery.ContainsFold("excerpt", v)
		q = q.Where(r.db.Where(titleCond, titleArg).Or(excerptCond, excerptArg))
	}
	return q
}

// List omits the body; callers fetch it by slug.
func (r *articleRepo) List(dbc dbctx.Context, f ArticleFilter, offset, limit int) ([]*types.Article, error) {
	if limit <= 0 {
		limit = 12
	}
	out := []*types.Article{}
	if err := r.published(dbc, f).
		Omit("content").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *articleRepo) Count(dbc dbctx.Context, f ArticleFilter) (int64, error) {
	var n int64
	if err := r.published(dbc, f).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *articleRepo) Featured(dbc dbctx.Context, limit int) ([]*types.Article, error) {
	if limit <= 0 {
		limit = 6
	}
	out := []*types.Article{}
	if err := r.published(dbc, ArticleFilter{}).
		Where("featured = ?", true).
		Omit("content").
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *articleRepo) GetPublishedBySlug(dbc dbctx.Context, slug string) (*types.Article, error) {
	var out types.Article
	err := dbc.Conn(r.db).
		Where("slug = ? AND published = ?", strings.TrimSpace(slug), true).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *articleRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Article, error) {
	var out types.Article
	err := dbc.Conn(r.db).Where("id = ?", id).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *articleRepo) LockByID(dbc dbctx.Context, id uuid.UUID) (*types.Article, error) {
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockByID requires dbc.Tx")
	}
	var out types.Article
	err := dbc.Tx.WithContext(dbc.Ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *articleRepo) IncrementViews(dbc dbctx.Context, id uuid.UUID) error {
	return dbc.Conn(r.db).
		Model(&types.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// AddLikes applies delta to the like counter, never going below zero, and
// returns the stored value.
func (r *articleRepo) AddLikes(dbc dbctx.Context, id uuid.UUID, delta int64) (int64, error) {
	conn := dbc.Conn(r.db)
	expr := gorm.Expr("likes + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("CASE WHEN likes + ? < 0 THEN 0 ELSE likes + ? END", delta, delta)
	}
	res := conn.Model(&types.Article{}).Where("id = ?", id).UpdateColumn("likes", expr)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	var likes int64
	if err := dbc.Conn(r.db).
		Model(&types.Article{}).
		Select("likes").
		Where("id = ?", id).
		Scan(&likes).Error; err != nil {
		return 0, err
	}
	return likes, nil
}

// PublishedTags counts tag usage over published articles, most used first.
// At most 20 tags are returned; ties sort by name.
func (r *articleRepo) PublishedTags(dbc dbctx.Context) ([]TagCount, error) {
	var rows []*types.Article
	if err := dbc.Conn(r.db).
		Select("tags").
		Where("published = ?", true).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, a := range rows {
		for _, tag := range a.Tags {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				counts[tag]++
			}
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > 20 {
		out = out[:20]
	}
	return out, nil
}

// UpsertBySlug inserts articles or refreshes existing ones in place. View
// and like counters of existing rows are left alone.
func (r *articleRepo) UpsertBySlug(dbc dbctx.Context, rows []*types.Article) error {
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		if row == nil || strings.TrimSpace(row.Slug) == "" {
			return fmt.Errorf("article upsert requires slug")
		}
	}
	return dbc.Conn(r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "author_name", "author_credentials", "author_avatar",
				"category", "tags", "cover_image", "excerpt", "content", "read_time",
				"published", "featured", "updated_at",
			}),
		}).
		Create(&rows).Error
}

// DeleteAll hard-deletes every article along with its likes.
func (r *articleRepo) DeleteAll(dbc dbctx.Context) (int64, error) {
	conn := dbc.Conn(r.db)
	if err := conn.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&types.ArticleLike{}).Error; err != nil {
		return 0, err
	}
	res := conn.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&types.Article{})
	return res.RowsAffected, res.Error
}
