package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type ArticleLikeRepo interface {
	Exists(dbc dbctx.Context, articleID, userID uuid.UUID) (bool, error)
	Create(dbc dbctx.Context, articleID, userID uuid.UUID) error
	Delete(dbc dbctx.Context, articleID, userID uuid.UUID) error
}

type articleLikeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArticleLikeRepo(db *gorm.DB, baseLog *logger.Logger) ArticleLikeRepo {
	return &articleLikeRepo{db: db, log: baseLog.With("repo", "ArticleLikeRepo")}
}

func (r *articleLikeRepo) Exists(dbc dbctx.Context, articleID, userID uuid.UUID) (bool, error) {
	var n int64
	if err := dbc.Conn(r.db).
		Model(&types.ArticleLike{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *articleLikeRepo) Create(dbc dbctx.Context, articleID, userID uuid.UUID) error {
	return dbc.Conn(r.db).Create(&types.ArticleLike{
		ArticleID: articleID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}).Error
}

func (r *articleLikeRepo) Delete(dbc dbctx.Context, articleID, userID uuid.UUID) error {
	return dbc.Conn(r.db).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&types.ArticleLike{}).Error
}
