package chat

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type ChatSessionRepo interface {
	Create(dbc dbctx.Context, s *types.ChatSession) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ChatSession, error)
	GetWithMessages(dbc dbctx.Context, id uuid.UUID) (*types.ChatSession, error)
	ListSummaries(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.SessionSummary, error)
	LockByID(dbc dbctx.Context, id uuid.UUID) (*types.ChatSession, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
}

type chatSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatSessionRepo(db *gorm.DB, log *logger.Logger) ChatSessionRepo {
	return &chatSessionRepo{db: db, log: log.With("repo", "ChatSessionRepo")}
}

func (r *chatSessionRepo) Create(dbc dbctx.Context, s *types.ChatSession) error {
	if s == nil || s.UserID == uuid.Nil {
		return fmt.Errorf("session requires user_id")
	}
	return dbc.Conn(r.db).Create(s).Error
}

// GetByID returns nil, nil when the session does not exist.
func (r *chatSessionRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ChatSession, error) {
	var out types.ChatSession
	err := dbc.Conn(r.db).Where("id = ?", id).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *chatSessionRepo) GetWithMessages(dbc dbctx.Context, id uuid.UUID) (*types.ChatSession, error) {
	var out types.ChatSession
	err := dbc.Conn(r.db).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Where("id = ?", id).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if out.Messages == nil {
		out.Messages = []*types.ChatMessage{}
	}
	return &out, nil
}

func (r *chatSessionRepo) ListSummaries(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.SessionSummary, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id")
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	out := []*types.SessionSummary{}
	if err := dbc.Conn(r.db).
		Model(&types.ChatSession{}).
		Select("id, title, mood, last_message_at, message_count").
		Where("user_id = ?", userID).
		Order("last_message_at DESC").
		Limit(limit).
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *chatSessionRepo) LockByID(dbc dbctx.Context, id uuid.UUID) (*types.ChatSession, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockByID requires dbc.Tx")
	}
	var out types.ChatSession
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

func (r *chatSessionRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing id")
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["updated_at"] = time.Now().UTC()
	return dbc.Conn(r.db).
		Model(&types.ChatSession{}).
		Where("id = ?", id).
		Updates(updates).Error
}
