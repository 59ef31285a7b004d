package chat

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type ChatMessageRepo interface {
	Create(dbc dbctx.Context, rows []*types.ChatMessage) ([]*types.ChatMessage, error)
	ListBySession(dbc dbctx.Context, sessionID uuid.UUID, limit int) ([]*types.ChatMessage, error)
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, log *logger.Logger) ChatMessageRepo {
	return &chatMessageRepo{db: db, log: log.With("repo", "ChatMessageRepo")}
}

func (r *chatMessageRepo) Create(dbc dbctx.Context, rows []*types.ChatMessage) ([]*types.ChatMessage, error) {
	if len(rows) == 0 {
		return []*types.ChatMessage{}, nil
	}
	if err := dbc.Conn(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBySession returns messages in sequence order. limit <= 0 means all.
func (r *chatMessageRepo) ListBySession(dbc dbctx.Context, sessionID uuid.UUID, limit int) ([]*types.ChatMessage, error) {
	if sessionID == uuid.Nil {
		return nil, fmt.Errorf("missing session_id")
	}
	q := dbc.Conn(r.db).
		Where("session_id = ?", sessionID).
		Order("seq ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	out := []*types.ChatMessage{}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
