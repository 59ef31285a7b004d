package user

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

// MoodEntryRepo is append-only: there is no update or delete.
type MoodEntryRepo interface {
	Append(dbc dbctx.Context, entry *types.MoodEntry) error
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.MoodEntry, error)
}

type moodEntryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMoodEntryRepo(db *gorm.DB, baseLog *logger.Logger) MoodEntryRepo {
	return &moodEntryRepo{db: db, log: baseLog.With("repo", "MoodEntryRepo")}
}

func (r *moodEntryRepo) Append(dbc dbctx.Context, entry *types.MoodEntry) error {
	if entry == nil || entry.UserID == uuid.Nil {
		return fmt.Errorf("mood entry requires user_id")
	}
	return dbc.Conn(r.db).Create(entry).Error
}

func (r *moodEntryRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.MoodEntry, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id")
	}
	if limit <= 0 || limit > 200 {
		limit = 30
	}
	var out []*types.MoodEntry
	if err := dbc.Conn(r.db).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
