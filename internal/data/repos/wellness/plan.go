package wellness

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

type PlanRepo interface {
	Create(dbc dbctx.Context, plan *types.WellnessPlan) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.WellnessPlan, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.WellnessPlan, error)
	LockByID(dbc dbctx.Context, id uuid.UUID) (*types.WellnessPlan, error)
	SaveProgress(dbc dbctx.Context, plan *types.WellnessPlan) error
}

type planRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlanRepo(db *gorm.DB, baseLog *logger.Logger) PlanRepo {
	return &planRepo{db: db, log: baseLog.With("repo", "PlanRepo")}
}

func (r *planRepo) Create(dbc dbctx.Context, plan *types.WellnessPlan) error {
	if plan == nil || plan.UserID == uuid.Nil {
		return fmt.Errorf("plan requires user_id")
	}
	return dbc.Conn(r.db).Create(plan).Error
}

// GetByID returns nil, nil when the plan does not exist.
func (r *planRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.WellnessPlan, error) {
	var out types.WellnessPlan
	err := dbc.Conn(r.db).Where("id = ?", id).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *planRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.WellnessPlan, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("missing user_id")
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var out []*types.WellnessPlan
	if err := dbc.Conn(r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// LockByID reads the plan with a row lock held until dbc.Tx ends.
func (r *planRepo) LockByID(dbc dbctx.Context, id uuid.UUID) (*types.WellnessPlan, error) {
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockByID requires dbc.Tx")
	}
	var out types.WellnessPlan
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

// SaveProgress writes the mutable parts of a plan: the activity list and
// the derived progress columns.
func (r *planRepo) SaveProgress(dbc dbctx.Context, plan *types.WellnessPlan) error {
	if plan == nil || plan.ID == uuid.Nil {
		return fmt.Errorf("missing plan id")
	}
	now := time.Now().UTC()
	res := dbc.Conn(r.db).
		Model(&types.WellnessPlan{}).
		Where("id = ?", plan.ID).
		Updates(map[string]interface{}{
			"activities":                    plan.Activities,
			"progress_total_activities":     plan.Progress.TotalActivities,
			"progress_completed_activities": plan.Progress.CompletedActivities,
			"progress_completion_rate":      plan.Progress.CompletionRate,
			"updated_at":                    now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	plan.UpdatedAt = now
	return nil
}
