package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindease/mindease-backend/internal/data/repos"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/modules/wellness"
	"github.com/mindease/mindease-backend/internal/observability"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/apierr"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const planListLimit = 10

type WellnessService interface {
	Generate(ctx context.Context, req wellness.PlanRequest) (*types.WellnessPlan, error)
	List(ctx context.Context) ([]*types.WellnessPlan, error)
	Get(ctx context.Context, planID uuid.UUID) (*types.WellnessPlan, error)
	ToggleActivity(ctx context.Context, planID uuid.UUID, index int, completed bool) (*types.WellnessPlan, error)
}

type wellnessService struct {
	db       *gorm.DB
	log      *logger.Logger
	planRepo repos.PlanRepo
	metrics  *observability.Metrics
	now      func() time.Time
}

func NewWellnessService(db *gorm.DB, log *logger.Logger, planRepo repos.PlanRepo, metrics *observability.Metrics) WellnessService {
	return &wellnessService{
		db:       db,
		log:      log.With("service", "WellnessService"),
		planRepo: planRepo,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (s *wellnessService) Generate(ctx context.Context, req wellness.PlanRequest) (*types.WellnessPlan, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := wellness.Assemble(req)
	if err != nil {
		return nil, mapWellnessError(err)
	}
	plan.UserID = userID
	if err := s.planRepo.Create(dbctx.Context{Ctx: ctx}, plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	moodLabel := plan.CurrentMood
	if !wellness.IsMood(moodLabel) {
		moodLabel = "other"
	}
	s.metrics.IncPlanGenerated(moodLabel)
	s.log.Info("wellness plan generated",
		"user_id", userID.String(),
		"plan_id", plan.ID.String(),
		"mood", plan.CurrentMood,
		"activities", len(plan.Activities),
		"recommendations", len(plan.Recommendations),
	)
	return plan, nil
}

func (s *wellnessService) List(ctx context.Context) ([]*types.WellnessPlan, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.planRepo.ListByUser(dbctx.Context{Ctx: ctx}, userID, planListLimit)
}

// Get hides plans owned by other users behind the same not-found error.
func (s *wellnessService) Get(ctx context.Context, planID uuid.UUID) (*types.WellnessPlan, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := s.planRepo.GetByID(dbctx.Context{Ctx: ctx}, planID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if plan == nil || plan.UserID != userID {
		return nil, apierr.NotFound("wellness plan")
	}
	return plan, nil
}

// ToggleActivity is a locked read-modify-write of one activity. Concurrent
// toggles on the same plan serialize; the last writer wins.
func (s *wellnessService) ToggleActivity(ctx context.Context, planID uuid.UUID, index int, completed bool) (*types.WellnessPlan, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	var out *types.WellnessPlan
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		plan, err := s.planRepo.LockByID(dbc, planID)
		if err != nil {
			return fmt.Errorf("lock plan: %w", err)
		}
		if plan == nil || plan.UserID != userID {
			return apierr.NotFound("wellness plan")
		}
		if err := wellness.SetCompleted(plan, index, completed, s.now()); err != nil {
			return err
		}
		if err := s.planRepo.SaveProgress(dbc, plan); err != nil {
			return fmt.Errorf("save plan progress: %w", err)
		}
		out = plan
		return nil
	})
	if err != nil {
		return nil, mapWellnessError(err)
	}
	s.metrics.IncActivityToggle(completed)
	return out, nil
}

func mapWellnessError(err error) error {
	switch {
	case errors.Is(err, wellness.ErrMissingInput):
		return apierr.BadRequest("missing_required_input", err)
	case errors.Is(err, wellness.ErrInvalidIntensity):
		return apierr.BadRequest("invalid_request", err)
	case errors.Is(err, wellness.ErrInvalidReference):
		return apierr.BadRequest("invalid_reference", err)
	}
	return err
}
