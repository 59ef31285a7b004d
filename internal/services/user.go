package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindease/mindease-backend/internal/data/repos"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/modules/wellness"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/apierr"
	"github.com/mindease/mindease-backend/internal/platform/ctxutil"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type MoodInput struct {
	Mood      string
	Intensity int
	Note      string
}

// UserService owns the caller's mood log.
type UserService interface {
	RecordMood(ctx context.Context, in MoodInput) (*types.MoodEntry, error)
	ListMoods(ctx context.Context, limit int) ([]*types.MoodEntry, error)
}

type userService struct {
	log      *logger.Logger
	moodRepo repos.MoodEntryRepo
	now      func() time.Time
}

func NewUserService(log *logger.Logger, moodRepo repos.MoodEntryRepo) UserService {
	return &userService{
		log:      log.With("service", "UserService"),
		moodRepo: moodRepo,
		now:      time.Now,
	}
}

func (s *userService) RecordMood(ctx context.Context, in MoodInput) (*types.MoodEntry, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	mood := in.Mood
	if !wellness.IsMood(mood) {
		return nil, apierr.BadRequest("invalid_request", fmt.Errorf("unknown mood %q", mood))
	}
	if !wellness.ValidIntensity(in.Intensity) {
		return nil, apierr.BadRequest("invalid_request", wellness.ErrInvalidIntensity)
	}
	entry := &types.MoodEntry{
		UserID:    userID,
		Mood:      mood,
		Intensity: in.Intensity,
		Note:      strings.TrimSpace(in.Note),
		Timestamp: s.now().UTC(),
	}
	if err := s.moodRepo.Append(dbctx.Context{Ctx: ctx}, entry); err != nil {
		return nil, fmt.Errorf("append mood entry: %w", err)
	}
	return entry, nil
}

func (s *userService) ListMoods(ctx context.Context, limit int) ([]*types.MoodEntry, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.moodRepo.ListByUser(dbctx.Context{Ctx: ctx}, userID, limit)
}

var errNotAuthenticated = apierr.Unauthorized(errors.New("not authenticated"))

func requireUser(ctx context.Context) (uuid.UUID, error) {
	userID := ctxutil.UserID(ctx)
	if userID == uuid.Nil {
		return uuid.Nil, errNotAuthenticated
	}
	return userID, nil
}
