package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mindease/mindease-backend/internal/data/repos"
	"github.com/mindease/mindease-backend/internal/data/repos/dbquery"
	types "github.com/mindease/mindease-backend/internal/domain"
	domaintherapist "github.com/mindease/mindease-backend/internal/domain/therapist"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/apierr"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const (
	therapistPageDefault = 10
	therapistPageMax     = 50
)

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int64 `json:"pages"`
}

func newPagination(total int64, page, limit int) Pagination {
	pages := int64(0)
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Total: total, Page: page, Pages: pages}
}

type TherapistPage struct {
	Therapists []*types.Therapist `json:"therapists"`
	Pagination Pagination         `json:"pagination"`
}

type TherapistService interface {
	Search(ctx context.Context, f repos.TherapistFilter, page, limit int) (*TherapistPage, error)
	ListActive(ctx context.Context) ([]*types.Therapist, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Therapist, error)
	Types() []string
	Specializations() []string
}

type therapistService struct {
	log           *logger.Logger
	therapistRepo repos.TherapistRepo
}

func NewTherapistService(log *logger.Logger, therapistRepo repos.TherapistRepo) TherapistService {
	return &therapistService{
		log:           log.With("service", "TherapistService"),
		therapistRepo: therapistRepo,
	}
}

// Search runs the page and count queries concurrently.
func (s *therapistService) Search(ctx context.Context, f repos.TherapistFilter, page, limit int) (*TherapistPage, error) {
	page, limit, offset := dbquery.Page(page, limit, therapistPageDefault, therapistPageMax)

	var (
		rows  []*types.Therapist
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.therapistRepo.Find(dbctx.Context{Ctx: gctx}, f, offset, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.therapistRepo.Count(dbctx.Context{Ctx: gctx}, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search therapists: %w", err)
	}
	return &TherapistPage{Therapists: rows, Pagination: newPagination(total, page, limit)}, nil
}

func (s *therapistService) ListActive(ctx context.Context) ([]*types.Therapist, error) {
	return s.therapistRepo.ListActive(dbctx.Context{Ctx: ctx})
}

func (s *therapistService) Get(ctx context.Context, id uuid.UUID) (*types.Therapist, error) {
	th, err := s.therapistRepo.GetActiveByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("load therapist: %w", err)
	}
	if th == nil {
		return nil, apierr.NotFound("therapist")
	}
	return th, nil
}

func (s *therapistService) Types() []string {
	return append([]string(nil), domaintherapist.Types...)
}

func (s *therapistService) Specializations() []string {
	return append([]string(nil), domaintherapist.Specializations...)
}
