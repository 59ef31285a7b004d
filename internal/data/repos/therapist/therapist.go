package therapist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mindease/mindease-backend/internal/data/repos/dbquery"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

// Filter narrows a directory search. Zero values are ignored. ZipCode wins
// over Location when both are set.
type Filter struct {
	Type           string
	Specialization string
	SessionMode    string
	MinPrice       *int
	MaxPrice       *int
	ZipCode        string
	Location       string
}

type TherapistRepo interface {
	Find(dbc dbctx.Context, f Filter, offset, limit int) ([]*types.Therapist, error)
	Count(dbc dbctx.Context, f Filter) (int64, error)
	ListActive(dbc dbctx.Context) ([]*types.Therapist, error)
	GetActiveByID(dbc dbctx.Context, id uuid.UUID) (*types.Therapist, error)
	UpsertByEmail(dbc dbctx.Context, rows []*types.Therapist) error
}

type therapistRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTherapistRepo(db *gorm.DB, baseLog *logger.Logger) TherapistRepo {
	return &therapistRepo{db: db, log: baseLog.With("repo", "TherapistRepo")}
}

func (r *therapistRepo) scoped(dbc dbctx.Context, f Filter) *gorm.DB {
	q := dbc.Conn(r.db).Model(&types.Therapist{}).Where("is_active = ?", true)
	if v := strings.TrimSpace(f.Type); v != "" {
		q = q.Where("type = ?", v)
	}
	if v := strings.TrimSpace(f.Specialization); v != "" {
		cond, args := dbquery.JSONArrayContains(q, "specializations", v)
		q = q.Where(cond, args...)
	}
	if v := strings.TrimSpace(f.SessionMode); v != "" {
		cond, args := dbquery.JSONArrayContains(q, "session_mode", v)
		q = q.Where(cond, args...)
	}
	if f.MinPrice != nil {
		q = q.Where("pricing_min >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("pricing_max <= ?", *f.MaxPrice)
	}
	if v := strings.TrimSpace(f.ZipCode); v != "" {
		q = q.Where("location_zip_code = ?", v)
	} else if v := strings.TrimSpace(f.Location); v != "" {
		cityCond, cityArg := dbquery.ContainsFold("location_city", v)
		stateCond, stateArg := dbquery.ContainsFold("location_state", v)
		q = q.Where(r.db.Where(cityCond, cityArg).Or(stateCond, stateArg))
	}
	return q
}

func (r *therapistRepo) Find(dbc dbctx.Context, f Filter, offset, limit int) ([]*types.Therapist, error) {
	if limit <= 0 {
		limit = 10
	}
	out := []*types.Therapist{}
	if err := r.scoped(dbc, f).
		Order("rating_average DESC").
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *therapistRepo) Count(dbc dbctx.Context, f Filter) (int64, error) {
	var n int64
	if err := r.scoped(dbc, f).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *therapistRepo) ListActive(dbc dbctx.Context) ([]*types.Therapist, error) {
	out := []*types.Therapist{}
	if err := dbc.Conn(r.db).
		Where("is_active = ?", true).
		Order("rating_average DESC").
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetActiveByID returns nil, nil for missing and inactive therapists alike.
func (r *therapistRepo) GetActiveByID(dbc dbctx.Context, id uuid.UUID) (*types.Therapist, error) {
	var out types.Therapist
	err := dbc.Conn(r.db).
		Where("id = ? AND is_active = ?", id, true).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertByEmail inserts rows, overwriting the profile of any therapist that
// already holds the same email. IDs of existing rows are kept.
func (r *therapistRepo) UpsertByEmail(dbc dbctx.Context, rows []*types.Therapist) error {
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		if row == nil || strings.TrimSpace(row.Email) == "" {
			return fmt.Errorf("therapist upsert requires email")
		}
		row.Email = strings.ToLower(strings.TrimSpace(row.Email))
	}
	return dbc.Conn(r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "phone", "type", "specializations", "qualifications",
				"session_mode", "languages", "bio", "experience", "license_number",
				"profile_image", "location_address", "location_city", "location_state",
				"location_zip_code", "location_country", "location_lat", "location_lng",
				"pricing_min", "pricing_max", "pricing_currency",
				"rating_average", "rating_count", "verified", "is_active", "updated_at",
			}),
		}).
		Create(&rows).Error
}
