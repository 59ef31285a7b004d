package therapist

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/mindease/mindease-backend/internal/data/repos/testutil"
	types "github.com/mindease/mindease-backend/internal/domain"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
)

func intPtr(v int) *int { return &v }

func TestTherapistRepoFilters(t *testing.T) {
	// A private database keeps counts exact.
	db := testutil.SQLite(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	repo := NewTherapistRepo(db, testutil.Logger(t))

	testutil.SeedTherapist(t, ctx, db, "Asha", func(th *types.Therapist) {
		th.Type = "Psychologist"
		th.Specializations = []string{"Anxiety", "Depression"}
		th.SessionMode = []string{"Online"}
		th.Location.City, th.Location.State, th.Location.ZipCode = "Mumbai", "Maharashtra", "400001"
		th.Pricing.Min, th.Pricing.Max = 1500, 3000
		th.Rating.Average = 4.8
	})
	testutil.SeedTherapist(t, ctx, db, "Bina", func(th *types.Therapist) {
		th.Type = "Counselor"
		th.Specializations = []string{"Stress Management"}
		th.SessionMode = []string{"In-Person", "Online"}
		th.Location.City, th.Location.State, th.Location.ZipCode = "Pune", "Maharashtra", "411001"
		th.Pricing.Min, th.Pricing.Max = 500, 1200
		th.Rating.Average = 4.8
	})
	testutil.SeedTherapist(t, ctx, db, "Chetan", func(th *types.Therapist) {
		th.Type = "Psychiatrist"
		th.Specializations = []string{"Anxiety"}
		th.SessionMode = []string{"In-Person"}
		th.Location.City, th.Location.State, th.Location.ZipCode = "Bengaluru", "Karnataka", "560001"
		th.Pricing.Min, th.Pricing.Max = 2000, 5000
		th.Rating.Average = 3.9
	})
	inactive := testutil.SeedTherapist(t, ctx, db, "Dev", func(th *types.Therapist) {
		th.Specializations = []string{"Anxiety"}
		th.Rating.Average = 5
		th.IsActive = false
	})

	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"all active by rating then name", Filter{}, []string{"Asha", "Bina", "Chetan"}},
		{"type", Filter{Type: "Counselor"}, []string{"Bina"}},
		{"specialization", Filter{Specialization: "Anxiety"}, []string{"Asha", "Chetan"}},
		{"session mode", Filter{SessionMode: "Online"}, []string{"Asha", "Bina"}},
		{"min price", Filter{MinPrice: intPtr(1500)}, []string{"Asha", "Chetan"}},
		{"max price", Filter{MaxPrice: intPtr(3000)}, []string{"Asha", "Bina"}},
		{"zip code", Filter{ZipCode: "560001"}, []string{"Chetan"}},
		{"location state", Filter{Location: "maha"}, []string{"Asha", "Bina"}},
		{"location city", Filter{Location: "BENGAL"}, []string{"Chetan"}},
		{"zip wins over location", Filter{ZipCode: "411001", Location: "Karnataka"}, []string{"Bina"}},
		{"combined", Filter{Specialization: "Anxiety", Location: "Maharashtra"}, []string{"Asha"}},
		{"no match", Filter{Type: "Trauma Therapist"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.Find(dbc, tc.f, 0, 50)
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d rows, want %v", len(got), tc.want)
			}
			for i := range got {
				if got[i].Name != tc.want[i] {
					t.Fatalf("row %d = %q, want %q", i, got[i].Name, tc.want[i])
				}
			}
			n, err := repo.Count(dbc, tc.f)
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			if n != int64(len(tc.want)) {
				t.Fatalf("Count = %d, want %d", n, len(tc.want))
			}
		})
	}

	page2, err := repo.Find(dbc, Filter{}, 2, 2)
	if err != nil {
		t.Fatalf("Find page 2: %v", err)
	}
	if len(page2) != 1 || page2[0].Name != "Chetan" {
		t.Fatalf("unexpected second page: %+v", page2)
	}

	got, err := repo.GetActiveByID(dbc, inactive.ID)
	if err != nil || got != nil {
		t.Fatalf("inactive therapist should be hidden: %v, %v", got, err)
	}
	all, err := repo.ListActive(dbc)
	if err != nil || len(all) != 3 {
		t.Fatalf("ListActive = %d rows, err=%v", len(all), err)
	}
}

func TestTherapistUpsertByEmailKeepsID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewTherapistRepo(db, testutil.Logger(t))

	email := "upsert-" + uuid.NewString()[:8] + "@clinic.test"
	first := &types.Therapist{Name: "Old", Email: email, Phone: "1", Type: "Psychologist", LicenseNumber: "L1", IsActive: true}
	first.Pricing.Min, first.Pricing.Max = 100, 200
	if err := repo.UpsertByEmail(dbc, []*types.Therapist{first}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := &types.Therapist{Name: "New", Email: email, Phone: "2", Type: "Counselor", LicenseNumber: "L1", IsActive: true}
	second.Pricing.Min, second.Pricing.Max = 300, 400
	if err := repo.UpsertByEmail(dbc, []*types.Therapist{second}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var rows []types.Therapist
	if err := tx.Where("email = ?", email).Find(&rows).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single row, got %d", len(rows))
	}
	if rows[0].ID != first.ID || rows[0].Name != "New" || rows[0].Pricing.Min != 300 {
		t.Fatalf("upsert did not update in place: %+v", rows[0])
	}

	if err := repo.UpsertByEmail(dbc, []*types.Therapist{{Name: "x"}}); err == nil {
		t.Fatalf("missing email should be rejected")
	}
}
