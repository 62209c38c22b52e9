package service

import (
	"context"
	"testing"

	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/repository"
	"github.com/abyansyah052/deploytps/internal/testutil"
)

func TestGetAllGroupsTaxonomies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewDropdownService(repos.Dropdown, repos.Material)

	testutil.SeedMaterial(t, db, &entity.Material{
		KodeMaterial: "SAP-701",
		NamaMaterial: "SPREADER CABLE",
		Divisi:       entity.DivisionRTG,
		Kategori:     "GUDANG TIMUR",
	})

	result, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}

	if len(result.Divisions) < 4 {
		t.Errorf("divisions = %v, want at least the default four", result.Divisions)
	}

	found := false
	for _, s := range result.StoreRooms {
		if s == "GUDANG TIMUR" {
			found = true
		}
	}
	if !found {
		t.Errorf("store_rooms missing value synced from materials: %v", result.StoreRooms)
	}

	for _, division := range []string{"RTG", "CC", "ME", "LAIN"} {
		if result.MachineNumbers[division] == nil {
			t.Errorf("machine_numbers[%s] must be an empty slice, not nil", division)
		}
	}
}

func TestGetAllRetriesFailedSeeding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewDropdownService(repos.Dropdown, repos.Material)

	// A caller abandoning the first read must not poison later reads.
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.GetAll(canceled); err == nil {
		t.Fatal("GetAll with canceled context should fail")
	}

	result, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll after failed seed: %v", err)
	}
	if len(result.Divisions) == 0 {
		t.Error("seeding did not recover on retry")
	}
}
