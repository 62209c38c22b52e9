package service

import (
	"context"
	"testing"

	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/repository"
	"github.com/abyansyah052/deploytps/internal/testutil"
)

func TestDashboardStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewMaterialRepository(db)
	// nil redis client: compute directly, no cache.
	svc := NewDashboardService(repo, nil)

	testutil.SeedMaterials(t, db, []entity.Material{
		{KodeMaterial: "SAP-601", NamaMaterial: "BEARING", Divisi: entity.DivisionRTG, Kategori: "GUDANG A", Status: entity.MaterialStatusActive},
		{KodeMaterial: "SAP-602", NamaMaterial: "OIL", Divisi: entity.DivisionRTG, Kategori: "GUDANG A", Status: entity.MaterialStatusActive},
		{KodeMaterial: "SAP-603", NamaMaterial: "ROPE", Divisi: entity.DivisionCC, Kategori: "GUDANG B", Status: entity.MaterialStatusInactive},
	})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalMaterials != 3 {
		t.Errorf("total = %d, want 3", stats.TotalMaterials)
	}
	if stats.ActiveMaterials != 2 || stats.InactiveMaterials != 1 {
		t.Errorf("active/inactive = %d/%d, want 2/1", stats.ActiveMaterials, stats.InactiveMaterials)
	}

	if len(stats.DivisionCounts) != 2 {
		t.Fatalf("division groups = %d, want 2", len(stats.DivisionCounts))
	}
	byDivision := map[string]int64{}
	for _, d := range stats.DivisionCounts {
		byDivision[d.Value] = d.Count
	}
	if byDivision["RTG"] != 2 || byDivision["CC"] != 1 {
		t.Errorf("division counts = %v", byDivision)
	}

	// Top categories come largest first.
	if len(stats.TopCategories) == 0 || stats.TopCategories[0].Value != "GUDANG A" {
		t.Errorf("top categories = %v", stats.TopCategories)
	}

	if len(stats.StatusDistribution) != 2 {
		t.Errorf("status distribution = %v", stats.StatusDistribution)
	}
}

func TestDashboardStatsEmptyTable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewDashboardService(repository.NewMaterialRepository(db), nil)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalMaterials != 0 {
		t.Errorf("total = %d", stats.TotalMaterials)
	}
	if stats.TopCategories == nil || stats.DivisionCounts == nil {
		t.Error("aggregate slices must be empty, not null")
	}
}
