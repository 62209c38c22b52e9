package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/repository"
	"github.com/abyansyah052/deploytps/internal/testutil"
)

// buildWorkbook creates an in-memory xlsx with the given rows, header
// first.
func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestImportUpsertsAndSkips(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewMaterialRepository(db)
	svc := NewTransferService(repo)
	ctx := context.Background()

	buf := buildWorkbook(t, [][]string{
		{"Division", "Material SAP", "Material Description", "Unit", "Status"},
		{"RTG", "6000001111", "BEARING SKF 6205", "PCS", "ACTIVE"},
		{"CC", "6000002222", "WIRE ROPE 20MM", "METER", ""},
		{"", "6000003333", "MISSING DIVISION", "PCS", "ACTIVE"},
		{"ME", "", "MISSING SAP CODE", "PCS", "ACTIVE"},
	})

	result, err := svc.Import(ctx, buf, "materials.xlsx")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", result.Skipped)
	}

	// Empty status defaults to ACTIVE.
	m, err := repo.FindByCode(ctx, "6000002222")
	if err != nil {
		t.Fatalf("FindByCode: %v", err)
	}
	if m.Status != entity.MaterialStatusActive {
		t.Errorf("defaulted status = %q", m.Status)
	}

	// Re-import the same code: row count stays flat, values update.
	buf = buildWorkbook(t, [][]string{
		{"Division", "Material SAP", "Material Description", "Unit", "Status"},
		{"RTG", "6000001111", "BEARING SKF 6206", "PCS", "INACTIVE"},
	})
	if _, err := svc.Import(ctx, buf, "materials.xlsx"); err != nil {
		t.Fatalf("re-import: %v", err)
	}

	var total int64
	db.Model(&entity.Material{}).Count(&total)
	if total != 2 {
		t.Errorf("materials count = %d, want 2", total)
	}
	m, _ = repo.FindByCode(ctx, "6000001111")
	if m.NamaMaterial != "BEARING SKF 6206" || m.Status != entity.MaterialStatusInactive {
		t.Errorf("re-import did not update in place: %+v", m)
	}
}

func TestImportRejectsMalformedFiles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewTransferService(repository.NewMaterialRepository(db))
	ctx := context.Background()

	if _, err := svc.Import(ctx, strings.NewReader("whatever"), "materials.csv"); !errors.Is(err, ErrMalformedFile) {
		t.Errorf("csv extension err = %v, want ErrMalformedFile", err)
	}

	if _, err := svc.Import(ctx, strings.NewReader("not a zip archive"), "materials.xlsx"); !errors.Is(err, ErrMalformedFile) {
		t.Errorf("garbage content err = %v, want ErrMalformedFile", err)
	}

	// Headers only, no data rows.
	buf := buildWorkbook(t, [][]string{
		{"Division", "Material SAP", "Material Description"},
	})
	if _, err := svc.Import(ctx, buf, "materials.xlsx"); !errors.Is(err, ErrMalformedFile) {
		t.Errorf("headers-only err = %v, want ErrMalformedFile", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewMaterialRepository(db)
	svc := NewTransferService(repo)
	ctx := context.Background()

	testutil.SeedMaterials(t, db, []entity.Material{
		{KodeMaterial: "SAP-201", NamaMaterial: "GREASE EP2", Divisi: entity.DivisionRTG, Satuan: "KG"},
		{KodeMaterial: "SAP-202", NamaMaterial: "CONTACTOR 3P", Divisi: entity.DivisionME, Satuan: "PC"},
	})

	f, filename, err := svc.Export(ctx, ExportFilter{Division: entity.DivisionRTG})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(filename, "materials_RTG_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("filename = %q", filename)
	}

	rows, err := f.GetRows("Materials")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("exported %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "Division" || rows[0][1] != "Material SAP" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "SAP-201" {
		t.Errorf("data row = %v", rows[1])
	}

	// Unfiltered export names the scope "all".
	_, filename, err = svc.Export(ctx, ExportFilter{})
	if err != nil {
		t.Fatalf("Export all: %v", err)
	}
	if !strings.HasPrefix(filename, "materials_all_") {
		t.Errorf("unfiltered filename = %q", filename)
	}
}

func TestExportEmptyResultStillHasHeader(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewTransferService(repository.NewMaterialRepository(db))

	f, _, err := svc.Export(context.Background(), ExportFilter{Division: "LAIN"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	rows, err := f.GetRows("Materials")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty export has %d rows, want header only", len(rows))
	}
}

func TestTemplateMatchesImportHeaders(t *testing.T) {
	svc := NewTransferService(nil)

	f, err := svc.GenerateTemplate()
	if err != nil {
		t.Fatalf("GenerateTemplate: %v", err)
	}
	rows, err := f.GetRows("Materials")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("template has %d rows, want headers + example", len(rows))
	}
	for i, h := range entity.TransferHeaders() {
		if rows[0][i] != h {
			t.Errorf("template header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}
}
