package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ErrMalformedFile marks an upload rejected before touching the store.
var ErrMalformedFile = errors.New("malformed spreadsheet file")

// TransferService moves materials between the store and xlsx files.
type TransferService struct {
	materials *repository.MaterialRepository
}

func NewTransferService(materials *repository.MaterialRepository) *TransferService {
	return &TransferService{materials: materials}
}

// ImportResult reports how an import batch went. Skipped rows failed
// validation; they are not errors and do not abort the batch.
type ImportResult struct {
	Imported int `json:"count"`
	Skipped  int `json:"skipped"`
}

// Import reads an xlsx upload and upserts its rows keyed on the material
// SAP code. The whole batch commits in one transaction.
func (s *TransferService) Import(ctx context.Context, file io.Reader, filename string) (*ImportResult, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return nil, fmt.Errorf("%w: file must be in .xlsx format", ErrMalformedFile)
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: no data rows found", ErrMalformedFile)
	}

	// Resolve recognized headers to field mappings; unknown columns are
	// ignored.
	fieldsByColumn := make(map[int]*entity.MaterialField)
	for i, header := range rows[0] {
		if field, ok := entity.FieldByHeader(strings.TrimSpace(header)); ok {
			fieldsByColumn[i] = field
		}
	}

	result := &ImportResult{}
	var batch []entity.Material

	for _, row := range rows[1:] {
		var material entity.Material
		for i, cell := range row {
			if field, ok := fieldsByColumn[i]; ok {
				field.Assign(&material, strings.TrimSpace(cell))
			}
		}

		if material.Divisi == "" || material.KodeMaterial == "" || material.NamaMaterial == "" {
			result.Skipped++
			continue
		}
		if material.Status == "" {
			material.Status = entity.MaterialStatusActive
		}

		batch = append(batch, material)
	}

	imported, err := s.materials.UpsertBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("import materials: %w", err)
	}
	result.Imported = imported

	return result, nil
}

// ExportFilter is the export vocabulary: the list filters minus search
// and pagination.
type ExportFilter struct {
	Category string
	Division string
	Status   string
}

// Export serializes the full filtered set to an xlsx file. An empty
// result still yields a valid file with the header row.
func (s *TransferService) Export(ctx context.Context, filter ExportFilter) (*excelize.File, string, error) {
	materials, err := s.materials.FindAllFiltered(ctx, repository.MaterialListParams{
		Category: filter.Category,
		Division: filter.Division,
		Status:   filter.Status,
	})
	if err != nil {
		return nil, "", fmt.Errorf("export materials: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Materials"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	headers := append(entity.TransferHeaders(), "Created Date")
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx := range materials {
		material := &materials[rowIdx]
		row := rowIdx + 2
		colIdx := 1
		for _, field := range entity.MaterialFields {
			if field.Header == "" {
				continue
			}
			col, _ := excelize.ColumnNumberToName(colIdx)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), field.Value(material))
			colIdx++
		}
		col, _ := excelize.ColumnNumberToName(colIdx)
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), material.CreatedAt.Format("2006-01-02 15:04"))
	}

	for i, h := range headers {
		width := float64(len(h))
		if width < 15 {
			width = 15
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, width)
	}

	scope := filter.Division
	if scope == "" {
		scope = "all"
	}
	filename := fmt.Sprintf("materials_%s_%s.xlsx", scope, time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// GenerateTemplate builds the import template: headers plus one example
// row.
func (s *TransferService) GenerateTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Materials"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})

	for i, h := range entity.TransferHeaders() {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		f.SetColWidth(sheet, col, col, 20)
	}

	example := []string{
		"RTG", "6000001234", "BEARING SKF 6205", "PCS", "ACTIVE",
		"Engine Room", "Front", "Store Room A", "Engine Compartment",
		"Primary System", "",
	}
	for i, v := range example {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"2", v)
	}

	return f, nil
}
