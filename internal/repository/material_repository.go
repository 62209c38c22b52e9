package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/abyansyah052/deploytps/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 200
)

// MaterialListParams carries the filter/sort/page vocabulary of the
// materials list. The same predicate path serves the count query, the
// data query, and (minus search/paging) the export query.
type MaterialListParams struct {
	Page      int
	PageSize  int
	Search    string
	Category  string
	Division  string
	Status    string
	SortBy    string
	SortOrder string
}

// Normalize clamps pagination input instead of rejecting it.
func (p *MaterialListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// apply builds the WHERE chain shared by count and data queries.
func (p MaterialListParams) apply(query *gorm.DB) *gorm.DB {
	if search := strings.TrimSpace(p.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("material_description ILIKE ? OR material_sap ILIKE ?", pattern, pattern)
	}
	if p.Category != "" {
		query = query.Where("storeroom = ?", p.Category)
	}
	if p.Division != "" {
		query = query.Where("jenisnya = ?", p.Division)
	}
	if p.Status != "" {
		query = query.Where("status = ?", p.Status)
	}
	return query
}

// orderClause validates the sort input against the field allow-list.
// Unrecognized fields fall back to id, unrecognized orders to DESC.
func (p MaterialListParams) orderClause() string {
	column := entity.SortColumn(p.SortBy)
	direction := "DESC"
	if strings.EqualFold(p.SortOrder, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}

// MaterialRepository owns all materials table access.
type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// List returns one page of materials plus the total match count. Both
// queries go through the same apply() predicate chain.
func (r *MaterialRepository) List(ctx context.Context, p MaterialListParams) ([]entity.Material, int64, error) {
	p.Normalize()

	var materials []entity.Material
	var total int64

	base := p.apply(r.db.WithContext(ctx).Model(&entity.Material{}))

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (p.Page - 1) * p.PageSize
	err := p.apply(r.db.WithContext(ctx).Model(&entity.Material{})).
		Order(p.orderClause()).
		Offset(offset).
		Limit(p.PageSize).
		Find(&materials).Error

	return materials, total, err
}

// FindAllFiltered returns the full result set for export: same filter
// vocabulary minus search and paging, ordered by division then name.
func (r *MaterialRepository) FindAllFiltered(ctx context.Context, p MaterialListParams) ([]entity.Material, error) {
	p.Search = ""
	var materials []entity.Material
	err := p.apply(r.db.WithContext(ctx).Model(&entity.Material{})).
		Order("jenisnya, material_description").
		Find(&materials).Error
	return materials, err
}

func (r *MaterialRepository) FindByID(ctx context.Context, id uint) (*entity.Material, error) {
	var material entity.Material
	err := r.db.WithContext(ctx).First(&material, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

func (r *MaterialRepository) FindByCode(ctx context.Context, code string) (*entity.Material, error) {
	var material entity.Material
	err := r.db.WithContext(ctx).Where("material_sap = ?", code).First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

func (r *MaterialRepository) Create(ctx context.Context, material *entity.Material) error {
	err := r.db.WithContext(ctx).Create(material).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// UpdateColumns applies a partial update of already-validated database
// columns and returns the refreshed record. updated_at is bumped by gorm.
func (r *MaterialRepository) UpdateColumns(ctx context.Context, id uint, columns map[string]interface{}) (*entity.Material, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Material{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MaterialRepository) Delete(ctx context.Context, id uint) (*entity.Material, error) {
	material, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&entity.Material{}, id).Error; err != nil {
		return nil, err
	}
	return material, nil
}

// UpsertBatch inserts the given rows, updating every mapped column on
// material_sap conflicts. The whole batch runs in one transaction: any
// store error rolls back all of it.
func (r *MaterialRepository) UpsertBatch(ctx context.Context, materials []entity.Material) (int, error) {
	if len(materials) == 0 {
		return 0, nil
	}

	updateColumns := make([]string, 0, len(entity.MaterialFields))
	for _, f := range entity.MaterialFields {
		if f.Column != "material_sap" {
			updateColumns = append(updateColumns, f.Column)
		}
	}
	updateColumns = append(updateColumns, "updated_at")

	count := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range materials {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "material_sap"}},
				DoUpdates: clause.AssignmentColumns(updateColumns),
			}).Create(&materials[i]).Error
			if err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DistinctValues returns the non-empty distinct values of one materials
// column. The column name comes from the fixed field mapping table, never
// from user input.
func (r *MaterialRepository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&entity.Material{}).
		Distinct(column).
		Where(column + " IS NOT NULL AND " + column + " <> ''").
		Pluck(column, &values).Error
	return values, err
}
