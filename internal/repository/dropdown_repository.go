package repository

import (
	"context"
	"errors"

	"github.com/abyansyah052/deploytps/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DropdownRepository owns the dropdown_options taxonomy table.
type DropdownRepository struct {
	db *gorm.DB
}

func NewDropdownRepository(db *gorm.DB) *DropdownRepository {
	return &DropdownRepository{db: db}
}

// defaultOptions is the fixed seed set applied on first use.
var defaultOptions = []entity.DropdownOption{
	{Type: entity.DropdownDivisions, Value: "RTG"},
	{Type: entity.DropdownDivisions, Value: "CC"},
	{Type: entity.DropdownDivisions, Value: "ME"},
	{Type: entity.DropdownDivisions, Value: "LAIN"},
	{Type: entity.DropdownStoreRooms, Value: "Store Room A"},
	{Type: entity.DropdownStoreRooms, Value: "Store Room B"},
	{Type: entity.DropdownStoreRooms, Value: "Store Room C"},
	{Type: entity.DropdownUnitsOfMeasure, Value: "PCS"},
	{Type: entity.DropdownUnitsOfMeasure, Value: "KG"},
	{Type: entity.DropdownUnitsOfMeasure, Value: "LITER"},
	{Type: entity.DropdownUnitsOfMeasure, Value: "METER"},
	{Type: entity.DropdownUnitsOfMeasure, Value: "SET"},
	{Type: entity.DropdownSystemLocations, Value: "Engine Room"},
	{Type: entity.DropdownSystemLocations, Value: "Control Room"},
	{Type: entity.DropdownSystemLocations, Value: "Hydraulic System"},
	{Type: entity.DropdownPhysicalLocations, Value: "Front"},
	{Type: entity.DropdownPhysicalLocations, Value: "Rear"},
	{Type: entity.DropdownPhysicalLocations, Value: "Left Side"},
	{Type: entity.DropdownPhysicalLocations, Value: "Right Side"},
	{Type: entity.DropdownMachinePlacements, Value: "Engine Compartment"},
	{Type: entity.DropdownMachinePlacements, Value: "Control Panel"},
	{Type: entity.DropdownMachinePlacements, Value: "Cabin Area"},
	{Type: entity.DropdownSubsystemPlacements, Value: "Primary System"},
	{Type: entity.DropdownSubsystemPlacements, Value: "Secondary System"},
	{Type: entity.DropdownSubsystemPlacements, Value: "Backup System"},
	{Type: entity.DropdownMaterialStatus, Value: "ACTIVE"},
	{Type: entity.DropdownMaterialStatus, Value: "INACTIVE"},
	{Type: entity.DropdownMaterialStatus, Value: "AVAILABLE"},
	{Type: entity.DropdownMaterialStatus, Value: "NOT AVAILABLE"},
	{Type: entity.DropdownMachineNumbers, Value: "RTG-001", Division: "RTG"},
	{Type: entity.DropdownMachineNumbers, Value: "RTG-002", Division: "RTG"},
	{Type: entity.DropdownMachineNumbers, Value: "CC-001", Division: "CC"},
	{Type: entity.DropdownMachineNumbers, Value: "CC-002", Division: "CC"},
	{Type: entity.DropdownMachineNumbers, Value: "ME-001", Division: "ME"},
	{Type: entity.DropdownMachineNumbers, Value: "ME-002", Division: "ME"},
}

// materialSourceColumns maps taxonomy types to the materials columns whose
// distinct values backfill them. Fixed list, never user input.
var materialSourceColumns = []struct {
	Type   string
	Column string
}{
	{entity.DropdownDivisions, "jenisnya"},
	{entity.DropdownStoreRooms, "storeroom"},
	{entity.DropdownUnitsOfMeasure, "base_unit_of_measure"},
	{entity.DropdownMaterialStatus, "status"},
	{entity.DropdownSystemLocations, "lokasi_sistem"},
	{entity.DropdownPhysicalLocations, "lokasi_fisik"},
	{entity.DropdownMachinePlacements, "penempatan_pada_alat"},
	{entity.DropdownSubsystemPlacements, "deskripsi_penempatan"},
}

// SeedDefaults inserts the fixed default set, ignoring rows that already
// exist.
func (r *DropdownRepository) SeedDefaults(ctx context.Context) error {
	options := make([]entity.DropdownOption, len(defaultOptions))
	copy(options, defaultOptions)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&options).Error
}

// SyncFromMaterials backfills taxonomies from values already present in
// the materials table, so imported data shows up in the filters.
func (r *DropdownRepository) SyncFromMaterials(ctx context.Context, materials *MaterialRepository) error {
	for _, src := range materialSourceColumns {
		values, err := materials.DistinctValues(ctx, src.Column)
		if err != nil {
			return err
		}
		for _, v := range values {
			option := entity.DropdownOption{Type: src.Type, Value: v}
			err := r.db.WithContext(ctx).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&option).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// ListAll returns every taxonomy entry ordered for grouped display.
func (r *DropdownRepository) ListAll(ctx context.Context) ([]entity.DropdownOption, error) {
	var options []entity.DropdownOption
	err := r.db.WithContext(ctx).
		Order("type, division, value").
		Find(&options).Error
	return options, err
}

// Create adds one taxonomy entry; duplicates are a conflict, not a no-op.
func (r *DropdownRepository) Create(ctx context.Context, option *entity.DropdownOption) error {
	err := r.db.WithContext(ctx).Create(option).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// Delete removes one taxonomy entry by its natural key.
func (r *DropdownRepository) Delete(ctx context.Context, optionType, value, division string) error {
	result := r.db.WithContext(ctx).
		Where("type = ? AND value = ? AND division = ?", optionType, value, division).
		Delete(&entity.DropdownOption{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
