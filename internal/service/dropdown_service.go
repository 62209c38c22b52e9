package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/repository"
)

// DropdownService manages the select-input taxonomies.
type DropdownService struct {
	dropdowns *repository.DropdownRepository
	materials *repository.MaterialRepository

	seedMu sync.Mutex
	seeded bool
}

func NewDropdownService(dropdowns *repository.DropdownRepository, materials *repository.MaterialRepository) *DropdownService {
	return &DropdownService{dropdowns: dropdowns, materials: materials}
}

// DropdownMap is the grouped taxonomy response. Machine numbers are
// keyed per division.
type DropdownMap struct {
	Divisions           []string            `json:"divisions"`
	StoreRooms          []string            `json:"store_rooms"`
	UnitsOfMeasure      []string            `json:"units_of_measure"`
	SystemLocations     []string            `json:"system_locations"`
	PhysicalLocations   []string            `json:"physical_locations"`
	MachinePlacements   []string            `json:"machine_placements"`
	SubsystemPlacements []string            `json:"subsystem_placements"`
	MaterialStatus      []string            `json:"material_status"`
	MachineNumbers      map[string][]string `json:"machine_numbers"`
}

func newDropdownMap() *DropdownMap {
	return &DropdownMap{
		Divisions:           []string{},
		StoreRooms:          []string{},
		UnitsOfMeasure:      []string{},
		SystemLocations:     []string{},
		PhysicalLocations:   []string{},
		MachinePlacements:   []string{},
		SubsystemPlacements: []string{},
		MaterialStatus:      []string{},
		MachineNumbers: map[string][]string{
			entity.DivisionRTG:  {},
			entity.DivisionCC:   {},
			entity.DivisionME:   {},
			entity.DivisionLain: {},
		},
	}
}

// ensureSeeded applies the default set and the distinct-value scan of the
// materials table. Done once per process on success; a failed attempt
// (store down, caller gone mid-seed) is retried on the next read instead
// of latching the error.
func (s *DropdownService) ensureSeeded(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if s.seeded {
		return nil
	}
	if err := s.dropdowns.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed dropdown defaults: %w", err)
	}
	if err := s.dropdowns.SyncFromMaterials(ctx, s.materials); err != nil {
		return fmt.Errorf("sync dropdowns from materials: %w", err)
	}
	s.seeded = true
	return nil
}

// GetAll returns the full taxonomy map, seeding on first use.
func (s *DropdownService) GetAll(ctx context.Context) (*DropdownMap, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	options, err := s.dropdowns.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dropdowns: %w", err)
	}

	result := newDropdownMap()
	for _, opt := range options {
		if opt.Type == entity.DropdownMachineNumbers {
			if _, ok := result.MachineNumbers[opt.Division]; ok {
				result.MachineNumbers[opt.Division] = append(result.MachineNumbers[opt.Division], opt.Value)
			}
			continue
		}
		switch opt.Type {
		case entity.DropdownDivisions:
			result.Divisions = append(result.Divisions, opt.Value)
		case entity.DropdownStoreRooms:
			result.StoreRooms = append(result.StoreRooms, opt.Value)
		case entity.DropdownUnitsOfMeasure:
			result.UnitsOfMeasure = append(result.UnitsOfMeasure, opt.Value)
		case entity.DropdownSystemLocations:
			result.SystemLocations = append(result.SystemLocations, opt.Value)
		case entity.DropdownPhysicalLocations:
			result.PhysicalLocations = append(result.PhysicalLocations, opt.Value)
		case entity.DropdownMachinePlacements:
			result.MachinePlacements = append(result.MachinePlacements, opt.Value)
		case entity.DropdownSubsystemPlacements:
			result.SubsystemPlacements = append(result.SubsystemPlacements, opt.Value)
		case entity.DropdownMaterialStatus:
			result.MaterialStatus = append(result.MaterialStatus, opt.Value)
		}
	}

	return result, nil
}

// Add creates one taxonomy entry. Duplicates surface as ErrConflict.
func (s *DropdownService) Add(ctx context.Context, optionType, value, division string) error {
	if strings.TrimSpace(optionType) == "" || strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: type and value are required", ErrValidation)
	}
	return s.dropdowns.Create(ctx, &entity.DropdownOption{
		Type:     optionType,
		Value:    value,
		Division: division,
	})
}

// Remove deletes one taxonomy entry.
func (s *DropdownService) Remove(ctx context.Context, optionType, value, division string) error {
	if strings.TrimSpace(optionType) == "" || strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: type and value are required", ErrValidation)
	}
	return s.dropdowns.Delete(ctx, optionType, value, division)
}
