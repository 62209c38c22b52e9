package entity

import (
	"time"
)

// DropdownOption is one taxonomy entry for client select inputs.
// Division is the empty string except for machine_numbers, which are
// scoped per division.
type DropdownOption struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Type      string    `json:"type" gorm:"size:50;not null;uniqueIndex:idx_dropdown_type_value_division"`
	Value     string    `json:"value" gorm:"size:255;not null;uniqueIndex:idx_dropdown_type_value_division"`
	Division  string    `json:"division" gorm:"size:50;not null;default:'';uniqueIndex:idx_dropdown_type_value_division"`
	CreatedAt time.Time `json:"created_at"`
}

func (DropdownOption) TableName() string {
	return "dropdown_options"
}

// Dropdown taxonomy types
const (
	DropdownDivisions           = "divisions"
	DropdownStoreRooms          = "store_rooms"
	DropdownUnitsOfMeasure      = "units_of_measure"
	DropdownSystemLocations     = "system_locations"
	DropdownPhysicalLocations   = "physical_locations"
	DropdownMachinePlacements   = "machine_placements"
	DropdownSubsystemPlacements = "subsystem_placements"
	DropdownMaterialStatus      = "material_status"
	DropdownMachineNumbers      = "machine_numbers"
)
