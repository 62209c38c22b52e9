package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Repositories bundles all data-access objects.
type Repositories struct {
	Material *MaterialRepository
	Dropdown *DropdownRepository
	User     *UserRepository
	Sop      *SopRepository
}

// NewRepositories creates the repository set.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Material: NewMaterialRepository(db),
		Dropdown: NewDropdownRepository(db),
		User:     NewUserRepository(db),
		Sop:      NewSopRepository(db),
	}
}
