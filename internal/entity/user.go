package entity

import (
	"time"
)

// User is an admin account. The dashboard itself is read-open; mutating
// endpoints require a logged-in user.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:128;not null"`
	Email        string    `json:"email" gorm:"size:128;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"`
	Role         string    `json:"role" gorm:"size:32;not null;default:admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

const RoleAdmin = "admin"
