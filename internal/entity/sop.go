package entity

import (
	"time"
)

// SopDocument is the single SOP/announcement notice shown on the
// dashboard. There is exactly one row; updates replace it in place.
type SopDocument struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:256;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (SopDocument) TableName() string {
	return "sop_documents"
}
