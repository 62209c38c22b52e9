package entity

import (
	"time"
)

// Material is the central inventory record. Database columns keep the
// legacy SAP-export names; JSON uses the client-facing field names.
type Material struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	KodeMaterial        string    `json:"kode_material" gorm:"column:material_sap;size:64;not null;uniqueIndex"`
	NamaMaterial        string    `json:"nama_material" gorm:"column:material_description;size:256;not null"`
	Kategori            string    `json:"kategori" gorm:"column:storeroom;size:128"`
	Divisi              string    `json:"divisi" gorm:"column:jenisnya;size:32"`
	Satuan              string    `json:"satuan" gorm:"column:base_unit_of_measure;size:32"`
	Status              string    `json:"status" gorm:"size:32;default:ACTIVE"`
	ImageURL            string    `json:"image_url" gorm:"column:image_url;size:512"`
	LokasiSistem        string    `json:"lokasi_sistem" gorm:"size:128"`
	LokasiFisik         string    `json:"lokasi_fisik" gorm:"size:128"`
	PenempatanPadaAlat  string    `json:"penempatan_pada_alat" gorm:"size:256"`
	DeskripsiPenempatan string    `json:"deskripsi_penempatan" gorm:"size:256"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Material) TableName() string {
	return "materials"
}

// Division values
const (
	DivisionRTG  = "RTG"
	DivisionCC   = "CC"
	DivisionME   = "ME"
	DivisionLain = "LAIN"
)

// Material status values
const (
	MaterialStatusActive   = "ACTIVE"
	MaterialStatusInactive = "INACTIVE"
)
