package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/repository"
)

var ErrValidation = errors.New("validation failed")

// MaterialService implements the materials list/CRUD operations.
type MaterialService struct {
	materials *repository.MaterialRepository
}

func NewMaterialService(materials *repository.MaterialRepository) *MaterialService {
	return &MaterialService{materials: materials}
}

// Pagination matches the client contract of the list endpoint.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// MaterialListResult is the list endpoint response body.
type MaterialListResult struct {
	Data       []entity.Material `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// List returns one filtered page plus pagination metadata. Pagination
// input is normalized, never rejected.
func (s *MaterialService) List(ctx context.Context, params repository.MaterialListParams) (*MaterialListResult, error) {
	params.Normalize()

	materials, total, err := s.materials.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	if materials == nil {
		materials = []entity.Material{}
	}

	pageSize := int64(params.PageSize)
	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	return &MaterialListResult{
		Data: materials,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.PageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *MaterialService) Get(ctx context.Context, id uint) (*entity.Material, error) {
	return s.materials.FindByID(ctx, id)
}

// CreateMaterialRequest uses the client-facing field names.
type CreateMaterialRequest struct {
	NamaMaterial        string `json:"nama_material"`
	KodeMaterial        string `json:"kode_material"`
	Kategori            string `json:"kategori"`
	Divisi              string `json:"divisi"`
	Satuan              string `json:"satuan"`
	Status              string `json:"status"`
	ImageURL            string `json:"image_url"`
	LokasiSistem        string `json:"lokasi_sistem"`
	LokasiFisik         string `json:"lokasi_fisik"`
	PenempatanPadaAlat  string `json:"penempatan_pada_alat"`
	DeskripsiPenempatan string `json:"deskripsi_penempatan"`
}

func (s *MaterialService) Create(ctx context.Context, req *CreateMaterialRequest) (*entity.Material, error) {
	if strings.TrimSpace(req.NamaMaterial) == "" {
		return nil, fmt.Errorf("%w: material name is required", ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = entity.MaterialStatusActive
	}

	material := &entity.Material{
		NamaMaterial:        req.NamaMaterial,
		KodeMaterial:        req.KodeMaterial,
		Kategori:            req.Kategori,
		Divisi:              req.Divisi,
		Satuan:              req.Satuan,
		Status:              status,
		ImageURL:            req.ImageURL,
		LokasiSistem:        req.LokasiSistem,
		LokasiFisik:         req.LokasiFisik,
		PenempatanPadaAlat:  req.PenempatanPadaAlat,
		DeskripsiPenempatan: req.DeskripsiPenempatan,
	}

	if err := s.materials.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// Update applies a partial update. Field names are translated through the
// mapping table; unknown names are dropped, never interpolated.
func (s *MaterialService) Update(ctx context.Context, id uint, fields map[string]interface{}) (*entity.Material, error) {
	columns := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		if column, ok := entity.UpdateColumn(name); ok {
			columns[column] = value
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	return s.materials.UpdateColumns(ctx, id, columns)
}

// Delete hard-deletes a material and returns the removed record.
func (s *MaterialService) Delete(ctx context.Context, id uint) (*entity.Material, error) {
	return s.materials.Delete(ctx, id)
}
