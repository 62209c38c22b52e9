package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/repository"
)

// SopService manages the single SOP/announcement document.
type SopService struct {
	sops *repository.SopRepository
}

func NewSopService(sops *repository.SopRepository) *SopService {
	return &SopService{sops: sops}
}

// Get returns the document, creating a default one on first read so the
// frontend always has something to render.
func (s *SopService) Get(ctx context.Context) (*entity.SopDocument, error) {
	doc, err := s.sops.Get(ctx)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load sop: %w", err)
	}

	doc = &entity.SopDocument{
		Title:   "SOP / Pemberitahuan",
		Content: "Belum ada SOP yang dipublikasikan.",
	}
	if err := s.sops.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("seed sop: %w", err)
	}
	return doc, nil
}

// Update replaces the document's title and content.
func (s *SopService) Update(ctx context.Context, title, content string) (*entity.SopDocument, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrValidation)
	}

	doc, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	doc.Title = title
	doc.Content = content
	if err := s.sops.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save sop: %w", err)
	}
	return doc, nil
}
