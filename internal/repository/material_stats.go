package repository

import (
	"context"

	"github.com/abyansyah052/deploytps/internal/entity"
)

// ValueCount is one bucket of a grouped aggregate.
type ValueCount struct {
	Value string `json:"name"`
	Count int64  `json:"count"`
}

// StatusTotals are the headline dashboard numbers.
type StatusTotals struct {
	Total    int64
	Active   int64
	Inactive int64
}

// StatusTotals counts all materials and the ACTIVE / non-ACTIVE split in
// a single scan.
func (r *MaterialRepository) StatusTotals(ctx context.Context) (*StatusTotals, error) {
	var totals StatusTotals
	row := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'ACTIVE' THEN 1 END) AS active,
			COUNT(CASE WHEN status <> 'ACTIVE' OR status IS NULL THEN 1 END) AS inactive
		FROM materials
	`).Row()
	if err := row.Scan(&totals.Total, &totals.Active, &totals.Inactive); err != nil {
		return nil, err
	}
	return &totals, nil
}

// CategoryCounts returns the storeroom distribution, largest first.
func (r *MaterialRepository) CategoryCounts(ctx context.Context, limit int) ([]ValueCount, error) {
	var counts []ValueCount
	err := r.db.WithContext(ctx).
		Model(&entity.Material{}).
		Select("storeroom AS value, COUNT(*) AS count").
		Where("storeroom IS NOT NULL AND storeroom <> ''").
		Group("storeroom").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	return counts, err
}

// DivisionCounts returns the per-division distribution, largest first.
func (r *MaterialRepository) DivisionCounts(ctx context.Context) ([]ValueCount, error) {
	var counts []ValueCount
	err := r.db.WithContext(ctx).
		Model(&entity.Material{}).
		Select("jenisnya AS value, COUNT(*) AS count").
		Where("jenisnya IS NOT NULL AND jenisnya <> ''").
		Group("jenisnya").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}
