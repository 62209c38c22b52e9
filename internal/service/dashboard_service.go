package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abyansyah052/deploytps/internal/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

// DashboardService aggregates inventory numbers for the landing page.
// Results are cached in Redis for a short window; material reads and
// writes never touch the cache.
type DashboardService struct {
	materials *repository.MaterialRepository
	rdb       *redis.Client
}

func NewDashboardService(materials *repository.MaterialRepository, rdb *redis.Client) *DashboardService {
	return &DashboardService{materials: materials, rdb: rdb}
}

// DashboardStats is the aggregate payload.
type DashboardStats struct {
	TotalMaterials     int64                  `json:"totalMaterials"`
	ActiveMaterials    int64                  `json:"activeMaterials"`
	InactiveMaterials  int64                  `json:"inactiveMaterials"`
	TopCategories      []repository.ValueCount `json:"topCategories"`
	DivisionCounts     []repository.ValueCount `json:"divisionCounts"`
	StatusDistribution []repository.ValueCount `json:"statusDistribution"`
}

// Stats returns the dashboard aggregates, serving from cache when a
// fresh entry exists.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var stats DashboardStats
			if json.Unmarshal(cached, &stats) == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(stats); err == nil {
			// Cache write failure is not worth failing the request over.
			s.rdb.Set(ctx, statsCacheKey, payload, statsCacheTTL)
		}
	}

	return stats, nil
}

func (s *DashboardService) compute(ctx context.Context) (*DashboardStats, error) {
	totals, err := s.materials.StatusTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("count materials: %w", err)
	}

	categories, err := s.materials.CategoryCounts(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	divisions, err := s.materials.DivisionCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count divisions: %w", err)
	}

	if categories == nil {
		categories = []repository.ValueCount{}
	}
	if divisions == nil {
		divisions = []repository.ValueCount{}
	}

	return &DashboardStats{
		TotalMaterials:    totals.Total,
		ActiveMaterials:   totals.Active,
		InactiveMaterials: totals.Inactive,
		TopCategories:     categories,
		DivisionCounts:    divisions,
		StatusDistribution: []repository.ValueCount{
			{Value: "ACTIVE", Count: totals.Active},
			{Value: "INACTIVE", Count: totals.Inactive},
		},
	}, nil
}
