package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/repository"
)

type distanceTotaler interface {
	TotalsByVehicle(ctx context.Context, vehicleID int64) (repository.DistanceTotals, error)
}

type refuelTotaler interface {
	TotalsByVehicle(ctx context.Context, vehicleID int64) (repository.RefuelTotals, error)
}

// SummaryService computes per-vehicle totals, cached between commits.
type SummaryService struct {
	vehicles  vehicleFinder
	distances distanceTotaler
	refuels   refuelTotaler
	cache     *CacheService
	ttl       time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewSummaryService constructs a SummaryService. cache may be nil.
func NewSummaryService(vehicles vehicleFinder, distances distanceTotaler, refuels refuelTotaler, cache *CacheService, ttl time.Duration, logger *zap.Logger) *SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryService{
		vehicles:  vehicles,
		distances: distances,
		refuels:   refuels,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

func summaryKey(vehicleID int64) string {
	return fmt.Sprintf("vehicle:%d:summary", vehicleID)
}

// Summary returns the totals of one vehicle.
func (s *SummaryService) Summary(ctx context.Context, id int64) (*models.VehicleSummary, error) {
	if _, err := loadVehicle(ctx, s.vehicles, id); err != nil {
		return nil, err
	}

	key := summaryKey(id)
	var cached models.VehicleSummary
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	distances, err := s.distances.TotalsByVehicle(ctx, id)
	if err != nil {
		return nil, internalError(err, "failed to sum distances")
	}
	refuels, err := s.refuels.TotalsByVehicle(ctx, id)
	if err != nil {
		return nil, internalError(err, "failed to sum refuels")
	}

	summary := &models.VehicleSummary{
		VehicleID:       id,
		TotalKilometres: distances.Kilometres,
		DistanceRecords: distances.Records,
		TotalFuel:       refuels.Amount,
		TotalFuelCost:   refuels.Cost,
		RefuelRecords:   refuels.Records,
		GeneratedAt:     s.now().UTC(),
	}
	_ = s.cache.Set(ctx, key, summary, s.ttl)
	return summary, nil
}

// Invalidate drops cached totals of the given vehicles.
func (s *SummaryService) Invalidate(ctx context.Context, vehicleIDs ...int64) {
	if s == nil {
		return
	}
	keys := make([]string, 0, len(vehicleIDs))
	seen := make(map[int64]struct{}, len(vehicleIDs))
	for _, id := range vehicleIDs {
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, summaryKey(id))
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.logger.Warn("failed to invalidate vehicle summary", zap.Int64s("vehicle_ids", vehicleIDs), zap.Error(err))
	}
}

// SummaryInvalidation returns a commit hook dropping the totals of every
// vehicle touched by the mutation.
func SummaryInvalidation[T any](summary *SummaryService, vehicleOf func(*T) int64) CommitHook[T] {
	return func(ctx context.Context, _ MutationContext, before, after *T) {
		var ids []int64
		if before != nil {
			ids = append(ids, vehicleOf(before))
		}
		if after != nil {
			ids = append(ids, vehicleOf(after))
		}
		summary.Invalidate(ctx, ids...)
	}
}
