package service

import (
	"context"

	"github.com/rs/zerolog"

	"fleet-telemetry-service/internal/repository"
)

// DistanceService derives a vehicle's real traveled distance for a period
// from its tracking segments, as opposed to any odometer-delta estimate.
type DistanceService struct {
	tracking TrackingStore
	log      zerolog.Logger
}

func NewDistanceService(tracking TrackingStore, log zerolog.Logger) *DistanceService {
	return &DistanceService{tracking: tracking, log: log}
}

// RealKM sums total_km over the plate's segments whose date falls inside the
// range, both bounds inclusive, open-ended when a bound is missing. Returns
// 0 when nothing matches; never negative.
func (s *DistanceService) RealKM(ctx context.Context, plate string, dateFrom, dateTo *string) float64 {
	filter := repository.FactFilter{
		Plate:    &plate,
		DateFrom: dateFrom,
		DateTo:   dateTo,
	}

	total := 0.0
	for _, segment := range fetchAll(ctx, s.log, "tracking_segments", s.tracking, filter) {
		total += segment.TotalKM
	}
	if total < 0 {
		return 0
	}
	return total
}
