package service

import (
	"context"

	"github.com/rs/zerolog"

	"fleet-telemetry-service/internal/utils"
)

// StatsService collects the dashboard counters. Individual failures are
// logged and reported as zero so the dashboard renders with whatever is
// reachable.
type StatsService struct {
	fuel     FuelStore
	weight   WeightStore
	tracking TrackingStore
	log      zerolog.Logger
}

func NewStatsService(fuel FuelStore, weight WeightStore, tracking TrackingStore, log zerolog.Logger) *StatsService {
	return &StatsService{
		fuel:     fuel,
		weight:   weight,
		tracking: tracking,
		log:      log,
	}
}

type DatabaseStats struct {
	FuelCount     int64   `json:"fuel_count"`
	WeightCount   int64   `json:"weight_count"`
	TrackingCount int64   `json:"tracking_count"`
	TotalRecords  int64   `json:"total_records"`
	PlateCount    int     `json:"plate_count"`
	TotalFuel     float64 `json:"total_fuel"`
	TotalFuelCost float64 `json:"total_fuel_cost"`
}

func (s *StatsService) Collect(ctx context.Context) *DatabaseStats {
	stats := &DatabaseStats{}

	stats.FuelCount = s.count(ctx, "fuel_records", s.fuel.Count)
	stats.WeightCount = s.count(ctx, "weight_records", s.weight.Count)
	stats.TrackingCount = s.count(ctx, "tracking_segments", s.tracking.Count)
	stats.TotalRecords = stats.FuelCount + stats.WeightCount + stats.TrackingCount

	fuel, cost, err := s.fuel.Totals(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fuel totals failed")
	} else {
		stats.TotalFuel = round2(fuel)
		stats.TotalFuelCost = round2(cost)
	}

	plates := make(map[string]struct{})
	for table, source := range map[string]func(context.Context) ([]string, error){
		"fuel_records":      s.fuel.DistinctPlates,
		"weight_records":    s.weight.DistinctPlates,
		"tracking_segments": s.tracking.DistinctPlates,
	} {
		list, err := source(ctx)
		if err != nil {
			s.log.Error().Err(err).Str("table", table).Msg("distinct plate fetch failed")
			continue
		}
		for _, raw := range list {
			if plate := utils.NormalizePlate(raw); plate != "" {
				plates[plate] = struct{}{}
			}
		}
	}
	stats.PlateCount = len(plates)

	return stats
}

func (s *StatsService) count(ctx context.Context, table string, fn func(context.Context) (int64, error)) int64 {
	n, err := fn(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("table", table).Msg("count failed")
		return 0
	}
	return n
}
