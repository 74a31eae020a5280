package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"fleet-telemetry-service/internal/model"
	"fleet-telemetry-service/internal/repository"
)

// AnalysisService joins fuel, weight and tracking facts by plate into
// per-vehicle efficiency metrics.
type AnalysisService struct {
	fuel     FuelStore
	weight   WeightStore
	vehicles VehicleStore
	distance *DistanceService
	log      zerolog.Logger
}

func NewAnalysisService(fuel FuelStore, weight WeightStore, vehicles VehicleStore, distance *DistanceService, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		fuel:     fuel,
		weight:   weight,
		vehicles: vehicles,
		distance: distance,
		log:      log,
	}
}

type AnalysisInput struct {
	DateFrom    *string
	DateTo      *string
	Plate       *string
	VehicleType model.VehicleType
}

// VehicleMetrics is the per-plate aggregation output. Ratios are nil when
// their denominator is zero; they are never a division fault. Nothing here
// is persisted.
type VehicleMetrics struct {
	Plate         string   `json:"plate"`
	TotalFuel     float64  `json:"total_fuel"`
	TotalDistance float64  `json:"total_distance"`
	AverageFuel   float64  `json:"average_fuel"`
	TripCount     int      `json:"trip_count"`
	KGTotal       float64  `json:"kg_total"`
	KGTrips       int      `json:"kg_trips"`
	M2Total       float64  `json:"m2_total"`
	M2Trips       int      `json:"m2_trips"`
	M3Total       float64  `json:"m3_total"`
	M3Trips       int      `json:"m3_trips"`
	AdetTotal     float64  `json:"adet_total"`
	AdetTrips     int      `json:"adet_trips"`
	MTTotal       float64  `json:"mt_total"`
	MTTrips       int      `json:"mt_trips"`
	KMPerLiter    *float64 `json:"km_per_liter"`
	KGPerLiter    *float64 `json:"kg_per_liter"`
}

type AnalysisResult struct {
	Vehicles      []VehicleMetrics `json:"vehicles"`
	TotalFuel     float64          `json:"total_fuel"`
	TotalDistance float64          `json:"total_distance"`
	VehicleCount  int              `json:"vehicle_count"`
}

// cargoBuckets accumulates weighbridge amounts per measurement unit.
type cargoBuckets struct {
	kg, m2, m3, adet, mt                          float64
	kgTrips, m2Trips, m3Trips, adetTrips, mtTrips int
}

// VehicleEfficiency computes per-vehicle metrics for the active vehicles of
// the requested category, optionally narrowed to a date range and a single
// plate. Plates with no matching fuel rows are excluded entirely; output
// keeps the order plates are first seen in the fuel scan.
func (s *AnalysisService) VehicleEfficiency(ctx context.Context, input AnalysisInput) (*AnalysisResult, error) {
	if !input.VehicleType.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, input.VehicleType)
	}

	memberPlates, err := s.vehicles.ListActivePlatesByType(ctx, input.VehicleType)
	if err != nil {
		return nil, err
	}
	members := make(map[string]struct{}, len(memberPlates))
	for _, plate := range memberPlates {
		members[plate] = struct{}{}
	}

	result := &AnalysisResult{Vehicles: []VehicleMetrics{}}
	if len(members) == 0 {
		return result, nil
	}

	// Fuel and weight rows are filtered on their own date columns; a fuel
	// transaction date and a weighbridge date are distinct semantics.
	fuelRows := fetchAll(ctx, s.log, "fuel_records", s.fuel,
		repository.FactFilter{DateFrom: input.DateFrom, DateTo: input.DateTo})
	weightRows := fetchAll(ctx, s.log, "weight_records", s.weight,
		repository.FactFilter{DateFrom: input.DateFrom, DateTo: input.DateTo})

	type fuelAgg struct {
		total float64
		trips int
	}
	fuelByPlate := make(map[string]*fuelAgg)
	var plateOrder []string
	for _, row := range fuelRows {
		if row.Plate == "" || row.FuelAmount <= 0 {
			continue
		}
		if !s.inScope(row.Plate, members, input.Plate) {
			continue
		}
		agg, seen := fuelByPlate[row.Plate]
		if !seen {
			agg = &fuelAgg{}
			fuelByPlate[row.Plate] = agg
			plateOrder = append(plateOrder, row.Plate)
		}
		agg.total += row.FuelAmount
		agg.trips++
	}

	cargoByPlate := make(map[string]*cargoBuckets)
	for _, row := range weightRows {
		if row.Plate == "" || !s.inScope(row.Plate, members, input.Plate) {
			continue
		}
		buckets, seen := cargoByPlate[row.Plate]
		if !seen {
			buckets = &cargoBuckets{}
			cargoByPlate[row.Plate] = buckets
		}
		buckets.add(row)
	}

	for _, plate := range plateOrder {
		agg := fuelByPlate[plate]
		distance := s.distance.RealKM(ctx, plate, input.DateFrom, input.DateTo)

		metrics := VehicleMetrics{
			Plate:         plate,
			TotalFuel:     round2(agg.total),
			TotalDistance: round2(distance),
			AverageFuel:   round2(agg.total / float64(agg.trips)),
			TripCount:     agg.trips,
		}
		if buckets := cargoByPlate[plate]; buckets != nil {
			metrics.KGTotal = round2(buckets.kg)
			metrics.KGTrips = buckets.kgTrips
			metrics.M2Total = round2(buckets.m2)
			metrics.M2Trips = buckets.m2Trips
			metrics.M3Total = round2(buckets.m3)
			metrics.M3Trips = buckets.m3Trips
			metrics.AdetTotal = round2(buckets.adet)
			metrics.AdetTrips = buckets.adetTrips
			metrics.MTTotal = round2(buckets.mt)
			metrics.MTTrips = buckets.mtTrips
		}
		if agg.total > 0 {
			metrics.KMPerLiter = ptr(round2(distance / agg.total))
			if metrics.KGTotal > 0 {
				metrics.KGPerLiter = ptr(round2(metrics.KGTotal / agg.total))
			}
		}

		result.Vehicles = append(result.Vehicles, metrics)
		result.TotalFuel += agg.total
		result.TotalDistance += distance
	}

	result.TotalFuel = round2(result.TotalFuel)
	result.TotalDistance = round2(result.TotalDistance)
	result.VehicleCount = len(result.Vehicles)
	return result, nil
}

func (s *AnalysisService) inScope(plate string, members map[string]struct{}, plateFilter *string) bool {
	if _, ok := members[plate]; !ok {
		return false
	}
	if plateFilter != nil && plate != *plateFilter {
		return false
	}
	return true
}

// add routes one weighbridge row into the unit buckets. The net weight
// always feeds the KG bucket, TON variants converted to kilograms; the
// sheet's own quantity feeds the other buckets by unit substring.
func (b *cargoBuckets) add(row model.WeightRecord) {
	unit := ""
	if row.Unit != nil {
		unit = strings.ToUpper(strings.TrimSpace(*row.Unit))
	}

	if row.NetWeight > 0 {
		kg := row.NetWeight
		if strings.Contains(unit, "TON") {
			kg *= 1000
		}
		b.kg += kg
		b.kgTrips++
	}

	if row.Quantity == nil || *row.Quantity <= 0 {
		return
	}
	quantity := *row.Quantity
	switch {
	case strings.Contains(unit, "M2"), strings.Contains(unit, "M²"):
		b.m2 += quantity
		b.m2Trips++
	case strings.Contains(unit, "M3"), strings.Contains(unit, "M³"):
		b.m3 += quantity
		b.m3Trips++
	case strings.Contains(unit, "ADET"), strings.Contains(unit, "AD"):
		b.adet += quantity
		b.adetTrips++
	case strings.Contains(unit, "MT"), strings.Contains(unit, "METRE"):
		b.mt += quantity
		b.mtTrips++
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr[T any](v T) *T {
	return &v
}
