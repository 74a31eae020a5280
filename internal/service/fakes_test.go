package service

import (
	"context"

	"fleet-telemetry-service/internal/model"
	"fleet-telemetry-service/internal/repository"
)

// In-memory store fakes. They honor FactFilter the same way the gorm
// repositories do: plate equality plus inclusive bounds on the table's own
// date column.

func pageSlice[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

func matchDate(date *string, from, to *string) bool {
	if from != nil && (date == nil || *date < *from) {
		return false
	}
	if to != nil && (date == nil || *date > *to) {
		return false
	}
	return true
}

type fakeFuelStore struct {
	rows        []model.FuelRecord
	hashes      []string
	hashErr     error
	pageErr     error
	insertCalls [][]model.FuelRecord
	insertErrOn map[int]error
	plates      []string
	platesErr   error
	countErr    error
	totalFuel   float64
	totalCost   float64
}

func (f *fakeFuelStore) InsertBatch(ctx context.Context, records []model.FuelRecord) error {
	f.insertCalls = append(f.insertCalls, records)
	if err := f.insertErrOn[len(f.insertCalls)]; err != nil {
		return err
	}
	f.rows = append(f.rows, records...)
	return nil
}

func (f *fakeFuelStore) ListContentHashes(ctx context.Context) ([]string, error) {
	return f.hashes, f.hashErr
}

func (f *fakeFuelStore) ListPage(ctx context.Context, filter repository.FactFilter, offset, limit int) ([]model.FuelRecord, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	var matched []model.FuelRecord
	for _, r := range f.rows {
		if filter.Plate != nil && r.Plate != *filter.Plate {
			continue
		}
		if !matchDate(r.TransactionDate, filter.DateFrom, filter.DateTo) {
			continue
		}
		matched = append(matched, r)
	}
	return pageSlice(matched, offset, limit), nil
}

func (f *fakeFuelStore) DistinctPlates(ctx context.Context) ([]string, error) {
	return f.plates, f.platesErr
}

func (f *fakeFuelStore) Count(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.rows)), nil
}

func (f *fakeFuelStore) Totals(ctx context.Context) (float64, float64, error) {
	return f.totalFuel, f.totalCost, nil
}

type fakeWeightStore struct {
	rows        []model.WeightRecord
	hashes      []string
	hashErr     error
	insertCalls [][]model.WeightRecord
	plates      []string
}

func (f *fakeWeightStore) InsertBatch(ctx context.Context, records []model.WeightRecord) error {
	f.insertCalls = append(f.insertCalls, records)
	f.rows = append(f.rows, records...)
	return nil
}

func (f *fakeWeightStore) ListContentHashes(ctx context.Context) ([]string, error) {
	return f.hashes, f.hashErr
}

func (f *fakeWeightStore) ListPage(ctx context.Context, filter repository.FactFilter, offset, limit int) ([]model.WeightRecord, error) {
	var matched []model.WeightRecord
	for _, r := range f.rows {
		if filter.Plate != nil && r.Plate != *filter.Plate {
			continue
		}
		if !matchDate(r.Date, filter.DateFrom, filter.DateTo) {
			continue
		}
		matched = append(matched, r)
	}
	return pageSlice(matched, offset, limit), nil
}

func (f *fakeWeightStore) DistinctPlates(ctx context.Context) ([]string, error) {
	return f.plates, nil
}

func (f *fakeWeightStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeTrackingStore struct {
	rows        []model.TrackingSegment
	hashes      []string
	hashErr     error
	insertCalls [][]model.TrackingSegment
	plates      []string
}

func (f *fakeTrackingStore) InsertBatch(ctx context.Context, records []model.TrackingSegment) error {
	f.insertCalls = append(f.insertCalls, records)
	f.rows = append(f.rows, records...)
	return nil
}

func (f *fakeTrackingStore) ListContentHashes(ctx context.Context) ([]string, error) {
	return f.hashes, f.hashErr
}

func (f *fakeTrackingStore) ListPage(ctx context.Context, filter repository.FactFilter, offset, limit int) ([]model.TrackingSegment, error) {
	var matched []model.TrackingSegment
	for _, r := range f.rows {
		if filter.Plate != nil && r.Plate != *filter.Plate {
			continue
		}
		if !matchDate(r.Date, filter.DateFrom, filter.DateTo) {
			continue
		}
		matched = append(matched, r)
	}
	return pageSlice(matched, offset, limit), nil
}

func (f *fakeTrackingStore) DistinctPlates(ctx context.Context) ([]string, error) {
	return f.plates, nil
}

func (f *fakeTrackingStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeVehicleStore struct {
	vehicles []model.Vehicle
}

func (f *fakeVehicleStore) Create(ctx context.Context, vehicle *model.Vehicle) error {
	f.vehicles = append(f.vehicles, *vehicle)
	return nil
}

func (f *fakeVehicleStore) InsertBatch(ctx context.Context, vehicles []model.Vehicle) error {
	f.vehicles = append(f.vehicles, vehicles...)
	return nil
}

func (f *fakeVehicleStore) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	for i := range f.vehicles {
		if f.vehicles[i].Plate == plate {
			v := f.vehicles[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (f *fakeVehicleStore) Update(ctx context.Context, vehicle *model.Vehicle) error {
	for i := range f.vehicles {
		if f.vehicles[i].Plate == vehicle.Plate {
			f.vehicles[i] = *vehicle
			return nil
		}
	}
	f.vehicles = append(f.vehicles, *vehicle)
	return nil
}

func (f *fakeVehicleStore) DeleteByPlate(ctx context.Context, plate string) (int64, error) {
	return f.DeleteByPlates(ctx, []string{plate})
}

func (f *fakeVehicleStore) DeleteByPlates(ctx context.Context, plates []string) (int64, error) {
	doomed := make(map[string]struct{}, len(plates))
	for _, p := range plates {
		doomed[p] = struct{}{}
	}
	var kept []model.Vehicle
	var deleted int64
	for _, v := range f.vehicles {
		if _, ok := doomed[v.Plate]; ok {
			deleted++
			continue
		}
		kept = append(kept, v)
	}
	f.vehicles = kept
	return deleted, nil
}

func (f *fakeVehicleStore) UpdateOwner(ctx context.Context, plates []string, owner model.VehicleOwner) (int64, error) {
	var updated int64
	for _, p := range plates {
		for i := range f.vehicles {
			if f.vehicles[i].Plate == p {
				f.vehicles[i].Owner = owner
				updated++
			}
		}
	}
	return updated, nil
}

func (f *fakeVehicleStore) UpdateActive(ctx context.Context, plates []string, active bool) (int64, error) {
	var updated int64
	for _, p := range plates {
		for i := range f.vehicles {
			if f.vehicles[i].Plate == p {
				f.vehicles[i].Active = active
				updated++
			}
		}
	}
	return updated, nil
}

func (f *fakeVehicleStore) ListAll(ctx context.Context) ([]model.Vehicle, error) {
	return f.vehicles, nil
}

func (f *fakeVehicleStore) ListActivePlatesByType(ctx context.Context, vehicleType model.VehicleType) ([]string, error) {
	var plates []string
	for _, v := range f.vehicles {
		if v.Active && v.VehicleType == vehicleType {
			plates = append(plates, v.Plate)
		}
	}
	return plates, nil
}
