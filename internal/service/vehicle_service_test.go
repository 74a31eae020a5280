package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-telemetry-service/internal/model"
)

func newVehicleService(vehicles *fakeVehicleStore, fuel *fakeFuelStore, weight *fakeWeightStore, tracking *fakeTrackingStore) *VehicleService {
	if vehicles == nil {
		vehicles = &fakeVehicleStore{}
	}
	if fuel == nil {
		fuel = &fakeFuelStore{}
	}
	if weight == nil {
		weight = &fakeWeightStore{}
	}
	if tracking == nil {
		tracking = &fakeTrackingStore{}
	}
	return NewVehicleService(vehicles, fuel, weight, tracking, zerolog.Nop())
}

func TestVehicleAdd(t *testing.T) {
	store := &fakeVehicleStore{}
	s := newVehicleService(store, nil, nil, nil)

	vehicle, err := s.Add(context.Background(), AddVehicleInput{
		Plate:       " 34 abc 12 ",
		Owner:       model.VehicleOwnerOwn,
		VehicleType: model.VehicleTypeCargo,
	})
	require.NoError(t, err)
	assert.Equal(t, "34ABC12", vehicle.Plate)
	assert.True(t, vehicle.Active)
	require.Len(t, store.vehicles, 1)
}

func TestVehicleAddConflict(t *testing.T) {
	store := &fakeVehicleStore{vehicles: []model.Vehicle{cargoVehicle("34ABC12")}}
	s := newVehicleService(store, nil, nil, nil)

	_, err := s.Add(context.Background(), AddVehicleInput{
		Plate:       "34-ABC-12",
		Owner:       model.VehicleOwnerOwn,
		VehicleType: model.VehicleTypeCargo,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestVehicleAddValidation(t *testing.T) {
	s := newVehicleService(nil, nil, nil, nil)

	_, err := s.Add(context.Background(), AddVehicleInput{Plate: "  ", Owner: model.VehicleOwnerOwn, VehicleType: model.VehicleTypeCargo})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Add(context.Background(), AddVehicleInput{Plate: "34ABC12", Owner: "LEASED", VehicleType: model.VehicleTypeCargo})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Add(context.Background(), AddVehicleInput{Plate: "34ABC12", Owner: model.VehicleOwnerOwn, VehicleType: "TRACTOR"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVehicleUpdate(t *testing.T) {
	store := &fakeVehicleStore{vehicles: []model.Vehicle{cargoVehicle("34ABC12")}}
	s := newVehicleService(store, nil, nil, nil)

	vehicle, err := s.Update(context.Background(), "34abc12", UpdateVehicleInput{
		Owner:       model.VehicleOwnerSubcontractor,
		VehicleType: model.VehicleTypeHeavyEquipment,
		Active:      false,
		Notes:       "sold to contractor",
	})
	require.NoError(t, err)
	assert.Equal(t, model.VehicleOwnerSubcontractor, vehicle.Owner)
	assert.False(t, vehicle.Active)
	assert.False(t, store.vehicles[0].Active)
}

func TestVehicleUpdateNotFound(t *testing.T) {
	s := newVehicleService(nil, nil, nil, nil)
	_, err := s.Update(context.Background(), "34ABC12", UpdateVehicleInput{
		Owner:       model.VehicleOwnerOwn,
		VehicleType: model.VehicleTypeCargo,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleDelete(t *testing.T) {
	store := &fakeVehicleStore{vehicles: []model.Vehicle{cargoVehicle("34ABC12")}}
	s := newVehicleService(store, nil, nil, nil)

	require.NoError(t, s.Delete(context.Background(), "34 ABC 12"))
	assert.Empty(t, store.vehicles)

	assert.ErrorIs(t, s.Delete(context.Background(), "34ABC12"), ErrNotFound)
}

func TestVehicleBulkOperationsRequirePlates(t *testing.T) {
	s := newVehicleService(nil, nil, nil, nil)

	_, err := s.BulkDelete(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.BulkSetOwner(context.Background(), nil, model.VehicleOwnerOwn)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.BulkSetActive(context.Background(), nil, true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVehicleBulkSetOwner(t *testing.T) {
	store := &fakeVehicleStore{vehicles: []model.Vehicle{
		cargoVehicle("34ABC12"),
		cargoVehicle("06DEF34"),
	}}
	s := newVehicleService(store, nil, nil, nil)

	updated, err := s.BulkSetOwner(context.Background(), []string{"34 abc 12"}, model.VehicleOwnerSubcontractor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
	assert.Equal(t, model.VehicleOwnerSubcontractor, store.vehicles[0].Owner)
	assert.Equal(t, model.VehicleOwnerOwn, store.vehicles[1].Owner)
}

func TestVehicleBulkImport(t *testing.T) {
	store := &fakeVehicleStore{vehicles: []model.Vehicle{cargoVehicle("34ABC12")}}
	fuel := &fakeFuelStore{plates: []string{"34 abc 12", "06 def 34"}}
	weight := &fakeWeightStore{plates: []string{"06DEF34", "35GHI56"}}
	tracking := &fakeTrackingStore{plates: []string{"  "}}
	s := newVehicleService(store, fuel, weight, tracking)

	result, err := s.BulkImport(context.Background())
	require.NoError(t, err)
	// 06DEF34 and 35GHI56 are new; 34ABC12 was already registered and the
	// blank tracking plate is dropped.
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 3, result.Total)
	require.Len(t, store.vehicles, 3)
	for _, v := range store.vehicles[1:] {
		assert.Equal(t, model.VehicleOwnerOwn, v.Owner)
		assert.Equal(t, model.VehicleTypeCargo, v.VehicleType)
		assert.True(t, v.Active)
	}
}

func TestVehicleList(t *testing.T) {
	store := &fakeVehicleStore{vehicles: []model.Vehicle{
		cargoVehicle("34ABC12"),
		{Plate: "07EXC01", Owner: model.VehicleOwnerOwn, VehicleType: model.VehicleTypeHeavyEquipment, Active: true},
		{Plate: "16PAS10", Owner: model.VehicleOwnerSubcontractor, VehicleType: model.VehicleTypePassenger, Active: true},
	}}
	s := newVehicleService(store, nil, nil, nil)

	result, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Vehicles, 3)
	assert.Equal(t, 1, result.CargoCount)
	assert.Equal(t, 1, result.HeavyEquipmentCount)
	assert.Equal(t, 1, result.PassengerCount)
}

func TestVehicleActivePlates(t *testing.T) {
	store := &fakeVehicleStore{vehicles: []model.Vehicle{
		cargoVehicle("34ABC12"),
		{Plate: "06DEF34", Owner: model.VehicleOwnerOwn, VehicleType: model.VehicleTypeCargo, Active: false},
	}}
	s := newVehicleService(store, nil, nil, nil)

	plates, err := s.ActivePlates(context.Background(), model.VehicleTypeCargo)
	require.NoError(t, err)
	assert.Equal(t, []string{"34ABC12"}, plates)

	_, err = s.ActivePlates(context.Background(), "TRACTOR")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
