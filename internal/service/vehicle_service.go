package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"fleet-telemetry-service/internal/model"
	"fleet-telemetry-service/internal/utils"
)

// VehicleService manages the plate registry. Plates are uppercased and
// stripped of separators here, at registry boundaries only; fact records
// keep their plates exactly as uploaded.
type VehicleService struct {
	vehicles VehicleStore
	fuel     FuelStore
	weight   WeightStore
	tracking TrackingStore
	log      zerolog.Logger
}

func NewVehicleService(vehicles VehicleStore, fuel FuelStore, weight WeightStore, tracking TrackingStore, log zerolog.Logger) *VehicleService {
	return &VehicleService{
		vehicles: vehicles,
		fuel:     fuel,
		weight:   weight,
		tracking: tracking,
		log:      log,
	}
}

type AddVehicleInput struct {
	Plate       string
	Owner       model.VehicleOwner
	VehicleType model.VehicleType
	Notes       string
}

func (s *VehicleService) Add(ctx context.Context, input AddVehicleInput) (*model.Vehicle, error) {
	plate := utils.NormalizePlate(input.Plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: empty plate", ErrInvalidInput)
	}
	if !input.Owner.Valid() {
		return nil, fmt.Errorf("%w: unknown owner %q", ErrInvalidInput, input.Owner)
	}
	if !input.VehicleType.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, input.VehicleType)
	}

	existing, err := s.vehicles.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: plate %s already registered", ErrConflict, plate)
	}

	vehicle := &model.Vehicle{
		Plate:       plate,
		Owner:       input.Owner,
		VehicleType: input.VehicleType,
		Active:      true,
		Notes:       input.Notes,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

type UpdateVehicleInput struct {
	Owner       model.VehicleOwner
	VehicleType model.VehicleType
	Active      bool
	Notes       string
}

func (s *VehicleService) Update(ctx context.Context, plate string, input UpdateVehicleInput) (*model.Vehicle, error) {
	if !input.Owner.Valid() {
		return nil, fmt.Errorf("%w: unknown owner %q", ErrInvalidInput, input.Owner)
	}
	if !input.VehicleType.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, input.VehicleType)
	}

	vehicle, err := s.vehicles.GetByPlate(ctx, utils.NormalizePlate(plate))
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}

	vehicle.Owner = input.Owner
	vehicle.VehicleType = input.VehicleType
	vehicle.Active = input.Active
	vehicle.Notes = input.Notes
	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, plate string) error {
	deleted, err := s.vehicles.DeleteByPlate(ctx, utils.NormalizePlate(plate))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *VehicleService) BulkDelete(ctx context.Context, plates []string) (int64, error) {
	if len(plates) == 0 {
		return 0, fmt.Errorf("%w: no plates selected", ErrInvalidInput)
	}
	return s.vehicles.DeleteByPlates(ctx, normalizePlates(plates))
}

func (s *VehicleService) BulkSetOwner(ctx context.Context, plates []string, owner model.VehicleOwner) (int64, error) {
	if len(plates) == 0 {
		return 0, fmt.Errorf("%w: no plates selected", ErrInvalidInput)
	}
	if !owner.Valid() {
		return 0, fmt.Errorf("%w: unknown owner %q", ErrInvalidInput, owner)
	}
	return s.vehicles.UpdateOwner(ctx, normalizePlates(plates), owner)
}

func (s *VehicleService) BulkSetActive(ctx context.Context, plates []string, active bool) (int64, error) {
	if len(plates) == 0 {
		return 0, fmt.Errorf("%w: no plates selected", ErrInvalidInput)
	}
	return s.vehicles.UpdateActive(ctx, normalizePlates(plates), active)
}

type BulkImportResult struct {
	Added int `json:"added"`
	Total int `json:"total"`
}

// BulkImport registers every distinct plate already present in any fact
// table that the registry does not know yet. New entries default to an
// active own cargo vehicle and are reclassified by hand afterwards.
func (s *VehicleService) BulkImport(ctx context.Context) (*BulkImportResult, error) {
	known := make(map[string]struct{})
	existing, err := s.vehicles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range existing {
		known[v.Plate] = struct{}{}
	}

	var pending []model.Vehicle
	for _, source := range []func(context.Context) ([]string, error){
		s.fuel.DistinctPlates,
		s.weight.DistinctPlates,
		s.tracking.DistinctPlates,
	} {
		plates, err := source(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range plates {
			plate := utils.NormalizePlate(raw)
			if plate == "" {
				continue
			}
			if _, ok := known[plate]; ok {
				continue
			}
			known[plate] = struct{}{}
			pending = append(pending, model.Vehicle{
				Plate:       plate,
				Owner:       model.VehicleOwnerOwn,
				VehicleType: model.VehicleTypeCargo,
				Active:      true,
			})
		}
	}

	if err := s.vehicles.InsertBatch(ctx, pending); err != nil {
		return nil, err
	}
	return &BulkImportResult{Added: len(pending), Total: len(known)}, nil
}

type VehicleListResult struct {
	Vehicles            []model.Vehicle `json:"vehicles"`
	CargoCount          int             `json:"cargo_count"`
	HeavyEquipmentCount int             `json:"heavy_equipment_count"`
	PassengerCount      int             `json:"passenger_count"`
}

func (s *VehicleService) List(ctx context.Context) (*VehicleListResult, error) {
	vehicles, err := s.vehicles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := &VehicleListResult{Vehicles: vehicles}
	for _, v := range vehicles {
		switch v.VehicleType {
		case model.VehicleTypeCargo:
			result.CargoCount++
		case model.VehicleTypeHeavyEquipment:
			result.HeavyEquipmentCount++
		case model.VehicleTypePassenger:
			result.PassengerCount++
		}
	}
	return result, nil
}

// ActivePlates exposes the category membership set for a vehicle type.
func (s *VehicleService) ActivePlates(ctx context.Context, vehicleType model.VehicleType) ([]string, error) {
	if !vehicleType.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, vehicleType)
	}
	return s.vehicles.ListActivePlatesByType(ctx, vehicleType)
}

func normalizePlates(raw []string) []string {
	plates := make([]string, 0, len(raw))
	for _, r := range raw {
		if plate := utils.NormalizePlate(r); plate != "" {
			plates = append(plates, plate)
		}
	}
	return plates
}
