package service

import (
	"context"

	"fleet-telemetry-service/internal/model"
	"fleet-telemetry-service/internal/repository"
)

// Store contracts the services run against. The gorm repositories satisfy
// them; tests substitute in-memory fakes.

type FuelStore interface {
	InsertBatch(ctx context.Context, records []model.FuelRecord) error
	ListContentHashes(ctx context.Context) ([]string, error)
	ListPage(ctx context.Context, filter repository.FactFilter, offset, limit int) ([]model.FuelRecord, error)
	DistinctPlates(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Totals(ctx context.Context) (float64, float64, error)
}

type WeightStore interface {
	InsertBatch(ctx context.Context, records []model.WeightRecord) error
	ListContentHashes(ctx context.Context) ([]string, error)
	ListPage(ctx context.Context, filter repository.FactFilter, offset, limit int) ([]model.WeightRecord, error)
	DistinctPlates(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type TrackingStore interface {
	InsertBatch(ctx context.Context, records []model.TrackingSegment) error
	ListContentHashes(ctx context.Context) ([]string, error)
	ListPage(ctx context.Context, filter repository.FactFilter, offset, limit int) ([]model.TrackingSegment, error)
	DistinctPlates(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type VehicleStore interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	InsertBatch(ctx context.Context, vehicles []model.Vehicle) error
	GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	Update(ctx context.Context, vehicle *model.Vehicle) error
	DeleteByPlate(ctx context.Context, plate string) (int64, error)
	DeleteByPlates(ctx context.Context, plates []string) (int64, error)
	UpdateOwner(ctx context.Context, plates []string, owner model.VehicleOwner) (int64, error)
	UpdateActive(ctx context.Context, plates []string, active bool) (int64, error)
	ListAll(ctx context.Context) ([]model.Vehicle, error)
	ListActivePlatesByType(ctx context.Context, vehicleType model.VehicleType) ([]string, error)
}
