package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) InsertBatch(ctx context.Context, vehicles []model.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&vehicles).Error
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	if plate == "" {
		return nil, nil
	}
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&vehicle).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *VehicleRepository) DeleteByPlate(ctx context.Context, plate string) (int64, error) {
	res := r.db.WithContext(ctx).Where("plate = ?", plate).Delete(&model.Vehicle{})
	return res.RowsAffected, res.Error
}

func (r *VehicleRepository) DeleteByPlates(ctx context.Context, plates []string) (int64, error) {
	if len(plates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("plate IN ?", plates).Delete(&model.Vehicle{})
	return res.RowsAffected, res.Error
}

func (r *VehicleRepository) UpdateOwner(ctx context.Context, plates []string, owner model.VehicleOwner) (int64, error) {
	if len(plates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("plate IN ?", plates).
		Update("owner", owner)
	return res.RowsAffected, res.Error
}

func (r *VehicleRepository) UpdateActive(ctx context.Context, plates []string, active bool) (int64, error) {
	if len(plates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("plate IN ?", plates).
		Update("active", active)
	return res.RowsAffected, res.Error
}

func (r *VehicleRepository) ListAll(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Order("plate").Find(&vehicles).Error
	return vehicles, err
}

// ListActivePlatesByType returns the category membership set used to scope
// aggregation.
func (r *VehicleRepository) ListActivePlatesByType(ctx context.Context, vehicleType model.VehicleType) ([]string, error) {
	var plates []string
	err := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("vehicle_type = ? AND active", vehicleType).
		Order("plate").
		Pluck("plate", &plates).Error
	return plates, err
}
