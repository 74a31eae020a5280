package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

type FuelRepository struct {
	db *gorm.DB
}

func NewFuelRepository(db *gorm.DB) *FuelRepository {
	return &FuelRepository{db: db}
}

func (r *FuelRepository) InsertBatch(ctx context.Context, records []model.FuelRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

func (r *FuelRepository) ListContentHashes(ctx context.Context) ([]string, error) {
	var hashes []string
	err := r.db.WithContext(ctx).
		Model(&model.FuelRecord{}).
		Pluck("content_hash", &hashes).Error
	return hashes, err
}

// ListPage returns one page of fuel records matching the filter, ordered by
// insertion so repeated pagination walks the table exactly once.
func (r *FuelRepository) ListPage(ctx context.Context, filter FactFilter, offset, limit int) ([]model.FuelRecord, error) {
	query := r.db.WithContext(ctx).Model(&model.FuelRecord{})
	if filter.Plate != nil {
		query = query.Where("plate = ?", *filter.Plate)
	}
	if filter.DateFrom != nil {
		query = query.Where("transaction_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("transaction_date <= ?", *filter.DateTo)
	}

	var records []model.FuelRecord
	err := query.Order("created_at, id").Offset(offset).Limit(limit).Find(&records).Error
	return records, err
}

func (r *FuelRepository) DistinctPlates(ctx context.Context) ([]string, error) {
	var plates []string
	err := r.db.WithContext(ctx).
		Model(&model.FuelRecord{}).
		Where("plate <> ''").
		Distinct().
		Pluck("plate", &plates).Error
	return plates, err
}

func (r *FuelRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FuelRecord{}).Count(&count).Error
	return count, err
}

// Totals returns fleet-wide fuel liters and fuel cost.
func (r *FuelRepository) Totals(ctx context.Context) (float64, float64, error) {
	var totals struct {
		Fuel float64
		Cost float64
	}
	err := r.db.WithContext(ctx).
		Model(&model.FuelRecord{}).
		Select("COALESCE(SUM(fuel_amount), 0) AS fuel, COALESCE(SUM(line_total), 0) AS cost").
		Scan(&totals).Error
	return totals.Fuel, totals.Cost, err
}
