package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

type WeightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) *WeightRepository {
	return &WeightRepository{db: db}
}

func (r *WeightRepository) InsertBatch(ctx context.Context, records []model.WeightRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

func (r *WeightRepository) ListContentHashes(ctx context.Context) ([]string, error) {
	var hashes []string
	err := r.db.WithContext(ctx).
		Model(&model.WeightRecord{}).
		Pluck("content_hash", &hashes).Error
	return hashes, err
}

func (r *WeightRepository) ListPage(ctx context.Context, filter FactFilter, offset, limit int) ([]model.WeightRecord, error) {
	query := r.db.WithContext(ctx).Model(&model.WeightRecord{})
	if filter.Plate != nil {
		query = query.Where("plate = ?", *filter.Plate)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}

	var records []model.WeightRecord
	err := query.Order("created_at, id").Offset(offset).Limit(limit).Find(&records).Error
	return records, err
}

func (r *WeightRepository) DistinctPlates(ctx context.Context) ([]string, error) {
	var plates []string
	err := r.db.WithContext(ctx).
		Model(&model.WeightRecord{}).
		Where("plate <> ''").
		Distinct().
		Pluck("plate", &plates).Error
	return plates, err
}

func (r *WeightRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WeightRecord{}).Count(&count).Error
	return count, err
}
