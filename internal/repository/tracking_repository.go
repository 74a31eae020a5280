package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

type TrackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

func (r *TrackingRepository) InsertBatch(ctx context.Context, records []model.TrackingSegment) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

func (r *TrackingRepository) ListContentHashes(ctx context.Context) ([]string, error) {
	var hashes []string
	err := r.db.WithContext(ctx).
		Model(&model.TrackingSegment{}).
		Pluck("content_hash", &hashes).Error
	return hashes, err
}

func (r *TrackingRepository) ListPage(ctx context.Context, filter FactFilter, offset, limit int) ([]model.TrackingSegment, error) {
	query := r.db.WithContext(ctx).Model(&model.TrackingSegment{})
	if filter.Plate != nil {
		query = query.Where("plate = ?", *filter.Plate)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}

	var segments []model.TrackingSegment
	err := query.Order("created_at, id").Offset(offset).Limit(limit).Find(&segments).Error
	return segments, err
}

func (r *TrackingRepository) DistinctPlates(ctx context.Context) ([]string, error) {
	var plates []string
	err := r.db.WithContext(ctx).
		Model(&model.TrackingSegment{}).
		Where("plate <> ''").
		Distinct().
		Pluck("plate", &plates).Error
	return plates, err
}

func (r *TrackingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TrackingSegment{}).Count(&count).Error
	return count, err
}
