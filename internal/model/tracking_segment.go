package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackingSegment is one movement row exported by the vehicle-tracking
// provider. Segments are assumed non-overlapping; real distance for a period
// is the plain sum of TotalKM over the matching rows.
type TrackingSegment struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Plate            string    `gorm:"type:varchar(32);not null;index" json:"plate"`
	DriverName       *string   `gorm:"type:varchar(255)" json:"driver_name"`
	VehicleGroups    *string   `gorm:"type:varchar(255)" json:"vehicle_groups"`
	Date             *string   `gorm:"type:varchar(32);index" json:"date"`
	MovementStart    *string   `gorm:"type:varchar(32)" json:"movement_start"`
	MovementEnd      *string   `gorm:"type:varchar(32)" json:"movement_end"`
	StartAddress     *string   `gorm:"type:text" json:"start_address"`
	EndAddress       *string   `gorm:"type:text" json:"end_address"`
	TotalKM          float64   `gorm:"not null" json:"total_km"`
	MovementDuration *string   `gorm:"type:varchar(32)" json:"movement_duration"`
	IdleDuration     *string   `gorm:"type:varchar(32)" json:"idle_duration"`
	ParkedDuration   *string   `gorm:"type:varchar(32)" json:"parked_duration"`
	DailyFuelLiters  *float64  `json:"daily_fuel_liters"`
	ContentHash      string    `gorm:"type:varchar(32);not null;index" json:"content_hash"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TrackingSegment) TableName() string {
	return "tracking_segments"
}

func (s *TrackingSegment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *TrackingSegment) HashFields() map[string]string {
	fields := map[string]string{
		"plate":    s.Plate,
		"total_km": formatFloat(s.TotalKM),
	}
	putString(fields, "driver_name", s.DriverName)
	putString(fields, "vehicle_groups", s.VehicleGroups)
	putString(fields, "date", s.Date)
	putString(fields, "movement_start", s.MovementStart)
	putString(fields, "movement_end", s.MovementEnd)
	putString(fields, "start_address", s.StartAddress)
	putString(fields, "end_address", s.EndAddress)
	putString(fields, "movement_duration", s.MovementDuration)
	putString(fields, "idle_duration", s.IdleDuration)
	putString(fields, "parked_duration", s.ParkedDuration)
	putFloat(fields, "daily_fuel_liters", s.DailyFuelLiters)
	return fields
}

func (s *TrackingSegment) SetContentHash(hash string) {
	s.ContentHash = hash
}
