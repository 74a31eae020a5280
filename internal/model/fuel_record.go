package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FuelRecord is one fuel purchase line imported from a station report sheet.
type FuelRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Plate           string    `gorm:"type:varchar(32);not null;index" json:"plate"`
	TransactionDate *string   `gorm:"type:varchar(32);index" json:"transaction_date"`
	Time            *string   `gorm:"type:varchar(16)" json:"time"`
	FuelAmount      float64   `gorm:"not null" json:"fuel_amount"`
	UnitPrice       float64   `json:"unit_price"`
	LineTotal       float64   `json:"line_total"`
	ProductName     string    `gorm:"type:varchar(128)" json:"product_name"`
	OdometerKM      *float64  `json:"odometer_km"`
	ContentHash     string    `gorm:"type:varchar(32);not null;index" json:"content_hash"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FuelRecord) TableName() string {
	return "fuel_records"
}

func (r *FuelRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// HashFields returns the non-null content fields the dedup fingerprint is
// computed over. The hash itself and storage bookkeeping are excluded.
func (r *FuelRecord) HashFields() map[string]string {
	fields := map[string]string{
		"plate":        r.Plate,
		"fuel_amount":  formatFloat(r.FuelAmount),
		"unit_price":   formatFloat(r.UnitPrice),
		"line_total":   formatFloat(r.LineTotal),
		"product_name": r.ProductName,
	}
	putString(fields, "transaction_date", r.TransactionDate)
	putString(fields, "time", r.Time)
	putFloat(fields, "odometer_km", r.OdometerKM)
	return fields
}

func (r *FuelRecord) SetContentHash(hash string) {
	r.ContentHash = hash
}
