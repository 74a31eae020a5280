package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightRecord is one weighbridge load line. Quantity carries the amount in
// the sheet's own unit (KG, M2, M3, ADET, MT or a TON variant); NetWeight is
// always the weighed mass.
type WeightRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Plate           string    `gorm:"type:varchar(32);not null;index" json:"plate"`
	Date            *string   `gorm:"type:varchar(32);index" json:"date"`
	Quantity        *float64  `json:"quantity"`
	Unit            *string   `gorm:"type:varchar(32)" json:"unit"`
	NetWeight       float64   `gorm:"not null" json:"net_weight"`
	Address         *string   `gorm:"type:text" json:"address"`
	ProcessingPoint *string   `gorm:"type:varchar(255)" json:"processing_point"`
	CustomerName    *string   `gorm:"type:varchar(255)" json:"customer_name"`
	ContentHash     string    `gorm:"type:varchar(32);not null;index" json:"content_hash"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (WeightRecord) TableName() string {
	return "weight_records"
}

func (r *WeightRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *WeightRecord) HashFields() map[string]string {
	fields := map[string]string{
		"plate":      r.Plate,
		"net_weight": formatFloat(r.NetWeight),
	}
	putString(fields, "date", r.Date)
	putFloat(fields, "quantity", r.Quantity)
	putString(fields, "unit", r.Unit)
	putString(fields, "address", r.Address)
	putString(fields, "processing_point", r.ProcessingPoint)
	putString(fields, "customer_name", r.CustomerName)
	return fields
}

func (r *WeightRecord) SetContentHash(hash string) {
	r.ContentHash = hash
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func putString(fields map[string]string, name string, v *string) {
	if v != nil {
		fields[name] = *v
	}
}

func putFloat(fields map[string]string, name string, v *float64) {
	if v != nil {
		fields[name] = formatFloat(*v)
	}
}
