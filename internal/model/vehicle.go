package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleOwner string

const (
	VehicleOwnerOwn           VehicleOwner = "OWN"
	VehicleOwnerSubcontractor VehicleOwner = "SUBCONTRACTOR"
)

func (o VehicleOwner) Valid() bool {
	switch o {
	case VehicleOwnerOwn, VehicleOwnerSubcontractor:
		return true
	}
	return false
}

type VehicleType string

const (
	VehicleTypeCargo          VehicleType = "CARGO"
	VehicleTypeHeavyEquipment VehicleType = "HEAVY_EQUIPMENT"
	VehicleTypePassenger      VehicleType = "PASSENGER"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeCargo, VehicleTypeHeavyEquipment, VehicleTypePassenger:
		return true
	}
	return false
}

// Vehicle is the registry entry for a plate. It is the only mutable entity;
// fact records are append-only once loaded.
type Vehicle struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Plate       string       `gorm:"type:varchar(32);uniqueIndex;not null" json:"plate"`
	Owner       VehicleOwner `gorm:"type:vehicle_owner;not null;default:OWN" json:"owner"`
	VehicleType VehicleType  `gorm:"type:vehicle_type;not null;default:CARGO" json:"vehicle_type"`
	Active      bool         `gorm:"not null;default:true" json:"active"`
	Notes       string       `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
