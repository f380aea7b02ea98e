package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bike struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Model           string          `json:"model" gorm:"not null"`
	Color           string          `json:"color" gorm:"not null"`
	EngineNumber    string          `json:"engineNumber" gorm:"uniqueIndex;not null"`
	ChassisNumber   string          `json:"chassisNumber" gorm:"uniqueIndex;not null"`
	PurchasePrice   decimal.Decimal `json:"purchasePrice" gorm:"type:decimal(12,2);default:0"`
	Status          string          `json:"status" gorm:"default:'AVAILABLE'"` // AVAILABLE, SOLD
	DeliveryOrderID uint            `json:"deliveryOrderId" gorm:"not null;index"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	DeliveryOrder *DeliveryOrder `json:"deliveryOrder,omitempty" gorm:"foreignKey:DeliveryOrderID"`
	Sale          *Sale          `json:"sale,omitempty" gorm:"foreignKey:BikeID"`
}

type BikeStatus string

const (
	BikeAvailable BikeStatus = "AVAILABLE"
	BikeSold      BikeStatus = "SOLD"
)
