package models

import (
	"time"
)

// DeliveryOrder is one shipment received from the distributor. Orders are
// immutable after receipt and are never deleted while bikes reference them.
type DeliveryOrder struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	DONumber      string    `json:"doNumber" gorm:"column:do_number;uniqueIndex;not null"`
	Date          time.Time `json:"date" gorm:"not null"`
	DealerName    string    `json:"dealerName" gorm:"not null"`
	DealerAddress string    `json:"dealerAddress" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Bikes []Bike `json:"bikes,omitempty" gorm:"foreignKey:DeliveryOrderID"`
}
