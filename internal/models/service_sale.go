package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceSale is a workshop billing entry. It is an append-only ledger and is
// not linked to the Bike or Customer tables; walk-in customers bring bikes the
// showroom never sold.
type ServiceSale struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	CustomerName   string          `json:"customerName" gorm:"not null"`
	CustomerMobile string          `json:"customerMobile"`
	BikeNumber     string          `json:"bikeNumber"`
	ServiceType    string          `json:"serviceType" gorm:"not null"` // e.g. Tuning, Oil Change
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date           time.Time       `json:"date" gorm:"not null;index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
