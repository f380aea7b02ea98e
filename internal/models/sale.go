package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale binds one bike to one customer. The unique index on BikeID is the
// final authority on whether a bike is sold.
type Sale struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	BikeID           uint            `json:"bikeId" gorm:"uniqueIndex;not null"`
	CustomerID       uint            `json:"customerId" gorm:"not null;index"`
	SaleDate         time.Time       `json:"saleDate" gorm:"not null;index"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	AdvanceAmount    decimal.Decimal `json:"advanceAmount" gorm:"type:decimal(12,2);default:0"`
	ReceivedCash     decimal.Decimal `json:"receivedCash" gorm:"type:decimal(12,2);default:0"`
	Balance          decimal.Decimal `json:"balance" gorm:"type:decimal(12,2);default:0"`
	RegistrationCost decimal.Decimal `json:"registrationCost" gorm:"type:decimal(12,2);default:0"`
	TaxAmount        decimal.Decimal `json:"taxAmount" gorm:"type:decimal(12,2);default:0"`
	PaymentMode      string          `json:"paymentMode" gorm:"default:'CASH'"` // CASH, CREDIT, LEASE
	ReceiptNumber    string          `json:"receiptNumber"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Bike     *Bike     `json:"bike,omitempty" gorm:"foreignKey:BikeID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentCredit PaymentMode = "CREDIT"
	PaymentLease  PaymentMode = "LEASE"
)
