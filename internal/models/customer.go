package models

import (
	"time"
)

// Customer is identified by CNIC. Records are created on first sale and kept
// forever; repeat buyers reuse the existing record.
type Customer struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CNIC       string    `json:"cnic" gorm:"uniqueIndex;not null"`
	Name       string    `json:"name" gorm:"not null"`
	FatherName string    `json:"fatherName"`
	Address    string    `json:"address"`
	Mobile     string    `json:"mobile"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
