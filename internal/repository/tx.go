package repository

import (
	"gorm.io/gorm"
)

// Repositories bundles every repository over a single gorm handle so a
// transaction can hand callers tx-scoped instances of all of them.
type Repositories struct {
	DeliveryOrders DeliveryOrderRepository
	Bikes          BikeRepository
	Customers      CustomerRepository
	Sales          SaleRepository
	ServiceSales   ServiceSaleRepository
	Users          UserRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DeliveryOrders: NewDeliveryOrderRepository(db),
		Bikes:          NewBikeRepository(db),
		Customers:      NewCustomerRepository(db),
		Sales:          NewSaleRepository(db),
		ServiceSales:   NewServiceSaleRepository(db),
		Users:          NewUserRepository(db),
	}
}

// TxManager runs a function against tx-scoped repositories. The function
// returning an error rolls the whole transaction back.
type TxManager interface {
	Transaction(fn func(r *Repositories) error) error
}

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) Transaction(fn func(r *Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
