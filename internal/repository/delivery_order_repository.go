package repository

import (
	"showroom_manager/internal/models"

	"gorm.io/gorm"
)

type DeliveryOrderRepository interface {
	Create(order *models.DeliveryOrder) error
	GetByID(id uint) (*models.DeliveryOrder, error)
	GetByDONumber(doNumber string) (*models.DeliveryOrder, error)
	GetAll() ([]models.DeliveryOrder, error)
}

type deliveryOrderRepository struct {
	db *gorm.DB
}

func NewDeliveryOrderRepository(db *gorm.DB) DeliveryOrderRepository {
	return &deliveryOrderRepository{db: db}
}

func (r *deliveryOrderRepository) Create(order *models.DeliveryOrder) error {
	return r.db.Create(order).Error
}

func (r *deliveryOrderRepository) GetByID(id uint) (*models.DeliveryOrder, error) {
	var order models.DeliveryOrder
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *deliveryOrderRepository) GetByDONumber(doNumber string) (*models.DeliveryOrder, error) {
	var order models.DeliveryOrder
	err := r.db.Where("do_number = ?", doNumber).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *deliveryOrderRepository) GetAll() ([]models.DeliveryOrder, error) {
	var orders []models.DeliveryOrder
	err := r.db.Preload("Bikes").Order("created_at DESC").Find(&orders).Error
	return orders, err
}
