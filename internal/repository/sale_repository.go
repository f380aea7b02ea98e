package repository

import (
	"time"

	"showroom_manager/internal/models"

	"gorm.io/gorm"
)

// SaleFilter holds the optional listing filters. Every field is a
// case-insensitive partial match; empty fields are ignored.
type SaleFilter struct {
	CNIC          string
	EngineNumber  string
	ChassisNumber string
	DONumber      string
}

type SaleRepository interface {
	Create(sale *models.Sale) error
	GetByID(id uint) (*models.Sale, error)
	GetByBikeID(bikeID uint) (*models.Sale, error)
	GetFiltered(filter SaleFilter) ([]models.Sale, error)
	GetByDateRange(start, end time.Time) ([]models.Sale, error)
	GetAll() ([]models.Sale, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	Count() (int64, error)
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(sale *models.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepository) GetByID(id uint) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.Preload("Bike.DeliveryOrder").Preload("Customer").First(&sale, id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) GetByBikeID(bikeID uint) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.Where("bike_id = ?", bikeID).First(&sale).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) GetFiltered(filter SaleFilter) ([]models.Sale, error) {
	query := r.db.Model(&models.Sale{}).
		Joins("JOIN bikes ON bikes.id = sales.bike_id").
		Joins("JOIN customers ON customers.id = sales.customer_id").
		Joins("JOIN delivery_orders ON delivery_orders.id = bikes.delivery_order_id")

	if filter.CNIC != "" {
		query = query.Where("customers.cnic ILIKE ?", "%"+filter.CNIC+"%")
	}
	if filter.EngineNumber != "" {
		query = query.Where("bikes.engine_number ILIKE ?", "%"+filter.EngineNumber+"%")
	}
	if filter.ChassisNumber != "" {
		query = query.Where("bikes.chassis_number ILIKE ?", "%"+filter.ChassisNumber+"%")
	}
	if filter.DONumber != "" {
		query = query.Where("delivery_orders.do_number ILIKE ?", "%"+filter.DONumber+"%")
	}

	var sales []models.Sale
	err := query.
		Preload("Bike.DeliveryOrder").
		Preload("Customer").
		Order("sales.sale_date DESC").
		Find(&sales).Error
	return sales, err
}

// GetByDateRange returns sales with saleDate in [start, end), bikes preloaded
// for cost-basis lookups.
func (r *saleRepository) GetByDateRange(start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Bike").
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) GetAll() ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Bike").Find(&sales).Error
	return sales, err
}

func (r *saleRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Sale{}).Where("id = ?", id).Updates(fields).Error
}

func (r *saleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Sale{}, id).Error
}

func (r *saleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Sale{}).Count(&count).Error
	return count, err
}
