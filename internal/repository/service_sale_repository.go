package repository

import (
	"time"

	"showroom_manager/internal/models"

	"gorm.io/gorm"
)

type ServiceSaleRepository interface {
	Create(service *models.ServiceSale) error
	GetRecent(limit int) ([]models.ServiceSale, error)
	GetByDateRange(start, end time.Time) ([]models.ServiceSale, error)
	GetAll() ([]models.ServiceSale, error)
	Count() (int64, error)
}

type serviceSaleRepository struct {
	db *gorm.DB
}

func NewServiceSaleRepository(db *gorm.DB) ServiceSaleRepository {
	return &serviceSaleRepository{db: db}
}

func (r *serviceSaleRepository) Create(service *models.ServiceSale) error {
	return r.db.Create(service).Error
}

func (r *serviceSaleRepository) GetRecent(limit int) ([]models.ServiceSale, error) {
	var services []models.ServiceSale
	err := r.db.Order("date DESC").Limit(limit).Find(&services).Error
	return services, err
}

func (r *serviceSaleRepository) GetByDateRange(start, end time.Time) ([]models.ServiceSale, error) {
	var services []models.ServiceSale
	err := r.db.Where("date >= ? AND date < ?", start, end).Find(&services).Error
	return services, err
}

func (r *serviceSaleRepository) GetAll() ([]models.ServiceSale, error) {
	var services []models.ServiceSale
	err := r.db.Find(&services).Error
	return services, err
}

func (r *serviceSaleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ServiceSale{}).Count(&count).Error
	return count, err
}
