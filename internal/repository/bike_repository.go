package repository

import (
	"showroom_manager/internal/models"

	"gorm.io/gorm"
)

type BikeRepository interface {
	CreateBatch(bikes []models.Bike) error
	GetByID(id uint) (*models.Bike, error)
	GetAll() ([]models.Bike, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	UpdateStatusIf(id uint, from, to models.BikeStatus) (bool, error)
	Count() (int64, error)
	CountByStatus(status models.BikeStatus) (int64, error)
}

type bikeRepository struct {
	db *gorm.DB
}

func NewBikeRepository(db *gorm.DB) BikeRepository {
	return &bikeRepository{db: db}
}

func (r *bikeRepository) CreateBatch(bikes []models.Bike) error {
	return r.db.Create(&bikes).Error
}

func (r *bikeRepository) GetByID(id uint) (*models.Bike, error) {
	var bike models.Bike
	err := r.db.Preload("DeliveryOrder").First(&bike, id).Error
	if err != nil {
		return nil, err
	}
	return &bike, nil
}

func (r *bikeRepository) GetAll() ([]models.Bike, error) {
	var bikes []models.Bike
	err := r.db.Preload("DeliveryOrder").
		Preload("Sale.Customer").
		Order("created_at DESC").
		Find(&bikes).Error
	return bikes, err
}

func (r *bikeRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Bike{}).Where("id = ?", id).Updates(fields).Error
}

func (r *bikeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Bike{}, id).Error
}

// UpdateStatusIf flips the status only when the current value matches. The
// returned bool reports whether the row was actually changed, so callers can
// tell a lost race from a successful flip.
func (r *bikeRepository) UpdateStatusIf(id uint, from, to models.BikeStatus) (bool, error) {
	result := r.db.Model(&models.Bike{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *bikeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Bike{}).Count(&count).Error
	return count, err
}

func (r *bikeRepository) CountByStatus(status models.BikeStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bike{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}
