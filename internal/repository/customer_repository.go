package repository

import (
	"showroom_manager/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByCNIC(cnic string) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	UpdateFields(id uint, fields map[string]interface{}) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByCNIC(cnic string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("cnic = ?", cnic).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", id).Updates(fields).Error
}
