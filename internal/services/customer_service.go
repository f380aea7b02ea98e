package services

import (
	"errors"

	"gorm.io/gorm"

	"showroom_manager/internal/apperrors"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/models"
	"showroom_manager/internal/repository"
)

type CustomerInput struct {
	CNIC       string `json:"cnic"`
	Name       string `json:"name"`
	FatherName string `json:"fatherName"`
	Address    string `json:"address"`
	Mobile     string `json:"mobile"`
}

type CustomerUpdate struct {
	Name       *string `json:"name"`
	FatherName *string `json:"fatherName"`
	Address    *string `json:"address"`
	Mobile     *string `json:"mobile"`
}

type CustomerService interface {
	// FindOrCreate runs against the repository it is handed so the sale
	// workflow can call it inside its transaction.
	FindOrCreate(customers repository.CustomerRepository, input CustomerInput) (*models.Customer, error)
	GetCustomer(id uint) (*models.Customer, error)
	ListCustomers() ([]models.Customer, error)
	UpdateCustomer(id uint, update CustomerUpdate) (*models.Customer, error)
}

type customerService struct {
	repos *repository.Repositories
}

func NewCustomerService(repos *repository.Repositories) CustomerService {
	return &customerService{repos: repos}
}

// FindOrCreate returns the existing customer for the CNIC, or creates one.
// Attributes on the input are NOT merged into an existing record; a sale must
// not silently overwrite verified customer data.
func (s *customerService) FindOrCreate(customers repository.CustomerRepository, input CustomerInput) (*models.Customer, error) {
	if input.CNIC == "" || input.Name == "" {
		return nil, apperrors.Validation("Customer CNIC and name are required")
	}

	existing, err := customers.GetByCNIC(input.CNIC)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.LogError("customers", "FindOrCreate", err, nil)
		return nil, apperrors.Store("Failed to look up customer", err)
	}

	customer := &models.Customer{
		CNIC:       input.CNIC,
		Name:       input.Name,
		FatherName: input.FatherName,
		Address:    input.Address,
		Mobile:     input.Mobile,
	}

	err = customers.Create(customer)
	if err == nil {
		return customer, nil
	}

	// Lost a creation race on the CNIC unique index; the winner's record is
	// the one to use, so retry the lookup once.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, lookupErr := customers.GetByCNIC(input.CNIC)
		if lookupErr == nil {
			return existing, nil
		}
		return nil, apperrors.Duplicate("Duplicate entry: CNIC already exists")
	}

	logger.LogError("customers", "FindOrCreate", err, nil)
	return nil, apperrors.Store("Failed to create customer", err)
}

func (s *customerService) GetCustomer(id uint) (*models.Customer, error) {
	customer, err := s.repos.Customers.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Customer not found")
		}
		logger.LogError("customers", "GetCustomer", err, nil)
		return nil, apperrors.Store("Failed to fetch customer", err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers() ([]models.Customer, error) {
	customers, err := s.repos.Customers.GetAll()
	if err != nil {
		logger.LogError("customers", "ListCustomers", err, nil)
		return nil, apperrors.Store("Failed to fetch customers", err)
	}
	return customers, nil
}

// UpdateCustomer edits contact details. CNIC is the customer's identity and
// is immutable here.
func (s *customerService) UpdateCustomer(id uint, update CustomerUpdate) (*models.Customer, error) {
	if _, err := s.GetCustomer(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		if *update.Name == "" {
			return nil, apperrors.Validation("Customer name cannot be empty")
		}
		fields["name"] = *update.Name
	}
	if update.FatherName != nil {
		fields["father_name"] = *update.FatherName
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.Mobile != nil {
		fields["mobile"] = *update.Mobile
	}

	if len(fields) > 0 {
		if err := s.repos.Customers.UpdateFields(id, fields); err != nil {
			logger.LogError("customers", "UpdateCustomer", err, nil)
			return nil, apperrors.Store("Failed to update customer", err)
		}
	}

	return s.GetCustomer(id)
}
