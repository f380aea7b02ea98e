package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"showroom_manager/internal/apperrors"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/models"
	"showroom_manager/internal/repository"
)

// InventoryService owns the bike status machine. Every AVAILABLE/SOLD
// transition goes through MarkSold or MarkAvailable; no other component
// writes Bike.Status.
type InventoryService interface {
	ListBikes() ([]models.Bike, error)
	GetBike(id uint) (*models.Bike, error)
	UpdateBike(id uint, update BikeUpdate) (*models.Bike, error)
	DeleteBike(id uint) error

	// MarkSold and MarkAvailable operate on the repository they are handed so
	// the sale workflow can run them inside its transaction.
	MarkSold(bikes repository.BikeRepository, id uint) (*models.Bike, error)
	MarkAvailable(bikes repository.BikeRepository, id uint) error
}

// BikeUpdate carries the PATCH-able bike fields. Status is deliberately not
// among them.
type BikeUpdate struct {
	Model         *string          `json:"model"`
	Color         *string          `json:"color"`
	EngineNumber  *string          `json:"engineNumber"`
	ChassisNumber *string          `json:"chassisNumber"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
}

type inventoryService struct {
	repos *repository.Repositories
}

func NewInventoryService(repos *repository.Repositories) InventoryService {
	return &inventoryService{repos: repos}
}

func (s *inventoryService) ListBikes() ([]models.Bike, error) {
	bikes, err := s.repos.Bikes.GetAll()
	if err != nil {
		logger.LogError("inventory", "ListBikes", err, nil)
		return nil, apperrors.Store("Failed to fetch bikes", err)
	}
	return bikes, nil
}

func (s *inventoryService) GetBike(id uint) (*models.Bike, error) {
	bike, err := s.repos.Bikes.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Bike not found")
		}
		logger.LogError("inventory", "GetBike", err, nil)
		return nil, apperrors.Store("Failed to fetch bike", err)
	}
	return bike, nil
}

func (s *inventoryService) UpdateBike(id uint, update BikeUpdate) (*models.Bike, error) {
	if _, err := s.GetBike(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Model != nil {
		fields["model"] = *update.Model
	}
	if update.Color != nil {
		fields["color"] = *update.Color
	}
	if update.EngineNumber != nil {
		fields["engine_number"] = *update.EngineNumber
	}
	if update.ChassisNumber != nil {
		fields["chassis_number"] = *update.ChassisNumber
	}
	if update.PurchasePrice != nil {
		if update.PurchasePrice.IsNegative() {
			return nil, apperrors.Validation("Purchase price cannot be negative")
		}
		fields["purchase_price"] = *update.PurchasePrice
	}

	if len(fields) > 0 {
		if err := s.repos.Bikes.UpdateFields(id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.Duplicate("Duplicate entry: engine number or chassis number already exists")
			}
			logger.LogError("inventory", "UpdateBike", err, nil)
			return nil, apperrors.Store("Failed to update bike", err)
		}
	}

	return s.GetBike(id)
}

func (s *inventoryService) DeleteBike(id uint) error {
	bike, err := s.GetBike(id)
	if err != nil {
		return err
	}

	// A sold bike is the audit trail of a completed sale; the sale must be
	// reversed before the bike can go.
	if bike.Status == string(models.BikeSold) {
		return apperrors.Conflict("Cannot delete a sold bike. Delete the sale record first.")
	}

	if err := s.repos.Bikes.Delete(id); err != nil {
		logger.LogError("inventory", "DeleteBike", err, nil)
		return apperrors.Store("Failed to delete bike", err)
	}
	return nil
}

func (s *inventoryService) MarkSold(bikes repository.BikeRepository, id uint) (*models.Bike, error) {
	bike, err := bikes.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Bike not found")
		}
		logger.LogError("inventory", "MarkSold", err, nil)
		return nil, apperrors.Store("Failed to fetch bike", err)
	}

	if bike.Status == string(models.BikeSold) {
		return nil, apperrors.Conflict("Bike is already sold")
	}

	// Conditional update, not a blind write: a concurrent sale that got here
	// first leaves zero rows affected and this request loses cleanly.
	flipped, err := bikes.UpdateStatusIf(id, models.BikeAvailable, models.BikeSold)
	if err != nil {
		logger.LogError("inventory", "MarkSold", err, nil)
		return nil, apperrors.Store("Failed to update bike status", err)
	}
	if !flipped {
		return nil, apperrors.Conflict("Bike is already sold")
	}

	bike.Status = string(models.BikeSold)
	return bike, nil
}

// MarkAvailable is the compensating transition used by sale deletion. It is
// idempotent: reverting an already-available bike is a no-op.
func (s *inventoryService) MarkAvailable(bikes repository.BikeRepository, id uint) error {
	if err := bikes.UpdateFields(id, map[string]interface{}{"status": string(models.BikeAvailable)}); err != nil {
		logger.LogError("inventory", "MarkAvailable", err, nil)
		return apperrors.Store("Failed to update bike status", err)
	}
	return nil
}
