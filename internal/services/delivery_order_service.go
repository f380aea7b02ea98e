package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"showroom_manager/internal/apperrors"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/models"
	"showroom_manager/internal/pricing"
	"showroom_manager/internal/repository"
)

type ReceiveOrderRequest struct {
	DONumber      string             `json:"doNumber"`
	Date          *time.Time         `json:"date"`
	DealerName    string             `json:"dealerName"`
	DealerAddress string             `json:"dealerAddress"`
	Bikes         []ReceiveBikeInput `json:"bikes"`
}

type ReceiveBikeInput struct {
	Model         string          `json:"model"`
	Color         string          `json:"color"`
	EngineNumber  string          `json:"engineNumber"`
	ChassisNumber string          `json:"chassisNumber"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// DeliveryOrderService handles stock receipt: one delivery order plus its
// bikes, created together or not at all.
type DeliveryOrderService interface {
	ReceiveOrder(req ReceiveOrderRequest) (*models.DeliveryOrder, error)
	ListOrders() ([]models.DeliveryOrder, error)
}

type deliveryOrderService struct {
	repos *repository.Repositories
	txm   repository.TxManager
}

func NewDeliveryOrderService(repos *repository.Repositories, txm repository.TxManager) DeliveryOrderService {
	return &deliveryOrderService{repos: repos, txm: txm}
}

func (s *deliveryOrderService) ReceiveOrder(req ReceiveOrderRequest) (*models.DeliveryOrder, error) {
	if req.DONumber == "" || req.Date == nil || req.DealerName == "" || req.DealerAddress == "" || len(req.Bikes) == 0 {
		return nil, apperrors.Validation("Missing required fields")
	}

	for _, bike := range req.Bikes {
		if bike.EngineNumber == "" || bike.ChassisNumber == "" || bike.Color == "" {
			return nil, apperrors.Validation("Each bike needs a model, color, engine number and chassis number")
		}
		if !pricing.KnownModel(bike.Model) {
			return nil, apperrors.Validation(fmt.Sprintf("Unknown bike model: %s", bike.Model))
		}
		if bike.PurchasePrice.IsNegative() {
			return nil, apperrors.Validation("Purchase price cannot be negative")
		}
	}

	order := &models.DeliveryOrder{
		DONumber:      req.DONumber,
		Date:          *req.Date,
		DealerName:    req.DealerName,
		DealerAddress: req.DealerAddress,
	}

	err := s.txm.Transaction(func(r *repository.Repositories) error {
		if err := r.DeliveryOrders.Create(order); err != nil {
			return err
		}

		bikes := make([]models.Bike, 0, len(req.Bikes))
		for _, input := range req.Bikes {
			bikes = append(bikes, models.Bike{
				Model:           input.Model,
				Color:           input.Color,
				EngineNumber:    input.EngineNumber,
				ChassisNumber:   input.ChassisNumber,
				PurchasePrice:   input.PurchasePrice,
				Status:          string(models.BikeAvailable),
				DeliveryOrderID: order.ID,
			})
		}
		if err := r.Bikes.CreateBatch(bikes); err != nil {
			return err
		}

		order.Bikes = bikes
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Duplicate("Duplicate entry: DO number, engine number, or chassis number already exists")
		}
		logger.LogError("delivery_orders", "ReceiveOrder", err, nil)
		return nil, apperrors.Store("Failed to create delivery order", err)
	}

	return order, nil
}

func (s *deliveryOrderService) ListOrders() ([]models.DeliveryOrder, error) {
	orders, err := s.repos.DeliveryOrders.GetAll()
	if err != nil {
		logger.LogError("delivery_orders", "ListOrders", err, nil)
		return nil, apperrors.Store("Failed to fetch delivery orders", err)
	}
	return orders, nil
}
