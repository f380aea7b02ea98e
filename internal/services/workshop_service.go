package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"showroom_manager/internal/apperrors"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/models"
	"showroom_manager/internal/redis"
	"showroom_manager/internal/repository"
)

type RecordServiceRequest struct {
	CustomerName   string          `json:"customerName"`
	CustomerMobile string          `json:"customerMobile"`
	BikeNumber     string          `json:"bikeNumber"`
	ServiceType    string          `json:"serviceType"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Date           *time.Time      `json:"date"`
}

const defaultServiceListLimit = 50

// WorkshopService maintains the append-only service billing ledger.
type WorkshopService interface {
	RecordService(ctx context.Context, req RecordServiceRequest) (*models.ServiceSale, error)
	ListServices(limit int) ([]models.ServiceSale, error)
}

type workshopService struct {
	repos *repository.Repositories
	cache *redis.Client
}

func NewWorkshopService(repos *repository.Repositories, cache *redis.Client) WorkshopService {
	return &workshopService{repos: repos, cache: cache}
}

func (s *workshopService) RecordService(ctx context.Context, req RecordServiceRequest) (*models.ServiceSale, error) {
	if req.CustomerName == "" || req.ServiceType == "" {
		return nil, apperrors.Validation("Customer name and service type are required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.Validation("Amount must be positive")
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	service := &models.ServiceSale{
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
		BikeNumber:     req.BikeNumber,
		ServiceType:    req.ServiceType,
		Description:    req.Description,
		Amount:         req.Amount,
		Date:           date,
	}

	if err := s.repos.ServiceSales.Create(service); err != nil {
		logger.LogError("workshop", "RecordService", err, nil)
		return nil, apperrors.Store("Failed to record service", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateReportSnapshot(ctx); err != nil {
			logger.LogError("workshop", "RecordService", err, nil)
		}
	}

	return service, nil
}

func (s *workshopService) ListServices(limit int) ([]models.ServiceSale, error) {
	if limit <= 0 {
		limit = defaultServiceListLimit
	}

	services, err := s.repos.ServiceSales.GetRecent(limit)
	if err != nil {
		logger.LogError("workshop", "ListServices", err, nil)
		return nil, apperrors.Store("Failed to fetch services", err)
	}
	return services, nil
}
