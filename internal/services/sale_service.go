package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"showroom_manager/internal/apperrors"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/models"
	"showroom_manager/internal/redis"
	"showroom_manager/internal/repository"
)

type CreateSaleRequest struct {
	BikeID           uint            `json:"bikeId"`
	Customer         CustomerInput   `json:"customer"`
	SaleDate         *time.Time      `json:"saleDate"`
	Price            decimal.Decimal `json:"price"`
	AdvanceAmount    decimal.Decimal `json:"advanceAmount"`
	ReceivedCash     decimal.Decimal `json:"receivedCash"`
	Balance          decimal.Decimal `json:"balance"`
	RegistrationCost decimal.Decimal `json:"registrationCost"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	PaymentMode      string          `json:"paymentMode"`
	ReceiptNumber    string          `json:"receiptNumber"`
}

type UpdateSaleRequest struct {
	SaleDate         *time.Time       `json:"saleDate"`
	Price            *decimal.Decimal `json:"price"`
	AdvanceAmount    *decimal.Decimal `json:"advanceAmount"`
	ReceivedCash     *decimal.Decimal `json:"receivedCash"`
	Balance          *decimal.Decimal `json:"balance"`
	RegistrationCost *decimal.Decimal `json:"registrationCost"`
	TaxAmount        *decimal.Decimal `json:"taxAmount"`
	PaymentMode      *string          `json:"paymentMode"`
	ReceiptNumber    *string          `json:"receiptNumber"`
}

// SaleService is the sale transaction workflow: it is the only component that
// creates or reverses sales, and it drives every bike status transition
// through the inventory ledger inside a single store transaction.
type SaleService interface {
	CreateSale(ctx context.Context, req CreateSaleRequest) (*models.Sale, error)
	GetSale(id uint) (*models.Sale, error)
	ListSales(filter repository.SaleFilter) ([]models.Sale, error)
	UpdateSale(ctx context.Context, id uint, req UpdateSaleRequest) (*models.Sale, error)
	DeleteSale(ctx context.Context, id uint) error
}

type saleService struct {
	repos     *repository.Repositories
	txm       repository.TxManager
	inventory InventoryService
	customers CustomerService
	cache     *redis.Client
}

func NewSaleService(
	repos *repository.Repositories,
	txm repository.TxManager,
	inventory InventoryService,
	customers CustomerService,
	cache *redis.Client,
) SaleService {
	return &saleService{
		repos:     repos,
		txm:       txm,
		inventory: inventory,
		customers: customers,
		cache:     cache,
	}
}

func validPaymentMode(mode string) bool {
	switch models.PaymentMode(mode) {
	case models.PaymentCash, models.PaymentCredit, models.PaymentLease:
		return true
	}
	return false
}

// CreateSale sells a bike. Inside one transaction: flip the bike to SOLD
// (conditional update, losers get a conflict), resolve or create the
// customer, then insert the sale row. The unique index on sales.bike_id is
// the final authority; anything that slips past the status check still fails
// there, and a failure at any step rolls back the flip, so a bike can never
// end up sold without a sale record or sold twice.
func (s *saleService) CreateSale(ctx context.Context, req CreateSaleRequest) (*models.Sale, error) {
	if req.BikeID == 0 || req.Customer.CNIC == "" || req.Customer.Name == "" || req.Price.IsZero() {
		return nil, apperrors.Validation("Missing required fields")
	}
	if req.Price.IsNegative() || req.RegistrationCost.IsNegative() || req.TaxAmount.IsNegative() {
		return nil, apperrors.Validation("Amounts cannot be negative")
	}
	paymentMode := req.PaymentMode
	if paymentMode == "" {
		paymentMode = string(models.PaymentCash)
	}
	if !validPaymentMode(paymentMode) {
		return nil, apperrors.Validation("Invalid payment mode")
	}

	saleDate := time.Now()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	var saleID uint
	err := s.txm.Transaction(func(r *repository.Repositories) error {
		if _, err := s.inventory.MarkSold(r.Bikes, req.BikeID); err != nil {
			return err
		}

		customer, err := s.customers.FindOrCreate(r.Customers, req.Customer)
		if err != nil {
			return err
		}

		sale := &models.Sale{
			BikeID:           req.BikeID,
			CustomerID:       customer.ID,
			SaleDate:         saleDate,
			Price:            req.Price,
			AdvanceAmount:    req.AdvanceAmount,
			ReceivedCash:     req.ReceivedCash,
			Balance:          req.Balance,
			RegistrationCost: req.RegistrationCost,
			TaxAmount:        req.TaxAmount,
			PaymentMode:      paymentMode,
			ReceiptNumber:    req.ReceiptNumber,
		}
		if err := r.Sales.Create(sale); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Duplicate("Duplicate entry: This bike is already sold or CNIC already exists")
			}
			logger.LogError("sales", "CreateSale", err, nil)
			return apperrors.Store("Failed to create sale", err)
		}

		saleID = sale.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateReport(ctx)
	return s.GetSale(saleID)
}

func (s *saleService) GetSale(id uint) (*models.Sale, error) {
	sale, err := s.repos.Sales.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Sale not found")
		}
		logger.LogError("sales", "GetSale", err, nil)
		return nil, apperrors.Store("Failed to fetch sale", err)
	}
	return sale, nil
}

func (s *saleService) ListSales(filter repository.SaleFilter) ([]models.Sale, error) {
	sales, err := s.repos.Sales.GetFiltered(filter)
	if err != nil {
		logger.LogError("sales", "ListSales", err, nil)
		return nil, apperrors.Store("Failed to fetch sales", err)
	}
	return sales, nil
}

// UpdateSale merges corrected fields into an existing sale. It never touches
// the bike binding or the bike status.
func (s *saleService) UpdateSale(ctx context.Context, id uint, req UpdateSaleRequest) (*models.Sale, error) {
	if _, err := s.GetSale(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.SaleDate != nil {
		fields["sale_date"] = *req.SaleDate
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, apperrors.Validation("Price must be positive")
		}
		fields["price"] = *req.Price
	}
	if req.AdvanceAmount != nil {
		fields["advance_amount"] = *req.AdvanceAmount
	}
	if req.ReceivedCash != nil {
		fields["received_cash"] = *req.ReceivedCash
	}
	if req.Balance != nil {
		fields["balance"] = *req.Balance
	}
	if req.RegistrationCost != nil {
		if req.RegistrationCost.IsNegative() {
			return nil, apperrors.Validation("Registration cost cannot be negative")
		}
		fields["registration_cost"] = *req.RegistrationCost
	}
	if req.TaxAmount != nil {
		if req.TaxAmount.IsNegative() {
			return nil, apperrors.Validation("Tax amount cannot be negative")
		}
		fields["tax_amount"] = *req.TaxAmount
	}
	if req.PaymentMode != nil {
		if !validPaymentMode(*req.PaymentMode) {
			return nil, apperrors.Validation("Invalid payment mode")
		}
		fields["payment_mode"] = *req.PaymentMode
	}
	if req.ReceiptNumber != nil {
		fields["receipt_number"] = *req.ReceiptNumber
	}

	if len(fields) > 0 {
		if err := s.repos.Sales.UpdateFields(id, fields); err != nil {
			logger.LogError("sales", "UpdateSale", err, nil)
			return nil, apperrors.Store("Failed to update sale", err)
		}
		s.invalidateReport(ctx)
	}

	return s.GetSale(id)
}

// DeleteSale reverses a sale: the bike goes back to AVAILABLE and the sale
// row is removed, in one transaction. The revert runs before the delete so a
// partial failure can never leave a bike stuck SOLD with no sale record.
func (s *saleService) DeleteSale(ctx context.Context, id uint) error {
	err := s.txm.Transaction(func(r *repository.Repositories) error {
		sale, err := r.Sales.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Sale not found")
			}
			logger.LogError("sales", "DeleteSale", err, nil)
			return apperrors.Store("Failed to fetch sale", err)
		}

		if err := s.inventory.MarkAvailable(r.Bikes, sale.BikeID); err != nil {
			return err
		}

		if err := r.Sales.Delete(id); err != nil {
			logger.LogError("sales", "DeleteSale", err, nil)
			return apperrors.Store("Failed to delete sale", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateReport(ctx)
	return nil
}

func (s *saleService) invalidateReport(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateReportSnapshot(ctx); err != nil {
		logger.LogError("sales", "invalidateReport", err, nil)
	}
}
