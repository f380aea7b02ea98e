package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"showroom_manager/internal/apperrors"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/models"
	"showroom_manager/internal/pricing"
	"showroom_manager/internal/redis"
	"showroom_manager/internal/repository"
)

type RangeStats struct {
	Sales           int             `json:"sales"`
	Revenue         decimal.Decimal `json:"revenue"`
	Tax             decimal.Decimal `json:"tax"`
	NetRevenue      decimal.Decimal `json:"netRevenue"`
	GrossProfit     decimal.Decimal `json:"grossProfit"`
	Profit          decimal.Decimal `json:"profit"`
	WorkshopRevenue decimal.Decimal `json:"workshopRevenue"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
}

type AllTimeStats struct {
	TotalSales           int64           `json:"totalSales"`
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalTax             decimal.Decimal `json:"totalTax"`
	TotalNetRevenue      decimal.Decimal `json:"totalNetRevenue"`
	TotalGrossProfit     decimal.Decimal `json:"totalGrossProfit"`
	TotalProfit          decimal.Decimal `json:"totalProfit"`
	TotalWorkshopRevenue decimal.Decimal `json:"totalWorkshopRevenue"`
	TotalBikes           int64           `json:"totalBikes"`
	AvailableBikes       int64           `json:"availableBikes"`
	SoldBikes            int64           `json:"soldBikes"`
	TotalServices        int64           `json:"totalServices"`
}

// DeliveryOrderStats is the sell-through of one delivery order, never
// range-filtered.
type DeliveryOrderStats struct {
	DONumber       string    `json:"doNumber"`
	Date           time.Time `json:"date"`
	DealerName     string    `json:"dealerName"`
	TotalBikes     int       `json:"totalBikes"`
	SoldBikes      int       `json:"soldBikes"`
	RemainingBikes int       `json:"remainingBikes"`
}

type Report struct {
	Range          RangeStats           `json:"range"`
	AllTime        AllTimeStats         `json:"allTime"`
	DeliveryOrders []DeliveryOrderStats `json:"deliveryOrders"`
}

// ReportService is a pure read-side consumer of the record store. A
// zero-sale range yields zeroed aggregates, never an error.
type ReportService interface {
	ComputeReport(ctx context.Context, start, end *time.Time) (*Report, error)
}

type reportService struct {
	repos    *repository.Repositories
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewReportService(repos *repository.Repositories, cache *redis.Client, cacheTTL time.Duration) ReportService {
	return &reportService{repos: repos, cache: cache, cacheTTL: cacheTTL}
}

// ComputeReport aggregates sales and workshop services over [start, end).
// With no range given it covers today (local midnight to next midnight) and
// is answered from the redis snapshot when one is fresh; explicit ranges
// always hit the store.
func (s *reportService) ComputeReport(ctx context.Context, start, end *time.Time) (*Report, error) {
	defaultRange := start == nil || end == nil

	if defaultRange && s.cache != nil {
		var cached Report
		if err := s.cache.GetReportSnapshot(ctx, &cached); err == nil {
			return &cached, nil
		}
	}

	var rangeStart, rangeEnd time.Time
	if defaultRange {
		now := time.Now()
		rangeStart = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		rangeEnd = rangeStart.AddDate(0, 0, 1)
	} else {
		rangeStart = *start
		rangeEnd = *end
	}

	report, err := s.compute(rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	if defaultRange && s.cache != nil {
		if err := s.cache.SetReportSnapshot(ctx, report, s.cacheTTL); err != nil {
			logger.LogError("reports", "ComputeReport", err, nil)
		}
	}

	return report, nil
}

func (s *reportService) compute(start, end time.Time) (*Report, error) {
	rangeSales, err := s.repos.Sales.GetByDateRange(start, end)
	if err != nil {
		logger.LogError("reports", "compute", err, nil)
		return nil, apperrors.Store("Failed to fetch sales", err)
	}
	rangeServices, err := s.repos.ServiceSales.GetByDateRange(start, end)
	if err != nil {
		logger.LogError("reports", "compute", err, nil)
		return nil, apperrors.Store("Failed to fetch workshop services", err)
	}

	allSales, err := s.repos.Sales.GetAll()
	if err != nil {
		logger.LogError("reports", "compute", err, nil)
		return nil, apperrors.Store("Failed to fetch sales", err)
	}
	allServices, err := s.repos.ServiceSales.GetAll()
	if err != nil {
		logger.LogError("reports", "compute", err, nil)
		return nil, apperrors.Store("Failed to fetch workshop services", err)
	}

	totalBikes, err := s.repos.Bikes.Count()
	if err != nil {
		logger.LogError("reports", "compute", err, nil)
		return nil, apperrors.Store("Failed to count bikes", err)
	}
	availableBikes, err := s.repos.Bikes.CountByStatus(models.BikeAvailable)
	if err != nil {
		logger.LogError("reports", "compute", err, nil)
		return nil, apperrors.Store("Failed to count bikes", err)
	}
	soldBikes, err := s.repos.Bikes.CountByStatus(models.BikeSold)
	if err != nil {
		logger.LogError("reports", "compute", err, nil)
		return nil, apperrors.Store("Failed to count bikes", err)
	}

	deliveryOrders, err := s.repos.DeliveryOrders.GetAll()
	if err != nil {
		logger.LogError("reports", "compute", err, nil)
		return nil, apperrors.Store("Failed to fetch delivery orders", err)
	}

	rangeRevenue, rangeTax, rangeProfit := sumSales(rangeSales)
	totalRevenue, totalTax, totalProfit := sumSales(allSales)
	rangeWorkshop := sumServices(rangeServices)
	totalWorkshop := sumServices(allServices)

	doStats := make([]DeliveryOrderStats, 0, len(deliveryOrders))
	for _, order := range deliveryOrders {
		sold := 0
		for _, bike := range order.Bikes {
			if bike.Status == string(models.BikeSold) {
				sold++
			}
		}
		doStats = append(doStats, DeliveryOrderStats{
			DONumber:       order.DONumber,
			Date:           order.Date,
			DealerName:     order.DealerName,
			TotalBikes:     len(order.Bikes),
			SoldBikes:      sold,
			RemainingBikes: len(order.Bikes) - sold,
		})
	}

	return &Report{
		Range: RangeStats{
			Sales:           len(rangeSales),
			Revenue:         rangeRevenue,
			Tax:             rangeTax,
			NetRevenue:      rangeRevenue.Sub(rangeTax),
			GrossProfit:     rangeProfit,
			Profit:          rangeProfit.Sub(rangeTax),
			WorkshopRevenue: rangeWorkshop,
			StartDate:       start,
			EndDate:         end,
		},
		AllTime: AllTimeStats{
			TotalSales:           int64(len(allSales)),
			TotalRevenue:         totalRevenue,
			TotalTax:             totalTax,
			TotalNetRevenue:      totalRevenue.Sub(totalTax),
			TotalGrossProfit:     totalProfit,
			TotalProfit:          totalProfit.Sub(totalTax),
			TotalWorkshopRevenue: totalWorkshop,
			TotalBikes:           totalBikes,
			AvailableBikes:       availableBikes,
			SoldBikes:            soldBikes,
			TotalServices:        int64(len(allServices)),
		},
		DeliveryOrders: doStats,
	}, nil
}

// sumSales returns gross revenue, tax, and gross profit for a batch of sales.
// The cost basis for each sale comes from the bike's recorded purchase price
// with the list-price fallback for bikes received before price tracking.
func sumSales(sales []models.Sale) (revenue, tax, grossProfit decimal.Decimal) {
	revenue = decimal.Zero
	tax = decimal.Zero
	grossProfit = decimal.Zero
	for _, sale := range sales {
		revenue = revenue.Add(sale.Price)
		tax = tax.Add(sale.TaxAmount)

		costBasis := decimal.Zero
		if sale.Bike != nil {
			costBasis = pricing.CostBasis(sale.Bike.Model, sale.Bike.PurchasePrice)
		}
		grossProfit = grossProfit.Add(sale.Price.Sub(costBasis))
	}
	return revenue, tax, grossProfit
}

func sumServices(services []models.ServiceSale) decimal.Decimal {
	total := decimal.Zero
	for _, service := range services {
		total = total.Add(service.Amount)
	}
	return total
}
