package service

import (
	"time"

	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardStats is the at-a-glance view for the home screen.
type DashboardStats struct {
	TodayRevenue      int64 `json:"today_revenue"`
	TodayTransactions int64 `json:"today_transactions"`
	TotalProducts     int64 `json:"total_products"`
	LowStockCount     int64 `json:"low_stock_count"`
	OutOfStockCount   int64 `json:"out_of_stock_count"`
	TotalValuation    int64 `json:"total_valuation"`
}

type DashboardService interface {
	GetStats(businessID uuid.UUID) (*DashboardStats, error)
}

type dashboardService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
}

func NewDashboardService(tRepo repository.TransactionRepository, pRepo repository.ProductRepository) DashboardService {
	return &dashboardService{
		transactionRepo: tRepo,
		productRepo:     pRepo,
	}
}

func (s *dashboardService) GetStats(businessID uuid.UUID) (*DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sales, err := s.transactionRepo.GetSalesSummary(businessID, startOfDay, now)
	if err != nil {
		return nil, err
	}
	counts, err := s.productRepo.Counts(businessID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodayRevenue:      sales.Revenue,
		TodayTransactions: sales.TransactionCount,
		TotalProducts:     counts.TotalProducts,
		LowStockCount:     counts.LowStockCount,
		OutOfStockCount:   counts.OutOfStock,
		TotalValuation:    counts.Valuation,
	}, nil
}
