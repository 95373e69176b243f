package service

import (
	"time"

	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportSummary is the profit & loss view over a date range.
type ReportSummary struct {
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Revenue          int64  `json:"revenue"`
	TransactionCount int64  `json:"transaction_count"`
	GrossProfit      int64  `json:"gross_profit"`
	TotalExpenses    int64  `json:"total_expenses"`
	NetProfit        int64  `json:"net_profit"`
}

type ReportService interface {
	GetSummary(businessID uuid.UUID, start, end time.Time) (*ReportSummary, error)
	GetDailySales(businessID uuid.UUID, start, end time.Time) ([]repository.DailySalesData, error)
}

type reportService struct {
	transactionRepo repository.TransactionRepository
	expenseRepo     repository.ExpenseRepository
}

func NewReportService(tRepo repository.TransactionRepository, eRepo repository.ExpenseRepository) ReportService {
	return &reportService{
		transactionRepo: tRepo,
		expenseRepo:     eRepo,
	}
}

func (s *reportService) GetSummary(businessID uuid.UUID, start, end time.Time) (*ReportSummary, error) {
	sales, err := s.transactionRepo.GetSalesSummary(businessID, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.TotalAmount(businessID, start, end)
	if err != nil {
		return nil, err
	}

	return &ReportSummary{
		StartDate:        start.Format("2006-01-02"),
		EndDate:          end.Format("2006-01-02"),
		Revenue:          sales.Revenue,
		TransactionCount: sales.TransactionCount,
		GrossProfit:      sales.GrossProfit,
		TotalExpenses:    expenses,
		NetProfit:        sales.GrossProfit - expenses,
	}, nil
}

func (s *reportService) GetDailySales(businessID uuid.UUID, start, end time.Time) ([]repository.DailySalesData, error) {
	return s.transactionRepo.GetDailySales(businessID, start, end)
}
