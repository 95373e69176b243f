package repository

import (
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailySalesData untuk chart data
type DailySalesData struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
	Count   int64  `json:"count"`
}

// SalesSummary untuk overview stats
type SalesSummary struct {
	Revenue          int64 `json:"revenue"`
	TransactionCount int64 `json:"transaction_count"`
	GrossProfit      int64 `json:"gross_profit"`
}

type TransactionRepository interface {
	CreateWithItems(tx *gorm.DB, transaction *model.Transaction) error
	CountForDay(tx *gorm.DB, businessID uuid.UUID, day time.Time) (int64, error)
	FindAll(businessID uuid.UUID, start, end time.Time) ([]model.Transaction, error)
	FindByID(businessID, id uuid.UUID) (*model.Transaction, error)
	GetSalesSummary(businessID uuid.UUID, start, end time.Time) (*SalesSummary, error)
	GetDailySales(businessID uuid.UUID, start, end time.Time) ([]DailySalesData, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// CreateWithItems inserts the header and its items in one go; GORM
// cascades the Items association within the caller's transaction.
func (r *transactionRepo) CreateWithItems(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) CountForDay(tx *gorm.DB, businessID uuid.UUID, day time.Time) (int64, error) {
	var count int64
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	err := tx.Model(&model.Transaction{}).
		Where("business_id = ? AND created_at >= ? AND created_at < ?", businessID, start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}

func (r *transactionRepo) FindAll(businessID uuid.UUID, start, end time.Time) ([]model.Transaction, error) {
	var transactions []model.Transaction
	q := r.db.Preload("Items").Preload("Member").
		Where("business_id = ?", businessID)
	if !start.IsZero() {
		q = q.Where("created_at >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("created_at <= ?", end)
	}
	err := q.Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(businessID, id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Items").Preload("Member").
		First(&transaction, "id = ? AND business_id = ?", id, businessID).Error
	return &transaction, err
}

func (r *transactionRepo) GetSalesSummary(businessID uuid.UUID, start, end time.Time) (*SalesSummary, error) {
	var summary SalesSummary

	paid := r.db.Model(&model.Transaction{}).
		Where("business_id = ? AND payment_status = ? AND created_at BETWEEN ? AND ?",
			businessID, model.PaymentStatusPaid, start, end)

	if err := paid.Session(&gorm.Session{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&summary.Revenue).Error; err != nil {
		return nil, err
	}
	if err := paid.Session(&gorm.Session{}).Count(&summary.TransactionCount).Error; err != nil {
		return nil, err
	}

	// Gross profit comes from the per-line snapshots, never recomputed
	// from current catalog prices.
	err := r.db.Model(&model.TransactionItem{}).
		Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
		Where("transactions.business_id = ? AND transactions.payment_status = ? AND transactions.created_at BETWEEN ? AND ?",
			businessID, model.PaymentStatusPaid, start, end).
		Select("COALESCE(SUM(transaction_items.profit), 0)").
		Scan(&summary.GrossProfit).Error
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

func (r *transactionRepo) GetDailySales(businessID uuid.UUID, start, end time.Time) ([]DailySalesData, error) {
	var results []DailySalesData

	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(total_amount), 0) as revenue,
			COUNT(*) as count
		`).
		Where("business_id = ? AND payment_status = ? AND created_at BETWEEN ? AND ?",
			businessID, model.PaymentStatusPaid, start, end).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data DailySalesData
		if err := rows.Scan(&data.Date, &data.Revenue, &data.Count); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
