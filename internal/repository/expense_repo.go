package repository

import (
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll(businessID uuid.UUID, start, end time.Time) ([]model.Expense, error)
	Delete(businessID, id uuid.UUID) error
	TotalAmount(businessID uuid.UUID, start, end time.Time) (int64, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll(businessID uuid.UUID, start, end time.Time) ([]model.Expense, error) {
	q := r.db.Where("business_id = ?", businessID)
	if !start.IsZero() {
		q = q.Where("expense_date >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("expense_date <= ?", end)
	}
	var expenses []model.Expense
	err := q.Order("expense_date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Delete(businessID, id uuid.UUID) error {
	return r.db.Delete(&model.Expense{}, "id = ? AND business_id = ?", id, businessID).Error
}

func (r *expenseRepo) TotalAmount(businessID uuid.UUID, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&model.Expense{}).
		Where("business_id = ? AND expense_date BETWEEN ? AND ?", businessID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
