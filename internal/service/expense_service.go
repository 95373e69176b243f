package service

import (
	"time"

	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
)

type ExpenseService interface {
	CreateExpense(businessID uuid.UUID, actorID string, expense *model.Expense) error
	GetExpenses(businessID uuid.UUID, start, end time.Time) ([]model.Expense, error)
	DeleteExpense(businessID, id uuid.UUID) error
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(eRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: eRepo}
}

func (s *expenseService) CreateExpense(businessID uuid.UUID, actorID string, expense *model.Expense) error {
	expense.BusinessID = businessID
	if expense.ExpenseDate.IsZero() {
		expense.ExpenseDate = time.Now()
	}
	expense.CreatedBy = actorID
	expense.UpdatedBy = actorID

	if errs := validator.ValidateStruct(expense); len(errs) > 0 {
		first := errs[0]
		return apperr.Validation(first.FailedField, "failed on tag '%s'", first.Tag)
	}

	return s.expenseRepo.Create(expense)
}

func (s *expenseService) GetExpenses(businessID uuid.UUID, start, end time.Time) ([]model.Expense, error) {
	return s.expenseRepo.FindAll(businessID, start, end)
}

func (s *expenseService) DeleteExpense(businessID, id uuid.UUID) error {
	return s.expenseRepo.Delete(businessID, id)
}
