package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockMovementRepository interface {
	Create(tx *gorm.DB, movement *model.StockMovement) error
	FindAll(businessID uuid.UUID, productID *uuid.UUID) ([]model.StockMovement, error)
}

type stockMovementRepo struct {
	db *gorm.DB
}

func NewStockMovementRepo(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db}
}

// Create appends a ledger row. There is deliberately no update or
// delete: movements are immutable history.
func (r *stockMovementRepo) Create(tx *gorm.DB, movement *model.StockMovement) error {
	return tx.Create(movement).Error
}

func (r *stockMovementRepo) FindAll(businessID uuid.UUID, productID *uuid.UUID) ([]model.StockMovement, error) {
	q := r.db.Preload("Product").Where("business_id = ?", businessID)
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	var movements []model.StockMovement
	err := q.Order("created_at DESC").Find(&movements).Error
	return movements, err
}
