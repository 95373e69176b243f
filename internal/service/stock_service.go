package service

import (
	"time"

	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/ledger"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddStockRequest struct {
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	PurchasePrice int64  `json:"purchase_price" validate:"gte=0"`
	ReferenceDate string `json:"reference_date"` // YYYY-MM-DD, defaults to today
	Notes         string `json:"notes"`
}

type StockAlerts struct {
	OutOfStock []model.Product `json:"out_of_stock"`
	LowStock   []model.Product `json:"low_stock"`
}

type StockService interface {
	AddStock(businessID uuid.UUID, actorID string, productID uuid.UUID, req *AddStockRequest) (*model.StockMovement, error)
	GetMovements(businessID uuid.UUID, productID *uuid.UUID) ([]model.StockMovement, error)
	GetStockAlerts(businessID uuid.UUID) (*StockAlerts, error)
}

type stockService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewStockService(pRepo repository.ProductRepository, mRepo repository.StockMovementRepository, db *gorm.DB, hub *ws.Hub) StockService {
	return &stockService{
		productRepo:  pRepo,
		movementRepo: mRepo,
		db:           db,
		wsHub:        hub,
	}
}

// AddStock records a purchase movement and applies the quantity and
// price change to the product in the same database transaction.
func (s *stockService) AddStock(businessID uuid.UUID, actorID string, productID uuid.UUID, req *AddStockRequest) (*model.StockMovement, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.Validation(first.FailedField, "failed on tag '%s'", first.Tag)
	}

	refDate := time.Now()
	if req.ReferenceDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ReferenceDate)
		if err != nil {
			return nil, apperr.Validation("reference_date", "expected YYYY-MM-DD")
		}
		refDate = parsed
	}

	var (
		movement *model.StockMovement
		newStock int
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.LockByID(tx, productID)
		if err != nil {
			return apperr.ErrNotFound
		}
		if product.BusinessID != businessID {
			return apperr.ErrNotFound
		}

		result, err := ledger.ApplyPurchase(product, req.Quantity, req.PurchasePrice, refDate, req.Notes)
		if err != nil {
			return err
		}

		result.Movement.CreatedBy = actorID
		result.Movement.UpdatedBy = actorID
		if err := s.movementRepo.Create(tx, &result.Movement); err != nil {
			return err
		}
		if err := s.productRepo.ApplyPurchaseDelta(tx, product.ID, req.Quantity, result.NewPurchasePrice); err != nil {
			return err
		}

		movement = &result.Movement
		newStock = result.NewStockQuantity
		return nil
	})

	if err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "stock_purchased",
		"product": map[string]interface{}{
			"id":        productID,
			"new_stock": newStock,
		},
		"movement": map[string]interface{}{
			"id":         movement.ID,
			"quantity":   movement.Quantity,
			"total_cost": movement.TotalCost,
		},
		"actor_id": actorID,
	})

	return movement, nil
}

func (s *stockService) GetMovements(businessID uuid.UUID, productID *uuid.UUID) ([]model.StockMovement, error) {
	return s.movementRepo.FindAll(businessID, productID)
}

func (s *stockService) GetStockAlerts(businessID uuid.UUID) (*StockAlerts, error) {
	products, err := s.productRepo.FindAll(businessID, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}

	alerts := &StockAlerts{
		OutOfStock: []model.Product{},
		LowStock:   []model.Product{},
	}
	for _, p := range products {
		switch {
		case p.IsOutOfStock():
			alerts.OutOfStock = append(alerts.OutOfStock, p)
		case p.IsLowStock():
			alerts.LowStock = append(alerts.LowStock, p)
		}
	}
	return alerts, nil
}
