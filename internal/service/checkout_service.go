package service

import (
	"errors"
	"time"

	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/ledger"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/pricing"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	// SellingPrice is the price snapshotted when the line was added to
	// the cart. Zero means "use the current catalog price".
	SellingPrice int64 `json:"selling_price" validate:"gte=0"`
}

type CheckoutRequest struct {
	MemberID      *uuid.UUID            `json:"member_id"`
	PaymentMethod model.PaymentMethod   `json:"payment_method" validate:"required,oneof=cash qris transfer"`
	CashReceived  int64                 `json:"cash_received" validate:"gte=0"`
	Items         []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CheckoutResponse struct {
	Transaction  *model.Transaction `json:"transaction"`
	Change       int64              `json:"change"`
	PointsEarned int64              `json:"points_earned"`
}

type CheckoutService interface {
	Checkout(businessID uuid.UUID, actorID string, req *CheckoutRequest) (*CheckoutResponse, error)
	GetTransactions(businessID uuid.UUID, start, end time.Time) ([]model.Transaction, error)
	GetTransactionByID(businessID, id uuid.UUID) (*model.Transaction, error)
}

type checkoutService struct {
	productRepo     repository.ProductRepository
	memberRepo      repository.MemberRepository
	transactionRepo repository.TransactionRepository
	businessRepo    repository.BusinessRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewCheckoutService(
	pRepo repository.ProductRepository,
	mRepo repository.MemberRepository,
	tRepo repository.TransactionRepository,
	bRepo repository.BusinessRepository,
	db *gorm.DB,
	hub *ws.Hub,
) CheckoutService {
	return &checkoutService{
		productRepo:     pRepo,
		memberRepo:      mRepo,
		transactionRepo: tRepo,
		businessRepo:    bRepo,
		db:              db,
		wsHub:           hub,
	}
}

// Checkout prices the cart, persists the transaction with its item
// snapshots, decrements stock, and credits the member - all inside one
// database transaction so a failure never leaves an orphaned header or
// a half-applied stock change.
func (s *checkoutService) Checkout(businessID uuid.UUID, actorID string, req *CheckoutRequest) (*CheckoutResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.Validation(first.FailedField, "failed on tag '%s'", first.Tag)
	}

	business, err := s.businessRepo.FindByID(businessID)
	if err != nil {
		return nil, errors.New("business not found")
	}

	var member *model.Member
	if req.MemberID != nil {
		member, err = s.memberRepo.FindByID(businessID, *req.MemberID)
		if err != nil {
			return nil, apperr.Validation("member_id", "member not found")
		}
	}

	var (
		response *CheckoutResponse
		soldInfo []map[string]interface{}
	)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		cart := make([]pricing.CartLine, 0, len(req.Items))
		products := make([]*model.Product, 0, len(req.Items))

		for _, item := range req.Items {
			product, err := s.productRepo.LockByID(tx, item.ProductID)
			if err != nil {
				return apperr.Validation("product_id", "product not found")
			}
			if product.BusinessID != businessID || !product.IsActive {
				return apperr.Validation("product_id", "product not available")
			}

			price := item.SellingPrice
			if price == 0 {
				price = product.SellingPrice
			}

			cart = append(cart, pricing.CartLine{
				ProductID:     product.ID,
				Name:          product.Name,
				Quantity:      item.Quantity,
				SellingPrice:  price,
				PurchasePrice: product.PurchasePrice,
			})
			products = append(products, product)
		}

		result, err := pricing.ComputeCheckout(cart, member, business.Loyalty(), req.PaymentMethod, req.CashReceived)
		if err != nil {
			return err
		}

		// Stock first, so an oversold line aborts before the header
		// is written.
		for i, line := range cart {
			newStock, err := ledger.ApplySale(products[i], line.Quantity)
			if err != nil {
				return err
			}
			if err := s.productRepo.ApplySaleDelta(tx, line.ProductID, line.Quantity); err != nil {
				return err
			}
			soldInfo = append(soldInfo, map[string]interface{}{
				"product_id": line.ProductID,
				"name":       line.Name,
				"quantity":   line.Quantity,
				"new_stock":  newStock,
				"low_stock":  newStock > 0 && newStock <= products[i].LowStockThreshold(),
			})
		}

		now := time.Now()
		seq, err := s.transactionRepo.CountForDay(tx, businessID, now)
		if err != nil {
			return err
		}

		cashReceived := result.FinalTotal
		if req.PaymentMethod == model.PaymentCash {
			cashReceived = req.CashReceived
		}

		transaction := &model.Transaction{
			BusinessID:         businessID,
			MemberID:           req.MemberID,
			TransactionNumber:  model.FormatTransactionNumber(now, seq+1),
			PaymentMethod:      req.PaymentMethod,
			PaymentStatus:      model.PaymentStatusPaid,
			Subtotal:           result.Subtotal,
			DiscountAmount:     result.DiscountAmount,
			DiscountPercentage: result.DiscountPercentage,
			TotalAmount:        result.FinalTotal,
			CashReceived:       cashReceived,
			CashChange:         result.Change,
			PointsEarned:       result.PointsEarned,
		}
		transaction.CreatedBy = actorID
		transaction.UpdatedBy = actorID

		for _, line := range cart {
			breakdown := pricing.BreakdownLine(line)
			transaction.Items = append(transaction.Items, model.TransactionItem{
				ProductID:     line.ProductID,
				ProductName:   line.Name,
				Quantity:      line.Quantity,
				Unit:          unitFor(products, line.ProductID),
				PurchasePrice: line.PurchasePrice,
				SellingPrice:  line.SellingPrice,
				Subtotal:      breakdown.Subtotal,
				HPPTotal:      breakdown.HPPTotal,
				Profit:        breakdown.Profit,
			})
		}

		if err := s.transactionRepo.CreateWithItems(tx, transaction); err != nil {
			return err
		}

		// Walk-in points are computed but there is nobody to credit.
		if member != nil {
			if err := s.memberRepo.ApplyCheckout(tx, member.ID, result.PointsEarned, result.FinalTotal); err != nil {
				return err
			}
			if business.IsAutoTierEnabled {
				newLevel := model.TierForPoints(member.TotalPoints+result.PointsEarned, business)
				if model.HigherTier(newLevel, member.Level) {
					if err := s.memberRepo.UpdateLevel(tx, member.ID, newLevel); err != nil {
						return err
					}
				}
			}
		}

		response = &CheckoutResponse{
			Transaction:  transaction,
			Change:       result.Change,
			PointsEarned: result.PointsEarned,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Broadcast after commit so a rollback never announces a sale.
	go s.broadcastCheckout(response.Transaction, soldInfo, actorID)

	return response, nil
}

func (s *checkoutService) broadcastCheckout(transaction *model.Transaction, soldInfo []map[string]interface{}, actorID string) {
	s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "transaction_created",
		"transaction": map[string]interface{}{
			"id":                 transaction.ID,
			"transaction_number": transaction.TransactionNumber,
			"total_amount":       transaction.TotalAmount,
			"points_earned":      transaction.PointsEarned,
		},
		"items":    soldInfo,
		"actor_id": actorID,
	})

	for _, info := range soldInfo {
		if low, ok := info["low_stock"].(bool); ok && low {
			s.wsHub.BroadcastJSON(map[string]interface{}{
				"type":       "low_stock_alert",
				"product_id": info["product_id"],
				"name":       info["name"],
				"new_stock":  info["new_stock"],
			})
		}
	}
}

func unitFor(products []*model.Product, id uuid.UUID) string {
	for _, p := range products {
		if p.ID == id {
			return p.Unit
		}
	}
	return "pcs"
}

func (s *checkoutService) GetTransactions(businessID uuid.UUID, start, end time.Time) ([]model.Transaction, error) {
	return s.transactionRepo.FindAll(businessID, start, end)
}

func (s *checkoutService) GetTransactionByID(businessID, id uuid.UUID) (*model.Transaction, error) {
	return s.transactionRepo.FindByID(businessID, id)
}
