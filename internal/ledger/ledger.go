// Package ledger computes stock mutations: the new on-hand quantity and
// the immutable movement record for a restock, and the decrement for a
// sale. Pure computation; the caller persists both results together.
package ledger

import (
	"time"

	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/model"
)

// PurchaseResult pairs the movement record with the product fields the
// caller must persist in the same transaction.
type PurchaseResult struct {
	Movement         model.StockMovement
	NewStockQuantity int
	NewPurchasePrice int64
}

// ApplyPurchase records a stock purchase. The product's purchase price
// is overwritten with the latest unit price (last-price-wins costing,
// no weighted average). Calling twice with the same arguments appends
// two movements and doubles the quantity delta; movements are never
// deduplicated.
func ApplyPurchase(p *model.Product, qty int, unitPrice int64, refDate time.Time, notes string) (*PurchaseResult, error) {
	if qty < 1 {
		return nil, apperr.Validation("quantity", "quantity must be at least 1")
	}
	if unitPrice < 0 {
		return nil, apperr.Validation("purchase_price", "purchase price must not be negative")
	}

	if notes == "" {
		notes = "Pembelian stok " + p.Name
	}

	movement := model.StockMovement{
		BusinessID:    p.BusinessID,
		ProductID:     p.ID,
		MovementType:  model.MovementPurchase,
		Quantity:      qty,
		Unit:          p.Unit,
		PurchasePrice: unitPrice,
		TotalCost:     int64(qty) * unitPrice,
		Notes:         notes,
		ReferenceDate: refDate,
	}

	return &PurchaseResult{
		Movement:         movement,
		NewStockQuantity: p.StockQuantity + qty,
		NewPurchasePrice: unitPrice,
	}, nil
}

// ApplySale computes the on-hand quantity after selling qtySold units.
// Overselling is rejected; stock never goes negative through this path.
func ApplySale(p *model.Product, qtySold int) (int, error) {
	if qtySold < 1 {
		return 0, apperr.Validation("quantity", "quantity must be at least 1")
	}
	if p.StockQuantity < qtySold {
		return 0, apperr.Validation("stock", "insufficient stock for %q: have %d, need %d", p.Name, p.StockQuantity, qtySold)
	}
	return p.StockQuantity - qtySold, nil
}
