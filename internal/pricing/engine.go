// Package pricing implements the checkout calculation: cart subtotal,
// member tier discount, change, and loyalty points. It performs no I/O;
// persistence of the resulting transaction is the caller's job.
package pricing

import (
	"log"

	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
)

// DefaultPointValue is substituted when a business has no (or an
// invalid) point value configured, to avoid division by zero.
const DefaultPointValue int64 = 10000

// CartLine is one product entry in an in-progress cart. Prices are
// snapshots taken when the line was added, not live references.
type CartLine struct {
	ProductID     uuid.UUID
	Name          string
	Quantity      int
	SellingPrice  int64
	PurchasePrice int64
}

// Result is the full checkout breakdown. All amounts are whole
// currency units.
type Result struct {
	Subtotal           int64
	DiscountAmount     int64
	DiscountPercentage int64
	FinalTotal         int64
	Change             int64
	PointsEarned       int64
}

// DiscountPercent resolves the whole-number discount percentage for a
// member level. A nil-member checkout (walk-in) and the "baru" level
// get no discount. Unrecognized levels fall back to 0 with a warning
// so a bad row can't silently discount.
func DiscountPercent(level model.MemberLevel, cfg model.LoyaltyConfig) int64 {
	switch level {
	case model.LevelSilver:
		return cfg.SilverPercent
	case model.LevelGold:
		return cfg.GoldPercent
	case model.LevelPlatinum:
		return cfg.PlatinumPercent
	case model.LevelBaru, "":
		return 0
	default:
		log.Printf("pricing: unrecognized member level %q, applying no discount", level)
		return 0
	}
}

// ComputeCheckout prices a cart. member may be nil for walk-in sales;
// points are still computed but the caller has nobody to credit them
// to. cashReceived is only consulted for cash payments.
func ComputeCheckout(cart []CartLine, member *model.Member, cfg model.LoyaltyConfig, method model.PaymentMethod, cashReceived int64) (*Result, error) {
	if len(cart) == 0 {
		return nil, apperr.Validation("cart", "cart is empty")
	}

	var subtotal int64
	for _, line := range cart {
		if line.Quantity < 1 {
			return nil, apperr.Validation("quantity", "quantity must be at least 1 for %q", line.Name)
		}
		if line.SellingPrice < 0 {
			return nil, apperr.Validation("selling_price", "negative price for %q", line.Name)
		}
		subtotal += int64(line.Quantity) * line.SellingPrice
	}

	var pct int64
	if member != nil {
		pct = DiscountPercent(member.Level, cfg)
	}
	discountAmount := subtotal * pct / 100
	finalTotal := subtotal - discountAmount

	pointValue := cfg.PointValue
	if pointValue <= 0 {
		pointValue = DefaultPointValue
	}
	pointsEarned := finalTotal / pointValue

	var change int64
	if method == model.PaymentCash {
		change = cashReceived - finalTotal
		if change < 0 {
			return nil, apperr.Validation("cash_received", "insufficient cash: received %d, need %d", cashReceived, finalTotal)
		}
	}

	return &Result{
		Subtotal:           subtotal,
		DiscountAmount:     discountAmount,
		DiscountPercentage: pct,
		FinalTotal:         finalTotal,
		Change:             change,
		PointsEarned:       pointsEarned,
	}, nil
}

// ItemBreakdown holds the per-line figures persisted on a
// transaction item.
type ItemBreakdown struct {
	Subtotal int64
	HPPTotal int64
	Profit   int64
}

// BreakdownLine computes line subtotal, cost total (HPP) and profit
// from the prices snapshotted at sale time. Invariant:
// Subtotal == HPPTotal + Profit.
func BreakdownLine(line CartLine) ItemBreakdown {
	qty := int64(line.Quantity)
	return ItemBreakdown{
		Subtotal: qty * line.SellingPrice,
		HPPTotal: qty * line.PurchasePrice,
		Profit:   (line.SellingPrice - line.PurchasePrice) * qty,
	}
}
