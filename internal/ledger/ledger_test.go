package ledger

import (
	"testing"
	"time"

	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
)

func sampleProduct() *model.Product {
	p := &model.Product{
		BusinessID:    uuid.New(),
		Name:          "Beras Premium",
		Unit:          "kg",
		PurchasePrice: 1000,
		SellingPrice:  1500,
		StockQuantity: 3,
	}
	p.ID = uuid.New()
	return p
}

func TestApplyPurchase(t *testing.T) {
	product := sampleProduct()
	refDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	result, err := ApplyPurchase(product, 5, 1200, refDate, "Beli di Toko Sinar Jaya")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.NewStockQuantity != 8 {
		t.Errorf("new stock = %d, want 8", result.NewStockQuantity)
	}
	// Last purchase price always wins; no weighted average.
	if result.NewPurchasePrice != 1200 {
		t.Errorf("new purchase price = %d, want 1200", result.NewPurchasePrice)
	}

	m := result.Movement
	if m.MovementType != model.MovementPurchase {
		t.Errorf("movement type = %q, want %q", m.MovementType, model.MovementPurchase)
	}
	if m.Quantity != 5 {
		t.Errorf("movement quantity = %d, want 5", m.Quantity)
	}
	if m.TotalCost != 6000 {
		t.Errorf("total cost = %d, want 6000", m.TotalCost)
	}
	if m.Unit != "kg" {
		t.Errorf("unit = %q, want kg", m.Unit)
	}
	if m.PurchasePrice != 1200 {
		t.Errorf("movement purchase price = %d, want 1200", m.PurchasePrice)
	}
	if !m.ReferenceDate.Equal(refDate) {
		t.Errorf("reference date = %v, want %v", m.ReferenceDate, refDate)
	}
	if m.Notes != "Beli di Toko Sinar Jaya" {
		t.Errorf("notes = %q", m.Notes)
	}
	if m.ProductID != product.ID || m.BusinessID != product.BusinessID {
		t.Error("movement not linked to product/business")
	}
}

func TestApplyPurchaseDefaultNotes(t *testing.T) {
	product := sampleProduct()
	result, err := ApplyPurchase(product, 1, 1000, time.Now(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Pembelian stok Beras Premium"
	if result.Movement.Notes != want {
		t.Errorf("notes = %q, want %q", result.Movement.Notes, want)
	}
}

// Restocks are append-only and never deduplicated: the same call twice
// yields two movements and twice the quantity delta.
func TestApplyPurchaseNotIdempotent(t *testing.T) {
	product := sampleProduct()
	refDate := time.Now()

	first, err := ApplyPurchase(product, 5, 1200, refDate, "restock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	product.StockQuantity = first.NewStockQuantity

	second, err := ApplyPurchase(product, 5, 1200, refDate, "restock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.NewStockQuantity != 13 { // 3 + 5 + 5
		t.Errorf("stock after double restock = %d, want 13", second.NewStockQuantity)
	}
	if first.Movement.TotalCost != second.Movement.TotalCost {
		t.Error("expected two equivalent movement records")
	}
}

func TestApplyPurchaseValidation(t *testing.T) {
	product := sampleProduct()

	for _, qty := range []int{0, -3} {
		if _, err := ApplyPurchase(product, qty, 1000, time.Now(), ""); !apperr.IsValidation(err) {
			t.Errorf("quantity %d: expected validation error, got %v", qty, err)
		}
	}
	if _, err := ApplyPurchase(product, 1, -50, time.Now(), ""); !apperr.IsValidation(err) {
		t.Errorf("negative price: expected validation error, got %v", err)
	}
}

func TestApplySale(t *testing.T) {
	product := sampleProduct() // stock 3

	newStock, err := ApplySale(product, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newStock != 1 {
		t.Errorf("new stock = %d, want 1", newStock)
	}

	newStock, err = ApplySale(product, 3)
	if err != nil {
		t.Fatalf("unexpected error selling exact stock: %v", err)
	}
	if newStock != 0 {
		t.Errorf("new stock = %d, want 0", newStock)
	}
}

func TestApplySaleRejectsOversell(t *testing.T) {
	product := sampleProduct() // stock 3

	_, err := ApplySale(product, 4)
	if err == nil {
		t.Fatal("expected oversell rejection")
	}
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %T: %v", err, err)
	}
}

func TestApplySaleValidation(t *testing.T) {
	product := sampleProduct()
	for _, qty := range []int{0, -1} {
		if _, err := ApplySale(product, qty); !apperr.IsValidation(err) {
			t.Errorf("quantity %d: expected validation error, got %v", qty, err)
		}
	}
}
