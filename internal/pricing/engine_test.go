package pricing

import (
	"testing"

	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/model"
)

var testConfig = model.LoyaltyConfig{
	PointValue:      10000,
	SilverPercent:   5,
	GoldPercent:     10,
	PlatinumPercent: 15,
}

func memberWithLevel(level model.MemberLevel) *model.Member {
	return &model.Member{Name: "Test Member", Level: level}
}

func sampleCart() []CartLine {
	return []CartLine{
		{Name: "Kopi Sachet", Quantity: 2, SellingPrice: 10000, PurchasePrice: 7000},
		{Name: "Gula 1kg", Quantity: 1, SellingPrice: 5000, PurchasePrice: 4000},
	}
}

func TestComputeCheckoutDiscountPerTier(t *testing.T) {
	tests := []struct {
		name         string
		member       *model.Member
		wantPercent  int64
		wantDiscount int64
		wantTotal    int64
	}{
		{"walk-in", nil, 0, 0, 25000},
		{"baru", memberWithLevel(model.LevelBaru), 0, 0, 25000},
		{"silver", memberWithLevel(model.LevelSilver), 5, 1250, 23750},
		{"gold", memberWithLevel(model.LevelGold), 10, 2500, 22500},
		{"platinum", memberWithLevel(model.LevelPlatinum), 15, 3750, 21250},
		{"unknown level", memberWithLevel("diamond"), 0, 0, 25000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeCheckout(sampleCart(), tt.member, testConfig, model.PaymentQRIS, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Subtotal != 25000 {
				t.Errorf("subtotal = %d, want 25000", result.Subtotal)
			}
			if result.DiscountPercentage != tt.wantPercent {
				t.Errorf("discount percentage = %d, want %d", result.DiscountPercentage, tt.wantPercent)
			}
			if result.DiscountAmount != tt.wantDiscount {
				t.Errorf("discount amount = %d, want %d", result.DiscountAmount, tt.wantDiscount)
			}
			if result.FinalTotal != tt.wantTotal {
				t.Errorf("final total = %d, want %d", result.FinalTotal, tt.wantTotal)
			}
			if result.FinalTotal != result.Subtotal-result.DiscountAmount {
				t.Errorf("final total %d != subtotal %d - discount %d", result.FinalTotal, result.Subtotal, result.DiscountAmount)
			}
		})
	}
}

func TestComputeCheckoutCashPayment(t *testing.T) {
	// Gold member, subtotal 25000, 10% off -> 22500 due.
	member := memberWithLevel(model.LevelGold)

	t.Run("sufficient cash", func(t *testing.T) {
		result, err := ComputeCheckout(sampleCart(), member, testConfig, model.PaymentCash, 25000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Change != 2500 {
			t.Errorf("change = %d, want 2500", result.Change)
		}
		if result.PointsEarned != 2 {
			t.Errorf("points = %d, want 2", result.PointsEarned)
		}
	})

	t.Run("exact cash", func(t *testing.T) {
		result, err := ComputeCheckout(sampleCart(), member, testConfig, model.PaymentCash, 22500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Change != 0 {
			t.Errorf("change = %d, want 0", result.Change)
		}
	})

	t.Run("insufficient cash rejected", func(t *testing.T) {
		_, err := ComputeCheckout(sampleCart(), member, testConfig, model.PaymentCash, 20000)
		if err == nil {
			t.Fatal("expected rejection, got nil error")
		}
		if !apperr.IsValidation(err) {
			t.Errorf("expected validation error, got %T: %v", err, err)
		}
	})
}

func TestComputeCheckoutNonCashAlwaysSatisfiable(t *testing.T) {
	for _, method := range []model.PaymentMethod{model.PaymentQRIS, model.PaymentTransfer} {
		result, err := ComputeCheckout(sampleCart(), nil, testConfig, method, 0)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}
		if result.Change != 0 {
			t.Errorf("%s: change = %d, want 0", method, result.Change)
		}
	}
}

func TestComputeCheckoutPoints(t *testing.T) {
	tests := []struct {
		name       string
		price      int64
		pointValue int64
		wantPoints int64
	}{
		{"below one point", 9999, 10000, 0},
		{"exactly one point", 10000, 10000, 1},
		{"floor not round", 19999, 10000, 1},
		{"several points", 57000, 10000, 5},
		{"zero point value uses default", 25000, 0, 2},
		{"negative point value uses default", 25000, -5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig
			cfg.PointValue = tt.pointValue
			cart := []CartLine{{Name: "Item", Quantity: 1, SellingPrice: tt.price}}
			result, err := ComputeCheckout(cart, nil, cfg, model.PaymentTransfer, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.PointsEarned != tt.wantPoints {
				t.Errorf("points = %d, want %d", result.PointsEarned, tt.wantPoints)
			}
		})
	}
}

func TestComputeCheckoutPointsMonotonic(t *testing.T) {
	var prev int64 = -1
	for total := int64(0); total <= 50000; total += 2500 {
		cart := []CartLine{{Name: "Item", Quantity: 1, SellingPrice: total}}
		result, err := ComputeCheckout(cart, nil, testConfig, model.PaymentTransfer, 0)
		if err != nil {
			t.Fatalf("unexpected error at total %d: %v", total, err)
		}
		if result.PointsEarned < 0 {
			t.Fatalf("negative points at total %d", total)
		}
		if result.PointsEarned < prev {
			t.Fatalf("points decreased from %d to %d at total %d", prev, result.PointsEarned, total)
		}
		prev = result.PointsEarned
	}
}

func TestComputeCheckoutValidation(t *testing.T) {
	tests := []struct {
		name string
		cart []CartLine
	}{
		{"empty cart", nil},
		{"zero quantity", []CartLine{{Name: "Item", Quantity: 0, SellingPrice: 1000}}},
		{"negative quantity", []CartLine{{Name: "Item", Quantity: -2, SellingPrice: 1000}}},
		{"negative price", []CartLine{{Name: "Item", Quantity: 1, SellingPrice: -100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeCheckout(tt.cart, nil, testConfig, model.PaymentTransfer, 0)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperr.IsValidation(err) {
				t.Errorf("expected validation error, got %T: %v", err, err)
			}
		})
	}
}

func TestBreakdownLine(t *testing.T) {
	tests := []struct {
		name     string
		line     CartLine
		subtotal int64
		hpp      int64
		profit   int64
	}{
		{"normal margin", CartLine{Quantity: 2, SellingPrice: 10000, PurchasePrice: 7000}, 20000, 14000, 6000},
		{"zero cost", CartLine{Quantity: 3, SellingPrice: 5000, PurchasePrice: 0}, 15000, 0, 15000},
		{"sold at loss", CartLine{Quantity: 1, SellingPrice: 4000, PurchasePrice: 5000}, 4000, 5000, -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BreakdownLine(tt.line)
			if b.Subtotal != tt.subtotal || b.HPPTotal != tt.hpp || b.Profit != tt.profit {
				t.Errorf("got (%d, %d, %d), want (%d, %d, %d)",
					b.Subtotal, b.HPPTotal, b.Profit, tt.subtotal, tt.hpp, tt.profit)
			}
			// Line subtotal always splits into cost plus profit.
			if b.Subtotal != b.HPPTotal+b.Profit {
				t.Errorf("subtotal %d != hpp %d + profit %d", b.Subtotal, b.HPPTotal, b.Profit)
			}
		})
	}
}

func TestDiscountPercentUnknownLevelDefaultsToZero(t *testing.T) {
	if pct := DiscountPercent("vip", testConfig); pct != 0 {
		t.Errorf("unknown level percent = %d, want 0", pct)
	}
	if pct := DiscountPercent("", testConfig); pct != 0 {
		t.Errorf("empty level percent = %d, want 0", pct)
	}
}
