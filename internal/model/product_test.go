package model

import (
	"testing"
	"time"
)

func TestStockClassification(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minStock int
		out      bool
		low      bool
	}{
		{"negative stock is out", -2, 5, true, false},
		{"zero stock is out", 0, 5, true, false},
		{"one unit is low", 1, 5, false, true},
		{"at default threshold", 5, 5, false, true},
		{"above default threshold", 6, 5, false, false},
		{"custom threshold raises bound", 8, 10, false, true},
		{"above custom threshold", 11, 10, false, false},
		{"min_stock below default is ignored", 4, 2, false, true},
		{"min_stock unset uses default", 5, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{StockQuantity: tt.stock, MinStock: tt.minStock}
			if got := p.IsOutOfStock(); got != tt.out {
				t.Errorf("IsOutOfStock() = %v, want %v", got, tt.out)
			}
			if got := p.IsLowStock(); got != tt.low {
				t.Errorf("IsLowStock() = %v, want %v", got, tt.low)
			}
		})
	}
}

func TestFormatTransactionNumber(t *testing.T) {
	day := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	if got := FormatTransactionNumber(day, 1); got != "TRX-20260831-0001" {
		t.Errorf("got %q, want TRX-20260831-0001", got)
	}
	if got := FormatTransactionNumber(day, 42); got != "TRX-20260831-0042" {
		t.Errorf("got %q, want TRX-20260831-0042", got)
	}
	if got := FormatTransactionNumber(day, 12345); got != "TRX-20260831-12345" {
		t.Errorf("got %q, want TRX-20260831-12345", got)
	}
}
