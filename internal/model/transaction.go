package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentQRIS     PaymentMethod = "qris"
	PaymentTransfer PaymentMethod = "transfer"
)

const PaymentStatusPaid = "paid"

// Transaction is an immutable checkout record. There is no update or
// void path; corrections are new transactions.
type Transaction struct {
	BaseModel
	BusinessID uuid.UUID  `gorm:"type:uuid;not null;index" json:"business_id"`
	MemberID   *uuid.UUID `gorm:"type:uuid;index" json:"member_id"`
	Member     *Member    `gorm:"foreignKey:MemberID" json:"member,omitempty" validate:"-"`

	TransactionNumber string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"transaction_number"`
	PaymentMethod     PaymentMethod `gorm:"type:varchar(10);not null" json:"payment_method" validate:"required,oneof=cash qris transfer"`
	PaymentStatus     string        `gorm:"type:varchar(10);default:'paid'" json:"payment_status"`

	Subtotal           int64 `gorm:"not null" json:"subtotal"`
	DiscountAmount     int64 `gorm:"default:0" json:"discount_amount"`
	DiscountPercentage int64 `gorm:"default:0" json:"discount_percentage"`
	TotalAmount        int64 `gorm:"not null" json:"total_amount"`
	CashReceived       int64 `gorm:"default:0" json:"cash_received"`
	CashChange         int64 `gorm:"default:0" json:"cash_change"`
	PointsEarned       int64 `gorm:"default:0" json:"points_earned"`

	// Insertion-order line items.
	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty" validate:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionItem stores value snapshots, not live product references:
// historical transactions must never change when catalog prices do.
type TransactionItem struct {
	BaseModel
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	ProductName   string    `gorm:"type:varchar(255);not null" json:"product_name"`

	Quantity      int    `gorm:"not null" json:"quantity"`
	Unit          string `gorm:"type:varchar(20)" json:"unit"`
	PurchasePrice int64  `gorm:"default:0" json:"purchase_price"`
	SellingPrice  int64  `gorm:"not null" json:"selling_price"`

	Subtotal int64 `gorm:"not null" json:"subtotal"`
	HPPTotal int64 `gorm:"default:0" json:"hpp_total"`
	Profit   int64 `gorm:"default:0" json:"profit"`
}

func (TransactionItem) TableName() string {
	return "transaction_items"
}

// FormatTransactionNumber builds the human-readable reference number,
// e.g. TRX-20260831-0042. seq is the 1-based sequence for the day.
func FormatTransactionNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("TRX-%s-%04d", t.Format("20060102"), seq)
}
