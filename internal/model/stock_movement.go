package model

import (
	"time"

	"github.com/google/uuid"
)

type MovementType string

const (
	MovementPurchase MovementType = "purchase"
)

// StockMovement is an append-only ledger entry recording a
// stock-affecting event. Rows are never updated or deleted.
type StockMovement struct {
	BaseModel
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`

	MovementType  MovementType `gorm:"type:varchar(20);not null" json:"movement_type"`
	Quantity      int          `gorm:"not null" json:"quantity"`
	Unit          string       `gorm:"type:varchar(20)" json:"unit"`
	PurchasePrice int64        `gorm:"default:0" json:"purchase_price"`
	TotalCost     int64        `gorm:"default:0" json:"total_cost"`
	Notes         string       `gorm:"type:text" json:"notes"`
	ReferenceDate time.Time    `gorm:"type:date" json:"reference_date"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
