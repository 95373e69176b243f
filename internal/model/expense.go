package model

import (
	"time"

	"github.com/google/uuid"
)

// Expense is an operating cost entry, used only by reporting.
type Expense struct {
	BaseModel
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	Category    string    `gorm:"type:varchar(100)" json:"category"`
	Amount      int64     `gorm:"not null" json:"amount" validate:"gte=0"`
	Notes       string    `gorm:"type:text" json:"notes"`
	ExpenseDate time.Time `gorm:"type:date;index" json:"expense_date"`
}

func (Expense) TableName() string {
	return "expenses"
}
