package model

import "github.com/google/uuid"

const defaultMinStock = 5

type Category struct {
	BaseModel
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
}

func (Category) TableName() string {
	return "categories"
}

type Product struct {
	BaseModel
	BusinessID uuid.UUID  `gorm:"type:uuid;not null;index" json:"business_id"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`

	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Barcode string `gorm:"type:varchar(64)" json:"barcode"`
	Unit    string `gorm:"type:varchar(20);default:'pcs'" json:"unit"`

	// Prices are whole currency units (rupiah). PurchasePrice is the
	// latest purchase cost (last-price-wins, see stock ledger).
	PurchasePrice int64 `gorm:"default:0" json:"purchase_price" validate:"gte=0"`
	SellingPrice  int64 `gorm:"default:0" json:"selling_price" validate:"gte=0"`

	StockQuantity int  `gorm:"default:0" json:"stock_quantity"`
	MinStock      int  `gorm:"default:5" json:"min_stock"`
	IsFavorite    bool `gorm:"default:false" json:"is_favorite"`
	IsActive      bool `gorm:"default:true" json:"is_active"`
}

func (Product) TableName() string {
	return "products"
}

// LowStockThreshold is the quantity at or below which the product is
// flagged as low stock. MinStock below the default is ignored.
func (p *Product) LowStockThreshold() int {
	if p.MinStock > defaultMinStock {
		return p.MinStock
	}
	return defaultMinStock
}

func (p *Product) IsOutOfStock() bool {
	return p.StockQuantity <= 0
}

func (p *Product) IsLowStock() bool {
	return p.StockQuantity > 0 && p.StockQuantity <= p.LowStockThreshold()
}
