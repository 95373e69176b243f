package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID      *uuid.UUID
	FavoritesOnly   bool
	Search          string
	IncludeInactive bool
}

// ProductCounts feeds the dashboard overview.
type ProductCounts struct {
	TotalProducts int64 `json:"total_products"`
	LowStockCount int64 `json:"low_stock_count"`
	OutOfStock    int64 `json:"out_of_stock_count"`
	Valuation     int64 `json:"total_valuation"`
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(businessID uuid.UUID, filter ProductFilter) ([]model.Product, error)
	FindByID(businessID, id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	Deactivate(businessID, id uuid.UUID) error
	LockByID(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	ApplySaleDelta(tx *gorm.DB, id uuid.UUID, qtySold int) error
	ApplyPurchaseDelta(tx *gorm.DB, id uuid.UUID, qty int, purchasePrice int64) error
	Counts(businessID uuid.UUID) (*ProductCounts, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(businessID uuid.UUID, filter ProductFilter) ([]model.Product, error) {
	q := r.db.Preload("Category").Where("business_id = ?", businessID)
	if !filter.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.FavoritesOnly {
		q = q.Where("is_favorite = ?", true)
	}
	if filter.Search != "" {
		q = q.Where("name ILIKE ? OR barcode = ?", "%"+filter.Search+"%", filter.Search)
	}

	var products []model.Product
	err := q.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(businessID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").
		First(&product, "id = ? AND business_id = ?", id, businessID).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Deactivate(businessID, id uuid.UUID) error {
	return r.db.Model(&model.Product{}).
		Where("id = ? AND business_id = ?", id, businessID).
		Update("is_active", false).Error
}

// LockByID menerima *gorm.DB (tx) agar baris product terkunci selama transaksi
func (r *productRepo) LockByID(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", id).Error
	return &product, err
}

// ApplySaleDelta decrements stock server-side. The delta runs inside
// the SQL statement so concurrent checkouts cannot lose an update.
func (r *productRepo) ApplySaleDelta(tx *gorm.DB, id uuid.UUID, qtySold int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", qtySold)).Error
}

// ApplyPurchaseDelta increments stock and overwrites purchase_price
// with the latest unit cost (last-price-wins).
func (r *productRepo) ApplyPurchaseDelta(tx *gorm.DB, id uuid.UUID, qty int, purchasePrice int64) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity + ?", qty),
			"purchase_price": purchasePrice,
		}).Error
}

func (r *productRepo) Counts(businessID uuid.UUID) (*ProductCounts, error) {
	var counts ProductCounts
	base := r.db.Model(&model.Product{}).Where("business_id = ? AND is_active = ?", businessID, true)

	if err := base.Session(&gorm.Session{}).Count(&counts.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("stock_quantity > 0 AND stock_quantity <= GREATEST(min_stock, 5)").
		Count(&counts.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("stock_quantity <= 0").
		Count(&counts.OutOfStock).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(stock_quantity * selling_price), 0)").
		Scan(&counts.Valuation).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}
