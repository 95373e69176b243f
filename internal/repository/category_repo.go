package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll(businessID uuid.UUID) ([]model.Category, error)
	FindByID(businessID, id uuid.UUID) (*model.Category, error)
	Update(category *model.Category) error
	Delete(businessID, id uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll(businessID uuid.UUID) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Where("business_id = ? AND is_active = ?", businessID, true).
		Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(businessID, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "id = ? AND business_id = ?", id, businessID).Error
	return &category, err
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(businessID, id uuid.UUID) error {
	return r.db.Delete(&model.Category{}, "id = ? AND business_id = ?", id, businessID).Error
}
