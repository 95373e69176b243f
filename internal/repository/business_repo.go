package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessRepository interface {
	Create(business *model.Business) error
	FindByID(id uuid.UUID) (*model.Business, error)
	FindByOwner(ownerID uuid.UUID) (*model.Business, error)
	Update(business *model.Business) error
	UpdateLoyalty(id uuid.UUID, fields map[string]interface{}) error
}

type businessRepo struct {
	db *gorm.DB
}

func NewBusinessRepo(db *gorm.DB) BusinessRepository {
	return &businessRepo{db}
}

func (r *businessRepo) Create(business *model.Business) error {
	return r.db.Create(business).Error
}

func (r *businessRepo) FindByID(id uuid.UUID) (*model.Business, error) {
	var business model.Business
	err := r.db.First(&business, "id = ?", id).Error
	return &business, err
}

func (r *businessRepo) FindByOwner(ownerID uuid.UUID) (*model.Business, error) {
	var business model.Business
	err := r.db.First(&business, "owner_id = ?", ownerID).Error
	return &business, err
}

func (r *businessRepo) Update(business *model.Business) error {
	return r.db.Save(business).Error
}

func (r *businessRepo) UpdateLoyalty(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&model.Business{}).Where("id = ?", id).Updates(fields).Error
}
