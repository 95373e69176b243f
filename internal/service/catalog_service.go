package service

import (
	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
)

type CatalogService interface {
	CreateProduct(businessID uuid.UUID, actorID string, product *model.Product) error
	UpdateProduct(businessID, id uuid.UUID, actorID string, req *model.Product) (*model.Product, error)
	DeactivateProduct(businessID, id uuid.UUID) error
	GetProducts(businessID uuid.UUID, filter repository.ProductFilter) ([]model.Product, error)
	GetProduct(businessID, id uuid.UUID) (*model.Product, error)

	CreateCategory(businessID uuid.UUID, name string) (*model.Category, error)
	GetCategories(businessID uuid.UUID) ([]model.Category, error)
	RenameCategory(businessID, id uuid.UUID, name string) (*model.Category, error)
	DeleteCategory(businessID, id uuid.UUID) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
	}
}

func (s *catalogService) CreateProduct(businessID uuid.UUID, actorID string, product *model.Product) error {
	product.BusinessID = businessID
	if product.Unit == "" {
		product.Unit = "pcs"
	}
	if product.MinStock == 0 {
		product.MinStock = 5
	}
	product.IsActive = true
	product.CreatedBy = actorID
	product.UpdatedBy = actorID

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return apperr.Validation(first.FailedField, "failed on tag '%s'", first.Tag)
	}

	if product.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(businessID, *product.CategoryID); err != nil {
			return apperr.Validation("category_id", "category not found")
		}
	}

	return s.productRepo.Create(product)
}

func (s *catalogService) UpdateProduct(businessID, id uuid.UUID, actorID string, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(businessID, id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	// Stock and purchase price are owned by the stock ledger; direct
	// edits only touch catalog fields.
	existing.Name = req.Name
	existing.Barcode = req.Barcode
	existing.Unit = req.Unit
	existing.CategoryID = req.CategoryID
	existing.SellingPrice = req.SellingPrice
	existing.MinStock = req.MinStock
	existing.IsFavorite = req.IsFavorite
	existing.UpdatedBy = actorID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.Validation(first.FailedField, "failed on tag '%s'", first.Tag)
	}

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeactivateProduct(businessID, id uuid.UUID) error {
	return s.productRepo.Deactivate(businessID, id)
}

func (s *catalogService) GetProducts(businessID uuid.UUID, filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(businessID, filter)
}

func (s *catalogService) GetProduct(businessID, id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(businessID, id)
}

func (s *catalogService) CreateCategory(businessID uuid.UUID, name string) (*model.Category, error) {
	if name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	category := &model.Category{
		BusinessID: businessID,
		Name:       name,
		IsActive:   true,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) GetCategories(businessID uuid.UUID) ([]model.Category, error) {
	return s.categoryRepo.FindAll(businessID)
}

func (s *catalogService) RenameCategory(businessID, id uuid.UUID, name string) (*model.Category, error) {
	if name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	category, err := s.categoryRepo.FindByID(businessID, id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	category.Name = name
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteCategory(businessID, id uuid.UUID) error {
	return s.categoryRepo.Delete(businessID, id)
}
