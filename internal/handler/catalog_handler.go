package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GetProducts lists products. Filters: ?category=<uuid>, ?favorites=
// true, ?search=<name or barcode>, ?include_inactive=true.
// GET /api/v1/products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	filter := repository.ProductFilter{
		FavoritesOnly:   c.Query("favorites") == "true",
		Search:          c.Query("search"),
		IncludeInactive: c.Query("include_inactive") == "true",
	}
	if catStr := c.Query("category"); catStr != "" {
		catID, err := parseUUID(catStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
		}
		filter.CategoryID = &catID
	}

	products, err := h.service.GetProducts(businessID, filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

// GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProduct(businessID, productID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(product)
}

// POST /api/v1/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(businessID, getUserID(c), &product); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// PUT /api/v1/products/:id
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(businessID, productID, getUserID(c), &product)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

// DELETE /api/v1/products/:id (soft delete via is_active)
func (h *CatalogHandler) DeactivateProduct(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeactivateProduct(businessID, productID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deactivated"})
}

type categoryRequest struct {
	Name string `json:"name"`
}

// GET /api/v1/categories
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	categories, err := h.service.GetCategories(businessID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(categories)
}

// POST /api/v1/categories
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.CreateCategory(businessID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

// PUT /api/v1/categories/:id
func (h *CatalogHandler) RenameCategory(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}
	categoryID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.RenameCategory(businessID, categoryID, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": category})
}

// DELETE /api/v1/categories/:id
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}
	categoryID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.service.DeleteCategory(businessID, categoryID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}
