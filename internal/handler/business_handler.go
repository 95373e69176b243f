package handler

import (
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BusinessHandler struct {
	businessRepo   repository.BusinessRepository
	loyaltyService service.LoyaltyService
}

func NewBusinessHandler(bRepo repository.BusinessRepository, ls service.LoyaltyService) *BusinessHandler {
	return &BusinessHandler{
		businessRepo:   bRepo,
		loyaltyService: ls,
	}
}

// GET /api/v1/business
func (h *BusinessHandler) GetBusiness(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	business, err := h.businessRepo.FindByID(businessID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Business not found"})
	}
	return c.JSON(business)
}

type businessUpdateRequest struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	LogoURL      string `json:"logo_url"`
}

// PUT /api/v1/business (owner only)
func (h *BusinessHandler) UpdateBusiness(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	var req businessUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	business, err := h.businessRepo.FindByID(businessID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Business not found"})
	}

	if req.BusinessName != "" {
		business.BusinessName = req.BusinessName
	}
	business.Address = req.Address
	business.Phone = req.Phone
	business.LogoURL = req.LogoURL
	business.UpdatedBy = getUserID(c)

	if err := h.businessRepo.Update(business); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Business updated", "data": business})
}

// GET /api/v1/loyalty-config
func (h *BusinessHandler) GetLoyaltyConfig(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	business, err := h.loyaltyService.GetConfig(businessID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Business not found"})
	}
	return c.JSON(fiber.Map{
		"point_value_requirement":   business.PointValueRequirement,
		"discount_silver_percent":   business.DiscountSilverPercent,
		"discount_gold_percent":     business.DiscountGoldPercent,
		"discount_platinum_percent": business.DiscountPlatinumPercent,
		"is_auto_tier_enabled":      business.IsAutoTierEnabled,
		"tier_silver_threshold":     business.TierSilverThreshold,
		"tier_gold_threshold":       business.TierGoldThreshold,
		"tier_platinum_threshold":   business.TierPlatinumThreshold,
	})
}

// PUT /api/v1/loyalty-config (owner only)
func (h *BusinessHandler) UpdateLoyaltyConfig(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	var req service.LoyaltyConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	business, err := h.loyaltyService.UpdateConfig(businessID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Loyalty settings updated", "data": business})
}
