package handler

import (
	"errors"
	"time"

	"go-pos-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Helper untuk ambil User Info dari JWT Context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system" // Fallback jika tidak ada (shouldn't happen in protected routes)
	}
	return userID.(string)
}

// getBusinessID resolves the tenant scope of the request.
func getBusinessID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("business_id").(string)
	if !ok {
		return uuid.Nil, errors.New("no business in context")
	}
	return uuid.Parse(raw)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondError maps service errors onto HTTP statuses: rejected input
// is 400, missing rows 404, everything else 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case apperr.IsValidation(err):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
}

// parseDateRange reads the ?range= query (7d, 1m, 3m, 6m, 12m) or an
// explicit start_date/end_date pair (YYYY-MM-DD).
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time) {
	now := time.Now()

	if startStr := c.Query("start_date"); startStr != "" {
		start, err1 := time.Parse("2006-01-02", startStr)
		end, err2 := time.Parse("2006-01-02", c.Query("end_date"))
		if err1 == nil && err2 == nil {
			return start, end.AddDate(0, 0, 1).Add(-time.Second)
		}
	}

	switch c.Query("range", "7d") {
	case "1m":
		return now.AddDate(0, -1, 0), now
	case "3m":
		return now.AddDate(0, -3, 0), now
	case "6m":
		return now.AddDate(0, -6, 0), now
	case "12m":
		return now.AddDate(0, -12, 0), now
	default:
		return now.AddDate(0, 0, -7), now
	}
}
