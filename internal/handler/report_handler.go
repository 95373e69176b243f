package handler

import (
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService    service.ReportService
	dashboardService service.DashboardService
}

func NewReportHandler(rs service.ReportService, ds service.DashboardService) *ReportHandler {
	return &ReportHandler{
		reportService:    rs,
		dashboardService: ds,
	}
}

// GetSummary returns the profit & loss view for a range.
// GET /api/v1/reports/summary?range=7d
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	start, end := parseDateRange(c)
	summary, err := h.reportService.GetSummary(businessID, start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}

// GetDailySales returns the per-day revenue series for charts.
// GET /api/v1/reports/daily-sales?range=1m
func (h *ReportHandler) GetDailySales(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	start, end := parseDateRange(c)
	series, err := h.reportService.GetDailySales(businessID, start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(series)
}

// GetDashboardStats returns today's totals and stock health counters.
// GET /api/v1/dashboard/stats
func (h *ReportHandler) GetDashboardStats(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	stats, err := h.dashboardService.GetStats(businessID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}
