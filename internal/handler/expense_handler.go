package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	service service.ExpenseService
}

func NewExpenseHandler(s service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: s}
}

// GET /api/v1/expenses
func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	start, end := parseDateRange(c)
	expenses, err := h.service.GetExpenses(businessID, start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(expenses)
}

// POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateExpense(businessID, getUserID(c), &expense); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Expense recorded", "data": expense})
}

// DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}
	expenseID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	if err := h.service.DeleteExpense(businessID, expenseID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense deleted"})
}
