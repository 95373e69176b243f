package handler

import (
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	service service.CheckoutService
}

func NewCheckoutHandler(s service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

// Checkout processes a cart payment.
// POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	var req service.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	response, err := h.service.Checkout(businessID, getUserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payment completed", "data": response})
}

// GetTransactions lists transactions, newest first, optionally
// filtered by date range.
// GET /api/v1/transactions
func (h *CheckoutHandler) GetTransactions(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	start, end := parseDateRange(c)
	transactions, err := h.service.GetTransactions(businessID, start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

// GetTransaction returns one transaction with its items.
// GET /api/v1/transactions/:id
func (h *CheckoutHandler) GetTransaction(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	txID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	transaction, err := h.service.GetTransactionByID(businessID, txID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(transaction)
}
