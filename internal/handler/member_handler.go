package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MemberHandler struct {
	service service.MemberService
}

func NewMemberHandler(s service.MemberService) *MemberHandler {
	return &MemberHandler{service: s}
}

// GET /api/v1/members?search=<name or phone>
func (h *MemberHandler) GetMembers(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	members, err := h.service.GetMembers(businessID, c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(members)
}

// GET /api/v1/members/:id
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}
	memberID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	member, err := h.service.GetMember(businessID, memberID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Member not found"})
	}
	return c.JSON(member)
}

// POST /api/v1/members
func (h *MemberHandler) RegisterMember(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}

	var member model.Member
	if err := c.BodyParser(&member); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Register(businessID, getUserID(c), &member); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Member registered", "data": member})
}

// PUT /api/v1/members/:id
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}
	memberID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	var member model.Member
	if err := c.BodyParser(&member); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateMember(businessID, memberID, getUserID(c), &member)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Member updated", "data": updated})
}

// ResetPoints clears a member's points and drops them back to "baru".
// POST /api/v1/members/:id/reset-points (owner only)
func (h *MemberHandler) ResetPoints(c *fiber.Ctx) error {
	businessID, err := getBusinessID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid business context"})
	}
	memberID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid member ID"})
	}

	if err := h.service.ResetPoints(businessID, memberID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Points reset"})
}
