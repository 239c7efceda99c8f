package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Scanstock-Backend/domain"
	"Scanstock-Backend/internal/api/presenters"
	"Scanstock-Backend/pkg/inventory"
)

type (
	InventoryHandler interface {
		GetInventory(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
		GetItemDetail(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &inventoryHandler{inventoryService: inventoryService}
}

func (h *inventoryHandler) GetInventory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	// Reads never fail; a remote outage is reported through the Degraded flag.
	view := h.inventoryService.GetInventory(c.Context(), userID)
	return presenters.SuccessResponse(c, view, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

func (h *inventoryHandler) GetDashboardStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats := h.inventoryService.DashboardStats(c.Context(), userID)
	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *inventoryHandler) GetItemDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	value := c.Params("value")

	item, err := h.inventoryService.GetItemDetail(c.Context(), userID, value)
	if err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetItemDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItemDetail, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetItemDetail)
}
