package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Scanstock-Backend/domain"
	"Scanstock-Backend/internal/api/presenters"
	"Scanstock-Backend/pkg/localstore"
)

type (
	// SettingsHandler exposes the scanner settings kept in the local store:
	// whether scans are added to history, continuous scanning, and the
	// accepted barcode formats.
	SettingsHandler interface {
		GetSettings(c *fiber.Ctx) error
		UpdateSettings(c *fiber.Ctx) error
	}

	settingsHandler struct {
		store localstore.Store
	}
)

func NewSettingsHandler(store localstore.Store) SettingsHandler {
	return &settingsHandler{store: store}
}

func (h *settingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.store.GetSettings(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}
	return presenters.SuccessResponse(c, settings, fiber.StatusOK, domain.MessageSuccessGetSettings)
}

func (h *settingsHandler) UpdateSettings(c *fiber.Ctx) error {
	req := new(localstore.Settings)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.store.Configure(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateSettings, err)
	}
	return presenters.SuccessResponse(c, req, fiber.StatusOK, domain.MessageSuccessUpdateSettings)
}
