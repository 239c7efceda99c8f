package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Scanstock-Backend/domain"
	"Scanstock-Backend/internal/api/presenters"
	"Scanstock-Backend/pkg/inventory"
)

type (
	ScanHandler interface {
		RecordScan(c *fiber.Ctx) error
		RecordFileScan(c *fiber.Ctx) error
		UpdateScan(c *fiber.Ctx) error
		SyncPendingScans(c *fiber.Ctx) error
	}

	scanHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewScanHandler(inventoryService inventory.InventoryService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *scanHandler) RecordScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecordScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if req.Source == "" {
		req.Source = "camera"
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordScan, err)
	}

	res := h.inventoryService.RecordScan(c.Context(), *req, userID)
	return h.respondSave(c, res)
}

func (h *scanHandler) RecordFileScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.FileScanRequest)

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if raw := c.FormValue("expires_at"); raw != "" {
		expiresAt, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrInvalidExpiresAt)
		}
		req.ExpiresAt = &expiresAt
	}
	req.Notes = c.FormValue("notes")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecodeFileScan, err)
	}

	res := h.inventoryService.RecordFileScan(c.Context(), image, *req, userID)
	return h.respondSave(c, res)
}

// respondSave maps the routing outcome of a write to a status code. Failed
// writes are part of the contract, not transport errors: the body always
// carries the actionable flag.
func (h *scanHandler) respondSave(c *fiber.Ctx, res domain.SaveResult) error {
	switch {
	case res.RequiresAuth:
		return presenters.SuccessResponse(c, res, fiber.StatusUnauthorized, domain.MessageFailedRecordScan)
	case res.RequiresRemote:
		return presenters.SuccessResponse(c, res, fiber.StatusConflict, domain.MessageFailedRecordScan)
	case res.Error != nil:
		if errors.Is(res.Error, domain.ErrDecoderUnavailable) || errors.Is(res.Error, domain.ErrLookupFailure) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedDecodeFileScan, res.Error)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordScan, res.Error)
	default:
		return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRecordScan)
	}
}

func (h *scanHandler) UpdateScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")
	req := new(domain.UpdateScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateScan, err)
	}

	if err := h.inventoryService.UpdateScan(c.Context(), scanID, *req, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrScanNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateScan, err)
		case errors.Is(err, domain.ErrUserNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateScan, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateScan)
}

func (h *scanHandler) SyncPendingScans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.inventoryService.SyncPendingScans(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteUnconfigured) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSyncScans, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSyncScans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSyncScans)
}
