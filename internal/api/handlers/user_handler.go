package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Scanstock-Backend/domain"
	"Scanstock-Backend/internal/api/presenters"
	"Scanstock-Backend/pkg/user"
)

type (
	UserHandler interface {
		SignInAnonymous(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
	}
)

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandler{userService: userService}
}

func (h *userHandler) SignInAnonymous(c *fiber.Ctx) error {
	res, err := h.userService.SignInAnonymous(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignIn, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSignIn)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedProcessRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSignIn)
}
