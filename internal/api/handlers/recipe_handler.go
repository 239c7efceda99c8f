package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"Scanstock-Backend/domain"
	"Scanstock-Backend/internal/api/presenters"
	"Scanstock-Backend/pkg/recipe"
)

type (
	RecipeHandler interface {
		ProxyRecipes(c *fiber.Ctx) error
		GetSuggestions(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{recipeService: recipeService}
}

// ProxyRecipes is the guest-facing passthrough. It keeps the upstream
// response shape of the proxy rather than the envelope the other handlers
// use, so existing scanning clients keep working unchanged.
func (h *recipeHandler) ProxyRecipes(c *fiber.Ctx) error {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Headers", "Content-Type")
	c.Set("Access-Control-Allow-Methods", "GET, OPTIONS")

	if c.Method() == fiber.MethodOptions {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var ingredients []string
	if raw := c.Query("ingredients"); raw != "" {
		ingredients = strings.Split(raw, ",")
	}

	res, err := h.recipeService.FindByIngredients(c.Context(), ingredients)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipes, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *recipeHandler) GetSuggestions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recipeService.GetSuggestions(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipes, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}
