package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes = "recipes retrieved successfully"
	MessageFailedGetRecipes  = "failed to retrieve recipes"

	ErrNoIngredients  = errors.New("no ingredients available for recipe suggestions")
	ErrRecipeUpstream = errors.New("recipe upstream request failed")
)

type (
	Recipe struct {
		ID           string   `json:"id"`
		Title        string   `json:"title"`
		Category     string   `json:"category,omitempty"`
		Area         string   `json:"area,omitempty"`
		Instructions string   `json:"instructions,omitempty"`
		ImageURL     string   `json:"image_url,omitempty"`
		Ingredients  []string `json:"ingredients,omitempty"`
	}

	RecipeProxyResponse struct {
		Recipes     []Recipe `json:"recipes"`
		Ingredients []string `json:"ingredients,omitempty"`
		Message     string   `json:"message,omitempty"`
	}

	RecipeSuggestionsResponse struct {
		Recipes       []Recipe `json:"recipes"`
		TotalRecipes  int      `json:"total_recipes"`
		ExpiringItems int      `json:"expiring_items"`
	}
)
