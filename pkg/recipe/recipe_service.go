package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Scanstock-Backend/domain"
	"Scanstock-Backend/pkg/inventory"
)

const (
	maxIngredients        = 3
	maxMealsPerIngredient = 5
	maxRecipes            = 10
)

type (
	// RecipeService proxies TheMealDB. It searches by ingredient with
	// filter.php, resolves details with lookup.php, and falls back to
	// random.php when no ingredients are given.
	RecipeService interface {
		FindByIngredients(ctx context.Context, ingredients []string) (domain.RecipeProxyResponse, error)
		GetSuggestions(ctx context.Context, userID string) (domain.RecipeSuggestionsResponse, error)
	}

	recipeService struct {
		baseURL          string
		client           *http.Client
		inventoryService inventory.InventoryService
	}

	mealDBMeal struct {
		ID           string `json:"idMeal"`
		Name         string `json:"strMeal"`
		Category     string `json:"strCategory"`
		Area         string `json:"strArea"`
		Instructions string `json:"strInstructions"`
		Thumbnail    string `json:"strMealThumb"`

		Ingredient1  string `json:"strIngredient1"`
		Ingredient2  string `json:"strIngredient2"`
		Ingredient3  string `json:"strIngredient3"`
		Ingredient4  string `json:"strIngredient4"`
		Ingredient5  string `json:"strIngredient5"`
		Ingredient6  string `json:"strIngredient6"`
		Ingredient7  string `json:"strIngredient7"`
		Ingredient8  string `json:"strIngredient8"`
		Ingredient9  string `json:"strIngredient9"`
		Ingredient10 string `json:"strIngredient10"`
	}

	mealDBResponse struct {
		Meals []mealDBMeal `json:"meals"`
	}
)

func NewRecipeService(baseURL string, inventoryService inventory.InventoryService) RecipeService {
	return &recipeService{
		baseURL:          strings.TrimRight(baseURL, "/"),
		client:           &http.Client{Timeout: 10 * time.Second},
		inventoryService: inventoryService,
	}
}

// FindByIngredients searches one ingredient at a time. An upstream failure
// for one ingredient never fails the whole request: the failing ingredient
// is skipped and whatever was gathered so far is returned.
//
// A nil slice means no ingredients were given at all and triggers the random
// fallback; a present-but-blank list searches nothing and returns an empty
// result.
func (s *recipeService) FindByIngredients(ctx context.Context, ingredients []string) (domain.RecipeProxyResponse, error) {
	if ingredients == nil {
		return s.randomRecipe(ctx)
	}

	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			cleaned = append(cleaned, ing)
		}
	}

	limit := len(cleaned)
	if limit > maxIngredients {
		limit = maxIngredients
	}

	seen := make(map[string]bool)
	recipes := make([]domain.Recipe, 0, maxRecipes)

	for _, ingredient := range cleaned[:limit] {
		meals, err := s.filterByIngredient(ctx, ingredient)
		if err != nil {
			continue
		}

		perIngredient := len(meals)
		if perIngredient > maxMealsPerIngredient {
			perIngredient = maxMealsPerIngredient
		}

		for _, meal := range meals[:perIngredient] {
			if seen[meal.ID] {
				continue
			}
			detail, err := s.lookupMeal(ctx, meal.ID)
			if err != nil || detail == nil {
				continue
			}
			seen[meal.ID] = true
			recipes = append(recipes, toRecipe(*detail))
		}
	}

	if len(recipes) > maxRecipes {
		recipes = recipes[:maxRecipes]
	}

	return domain.RecipeProxyResponse{
		Recipes:     recipes,
		Ingredients: cleaned,
	}, nil
}

// GetSuggestions drives the proxy from the user's inventory, preferring the
// titles of items that expire soonest.
func (s *recipeService) GetSuggestions(ctx context.Context, userID string) (domain.RecipeSuggestionsResponse, error) {
	view := s.inventoryService.GetInventory(ctx, userID)

	var ingredients []string
	expiring := 0
	for _, item := range view.Items {
		if item.Status == domain.StatusExpiring {
			expiring++
		}
		if item.Status == domain.StatusExpired {
			continue
		}
		if item.Title != "" {
			ingredients = append(ingredients, item.Title)
		}
	}

	if len(ingredients) == 0 {
		return domain.RecipeSuggestionsResponse{}, domain.ErrNoIngredients
	}

	proxy, err := s.FindByIngredients(ctx, ingredients)
	if err != nil {
		return domain.RecipeSuggestionsResponse{}, err
	}

	return domain.RecipeSuggestionsResponse{
		Recipes:       proxy.Recipes,
		TotalRecipes:  len(proxy.Recipes),
		ExpiringItems: expiring,
	}, nil
}

func (s *recipeService) randomRecipe(ctx context.Context) (domain.RecipeProxyResponse, error) {
	meals, err := s.fetchMeals(ctx, s.baseURL+"/random.php")
	if err != nil {
		return domain.RecipeProxyResponse{}, fmt.Errorf("%w: %v", domain.ErrRecipeUpstream, err)
	}

	recipes := make([]domain.Recipe, 0, len(meals))
	for _, meal := range meals {
		recipes = append(recipes, toRecipe(meal))
	}

	return domain.RecipeProxyResponse{
		Recipes: recipes,
		Message: "No ingredients provided, returning random recipe",
	}, nil
}

func (s *recipeService) filterByIngredient(ctx context.Context, ingredient string) ([]mealDBMeal, error) {
	return s.fetchMeals(ctx, s.baseURL+"/filter.php?i="+url.QueryEscape(ingredient))
}

func (s *recipeService) lookupMeal(ctx context.Context, id string) (*mealDBMeal, error) {
	meals, err := s.fetchMeals(ctx, s.baseURL+"/lookup.php?i="+url.QueryEscape(id))
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}
	return &meals[0], nil
}

func (s *recipeService) fetchMeals(ctx context.Context, rawURL string) ([]mealDBMeal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var payload mealDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Meals, nil
}

func toRecipe(meal mealDBMeal) domain.Recipe {
	var ingredients []string
	for _, ing := range []string{
		meal.Ingredient1, meal.Ingredient2, meal.Ingredient3, meal.Ingredient4,
		meal.Ingredient5, meal.Ingredient6, meal.Ingredient7, meal.Ingredient8,
		meal.Ingredient9, meal.Ingredient10,
	} {
		if ing = strings.TrimSpace(ing); ing != "" {
			ingredients = append(ingredients, ing)
		}
	}

	return domain.Recipe{
		ID:           meal.ID,
		Title:        meal.Name,
		Category:     meal.Category,
		Area:         meal.Area,
		Instructions: meal.Instructions,
		ImageURL:     meal.Thumbnail,
		Ingredients:  ingredients,
	}
}
