package recipe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"Scanstock-Backend/domain"
)

func mealJSON(id, name string) string {
	return fmt.Sprintf(`{"idMeal":%q,"strMeal":%q,"strCategory":"Side","strArea":"Italian","strMealThumb":"https://img/%s.jpg","strIngredient1":"Tomato","strIngredient2":""}`, id, name, id)
}

// newMealDB serves a minimal TheMealDB lookalike. Ingredients listed in
// failing answer filter.php with a 500.
func newMealDB(t *testing.T, byIngredient map[string][]string, failing map[string]bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/filter.php":
			ing := r.URL.Query().Get("i")
			if failing[ing] {
				http.Error(w, "upstream error", http.StatusInternalServerError)
				return
			}
			ids := byIngredient[ing]
			if len(ids) == 0 {
				fmt.Fprint(w, `{"meals":null}`)
				return
			}
			meals := ""
			for i, id := range ids {
				if i > 0 {
					meals += ","
				}
				meals += mealJSON(id, "Meal "+id)
			}
			fmt.Fprintf(w, `{"meals":[%s]}`, meals)
		case "/lookup.php":
			id := r.URL.Query().Get("i")
			fmt.Fprintf(w, `{"meals":[%s]}`, mealJSON(id, "Meal "+id))
		case "/random.php":
			fmt.Fprintf(w, `{"meals":[%s]}`, mealJSON("52771", "Spicy Arrabiata Penne"))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestFindByIngredientsPartialFailure(t *testing.T) {
	srv := newMealDB(t,
		map[string][]string{"tomato": {"1", "2"}},
		map[string]bool{"onion": true})
	defer srv.Close()

	svc := NewRecipeService(srv.URL, nil)
	res, err := svc.FindByIngredients(context.Background(), []string{"tomato", "onion"})
	if err != nil {
		t.Fatalf("one failing ingredient must not fail the request: %v", err)
	}
	if len(res.Recipes) != 2 {
		t.Fatalf("expected 2 recipes from the healthy ingredient, got %d", len(res.Recipes))
	}
	if res.Message != "" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestFindByIngredientsDeduplicatesByMealID(t *testing.T) {
	srv := newMealDB(t,
		map[string][]string{"tomato": {"1", "2"}, "basil": {"2", "3"}},
		nil)
	defer srv.Close()

	svc := NewRecipeService(srv.URL, nil)
	res, err := svc.FindByIngredients(context.Background(), []string{"tomato", "basil"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	seen := make(map[string]bool)
	for _, r := range res.Recipes {
		if seen[r.ID] {
			t.Fatalf("duplicate meal id %s", r.ID)
		}
		seen[r.ID] = true
	}
	if len(res.Recipes) != 3 {
		t.Fatalf("expected 3 unique recipes, got %d", len(res.Recipes))
	}
}

func TestFindByIngredientsCapsAtTen(t *testing.T) {
	many := make([]string, 12)
	for i := range many {
		many[i] = fmt.Sprintf("%d", i+1)
	}
	// 12 meals per ingredient, but only 5 per ingredient are looked up and 3
	// ingredients are searched; the overall cap stays at 10.
	srv := newMealDB(t, map[string][]string{
		"a": many[:5], "b": many[5:10], "c": many[10:], "d": {"99"},
	}, nil)
	defer srv.Close()

	svc := NewRecipeService(srv.URL, nil)
	res, err := svc.FindByIngredients(context.Background(), []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Recipes) > 10 {
		t.Fatalf("cap exceeded: %d recipes", len(res.Recipes))
	}
	// the fourth ingredient is past the 3-ingredient limit
	for _, r := range res.Recipes {
		if r.ID == "99" {
			t.Fatal("fourth ingredient should not have been searched")
		}
	}
}

func TestNoIngredientsReturnsRandomRecipe(t *testing.T) {
	srv := newMealDB(t, nil, nil)
	defer srv.Close()

	svc := NewRecipeService(srv.URL, nil)
	res, err := svc.FindByIngredients(context.Background(), nil)
	if err != nil {
		t.Fatalf("random fallback: %v", err)
	}
	if len(res.Recipes) != 1 || res.Recipes[0].Title != "Spicy Arrabiata Penne" {
		t.Fatalf("unexpected random recipe: %+v", res.Recipes)
	}
	if res.Message == "" {
		t.Fatal("random fallback must carry a message")
	}
}

func TestBlankIngredientsSearchNothing(t *testing.T) {
	srv := newMealDB(t, nil, nil)
	defer srv.Close()

	// A present-but-blank ingredient list stays in the search branch and
	// returns an empty result, never the random fallback.
	svc := NewRecipeService(srv.URL, nil)
	res, err := svc.FindByIngredients(context.Background(), []string{" ", ""})
	if err != nil {
		t.Fatalf("blank ingredients: %v", err)
	}
	if len(res.Recipes) != 0 {
		t.Fatalf("expected no recipes, got %+v", res.Recipes)
	}
	if res.Message != "" {
		t.Fatalf("blank ingredients must not trigger the random fallback: %q", res.Message)
	}
}

func TestRandomFallbackUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewRecipeService(srv.URL, nil)
	_, err := svc.FindByIngredients(context.Background(), nil)
	if !errors.Is(err, domain.ErrRecipeUpstream) {
		t.Fatalf("expected ErrRecipeUpstream, got %v", err)
	}
}

func TestRecipeIngredientsParsed(t *testing.T) {
	srv := newMealDB(t, map[string][]string{"tomato": {"7"}}, nil)
	defer srv.Close()

	svc := NewRecipeService(srv.URL, nil)
	res, err := svc.FindByIngredients(context.Background(), []string{"tomato"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Recipes) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(res.Recipes))
	}
	r := res.Recipes[0]
	if len(r.Ingredients) != 1 || r.Ingredients[0] != "Tomato" {
		t.Fatalf("blank ingredient slots must be dropped: %+v", r.Ingredients)
	}
	if r.Category != "Side" || r.Area != "Italian" {
		t.Fatalf("meal fields not mapped: %+v", r)
	}
}
