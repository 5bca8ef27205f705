package handler

import (
	"net/http"

	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/recipe"
)

// RecipeLineRequest is one weighted ingredient of a recipe
type RecipeLineRequest struct {
	Ingredient string `json:"ingredient" validate:"required,max=50"`
	Grams      int    `json:"grams" validate:"gt=0,lte=100000"`
}

// RecipeRequest is the body of POST and PUT /recipe
type RecipeRequest struct {
	Food        string              `json:"food" validate:"required,max=50"`
	Description *string             `json:"description,omitempty" validate:"omitempty,max=2000"`
	Ingredients []RecipeLineRequest `json:"ingredients" validate:"required,min=1,dive"`
}

func (req RecipeRequest) lines() []recipe.Line {
	lines := make([]recipe.Line, len(req.Ingredients))
	for i, l := range req.Ingredients {
		lines[i] = recipe.Line{Ingredient: l.Ingredient, Grams: l.Grams}
	}
	return lines
}

// CreateIngredientRequest is the body of POST /ingredient
type CreateIngredientRequest struct {
	Name string `json:"name" validate:"required,max=50"`
	NutrientsRequest
}

// HandleCreateRecipe creates a composite food from weighted ingredients
// @Summary Create recipe
// @Description Totals are computed from per-100g ingredient values scaled by grams
// @Tags recipe
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Recipe"
// @Success 201 {object} domain.Food
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /recipe [post]
func HandleCreateRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
			return
		}

		created, err := svc.CreateRecipe(r.Context(), recipe.CreateRecipeInput{
			Food:        req.Food,
			CreatedBy:   requestOwner(r),
			Description: req.Description,
			Lines:       req.lines(),
		})
		if err != nil {
			respondServiceError(w, r, "Create recipe", err)
			return
		}

		logger.FromContext(r.Context()).Info("Recipe created", "food_id", created.ID, "lines", len(req.Ingredients))
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleReplaceRecipe overwrites the lines and totals of an existing composite food
// @Summary Replace recipe
// @Tags recipe
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Recipe"
// @Success 200 {object} domain.Food
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipe [put]
func HandleReplaceRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Replace recipe"); err != nil {
			return
		}

		updated, err := svc.ReplaceRecipe(r.Context(), recipe.ReplaceRecipeInput{
			Food:        req.Food,
			Description: req.Description,
			Lines:       req.lines(),
		})
		if err != nil {
			respondServiceError(w, r, "Replace recipe", err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleGetRecipe returns a composite food with its ingredient lines
// @Summary Get recipe
// @Tags recipe
// @Produce json
// @Param name query string true "Food name"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /recipe [get]
func HandleGetRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, paramName)
		if !ok {
			return
		}

		rec, err := svc.GetRecipe(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, "Get recipe", err)
			return
		}

		respondJSON(w, http.StatusOK, rec)
	}
}

// HandleDeleteRecipeLine removes one line and returns the parent food with re-derived totals
// @Summary Delete recipe line
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe line ID"
// @Success 200 {object} domain.Food
// @Failure 404 {object} ErrorResponse
// @Router /recipe/line/{id} [delete]
func HandleDeleteRecipeLine(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		parent, err := svc.DeleteRecipeLine(r.Context(), int(id))
		if err != nil {
			respondServiceError(w, r, "Delete recipe line", err)
			return
		}

		respondJSON(w, http.StatusOK, parent)
	}
}

// HandleCreateIngredient adds an ingredient with per-100g values
// @Summary Create ingredient
// @Tags ingredient
// @Accept json
// @Produce json
// @Param request body CreateIngredientRequest true "Ingredient"
// @Success 201 {object} domain.Ingredient
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /ingredient [post]
func HandleCreateIngredient(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateIngredientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create ingredient"); err != nil {
			return
		}

		ing, err := svc.CreateIngredient(r.Context(), recipe.CreateIngredientInput{
			Name:      req.Name,
			Nutrients: req.toDomain(),
			CreatedBy: requestOwner(r),
		})
		if err != nil {
			respondServiceError(w, r, "Create ingredient", err)
			return
		}

		respondJSON(w, http.StatusCreated, ing)
	}
}

// HandleDeleteIngredient removes an ingredient; recipes that used it are re-derived
// @Summary Delete ingredient
// @Tags ingredient
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /ingredient/{id} [delete]
func HandleDeleteIngredient(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteIngredient(r.Context(), int(id)); err != nil {
			respondServiceError(w, r, "Delete ingredient", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgIngredientDeleted})
	}
}
