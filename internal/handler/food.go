package handler

import (
	"net/http"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/food"
	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/middleware"
)

// NutrientsRequest carries per-100g values for foods and ingredients.
type NutrientsRequest struct {
	Calories int `json:"calories" validate:"gte=0,lte=1000000"`
	Fat      int `json:"fat" validate:"gte=0,lte=1000000"`
	Protein  int `json:"protein" validate:"gte=0,lte=1000000"`
	Carbon   int `json:"carbon" validate:"gte=0,lte=1000000"`
}

func (n NutrientsRequest) toDomain() domain.Nutrients {
	return domain.Nutrients{Calories: n.Calories, Fat: n.Fat, Protein: n.Protein, Carbon: n.Carbon}
}

// CreateFoodRequest is the body of POST /food
type CreateFoodRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	NutrientsRequest
}

// HandleSearchFood resolves a food name locally, importing from the nutrition provider on a miss
// @Summary Search foods
// @Description Case-insensitive substring match; falls back to the nutrition provider when nothing matches
// @Tags food
// @Produce json
// @Param name query string true "Food name"
// @Param lang query string false "Language hint" default(en)
// @Success 200 {array} domain.Food
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /food/search [get]
func HandleSearchFood(svc food.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, paramName)
		if !ok {
			return
		}
		lang := GetOptionalQueryParam(r, paramLang, domain.DefaultLanguage)

		foods, err := svc.SearchOrImport(r.Context(), name, lang)
		if err != nil {
			respondServiceError(w, r, "Search food", err)
			return
		}

		respondJSON(w, http.StatusOK, foods)
	}
}

// HandleCreateFood adds a base food to the directory
// @Summary Create food
// @Tags food
// @Accept json
// @Produce json
// @Param request body CreateFoodRequest true "Food"
// @Success 201 {object} domain.Food
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /food [post]
func HandleCreateFood(svc food.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateFoodRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create food"); err != nil {
			return
		}

		created, err := svc.CreateFood(r.Context(), food.CreateFoodInput{
			Name:        req.Name,
			Nutrients:   req.toDomain(),
			CreatedBy:   requestOwner(r),
			Description: req.Description,
		})
		if err != nil {
			respondServiceError(w, r, "Create food", err)
			return
		}

		logger.FromContext(r.Context()).Info("Food created", "food_id", created.ID, "name", created.Name)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleDeleteFood removes a food together with its recipe lines and log entries
// @Summary Delete food
// @Tags food
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /food/{id} [delete]
func HandleDeleteFood(svc food.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteFood(r.Context(), int(id)); err != nil {
			respondServiceError(w, r, "Delete food", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFoodDeleted})
	}
}

// requestOwner returns the bearer subject, if any, as the creator of a directory row.
func requestOwner(r *http.Request) *string {
	if id := middleware.GetUserID(r.Context()); id != "" {
		return &id
	}
	return nil
}
