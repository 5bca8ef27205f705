package recipe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Line is one ingredient by weight, as submitted by a client.
type Line struct {
	Ingredient string `validate:"required,max=50"`
	Grams      int    `validate:"gt=0,lte=100000"` // domain.MaxGrams
}

// CreateRecipeInput describes a new composite food.
type CreateRecipeInput struct {
	Food        string  `validate:"required,max=50"`
	CreatedBy   *string `validate:"omitempty,uuid"`
	Description *string `validate:"omitempty,max=2000"`
	Lines       []Line  `validate:"required,min=1,dive"`
}

// ReplaceRecipeInput swaps every line of an existing composite food. A nil
// Description keeps the stored one.
type ReplaceRecipeInput struct {
	Food        string  `validate:"required,max=50"`
	Description *string `validate:"omitempty,max=2000"`
	Lines       []Line  `validate:"required,min=1,dive"`
}

// CreateIngredientInput describes a recipe building block.
type CreateIngredientInput struct {
	Name      string           `validate:"required,max=50"`
	Nutrients domain.Nutrients `validate:"-"`
	CreatedBy *string          `validate:"omitempty,uuid"`
}

func (in *CreateRecipeInput) normalize() {
	in.Food = strings.TrimSpace(in.Food)
	trimLines(in.Lines)
}

func (in *ReplaceRecipeInput) normalize() {
	in.Food = strings.TrimSpace(in.Food)
	trimLines(in.Lines)
}

func trimLines(lines []Line) {
	for i := range lines {
		lines[i].Ingredient = strings.TrimSpace(lines[i].Ingredient)
	}
}

// validateInput maps validator failures onto domain.ErrInvalidInput.
func validateInput(s any, msg string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, msg, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, msg, err)
}
