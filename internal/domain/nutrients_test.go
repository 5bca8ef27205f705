package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutrients_AddSub(t *testing.T) {
	a := Nutrients{Calories: 195, Fat: 0, Protein: 3, Carbon: 42}
	b := Nutrients{Calories: 10, Fat: 2, Protein: 1, Carbon: 50}

	assert.Equal(t, Nutrients{Calories: 205, Fat: 2, Protein: 4, Carbon: 92}, a.Add(b))
	assert.Equal(t, Nutrients{Calories: 185, Fat: 0, Protein: 2, Carbon: 0}, a.Sub(b), "subtraction floors at zero")
	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.True(t, Nutrients{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestNutrients_Validate(t *testing.T) {
	require.NoError(t, Nutrients{}.Validate())
	require.NoError(t, Nutrients{Calories: 10, Fat: 1, Protein: 2, Carbon: 3}.Validate())

	err := Nutrients{Calories: 10, Protein: -1}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "protein")

	err = Nutrients{Fat: MaxNutrientValue + 1}.Validate()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "fat")
	require.NoError(t, Nutrients{Calories: MaxNutrientValue}.Validate())
}

func TestNutrients_CheckStorable(t *testing.T) {
	require.NoError(t, Nutrients{Calories: MaxStoredValue}.CheckStorable())
	assert.ErrorIs(t, Nutrients{Carbon: MaxStoredValue + 1}.CheckStorable(), ErrInvalidInput)
	assert.ErrorIs(t, Nutrients{Carbon: -1}.CheckStorable(), ErrInvalidInput)
}

func TestNutrientSum_RiceBowl(t *testing.T) {
	rice := Nutrients{Calories: 130, Fat: 0, Protein: 2, Carbon: 28}

	got, err := NutrientSum{}.AddScaled(rice, 150).Round()

	require.NoError(t, err)
	assert.Equal(t, Nutrients{Calories: 195, Fat: 0, Protein: 3, Carbon: 42}, got)
}

func TestNutrientSum_RoundsOnceAtTheEnd(t *testing.T) {
	// 3 × 0.5 rounds to 2 when summed first, 3 if each half rounded up.
	per100 := Nutrients{Calories: 1}
	sum := NutrientSum{}
	for i := 0; i < 3; i++ {
		sum = sum.AddScaled(per100, 50)
	}
	total, err := sum.Round()
	require.NoError(t, err)
	assert.Equal(t, 2, total.Calories)

	half, err := NutrientSum{}.AddScaled(Nutrients{Calories: 5}, 10).Round()
	require.NoError(t, err)
	assert.Equal(t, 1, half.Calories, "0.5 rounds away from zero")
}

func TestNutrientSum_RoundRejectsOverflow(t *testing.T) {
	rice := Nutrients{Calories: 130, Protein: 2, Carbon: 28}

	_, err := NutrientSum{}.AddScaled(rice, 4294967446).Round()
	require.ErrorIs(t, err, ErrInvalidInput)

	sum := NutrientSum{}
	for range 3 {
		sum = sum.AddScaled(Nutrients{Calories: MaxNutrientValue}, MaxGrams)
	}
	_, err = sum.Round()
	assert.ErrorIs(t, err, ErrInvalidInput, "3e9 kcal does not fit an int4 column")
}

func TestErrors_NotFoundFamily(t *testing.T) {
	for _, err := range []error{ErrFoodNotFound, ErrIngredientNotFound, ErrRecipeNotFound, ErrEntryNotFound, ErrUserNotFound} {
		assert.True(t, errors.Is(err, ErrNotFound), err.Error())
	}
	assert.Equal(t, ErrMsgFoodNotFound, ErrFoodNotFound.Error())
	assert.Equal(t, ErrMsgRecipeNotFound, ErrRecipeNotFound.Error())
	assert.False(t, errors.Is(ErrAlreadyExists, ErrNotFound))
}

func TestDayHelpers(t *testing.T) {
	d, err := ParseDay("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", FormatDay(d))

	loc := time.FixedZone("UTC+3", 3*3600)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Day(time.Date(2024, 1, 5, 23, 30, 0, 0, loc)))

	_, err = ParseDay("05/01/2024")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
