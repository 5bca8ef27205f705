package domain

import "math"

// GramsPerServing is the reference mass nutrient values are expressed against.
const GramsPerServing = 100

// DateLayout is the wire format of calendar days.
const DateLayout = "2006-01-02"

// Field limits shared by validation and schema.
const (
	MaxFoodNameLength    = 50
	MaxDescriptionLength = 2000
	MaxUsernameLength    = 150
)

// Numeric limits. MaxGrams and MaxNutrientValue bound client input;
// MaxStoredValue is the ceiling of the int4 columns.
const (
	MaxGrams         = 100_000
	MaxNutrientValue = 1_000_000
	MaxStoredValue   = math.MaxInt32
)

// DefaultLanguage is used when a search carries no language hint.
const DefaultLanguage = "en"
