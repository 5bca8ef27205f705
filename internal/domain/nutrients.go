package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Nutrients is the calorie and macro quadruple used everywhere in the diary.
// Foods and ingredients express it per 100 grams; statistics and log entries
// carry absolute amounts.
type Nutrients struct {
	Calories int `json:"calories"`
	Fat      int `json:"fat"`
	Protein  int `json:"protein"`
	Carbon   int `json:"carbon"`
}

// Add returns the field-wise sum.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Fat:      n.Fat + o.Fat,
		Protein:  n.Protein + o.Protein,
		Carbon:   n.Carbon + o.Carbon,
	}
}

// Sub returns the field-wise difference, floored at zero.
func (n Nutrients) Sub(o Nutrients) Nutrients {
	return Nutrients{
		Calories: max(n.Calories-o.Calories, 0),
		Fat:      max(n.Fat-o.Fat, 0),
		Protein:  max(n.Protein-o.Protein, 0),
		Carbon:   max(n.Carbon-o.Carbon, 0),
	}
}

// IsZero reports whether all fields are zero.
func (n Nutrients) IsZero() bool {
	return n == Nutrients{}
}

// Validate rejects negative values and values above MaxNutrientValue.
func (n Nutrients) Validate() error {
	return n.checkRange(MaxNutrientValue)
}

// CheckStorable rejects values that do not fit the storage columns.
func (n Nutrients) CheckStorable() error {
	return n.checkRange(MaxStoredValue)
}

func (n Nutrients) checkRange(limit int) error {
	fields := []struct {
		name  string
		value int
	}{
		{"calories", n.Calories},
		{"fat", n.Fat},
		{"protein", n.Protein},
		{"carbon", n.Carbon},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %d)", ErrInvalidInput, f.name, f.value)
		}
		if f.value > limit {
			return fmt.Errorf("%w: %s must be at most %d (got %d)", ErrInvalidInput, f.name, limit, f.value)
		}
	}
	return nil
}

// NutrientSum accumulates gram-scaled nutrients without intermediate rounding.
type NutrientSum struct {
	calories decimal.Decimal
	fat      decimal.Decimal
	protein  decimal.Decimal
	carbon   decimal.Decimal
}

var hundredGrams = decimal.NewFromInt(GramsPerServing)

// AddScaled adds per100g × grams/100 to the running sum.
func (s NutrientSum) AddScaled(per100g Nutrients, grams int) NutrientSum {
	factor := decimal.NewFromInt(int64(grams)).Div(hundredGrams)
	return NutrientSum{
		calories: s.calories.Add(decimal.NewFromInt(int64(per100g.Calories)).Mul(factor)),
		fat:      s.fat.Add(decimal.NewFromInt(int64(per100g.Fat)).Mul(factor)),
		protein:  s.protein.Add(decimal.NewFromInt(int64(per100g.Protein)).Mul(factor)),
		carbon:   s.carbon.Add(decimal.NewFromInt(int64(per100g.Carbon)).Mul(factor)),
	}
}

// Round converts the sum to integers, rounding half away from zero. A total
// that does not fit the storage columns is ErrInvalidInput.
func (s NutrientSum) Round() (Nutrients, error) {
	ceiling := decimal.NewFromInt(MaxStoredValue)
	for _, d := range []decimal.Decimal{s.calories, s.fat, s.protein, s.carbon} {
		if d.Round(0).GreaterThan(ceiling) {
			return Nutrients{}, fmt.Errorf("%w: total %s exceeds %d", ErrInvalidInput, d.Round(0).String(), MaxStoredValue)
		}
	}
	return Nutrients{
		Calories: int(s.calories.Round(0).IntPart()),
		Fat:      int(s.fat.Round(0).IntPart()),
		Protein:  int(s.protein.Round(0).IntPart()),
		Carbon:   int(s.carbon.Round(0).IntPart()),
	}, nil
}
