package domain

import "time"

// Food is a directory entry that users can log. Nutrients are per 100g.
type Food struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Nutrients   Nutrients `json:"nutrients"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Ingredient is a recipe building block, kept in its own namespace.
type Ingredient struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Nutrients Nutrients `json:"nutrients"`
	CreatedBy *string   `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ImportCandidate is a food offered by the external nutrition provider,
// already normalized to integers.
type ImportCandidate struct {
	Name      string
	Nutrients Nutrients
}
