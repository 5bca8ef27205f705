package domain

import (
	"fmt"
	"strings"
	"time"
)

// FoodLogEntry records that a user ate a food on a day. Contribution is the
// food's nutrients at the time of logging; removing the entry subtracts it.
type FoodLogEntry struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	FoodID       int       `json:"food_id"`
	FoodName     string    `json:"food"`
	Date         time.Time `json:"date"`
	Contribution Nutrients `json:"contribution"`
	CreatedAt    time.Time `json:"created_at"`
}

// DailyStat is the running total for one user on one day.
type DailyStat struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	Nutrients Nutrients `json:"nutrients"`
}

// PeriodSummary folds a range of daily statistics.
type PeriodSummary struct {
	Days   int       `json:"days"`
	Totals Nutrients `json:"totals"`
}

// Day truncates t to a UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return t, nil
}

// FormatDay renders a day in wire format.
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}
