package diary

import (
	"context"
	"time"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

// Aggregator reads ranges of daily statistics.
type Aggregator interface {
	// ListRange returns stored days in [start, end] in ascending date order.
	// Days without a record are omitted, not zero-filled.
	ListRange(ctx context.Context, userID string, start, end time.Time) ([]domain.DailyStat, error)
}

type aggregator struct {
	repo repository.Diary
}

// NewAggregator creates an Aggregator backed by repo.
func NewAggregator(repo repository.Diary) Aggregator {
	return &aggregator{repo: repo}
}

func (a *aggregator) ListRange(ctx context.Context, userID string, start, end time.Time) ([]domain.DailyStat, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	start, end, err = checkRange(start, end)
	if err != nil {
		return nil, err
	}
	return a.repo.ListDailyStats(ctx, userID, start, end)
}

// Summarize folds stats into totals and a day count.
func Summarize(stats []domain.DailyStat) domain.PeriodSummary {
	var sum domain.PeriodSummary
	for _, s := range stats {
		sum.Totals = sum.Totals.Add(s.Nutrients)
		sum.Days++
	}
	return sum
}
