package repository

import (
	"context"
	"time"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

// Diary defines the interface for food log entries and daily statistics.
type Diary interface {
	// UpsertDailyStat adds delta to the (user, date) total in one atomic
	// statement, creating the row when absent.
	UpsertDailyStat(ctx context.Context, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error)
	// GetDailyStat returns nil, nil when no row exists.
	GetDailyStat(ctx context.Context, userID string, date time.Time) (*domain.DailyStat, error)
	ListDailyStats(ctx context.Context, userID string, start, end time.Time) ([]domain.DailyStat, error)
	ListFoodLogEntries(ctx context.Context, userID string, start, end time.Time) ([]domain.FoodLogEntry, error)

	BeginTx(ctx context.Context) (DiaryTx, error)
}

// DiaryTx pairs a log entry change with its statistic change.
type DiaryTx interface {
	Tx
	GetFood(ctx context.Context, foodID int) (*domain.Food, error)
	CreateFoodLogEntry(ctx context.Context, entry *domain.FoodLogEntry) (*domain.FoodLogEntry, error)
	// DeleteFoodLogEntry reports ErrEntryNotFound for entries owned by
	// another user.
	DeleteFoodLogEntry(ctx context.Context, userID string, entryID int64) (*domain.FoodLogEntry, error)
	UpsertDailyStat(ctx context.Context, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error)
	// SubtractDailyStat floors each field at zero and returns nil, nil when
	// the day has no row.
	SubtractDailyStat(ctx context.Context, userID string, date time.Time, amount domain.Nutrients) (*domain.DailyStat, error)
}
