package diary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/metrics"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

// Accumulator maintains per-user per-day nutrient totals. Every addition is a
// single atomic upsert, so concurrent writers to the same day never lose an
// update and the final total does not depend on arrival order.
type Accumulator interface {
	RecordFood(ctx context.Context, userID string, foodID int, date time.Time) (*domain.DailyStat, error)
	ApplyDelta(ctx context.Context, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error)
	DeleteEntry(ctx context.Context, userID string, entryID int64) (*domain.DailyStat, error)

	// GetDay returns a zero record and false when nothing was logged.
	GetDay(ctx context.Context, userID string, date time.Time) (domain.DailyStat, bool, error)
	ListEntries(ctx context.Context, userID string, date time.Time) ([]domain.FoodLogEntry, error)
	ListEntriesRange(ctx context.Context, userID string, start, end time.Time) ([]domain.FoodLogEntry, error)
}

type accumulator struct {
	repo repository.Diary
}

// NewAccumulator creates an Accumulator backed by repo.
func NewAccumulator(repo repository.Diary) Accumulator {
	return &accumulator{repo: repo}
}

// RecordFood logs one serving of the food and adds its current nutrients to
// the day. The entry keeps a snapshot so later edits to the food do not
// change what deleting the entry subtracts.
func (a *accumulator) RecordFood(ctx context.Context, userID string, foodID int, date time.Time) (*domain.DailyStat, error) {
	log := logger.FromContext(ctx)

	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	if foodID <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidFoodID)
	}
	date = domain.Day(date)

	tx, err := a.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	food, err := tx.GetFood(ctx, foodID)
	if err != nil {
		return nil, err
	}

	entry, err := tx.CreateFoodLogEntry(ctx, &domain.FoodLogEntry{
		UserID:       userID,
		FoodID:       food.ID,
		FoodName:     food.Name,
		Date:         date,
		Contribution: food.Nutrients,
	})
	if err != nil {
		return nil, err
	}

	stat, err := tx.UpsertDailyStat(ctx, userID, date, food.Nutrients)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	metrics.DiaryEntries.WithLabelValues(metrics.OperationRecord).Inc()
	log.Info(LogMsgFoodRecorded, "user_id", userID, "food_id", food.ID, "entry_id", entry.ID, "date", domain.FormatDay(date))
	return stat, nil
}

// ApplyDelta adds a manual adjustment without a log entry.
func (a *accumulator) ApplyDelta(ctx context.Context, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	if err := delta.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDelta, err)
	}
	date = domain.Day(date)

	stat, err := a.repo.UpsertDailyStat(ctx, userID, date, delta)
	if err != nil {
		return nil, err
	}

	metrics.StatDeltasApplied.Inc()
	logger.FromContext(ctx).Info(LogMsgDeltaApplied, "user_id", userID, "date", domain.FormatDay(date))
	return stat, nil
}

// DeleteEntry removes one of the user's log entries and subtracts exactly its
// snapshot. The returned stat is nil when the day had no row to adjust.
func (a *accumulator) DeleteEntry(ctx context.Context, userID string, entryID int64) (*domain.DailyStat, error) {
	log := logger.FromContext(ctx)

	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	if entryID <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidEntry)
	}

	tx, err := a.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entry, err := tx.DeleteFoodLogEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	stat, err := tx.SubtractDailyStat(ctx, entry.UserID, entry.Date, entry.Contribution)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		log.Warn(LogMsgStatMissing, "entry_id", entryID, "user_id", entry.UserID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	metrics.DiaryEntries.WithLabelValues(metrics.OperationDelete).Inc()
	log.Info(LogMsgEntryDeleted, "entry_id", entryID, "user_id", entry.UserID)
	return stat, nil
}

func (a *accumulator) GetDay(ctx context.Context, userID string, date time.Time) (domain.DailyStat, bool, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return domain.DailyStat{}, false, err
	}
	date = domain.Day(date)

	stat, err := a.repo.GetDailyStat(ctx, userID, date)
	if err != nil {
		return domain.DailyStat{}, false, err
	}
	if stat == nil {
		return domain.DailyStat{UserID: userID, Date: date}, false, nil
	}
	return *stat, true, nil
}

func (a *accumulator) ListEntries(ctx context.Context, userID string, date time.Time) ([]domain.FoodLogEntry, error) {
	return a.ListEntriesRange(ctx, userID, date, date)
}

func (a *accumulator) ListEntriesRange(ctx context.Context, userID string, start, end time.Time) ([]domain.FoodLogEntry, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	start, end, err = checkRange(start, end)
	if err != nil {
		return nil, err
	}
	return a.repo.ListFoodLogEntries(ctx, userID, start, end)
}

func requireUser(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserRequired)
	}
	return userID, nil
}

func checkRange(start, end time.Time) (time.Time, time.Time, error) {
	start, end = domain.Day(start), domain.Day(end)
	if start.After(end) {
		return start, end, fmt.Errorf("%w: "+ErrMsgInvalidRange, domain.ErrInvalidInput, domain.FormatDay(start), domain.FormatDay(end))
	}
	return start, end, nil
}
