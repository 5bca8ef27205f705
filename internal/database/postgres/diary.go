package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DietDiary_Go/internal/database/generated"
	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

// DiaryRepository implements repository.Diary for PostgreSQL
type DiaryRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewDiaryRepository creates a new DiaryRepository
func NewDiaryRepository(pool *pgxpool.Pool) *DiaryRepository {
	return &DiaryRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// DiaryTx is a transaction scoped to diary writes
type DiaryTx struct {
	pgTx
}

// BeginTx starts a new transaction
func (r *DiaryRepository) BeginTx(ctx context.Context) (repository.DiaryTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &DiaryTx{pgTx{tx: tx, q: r.q.WithTx(tx)}}, nil
}

// UpsertDailyStat adds delta to the day's total atomically.
func (r *DiaryRepository) UpsertDailyStat(ctx context.Context, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error) {
	return upsertDailyStat(ctx, r.q, userID, date, delta)
}

// GetDailyStat returns nil, nil when the day has no row.
func (r *DiaryRepository) GetDailyStat(ctx context.Context, userID string, date time.Time) (*domain.DailyStat, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetDailyStat(ctx, generated.GetDailyStatParams{
		UserID:   userUUID,
		StatDate: toDate(date),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDailyStat, err)
	}
	return mapDailyStat(row), nil
}

// ListDailyStats returns stored days in [start, end] ordered by date.
func (r *DiaryRepository) ListDailyStats(ctx context.Context, userID string, start, end time.Time) ([]domain.DailyStat, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.ListDailyStats(ctx, generated.ListDailyStatsParams{
		UserID:    userUUID,
		StartDate: toDate(start),
		EndDate:   toDate(end),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDailyStats, err)
	}

	stats := make([]domain.DailyStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, *mapDailyStat(row))
	}
	return stats, nil
}

// ListFoodLogEntries returns entries in [start, end] with their food names.
func (r *DiaryRepository) ListFoodLogEntries(ctx context.Context, userID string, start, end time.Time) ([]domain.FoodLogEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.ListFoodLogEntries(ctx, generated.ListFoodLogEntriesParams{
		UserID:    userUUID,
		StartDate: toDate(start),
		EndDate:   toDate(end),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLogEntries, err)
	}

	entries := make([]domain.FoodLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.FoodLogEntry{
			ID:           row.EntryID,
			UserID:       row.UserID.String(),
			FoodID:       int(row.FoodID),
			FoodName:     row.FoodName,
			Date:         row.EntryDate.Time,
			Contribution: nutrientsOf(row.Calories, row.Fat, row.Protein, row.Carbon),
			CreatedAt:    row.CreatedAt.Time,
		})
	}
	return entries, nil
}

// GetFood reads the food inside the transaction.
func (t *DiaryTx) GetFood(ctx context.Context, foodID int) (*domain.Food, error) {
	return getFoodByID(ctx, t.q, foodID, false)
}

// CreateFoodLogEntry stores an entry with its contribution snapshot.
func (t *DiaryTx) CreateFoodLogEntry(ctx context.Context, entry *domain.FoodLogEntry) (*domain.FoodLogEntry, error) {
	if err := entry.Contribution.CheckStorable(); err != nil {
		return nil, err
	}
	userUUID, err := parseUserUUID(entry.UserID)
	if err != nil {
		return nil, err
	}

	row, err := t.q.CreateFoodLogEntry(ctx, generated.CreateFoodLogEntryParams{
		UserID:    userUUID,
		FoodID:    int32(entry.FoodID),
		EntryDate: toDate(entry.Date),
		Calories:  int32(entry.Contribution.Calories),
		Fat:       int32(entry.Contribution.Fat),
		Protein:   int32(entry.Contribution.Protein),
		Carbon:    int32(entry.Contribution.Carbon),
	})
	if err != nil {
		if constraint, ok := foreignKeyViolation(err); ok {
			if strings.Contains(constraint, ConstraintFragmentUserID) {
				return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, entry.UserID)
			}
			return nil, fmt.Errorf("%w: id %d", domain.ErrFoodNotFound, entry.FoodID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateLogEntry, err)
	}

	created := mapLogEntry(row)
	created.FoodName = entry.FoodName
	return created, nil
}

// DeleteFoodLogEntry removes one of the user's entries and returns what it contributed.
func (t *DiaryTx) DeleteFoodLogEntry(ctx context.Context, userID string, entryID int64) (*domain.FoodLogEntry, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	row, err := t.q.DeleteFoodLogEntry(ctx, generated.DeleteFoodLogEntryParams{EntryID: entryID, UserID: userUUID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrEntryNotFound, entryID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteLogEntry, err)
	}
	return mapLogEntry(row), nil
}

// UpsertDailyStat adds delta to the day's total inside the transaction.
func (t *DiaryTx) UpsertDailyStat(ctx context.Context, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error) {
	return upsertDailyStat(ctx, t.q, userID, date, delta)
}

// SubtractDailyStat removes amount from the day's total, never below zero.
func (t *DiaryTx) SubtractDailyStat(ctx context.Context, userID string, date time.Time, amount domain.Nutrients) (*domain.DailyStat, error) {
	if err := amount.CheckStorable(); err != nil {
		return nil, err
	}
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	row, err := t.q.SubtractDailyStat(ctx, generated.SubtractDailyStatParams{
		Calories: int32(amount.Calories),
		Fat:      int32(amount.Fat),
		Protein:  int32(amount.Protein),
		Carbon:   int32(amount.Carbon),
		UserID:   userUUID,
		StatDate: toDate(date),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertDailyStat, err)
	}
	return mapDailyStat(row), nil
}
