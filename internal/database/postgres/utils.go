package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/DietDiary_Go/internal/database/generated"
	"github.com/osse101/DietDiary_Go/internal/domain"
	"github.com/osse101/DietDiary_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// pgTx adapts a pgx transaction to repository.Tx.
type pgTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func (t *pgTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *pgTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

func isUniqueViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == PgErrorCodeUniqueViolation
}

func isOutOfRange(err error) bool {
	code, _ := pgErrorCode(err)
	return code == PgErrorCodeNumericOutOfRange
}

// toInt4 narrows v for an int4 column.
func toInt4(v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit an int4 column", domain.ErrInvalidInput, v)
	}
	return int32(v), nil
}

// foreignKeyViolation reports whether err is an FK violation and on which constraint.
func foreignKeyViolation(err error) (string, bool) {
	code, constraint := pgErrorCode(err)
	return constraint, code == PgErrorCodeForeignKeyViolation
}

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidUserID, err)
	}
	return u, nil
}

func ptrToUUID(userID *string) (pgtype.UUID, error) {
	if userID == nil || *userID == "" {
		return pgtype.UUID{}, nil
	}
	u, err := parseUserUUID(*userID)
	if err != nil {
		return pgtype.UUID{}, err
	}
	return pgtype.UUID{Bytes: u, Valid: true}, nil
}

func uuidToPtr(u pgtype.UUID) *string {
	if !u.Valid {
		return nil
	}
	s := uuid.UUID(u.Bytes).String()
	return &s
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// ptrToText converts a string pointer to pgtype.Text
func ptrToText(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func toDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: domain.Day(t), Valid: true}
}

// likePattern escapes LIKE metacharacters so user input matches literally.
func likePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nutrientsOf(calories, fat, protein, carbon int32) domain.Nutrients {
	return domain.Nutrients{
		Calories: int(calories),
		Fat:      int(fat),
		Protein:  int(protein),
		Carbon:   int(carbon),
	}
}

func mapFood(row generated.Food) *domain.Food {
	return &domain.Food{
		ID:          int(row.FoodID),
		Name:        row.Name,
		Nutrients:   nutrientsOf(row.Calories, row.Fat, row.Protein, row.Carbon),
		CreatedBy:   uuidToPtr(row.CreatedBy),
		Description: textToPtr(row.Description),
		CreatedAt:   row.CreatedAt.Time,
	}
}

func mapIngredient(row generated.Ingredient) *domain.Ingredient {
	return &domain.Ingredient{
		ID:        int(row.IngredientID),
		Name:      row.Name,
		Nutrients: nutrientsOf(row.Calories, row.Fat, row.Protein, row.Carbon),
		CreatedBy: uuidToPtr(row.CreatedBy),
		CreatedAt: row.CreatedAt.Time,
	}
}

func mapDailyStat(row generated.DailyStat) *domain.DailyStat {
	return &domain.DailyStat{
		ID:        row.StatID,
		UserID:    row.UserID.String(),
		Date:      row.StatDate.Time,
		Nutrients: nutrientsOf(row.Calories, row.Fat, row.Protein, row.Carbon),
	}
}

func mapLogEntry(row generated.FoodLogEntry) *domain.FoodLogEntry {
	return &domain.FoodLogEntry{
		ID:           row.EntryID,
		UserID:       row.UserID.String(),
		FoodID:       int(row.FoodID),
		Date:         row.EntryDate.Time,
		Contribution: nutrientsOf(row.Calories, row.Fat, row.Protein, row.Carbon),
		CreatedAt:    row.CreatedAt.Time,
	}
}

func mapRecipeLines(rows []generated.GetRecipeLinesRow) []domain.RecipeLine {
	lines := make([]domain.RecipeLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, domain.RecipeLine{
			ID:                  int(row.RecipeLineID),
			FoodID:              int(row.FoodID),
			IngredientID:        int(row.IngredientID),
			IngredientName:      row.IngredientName,
			Grams:               int(row.Grams),
			IngredientNutrients: nutrientsOf(row.Calories, row.Fat, row.Protein, row.Carbon),
		})
	}
	return lines
}

// ---- Shared query helpers (pool- or tx-bound queries) ----

func createFood(ctx context.Context, q *generated.Queries, food *domain.Food) (*domain.Food, error) {
	if err := food.Nutrients.CheckStorable(); err != nil {
		return nil, err
	}
	createdBy, err := ptrToUUID(food.CreatedBy)
	if err != nil {
		return nil, err
	}

	row, err := q.CreateFood(ctx, generated.CreateFoodParams{
		Name:        food.Name,
		Calories:    int32(food.Nutrients.Calories),
		Fat:         int32(food.Nutrients.Fat),
		Protein:     int32(food.Nutrients.Protein),
		Carbon:      int32(food.Nutrients.Carbon),
		CreatedBy:   createdBy,
		Description: ptrToText(food.Description),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: food %q", domain.ErrAlreadyExists, food.Name)
		}
		if _, ok := foreignKeyViolation(err); ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, *food.CreatedBy)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateFood, err)
	}
	return mapFood(row), nil
}

func getFoodByID(ctx context.Context, q *generated.Queries, id int, forUpdate bool) (*domain.Food, error) {
	var (
		row generated.Food
		err error
	)
	if forUpdate {
		row, err = q.GetFoodByIDForUpdate(ctx, int32(id))
	} else {
		row, err = q.GetFoodByID(ctx, int32(id))
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrFoodNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFood, err)
	}
	return mapFood(row), nil
}

func getFoodByName(ctx context.Context, q *generated.Queries, name string) (*domain.Food, error) {
	row, err := q.GetFoodByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", domain.ErrFoodNotFound, name)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFood, err)
	}
	return mapFood(row), nil
}

func getRecipeLines(ctx context.Context, q *generated.Queries, foodID int) ([]domain.RecipeLine, error) {
	rows, err := q.GetRecipeLines(ctx, int32(foodID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipeLines, err)
	}
	return mapRecipeLines(rows), nil
}

func upsertDailyStat(ctx context.Context, q *generated.Queries, userID string, date time.Time, delta domain.Nutrients) (*domain.DailyStat, error) {
	if err := delta.CheckStorable(); err != nil {
		return nil, err
	}
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	row, err := q.UpsertDailyStat(ctx, generated.UpsertDailyStatParams{
		UserID:   userUUID,
		StatDate: toDate(date),
		Calories: int32(delta.Calories),
		Fat:      int32(delta.Fat),
		Protein:  int32(delta.Protein),
		Carbon:   int32(delta.Carbon),
	})
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		if isOutOfRange(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgDailyTotalOverflow)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertDailyStat, err)
	}
	return mapDailyStat(row), nil
}
