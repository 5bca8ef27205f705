package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DietDiary_Go/internal/database/postgres"
	"github.com/osse101/DietDiary_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User   repository.User
	Food   repository.Food
	Recipe repository.Recipe
	Diary  repository.Diary
}

// InitializeRepositories creates the PostgreSQL-backed repositories.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:   postgres.NewUserRepository(dbPool),
		Food:   postgres.NewFoodRepository(dbPool),
		Recipe: postgres.NewRecipeRepository(dbPool),
		Diary:  postgres.NewDiaryRepository(dbPool),
	}
}
