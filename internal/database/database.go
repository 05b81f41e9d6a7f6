package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // регистрирует database/sql-драйвер "sqlite"

	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/membership"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// AutoMigrate приводит схему к актуальному состоянию для всех доменных таблиц.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&tag.Tag{},
		&ingredient.Ingredient{},
		&recipe.Recipe{},
		&recipe.RecipeIngredient{},
		&recipe.RecipeTag{},
		&membership.Favorite{},
		&membership.ShoppingCartEntry{},
		&subscription.Subscription{},
	)
}
