package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"foodgram/internal/database"
	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/membership"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "foodgram.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM shopping_cart_entries")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM recipe_tags")
	db.Exec("DELETE FROM recipe_ingredients")
	db.Exec("DELETE FROM recipes")
	db.Exec("DELETE FROM ingredients")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	users := make([]user.User, 0, 3)
	names := [][2]string{{"Анна", "Иванова"}, {"Борис", "Петров"}, {"Вера", "Сидорова"}}
	for i, name := range names {
		hash, _ := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
		u := user.User{
			Email:        fmt.Sprintf("user%d@foodgram.example", i+1),
			Username:     fmt.Sprintf("user%d", i+1),
			FirstName:    name[0],
			LastName:     name[1],
			PasswordHash: string(hash),
		}
		db.Create(&u)
		users = append(users, u)
		log.Printf("User created: %s / demo12345", u.Email)
	}

	// ================== TAGS ==================
	log.Println("Creating tags...")

	tagRepo := tag.NewRepository(db)
	tags := []tag.Tag{
		{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Обед", Color: "#49B64E", Slug: "lunch"},
		{Name: "Ужин", Color: "#8775D2", Slug: "dinner"},
	}
	for i := range tags {
		if err := tagRepo.Create(context.Background(), &tags[i]); err != nil {
			log.Fatal("Tag creation failed:", err)
		}
	}

	// ================== INGREDIENTS ==================
	log.Println("Creating ingredients...")

	ingredients := []ingredient.Ingredient{
		{Name: "Соль", MeasurementUnit: "г"},
		{Name: "Сахар", MeasurementUnit: "г"},
		{Name: "Мука", MeasurementUnit: "г"},
		{Name: "Молоко", MeasurementUnit: "мл"},
		{Name: "Яйцо", MeasurementUnit: "шт."},
		{Name: "Картофель", MeasurementUnit: "кг"},
	}
	for i := range ingredients {
		db.Create(&ingredients[i])
	}

	// ================== RECIPES ==================
	log.Println("Creating recipes...")

	recipes := []struct {
		rec  recipe.Recipe
		ings []recipe.RecipeIngredient
		tags []int64
	}{
		{
			rec: recipe.Recipe{
				AuthorID:    users[0].ID,
				Name:        "Блины",
				Text:        "Смешать, пожарить на сковороде.",
				CookingTime: 30,
			},
			ings: []recipe.RecipeIngredient{
				{IngredientID: ingredients[2].ID, Amount: 300},
				{IngredientID: ingredients[3].ID, Amount: 500},
				{IngredientID: ingredients[4].ID, Amount: 2},
				{IngredientID: ingredients[0].ID, Amount: 5},
			},
			tags: []int64{tags[0].ID},
		},
		{
			rec: recipe.Recipe{
				AuthorID:    users[1].ID,
				Name:        "Картофельное пюре",
				Text:        "Отварить, размять, добавить молоко.",
				CookingTime: 40,
			},
			ings: []recipe.RecipeIngredient{
				{IngredientID: ingredients[5].ID, Amount: 1},
				{IngredientID: ingredients[3].ID, Amount: 200},
				{IngredientID: ingredients[0].ID, Amount: 10},
			},
			tags: []int64{tags[1].ID, tags[2].ID},
		},
	}
	for i := range recipes {
		db.Create(&recipes[i].rec)
		for _, row := range recipes[i].ings {
			row.RecipeID = recipes[i].rec.ID
			db.Create(&row)
		}
		for _, tagID := range recipes[i].tags {
			db.Create(&recipe.RecipeTag{RecipeID: recipes[i].rec.ID, TagID: tagID})
		}
	}

	// ================== MEMBERSHIPS & SUBSCRIPTIONS ==================
	log.Println("Creating favorites, cart entries and subscriptions...")

	db.Create(&membership.Favorite{UserID: users[0].ID, RecipeID: recipes[1].rec.ID})
	db.Create(&membership.ShoppingCartEntry{UserID: users[0].ID, RecipeID: recipes[0].rec.ID})
	db.Create(&membership.ShoppingCartEntry{UserID: users[0].ID, RecipeID: recipes[1].rec.ID})
	db.Create(&subscription.Subscription{UserID: users[0].ID, AuthorID: users[1].ID})
	db.Create(&subscription.Subscription{UserID: users[2].ID, AuthorID: users[0].ID})

	log.Println("Seed complete")
}
