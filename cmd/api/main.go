package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/membership"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/shoppinglist"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
	"foodgram/internal/logger"
	"foodgram/internal/middleware"
	jwtsvc "foodgram/internal/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	slog := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := user.NewRepository(db)
	tagRepo := tag.NewRepository(db)
	ingredientRepo := ingredient.NewRepository(db)
	recipeRepo := recipe.NewRepository(db)
	membershipRepo := membership.NewRepository(db)
	subscriptionRepo := subscription.NewRepository(db)
	shoppingListRepo := shoppinglist.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	userService := user.NewService(userRepo, subscriptionRepo, j)
	userHandler := user.NewHandler(userService)

	tagHandler := tag.NewHandler(tagRepo)
	ingredientHandler := ingredient.NewHandler(ingredientRepo)

	recipeService := recipe.NewService(
		recipeRepo,
		ingredientRepo,
		tagRepo,
		userRepo,
		membershipRepo,
		subscriptionRepo,
		cfg.MediaDir,
	)
	recipeHandler := recipe.NewHandler(recipeService)

	membershipService := membership.NewService(membershipRepo, recipeRepo)
	membershipHandler := membership.NewHandler(membershipService)

	shoppingListService := shoppinglist.NewService(shoppingListRepo)
	shoppingListHandler := shoppinglist.NewHandler(shoppingListService)

	subscriptionService := subscription.NewService(subscriptionRepo, userRepo, recipeRepo)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	r := gin.New()
	r.Use(middleware.RequestLogger(slog))
	r.Use(middleware.CORS())
	r.Static("/media", cfg.MediaDir)

	// public: анонимам можно читать, идентичность подхватывается при наличии токена
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(j))

	// protected: запись и персональные списки только с токеном
	protected := r.Group("/api")
	protected.Use(middleware.Auth(j))

	userHandler.RegisterRoutes(api, protected)
	tagHandler.RegisterRoutes(api)
	ingredientHandler.RegisterRoutes(api)
	recipeHandler.RegisterRoutes(api, protected)
	membershipHandler.RegisterRoutes(protected)
	shoppingListHandler.RegisterRoutes(protected)
	subscriptionHandler.RegisterRoutes(protected)

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}
