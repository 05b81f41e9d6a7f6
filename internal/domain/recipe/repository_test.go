package recipe_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/membership"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
)

func testDB(t *testing.T) *gorm.DB {
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: ":memory:"}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	_ = db.AutoMigrate(
		&user.User{},
		&tag.Tag{},
		&ingredient.Ingredient{},
		&recipe.Recipe{},
		&recipe.RecipeIngredient{},
		&recipe.RecipeTag{},
		&membership.Favorite{},
		&membership.ShoppingCartEntry{},
	)

	return db
}

func seedCatalogs(t *testing.T, db *gorm.DB) ([]tag.Tag, []ingredient.Ingredient) {
	t.Helper()

	tags := []tag.Tag{
		{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Обед", Color: "#49B64E", Slug: "lunch"},
	}
	for i := range tags {
		require.NoError(t, db.Create(&tags[i]).Error)
	}

	ingredients := []ingredient.Ingredient{
		{Name: "Соль", MeasurementUnit: "г"},
		{Name: "Мука", MeasurementUnit: "г"},
		{Name: "Молоко", MeasurementUnit: "мл"},
	}
	for i := range ingredients {
		require.NoError(t, db.Create(&ingredients[i]).Error)
	}

	return tags, ingredients
}

func TestRepository_Create_PreservesIngredientOrder(t *testing.T) {
	db := testDB(t)
	_, ingredients := seedCatalogs(t, db)
	repo := recipe.NewRepository(db)
	ctx := context.Background()

	rec := &recipe.Recipe{AuthorID: 1, Name: "Тесто", Text: "...", CookingTime: 10}
	submitted := []recipe.IngredientAmount{
		{ID: ingredients[2].ID, Amount: 500},
		{ID: ingredients[0].ID, Amount: 5},
		{ID: ingredients[1].ID, Amount: 300},
	}
	require.NoError(t, repo.Create(ctx, rec, submitted, []int64{1}))

	rows, err := repo.IngredientsOf(ctx, []int64{rec.ID})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, submitted[i].ID, row.IngredientID)
		assert.Equal(t, submitted[i].Amount, row.Amount)
	}
}

func TestRepository_Update_ReplacesJoinsWholesale(t *testing.T) {
	db := testDB(t)
	tags, ingredients := seedCatalogs(t, db)
	repo := recipe.NewRepository(db)
	ctx := context.Background()

	rec := &recipe.Recipe{AuthorID: 1, Name: "Тесто", Text: "...", CookingTime: 10}
	require.NoError(t, repo.Create(ctx, rec,
		[]recipe.IngredientAmount{{ID: ingredients[0].ID, Amount: 5}, {ID: ingredients[1].ID, Amount: 300}},
		[]int64{tags[0].ID},
	))

	updated := []recipe.IngredientAmount{{ID: ingredients[2].ID, Amount: 200}}
	rec.Name = "Новое тесто"
	require.NoError(t, repo.Update(ctx, rec, updated, []int64{tags[1].ID}))
	// идемпотентность: повторное обновление тем же составом
	require.NoError(t, repo.Update(ctx, rec, updated, []int64{tags[1].ID}))

	rows, err := repo.IngredientsOf(ctx, []int64{rec.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ingredients[2].ID, rows[0].IngredientID)
	assert.Equal(t, 200, rows[0].Amount)

	tagRows, err := repo.TagsOf(ctx, []int64{rec.ID})
	require.NoError(t, err)
	require.Len(t, tagRows, 1)
	assert.Equal(t, tags[1].ID, tagRows[0].TagID)

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Новое тесто", got.Name)
}

func TestRepository_List_FilterByAuthorAndTags(t *testing.T) {
	db := testDB(t)
	tags, ingredients := seedCatalogs(t, db)
	repo := recipe.NewRepository(db)
	ctx := context.Background()

	breakfast := &recipe.Recipe{AuthorID: 1, Name: "Каша", Text: "...", CookingTime: 15}
	require.NoError(t, repo.Create(ctx, breakfast,
		[]recipe.IngredientAmount{{ID: ingredients[0].ID, Amount: 3}}, []int64{tags[0].ID}))

	lunch := &recipe.Recipe{AuthorID: 2, Name: "Суп", Text: "...", CookingTime: 45}
	require.NoError(t, repo.Create(ctx, lunch,
		[]recipe.IngredientAmount{{ID: ingredients[0].ID, Amount: 7}}, []int64{tags[1].ID}))

	got, total, err := repo.List(ctx, recipe.Filter{AuthorID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, lunch.ID, got[0].ID)

	// OR-семантика: достаточно одного общего слага
	got, total, err = repo.List(ctx, recipe.Filter{TagSlugs: []string{"breakfast", "lunch"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)

	got, _, err = repo.List(ctx, recipe.Filter{TagSlugs: []string{"breakfast"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, breakfast.ID, got[0].ID)
}

func TestRepository_List_FavoritedFilter(t *testing.T) {
	db := testDB(t)
	tags, ingredients := seedCatalogs(t, db)
	repo := recipe.NewRepository(db)
	ctx := context.Background()

	first := &recipe.Recipe{AuthorID: 1, Name: "Каша", Text: "...", CookingTime: 15}
	require.NoError(t, repo.Create(ctx, first,
		[]recipe.IngredientAmount{{ID: ingredients[0].ID, Amount: 3}}, []int64{tags[0].ID}))
	second := &recipe.Recipe{AuthorID: 1, Name: "Суп", Text: "...", CookingTime: 45}
	require.NoError(t, repo.Create(ctx, second,
		[]recipe.IngredientAmount{{ID: ingredients[0].ID, Amount: 7}}, []int64{tags[0].ID}))

	require.NoError(t, db.Create(&membership.Favorite{UserID: 9, RecipeID: second.ID}).Error)

	// аутентифицированный: сужение по членству
	got, total, err := repo.List(ctx, recipe.Filter{Favorited: true, RequesterID: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)

	// аноним: фильтр сознательно не делает ничего
	got, total, err = repo.List(ctx, recipe.Filter{Favorited: true, RequesterID: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
}

func TestRepository_List_OrdersByNewestFirst(t *testing.T) {
	db := testDB(t)
	tags, ingredients := seedCatalogs(t, db)
	repo := recipe.NewRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Первый", "Второй", "Третий"} {
		rec := &recipe.Recipe{AuthorID: 1, Name: name, Text: "...", CookingTime: 5}
		require.NoError(t, repo.Create(ctx, rec,
			[]recipe.IngredientAmount{{ID: ingredients[0].ID, Amount: 1}}, []int64{tags[0].ID}))
	}

	got, _, err := repo.List(ctx, recipe.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Третий", got[0].Name)
	assert.Equal(t, "Первый", got[2].Name)
}

func TestRepository_Delete_RemovesAggregate(t *testing.T) {
	db := testDB(t)
	tags, ingredients := seedCatalogs(t, db)
	repo := recipe.NewRepository(db)
	ctx := context.Background()

	rec := &recipe.Recipe{AuthorID: 1, Name: "Каша", Text: "...", CookingTime: 15}
	require.NoError(t, repo.Create(ctx, rec,
		[]recipe.IngredientAmount{{ID: ingredients[0].ID, Amount: 3}}, []int64{tags[0].ID}))

	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err := repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, recipe.ErrNotFound)

	rows, err := repo.IngredientsOf(ctx, []int64{rec.ID})
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), recipe.ErrNotFound)
}
