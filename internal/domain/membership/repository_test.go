package membership

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *gorm.DB {
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: ":memory:"}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	_ = db.AutoMigrate(&Favorite{}, &ShoppingCartEntry{})
	return db
}

func TestRepository_Add_DuplicateReturnsAlreadyExists(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, KindFavorite, 1, 10))
	assert.ErrorIs(t, repo.Add(ctx, KindFavorite, 1, 10), ErrAlreadyExists)

	// виды независимы: та же пара в корзине — не конфликт
	assert.NoError(t, repo.Add(ctx, KindCart, 1, 10))
}

func TestRepository_Remove_MissingReturnsNoSuchEntry(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Remove(ctx, KindCart, 1, 10), ErrNoSuchEntry)

	require.NoError(t, repo.Add(ctx, KindCart, 1, 10))
	require.NoError(t, repo.Remove(ctx, KindCart, 1, 10))
	assert.ErrorIs(t, repo.Remove(ctx, KindCart, 1, 10), ErrNoSuchEntry)
}

func TestRepository_FavoritedSet_RestrictsToRequestedIDs(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, KindFavorite, 1, 10))
	require.NoError(t, repo.Add(ctx, KindFavorite, 1, 20))
	require.NoError(t, repo.Add(ctx, KindFavorite, 2, 30))

	set, err := repo.FavoritedSet(ctx, 1, []int64{10, 30})
	require.NoError(t, err)
	assert.True(t, set[10])
	assert.False(t, set[20])
	assert.False(t, set[30])

	empty, err := repo.FavoritedSet(ctx, 1, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
