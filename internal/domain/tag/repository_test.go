package tag

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

	_ = db.AutoMigrate(&Tag{})
	return db
}

func TestRepository_Create_ValidatesColor(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &Tag{Name: "Завтрак", Color: "зелёный", Slug: "breakfast"})
	assert.ErrorIs(t, err, ErrInvalidColor)

	// невалидный тег не должен попасть в базу
	tags, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)

	require.NoError(t, repo.Create(ctx, &Tag{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"}))

	tags, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "breakfast", tags[0].Slug)
}
