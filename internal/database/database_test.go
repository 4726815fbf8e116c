package database

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/users"
	"github.com/mrlokans/bookshelf/internal/logger"
)

const usersCSV = "alice,secret\nbob\n carol ,pw with space\nalice,secret\n"

const booksJSON = `[
    {"title": "Dune", "author": "Herbert", "publisher": "Ace", "year": 1965},
    {"title": "三體", "author": "劉慈欣", "publisher": "重慶出版社", "year": 2008},
    {"title": "From the future", "author": "Nobody", "publisher": "None", "year": 3000}
]`

// setupSources writes both flat files into a temp dir and returns a config
// pointing at them.
func setupSources(t *testing.T, usersContent, booksContent string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Database: config.Database{Path: filepath.Join(dir, "library.db")},
		Sources: config.Sources{
			UsersPath: filepath.Join(dir, "user.csv"),
			BooksPath: filepath.Join(dir, "books.json"),
		},
		Export: config.Export{Path: filepath.Join(dir, "books.json")},
	}
	if usersContent != "" {
		require.NoError(t, os.WriteFile(cfg.Sources.UsersPath, []byte(usersContent), 0644))
	}
	if booksContent != "" {
		require.NoError(t, os.WriteFile(cfg.Sources.BooksPath, []byte(booksContent), 0644))
	}
	return cfg
}

func openStore(t *testing.T, path string) *Database {
	t.Helper()
	db, err := NewDatabase(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestEnsureStore_CreatesAndSeeds(t *testing.T) {
	cfg := setupSources(t, usersCSV, booksJSON)
	logs := &bytes.Buffer{}
	log := logger.NewWithOutput("info", logs)

	created, err := EnsureStore(cfg, log)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Contains(t, logs.String(), "Store created")
	assert.Contains(t, logs.String(), "users=3")
	assert.Contains(t, logs.String(), "books=3")

	db := openStore(t, cfg.Database.Path)
	assert.True(t, db.HasSchema())

	userCount, err := users.NewRepository(db.DB).Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), userCount, "short rows skipped, duplicates kept")

	user, err := users.NewRepository(db.DB).FindByCredentials(" carol ", "pw with space")
	require.NoError(t, err)
	assert.Equal(t, " carol ", user.Username)

	all, err := books.NewRepository(db.DB).GetAllBooks()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Dune", all[0].Title)
	assert.Equal(t, uint(1), all[0].ID)
	assert.Equal(t, "三體", all[1].Title)
	assert.Equal(t, 3000, all[2].Year, "source data is not validated")
}

func TestEnsureStore_ExistingStoreIsNoop(t *testing.T) {
	cfg := setupSources(t, usersCSV, booksJSON)
	log := logger.NewWithOutput("info", &bytes.Buffer{})

	created, err := EnsureStore(cfg, log)
	require.NoError(t, err)
	require.True(t, created)

	// sources changing afterwards must not matter
	require.NoError(t, os.WriteFile(cfg.Sources.BooksPath, []byte(`[]`), 0644))
	require.NoError(t, os.Remove(cfg.Sources.UsersPath))

	created, err = EnsureStore(cfg, log)

	require.NoError(t, err)
	assert.False(t, created)

	count, err := books.NewRepository(openStore(t, cfg.Database.Path).DB).Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestEnsureStore_EmptySources(t *testing.T) {
	cfg := setupSources(t, "only-one-field\n", "[]")

	created, err := EnsureStore(cfg, logger.NewWithOutput("info", &bytes.Buffer{}))

	require.NoError(t, err)
	assert.True(t, created)
	db := openStore(t, cfg.Database.Path)
	assert.True(t, db.HasSchema())
}

func TestEnsureStore_QuotedYears(t *testing.T) {
	cfg := setupSources(t, usersCSV, `[
    {"title": "Dune", "author": "Herbert", "publisher": "Ace", "year": "1965"},
    {"title": "Emma", "author": "Austen", "publisher": "Murray", "year": 1815}
]`)

	created, err := EnsureStore(cfg, logger.NewWithOutput("info", &bytes.Buffer{}))

	require.NoError(t, err)
	assert.True(t, created)

	all, err := books.NewRepository(openStore(t, cfg.Database.Path).DB).GetAllBooks()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1965, all[0].Year)
	assert.Equal(t, 1815, all[1].Year)
}

func TestEnsureStore_FailureLeavesNoStore(t *testing.T) {
	tests := []struct {
		name  string
		users string
		books string
	}{
		{"missing users source", "", booksJSON},
		{"missing books source", usersCSV, ""},
		{"malformed books source", usersCSV, `{"title": "not a list"}`},
		{"malformed users source", "alice,\"open\n", booksJSON},
		{"non-numeric year", usersCSV, `[{"title": "Dune", "year": "unknown"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := setupSources(t, tt.users, tt.books)

			created, err := EnsureStore(cfg, logger.NewWithOutput("info", &bytes.Buffer{}))

			assert.False(t, created)
			assert.ErrorIs(t, err, apperr.ErrStoreAccess)
			_, statErr := os.Stat(cfg.Database.Path)
			assert.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}

func TestEnsureStore_RetryAfterFailure(t *testing.T) {
	cfg := setupSources(t, usersCSV, "")
	log := logger.NewWithOutput("info", &bytes.Buffer{})

	_, err := EnsureStore(cfg, log)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(cfg.Sources.BooksPath, []byte(booksJSON), 0644))

	created, err := EnsureStore(cfg, log)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestDatabase_HasSchema(t *testing.T) {
	db := openStore(t, filepath.Join(t.TempDir(), "bare.db"))

	assert.False(t, db.HasSchema())

	require.NoError(t, db.DB.AutoMigrate(Models...))
	assert.True(t, db.HasSchema())
}
