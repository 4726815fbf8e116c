package users

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := filepath.Join(t.TempDir(), "users.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}

	return repo, cleanup
}

func TestRepository_CreateUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.CreateUser(" alice", "secret ")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, " alice", user.Username)
	assert.Equal(t, "secret ", user.Password)
}

func TestRepository_FindByCredentials(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateUser("alice", "secret")
	require.NoError(t, err)

	user, err := repo.FindByCredentials("alice", "secret")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestRepository_FindByCredentials_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateUser("alice", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "wrong"},
		{"wrong username", "bob", "secret"},
		{"different case", "Alice", "secret"},
		{"padded password", "alice", "secret "},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.FindByCredentials(tt.username, tt.password)
			assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		})
	}
}

func TestRepository_FindByCredentials_FirstByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.CreateUser("alice", "secret")
	require.NoError(t, err)
	_, err = repo.CreateUser("alice", "secret")
	require.NoError(t, err)

	user, err := repo.FindByCredentials("alice", "secret")

	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
}

func TestRepository_Count(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.CreateUser("alice", "secret")
	require.NoError(t, err)
	_, err = repo.CreateUser("alice", "secret")
	require.NoError(t, err)

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
