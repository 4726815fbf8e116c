package database

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/users"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/importers"
)

// EnsureStore creates and seeds the store at cfg.Database.Path unless a file
// already exists there. It reports whether a new store was created.
//
// Both sources are parsed before anything touches the disk, and schema plus
// rows are written in one transaction. On any failure the new store file is
// removed, so the next start attempts the bootstrap again.
func EnsureStore(cfg *config.Config, log *logrus.Logger) (bool, error) {
	const op = "bootstrap"
	storePath := cfg.Database.Path

	if _, err := os.Stat(storePath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, apperr.StoreAccess(op, "failed to stat store", err)
	}

	credentials, err := importers.ReadCredentialsFile(cfg.Sources.UsersPath)
	if err != nil {
		return false, apperr.StoreAccess(op, "users source unavailable", err)
	}
	records, err := importers.ReadBooksFile(cfg.Sources.BooksPath)
	if err != nil {
		return false, apperr.StoreAccess(op, "books source unavailable", err)
	}

	seeded, err := createStore(storePath, credentials, records, log)
	if err != nil {
		if rmErr := os.Remove(storePath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			log.WithError(rmErr).Warnf("Could not remove incomplete store %s", storePath)
		}
		return false, apperr.StoreAccess(op, "failed to create store", err)
	}

	log.WithFields(logrus.Fields{
		"path":  storePath,
		"users": seeded.users,
		"books": seeded.books,
	}).Info("Store created")
	return true, nil
}

type seedCounts struct {
	users int64
	books int64
}

// createStore writes the schema and every source row through the
// repositories, then reads the row counts back inside the same transaction.
func createStore(storePath string, rows []importers.CredentialRow, records []entities.BookRecord, log *logrus.Logger) (seedCounts, error) {
	var seeded seedCounts

	db, err := NewDatabase(storePath, log)
	if err != nil {
		return seeded, err
	}
	defer db.Close()

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(Models...); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}

		userRepo := users.NewRepository(tx)
		for _, row := range rows {
			if _, err := userRepo.CreateUser(row.Username, row.Password); err != nil {
				return fmt.Errorf("failed to insert user %q: %w", row.Username, err)
			}
		}

		bookRepo := books.NewRepository(tx)
		for _, record := range records {
			book := record.Book()
			if err := bookRepo.Create(&book); err != nil {
				return fmt.Errorf("failed to insert book %q: %w", record.Title, err)
			}
		}

		if seeded.users, err = userRepo.Count(); err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if seeded.books, err = bookRepo.Count(); err != nil {
			return fmt.Errorf("failed to count books: %w", err)
		}
		return nil
	})
	return seeded, err
}
