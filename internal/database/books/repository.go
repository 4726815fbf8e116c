// Package books provides database operations for the book table.
//
// Queries match titles exactly; they do no validation. Input rules live in
// internal/catalog, which is the only writer in the application.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	found, err := repo.FindByTitle("Dune")
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts book and sets its ID.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// FindByTitle returns the first book, by id, with exactly this title.
// It returns gorm.ErrRecordNotFound when there is none.
func (r *Repository) FindByTitle(title string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("title = ?", title).Order("book_id ASC").First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ExistsByTitle reports whether any book has exactly this title.
func (r *Repository) ExistsByTitle(title string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

// DeleteByTitle removes every book with this title and returns how many went.
func (r *Repository) DeleteByTitle(title string) (int64, error) {
	result := r.db.Where("title = ?", title).Delete(&entities.Book{})
	return result.RowsAffected, result.Error
}

// UpdateByTitle replaces the four descriptive fields of every book titled
// title in a single statement. Book IDs are left untouched.
func (r *Repository) UpdateByTitle(title string, fields entities.BookRecord) (int64, error) {
	result := r.db.Model(&entities.Book{}).
		Where("title = ?", title).
		Updates(map[string]any{
			"title":     fields.Title,
			"author":    fields.Author,
			"publisher": fields.Publisher,
			"year":      fields.Year,
		})
	return result.RowsAffected, result.Error
}

// SearchExact returns books whose title, author, publisher or textual year
// equals keyword. No partial or case-insensitive matching.
func (r *Repository) SearchExact(keyword string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Where("title = ? OR author = ? OR publisher = ? OR CAST(year AS TEXT) = ?", keyword, keyword, keyword, keyword).
		Order("book_id ASC").
		Find(&books).Error
	return books, err
}

// GetAllBooks returns every book in id order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("book_id ASC").Find(&books).Error
	return books, err
}

// Count returns the number of stored books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
