package catalog

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/exporters"
)

// BookStore is the persistence the catalog needs.
type BookStore interface {
	Create(book *entities.Book) error
	ExistsByTitle(title string) (bool, error)
	FindByTitle(title string) (*entities.Book, error)
	DeleteByTitle(title string) (int64, error)
	UpdateByTitle(title string, fields entities.BookRecord) (int64, error)
	SearchExact(keyword string) ([]entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
}

// Listing is the full book table as of the last sync.
type Listing struct {
	Books []entities.Book
	// SyncErr is set when the export snapshot could not be rewritten. The
	// listing itself is still valid; the export file is stale.
	SyncErr error
}

// Change is the outcome of a successful create, delete or update: the
// number of rows written plus the listing taken right after.
type Change struct {
	RowsAffected int64
	Listing
}

type Option func(*Service)

// WithClock replaces time.Now, which decides the latest acceptable year.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service validates and applies book operations, and rewrites the export
// snapshot after every change and every listing.
type Service struct {
	store    BookStore
	exporter exporters.Synchronizer
	now      func() time.Time
}

func NewService(store BookStore, exporter exporters.Synchronizer, opts ...Option) *Service {
	s := &Service{
		store:    store,
		exporter: exporter,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create adds a book. The title must not already be in the catalog.
func (s *Service) Create(in BookInput) (*Change, error) {
	const op = "create"

	fields, err := s.validate(op, in)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.ExistsByTitle(fields.Title)
	if err != nil {
		return nil, apperr.StoreAccess(op, "failed to check title", err)
	}
	if exists {
		return nil, apperr.Duplicate(op, fmt.Sprintf("a book titled %q already exists", fields.Title))
	}

	book := fields.Book()
	if err := s.store.Create(&book); err != nil {
		return nil, apperr.StoreAccess(op, "failed to insert book", err)
	}

	return s.changed(op, 1)
}

// Delete removes every book with exactly this title.
func (s *Service) Delete(title string) (*Change, error) {
	const op = "delete"

	if err := s.requireTitle(op, title); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, apperr.Validation(op, "a title is required")
	}

	n, err := s.store.DeleteByTitle(title)
	if err != nil {
		return nil, apperr.StoreAccess(op, "failed to delete book", err)
	}
	return s.changed(op, n)
}

// Update replaces all four descriptive fields of every book titled title.
// The new title is not checked against other books.
func (s *Service) Update(title string, in BookInput) (*Change, error) {
	const op = "update"

	if title == "" {
		return nil, apperr.Validation(op, "a title is required")
	}
	if err := s.requireTitle(op, title); err != nil {
		return nil, err
	}

	fields, err := s.validate(op, in)
	if err != nil {
		return nil, err
	}

	n, err := s.store.UpdateByTitle(title, fields)
	if err != nil {
		return nil, apperr.StoreAccess(op, "failed to update book", err)
	}
	return s.changed(op, n)
}

// Find returns the first book with exactly this title, so a caller can
// confirm the target of an update before collecting the new values.
func (s *Service) Find(title string) (*entities.Book, error) {
	const op = "find"

	if title == "" {
		return nil, apperr.Validation(op, "a title is required")
	}
	book, err := s.store.FindByTitle(title)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(op, fmt.Sprintf("no book titled %q", title))
	}
	if err != nil {
		return nil, apperr.StoreAccess(op, "failed to look up book", err)
	}
	return book, nil
}

// Search returns books whose title, author, publisher or year equals keyword.
func (s *Service) Search(keyword string) ([]entities.Book, error) {
	const op = "search"

	if keyword == "" {
		return nil, apperr.Validation(op, "a keyword is required")
	}

	found, err := s.store.SearchExact(keyword)
	if err != nil {
		return nil, apperr.StoreAccess(op, "failed to search books", err)
	}
	if len(found) == 0 {
		return nil, apperr.NotFound(op, fmt.Sprintf("no book matches %q", keyword))
	}
	return found, nil
}

// ListAll syncs the export snapshot and returns every book.
func (s *Service) ListAll() (*Listing, error) {
	const op = "list"

	_, syncErr := s.exporter.Sync()

	all, err := s.store.GetAllBooks()
	if err != nil {
		return nil, apperr.StoreAccess(op, "failed to list books", err)
	}
	return &Listing{Books: all, SyncErr: syncErr}, nil
}

// requireTitle returns a not-found error unless a book with this exact
// title exists.
func (s *Service) requireTitle(op, title string) error {
	_, err := s.store.FindByTitle(title)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(op, fmt.Sprintf("no book titled %q", title))
	}
	if err != nil {
		return apperr.StoreAccess(op, "failed to look up book", err)
	}
	return nil
}

// changed finishes a successful write with the list-and-sync step. The
// write is committed already, so a failing listing is reported with the
// row count intact.
func (s *Service) changed(op string, n int64) (*Change, error) {
	listing, err := s.ListAll()
	if err != nil {
		return &Change{RowsAffected: n}, fmt.Errorf("%s committed %d row(s): %w", op, n, err)
	}
	return &Change{RowsAffected: n, Listing: *listing}, nil
}
