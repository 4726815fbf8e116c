package exporters

import "github.com/mrlokans/bookshelf/internal/entities"

// BookReader is the read access an exporter needs.
type BookReader interface {
	GetAllBooks() ([]entities.Book, error)
}

// Synchronizer rewrites an external copy of the book table.
type Synchronizer interface {
	Sync() (ExportResult, error)
}

type ExportResult struct {
	Path           string `json:"path"`
	BooksProcessed int    `json:"books_processed"`
}
