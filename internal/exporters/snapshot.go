package exporters

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/entities"
)

const snapshotIndent = "    "

// SnapshotExporter mirrors the book table into a JSON file. Every Sync
// replaces the whole file; nothing from the previous content is kept.
type SnapshotExporter struct {
	reader BookReader
	path   string
}

func NewSnapshotExporter(reader BookReader, path string) *SnapshotExporter {
	return &SnapshotExporter{reader: reader, path: path}
}

// Sync reads every book and overwrites the snapshot file with them. The file
// is written beside the target and renamed into place, so a failed sync
// leaves the previous snapshot intact.
func (e *SnapshotExporter) Sync() (ExportResult, error) {
	const op = "sync"
	result := ExportResult{Path: e.path}

	books, err := e.reader.GetAllBooks()
	if err != nil {
		return result, apperr.StoreAccess(op, "failed to read books", err)
	}

	data, err := MarshalSnapshot(books)
	if err != nil {
		return result, apperr.StoreAccess(op, "failed to encode snapshot", err)
	}

	if err := writeFileReplace(e.path, data); err != nil {
		return result, apperr.StoreAccess(op, "failed to write snapshot", err)
	}

	result.BooksProcessed = len(books)
	return result, nil
}

// MarshalSnapshot encodes books as the export document: a JSON array of
// title/author/publisher/year objects, 4-space indented, with non-ASCII
// text left unescaped. An empty table encodes as [].
func MarshalSnapshot(books []entities.Book) ([]byte, error) {
	records := make([]entities.BookRecord, 0, len(books))
	for _, book := range books {
		records = append(records, book.Record())
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", snapshotIndent)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFileReplace(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
