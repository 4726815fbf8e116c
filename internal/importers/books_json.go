package importers

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// sourceBook is one record of the book source. Hand-edited sources sometimes
// quote the year, so it is decoded separately from entities.BookRecord.
type sourceBook struct {
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Publisher string     `json:"publisher"`
	Year      sourceYear `json:"year"`
}

// sourceYear accepts 1965, "1965" and 1965.0. Anything that is not a whole
// number fails the decode.
type sourceYear int

func (y *sourceYear) UnmarshalJSON(data []byte) error {
	text := string(bytes.TrimSpace(data))
	if strings.HasPrefix(text, `"`) {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			return err
		}
		text = strings.TrimSpace(quoted)
	}

	if n, err := strconv.Atoi(text); err == nil {
		*y = sourceYear(n)
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("year %s is not a whole number", data)
	}
	*y = sourceYear(f)
	return nil
}

// ParseBooksJSON decodes a JSON array of book records. Records are trusted
// and returned as-is; an empty array yields an empty slice.
func ParseBooksJSON(r io.Reader) ([]entities.BookRecord, error) {
	var books []sourceBook
	if err := json.NewDecoder(r).Decode(&books); err != nil {
		return nil, fmt.Errorf("failed to decode book list: %w", err)
	}

	records := make([]entities.BookRecord, 0, len(books))
	for _, b := range books {
		records = append(records, entities.BookRecord{
			Title:     b.Title,
			Author:    b.Author,
			Publisher: b.Publisher,
			Year:      int(b.Year),
		})
	}
	return records, nil
}

// ReadBooksFile opens path and parses it with ParseBooksJSON.
func ReadBooksFile(path string) ([]entities.BookRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open books source: %w", err)
	}
	defer file.Close()

	records, err := ParseBooksJSON(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse books source %s: %w", path, err)
	}
	return records, nil
}
