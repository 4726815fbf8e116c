package utils

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Column widths of the book table, in terminal cells.
const (
	TitleColumnWidth     = 20
	AuthorColumnWidth    = 20
	PublisherColumnWidth = 20
	YearColumnWidth      = 6
)

var bookColumns = []struct {
	header string
	width  int
}{
	{"Title", TitleColumnWidth},
	{"Author", AuthorColumnWidth},
	{"Publisher", PublisherColumnWidth},
	{"Year", YearColumnWidth},
}

// DisplayWidth returns how many terminal cells s occupies. Wide and
// fullwidth East Asian characters take two cells, combining marks none.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r), unicode.Is(unicode.Me, r):
		case isWide(r):
			n += 2
		default:
			n++
		}
	}
	return n
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// PadRight pads s with spaces to cells terminal cells. Longer values are
// returned whole; the table never truncates.
func PadRight(s string, cells int) string {
	if pad := cells - DisplayWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// WriteBookTable renders books as a fixed-width table with one header row.
// An empty slice renders the header only.
func WriteBookTable(w io.Writer, books []entities.Book) error {
	header := make([]string, len(bookColumns))
	rule := make([]string, len(bookColumns))
	for i, col := range bookColumns {
		header[i] = col.header
		rule[i] = strings.Repeat("-", col.width)
	}

	if err := writeRow(w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "|-%s-|\n", strings.Join(rule, "-|-")); err != nil {
		return err
	}
	for _, book := range books {
		row := []string{book.Title, book.Author, book.Publisher, strconv.Itoa(book.Year)}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string) error {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = PadRight(cell, bookColumns[i].width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
