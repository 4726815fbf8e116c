package catalog

import (
	"strconv"
	"strings"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookInput holds the four descriptive fields as the user typed them.
type BookInput struct {
	Title     string
	Author    string
	Publisher string
	Year      string
}

// validate applies, in order: all fields present, year is a plain digit
// literal, year not after the current calendar year. Text fields are
// returned untrimmed; trimming is only used to detect blank input.
func (s *Service) validate(op string, in BookInput) (entities.BookRecord, error) {
	if isBlank(in.Title) || isBlank(in.Author) || isBlank(in.Publisher) || isBlank(in.Year) {
		return entities.BookRecord{}, apperr.Validation(op, "title, author, publisher and year are all required")
	}

	if !isDigits(in.Year) {
		return entities.BookRecord{}, apperr.Validation(op, "year must be a whole number")
	}
	year, err := strconv.Atoi(in.Year)
	if err != nil {
		return entities.BookRecord{}, apperr.Validation(op, "year is out of range")
	}

	if currentYear := s.now().Year(); year > currentYear {
		return entities.BookRecord{}, apperr.Validation(op, "year cannot be later than "+strconv.Itoa(currentYear))
	}

	return entities.BookRecord{
		Title:     in.Title,
		Author:    in.Author,
		Publisher: in.Publisher,
		Year:      year,
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isDigits reports whether s is non-empty and only ASCII digits. Signs,
// spaces and decimal points are rejected.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
