// Package session runs the interactive terminal loop: login, menu, prompts
// and printing. It holds no catalog rules of its own; every decision is made
// by internal/catalog and internal/auth and only reported here.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/utils"
)

// Marker prefixes every diagnostic line shown to the user.
const Marker = "=> "

// Authenticator checks a login pair.
type Authenticator interface {
	Login(username, password string) (*entities.User, error)
}

// Catalog is the set of book operations offered by the menu.
type Catalog interface {
	Create(in catalog.BookInput) (*catalog.Change, error)
	Delete(title string) (*catalog.Change, error)
	Update(title string, in catalog.BookInput) (*catalog.Change, error)
	Find(title string) (*entities.Book, error)
	Search(keyword string) ([]entities.Book, error)
	ListAll() (*catalog.Listing, error)
}

// errInputClosed ends the session when stdin runs out.
var errInputClosed = errors.New("input closed")

type Session struct {
	auth    Authenticator
	catalog Catalog
	in      *bufio.Reader
	out     io.Writer
	log     *logrus.Logger
}

func New(auth Authenticator, cat Catalog, in io.Reader, out io.Writer, log *logrus.Logger) *Session {
	return &Session{
		auth:    auth,
		catalog: cat,
		in:      bufio.NewReader(in),
		out:     out,
		log:     log,
	}
}

// Run asks for credentials until they match, then serves the menu until the
// user enters an empty choice or input ends.
func (s *Session) Run() error {
	user, err := s.login()
	if errors.Is(err, errInputClosed) {
		return nil
	}
	if err != nil {
		return err
	}
	s.log.WithField("user_id", user.ID).Debug("Session started")

	for {
		s.printMenu()
		choice, err := s.prompt("Choose an option (Enter to quit): ")
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == "" {
			return nil
		}

		if err := s.dispatch(choice); errors.Is(err, errInputClosed) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (s *Session) login() (*entities.User, error) {
	for {
		username, err := s.prompt("Username: ")
		if err != nil {
			return nil, err
		}
		password, err := s.prompt("Password: ")
		if err != nil {
			return nil, err
		}

		user, err := s.auth.Login(username, password)
		if err == nil {
			return user, nil
		}
		s.report(err)
	}
}

func (s *Session) dispatch(choice string) error {
	if !isDigits(choice) {
		s.println(Marker + "invalid option")
		return nil
	}
	option, err := strconv.Atoi(choice)
	if err != nil {
		s.println(Marker + "invalid option")
		return nil
	}

	switch option {
	case 1:
		return s.addBook()
	case 2:
		return s.deleteBook()
	case 3:
		return s.updateBook()
	case 4:
		return s.searchBooks()
	case 5:
		s.listBooks()
		return nil
	default:
		s.println(Marker + "invalid option")
		return nil
	}
}

func (s *Session) addBook() error {
	in, err := s.promptBook("new")
	if err != nil {
		return err
	}
	s.showChange(s.catalog.Create(in))
	return nil
}

func (s *Session) deleteBook() error {
	s.listBooks()

	title, err := s.prompt("Title of the book to delete: ")
	if err != nil {
		return err
	}
	s.showChange(s.catalog.Delete(title))
	return nil
}

func (s *Session) updateBook() error {
	s.listBooks()

	title, err := s.prompt("Title of the book to update: ")
	if err != nil {
		return err
	}
	if _, err := s.catalog.Find(title); err != nil {
		s.report(err)
		return nil
	}

	in, err := s.promptBook("updated")
	if err != nil {
		return err
	}
	s.showChange(s.catalog.Update(title, in))
	return nil
}

func (s *Session) searchBooks() error {
	keyword, err := s.prompt("Keyword: ")
	if err != nil {
		return err
	}

	found, err := s.catalog.Search(keyword)
	if err != nil {
		s.report(err)
		return nil
	}
	s.printTable(found)
	return nil
}

func (s *Session) listBooks() {
	listing, err := s.catalog.ListAll()
	if err != nil {
		s.report(err)
		return
	}
	s.warnStale(listing.SyncErr)
	s.printTable(listing.Books)
}

func (s *Session) showChange(change *catalog.Change, err error) {
	if err != nil {
		s.report(err)
		return
	}
	s.println(fmt.Sprintf("%s%d record(s) changed", Marker, change.RowsAffected))
	s.warnStale(change.SyncErr)
	s.printTable(change.Books)
}

func (s *Session) promptBook(kind string) (catalog.BookInput, error) {
	var in catalog.BookInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"title", &in.Title},
		{"author", &in.Author},
		{"publisher", &in.Publisher},
		{"year", &in.Year},
	}
	for _, f := range fields {
		value, err := s.prompt(fmt.Sprintf("Enter the %s %s: ", kind, f.label))
		if err != nil {
			return catalog.BookInput{}, err
		}
		*f.dst = value
	}
	return in, nil
}

// prompt writes label and returns the next input line without its line
// ending. Other whitespace is kept, and lines of any length are accepted.
// A final line without a newline is still returned.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(s.out)
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// report prints err as a single marker line. Store failures are logged in
// full as well.
func (s *Session) report(err error) {
	if apperr.KindOf(err) == apperr.KindStoreAccess {
		s.log.WithError(err).Error("Store access failed")
	}
	s.println(Marker + apperr.Message(err))
}

func (s *Session) warnStale(syncErr error) {
	if syncErr != nil {
		s.log.WithError(syncErr).Warn("Export snapshot not updated")
	}
}

func (s *Session) printMenu() {
	rule := strings.Repeat("-", 19)
	s.println(rule)
	s.println("    Book catalog")
	s.println(rule)
	s.println("    1. Add a book")
	s.println("    2. Delete a book")
	s.println("    3. Update a book")
	s.println("    4. Search books")
	s.println("    5. List all books")
	s.println(rule)
}

func (s *Session) printTable(books []entities.Book) {
	if err := utils.WriteBookTable(s.out, books); err != nil {
		s.log.WithError(err).Error("Failed to print table")
	}
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func isDigits(str string) bool {
	for _, r := range str {
		if r < '0' || r > '9' {
			return false
		}
	}
	return str != ""
}
