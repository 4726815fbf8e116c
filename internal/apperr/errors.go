// Package apperr defines the error kinds returned by the catalog, the
// credential checker and the store bootstrapper.
//
// Every error carries one Kind and matches the Kind's sentinel under
// errors.Is, so callers branch on the kind without caring about the message:
//
//	if errors.Is(err, apperr.ErrNotFound) { ... }
package apperr

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

type Kind int

const (
	KindValidation  Kind = iota + 1 // malformed or missing input
	KindDuplicate                   // create would repeat an existing title
	KindNotFound                    // operation target does not exist
	KindStoreAccess                 // store or flat-file I/O failed
)

var (
	ErrValidation  = errors.New("validation error")
	ErrDuplicate   = errors.New("duplicate error")
	ErrNotFound    = errors.New("not found")
	ErrStoreAccess = errors.New("store access error")
)

func (k Kind) String() string {
	return k.sentinel().Error()
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindDuplicate:
		return ErrDuplicate
	case KindNotFound:
		return ErrNotFound
	case KindStoreAccess:
		return ErrStoreAccess
	}
	return errors.New("unknown error")
}

// Error is a failed operation. Op names the operation ("create", "login"),
// Msg is the user-facing description and Err an optional underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func Validation(op, msg string) error {
	return &Error{Kind: KindValidation, Op: op, Msg: msg}
}

func Duplicate(op, msg string) error {
	return &Error{Kind: KindDuplicate, Op: op, Msg: msg}
}

func NotFound(op, msg string) error {
	return &Error{Kind: KindNotFound, Op: op, Msg: msg}
}

// StoreAccess wraps err as a store failure. SQLite driver errors get their
// result code appended to msg.
func StoreAccess(op, msg string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		msg = fmt.Sprintf("%s (sqlite: %s)", msg, sqliteErr.Code.Error())
	}
	return &Error{Kind: KindStoreAccess, Op: op, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Message returns the user-facing message for err: Msg for an *Error,
// the full text otherwise.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
