package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrDuplicate        = errors.New("already exists")
	ErrBlankID          = errors.New("id is required")
	ErrInvalidAmount    = errors.New("amount must be positive")

	ErrUserInactive    = errors.New("user is inactive")
	ErrItemUnavailable = errors.New("item is not available")
	ErrUnpaidFines     = errors.New("user has unpaid fines")
	ErrOverdueLoans    = errors.New("user has overdue loans")
	ErrAlreadyReturned = errors.New("loan already returned")
	ErrAlreadyPaid     = errors.New("fine already paid")
	ErrItemOnLoan      = errors.New("item is on loan")
	ErrBadCredentials  = errors.New("invalid email or password")

	ErrFineNotIssued = errors.New("loan returned but fine was not issued")
)

// Kind classifies a failure; the transport maps it onto a status code.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindPolicy
	KindPersistence
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPolicy:
		return "policy"
	case KindPersistence:
		return "persistence"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func Validation(op string, err error) error  { return E(KindValidation, op, err) }
func NotFound(op string, err error) error    { return E(KindNotFound, op, err) }
func Policy(op string, err error) error      { return E(KindPolicy, op, err) }
func Persistence(op string, err error) error { return E(KindPersistence, op, err) }

func Unauthenticated(op string, err error) error {
	return E(KindUnauthenticated, op, err)
}

// KindOf returns the kind of the outermost *Error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}
