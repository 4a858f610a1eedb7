package errs

import (
	"github.com/pkg/errors"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	// KindNotFound: the caller supplied a stale or invalid identifier.
	KindNotFound
	// KindPrecondition: the transition is invalid for the current entity state.
	KindPrecondition
	// KindInvalid: the input itself is malformed.
	KindInvalid
	// KindConflict: a concurrent writer changed the entity first.
	KindConflict
	KindUnauthorized
)

// Error is a typed, recoverable lending failure. Sentinels are compared by
// identity, so wrapped values still match with errors.Is.
type Error struct {
	Kind Kind
	Code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, msg: msg}
}

var (
	ErrBookNotFound    = newError(KindNotFound, "BOOK_NOT_FOUND", "book not found")
	ErrRequestNotFound = newError(KindNotFound, "REQUEST_NOT_FOUND", "borrow request not found")
	ErrIssueNotFound   = newError(KindNotFound, "ISSUE_NOT_FOUND", "borrow record not found")
	ErrUserNotFound    = newError(KindNotFound, "USER_NOT_FOUND", "user not found")

	ErrBookUnavailable        = newError(KindPrecondition, "BOOK_UNAVAILABLE", "book is not available for borrowing")
	ErrDuplicateBorrowRequest = newError(KindPrecondition, "DUPLICATE_BORROW_REQUEST", "a pending request for this book already exists")
	ErrRequestNotPending      = newError(KindPrecondition, "REQUEST_NOT_PENDING", "request is not pending")
	ErrBookAlreadyReturned    = newError(KindPrecondition, "BOOK_ALREADY_RETURNED", "this book has already been returned")
	ErrBookCurrentlyIssued    = newError(KindPrecondition, "BOOK_CURRENTLY_ISSUED", "cannot remove book while copies are issued")
	ErrCannotRenewOverdue     = newError(KindPrecondition, "CANNOT_RENEW_OVERDUE", "overdue loans cannot be renewed")
	ErrRenewalLimitReached    = newError(KindPrecondition, "RENEWAL_LIMIT_REACHED", "renewal limit reached")

	ErrInvalidReturnDate = newError(KindInvalid, "INVALID_RETURN_DATE", "return date cannot be before issue date")
	ErrInvalidCopyCount  = newError(KindInvalid, "INVALID_COPY_COUNT", "number of copies must be greater than zero")
	ErrInvalidCategory   = newError(KindInvalid, "INVALID_CATEGORY", "unknown book category")

	ErrEditConflict      = newError(KindConflict, "EDIT_CONFLICT", "edit conflict")
	ErrUserAlreadyExists = newError(KindConflict, "USER_ALREADY_EXISTS", "user with this email already exists")

	ErrInvalidCredentials = newError(KindUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
)

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
