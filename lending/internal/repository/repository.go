package repository

import (
	"context"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/google/uuid"
)

type BookRepository interface {
	// SaveBook inserts a book with Version 0 and otherwise updates it only if
	// the stored version still equals book.Version (ErrEditConflict if not).
	// The returned book carries the new version.
	SaveBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	RemoveBook(ctx context.Context, id uuid.UUID) error
}

type RequestFilter struct {
	UserID *uuid.UUID
	BookID *uuid.UUID
	Status model.RequestStatus
}

type RequestRepository interface {
	// SaveRequest refuses to change a request that is no longer pending
	// (ErrRequestNotPending) and to add a second pending request for the same
	// patron and book (ErrDuplicateBorrowRequest).
	SaveRequest(ctx context.Context, req model.BorrowRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (model.BorrowRequest, error)
	ListRequests(ctx context.Context, f RequestFilter) ([]model.BorrowRequest, error)
}

type LoanFilter struct {
	UserID     *uuid.UUID
	BookID     *uuid.UUID
	ActiveOnly bool
}

type LoanRepository interface {
	// SaveLoan refuses to change a loan that is already returned (ErrBookAlreadyReturned).
	SaveLoan(ctx context.Context, loan model.IssuedBook) error
	GetLoan(ctx context.Context, id uuid.UUID) (model.IssuedBook, error)
	ListLoans(ctx context.Context, f LoanFilter) ([]model.IssuedBook, error)
	// RemoveLoan only undoes a loan whose approval could not be completed.
	RemoveLoan(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

type Repository interface {
	BookRepository
	RequestRepository
	LoanRepository
	UserRepository
}

func (f RequestFilter) match(r model.BorrowRequest) bool {
	if f.UserID != nil && r.UserID != *f.UserID {
		return false
	}
	if f.BookID != nil && r.BookID != *f.BookID {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return true
}

func (f LoanFilter) match(l model.IssuedBook) bool {
	if f.UserID != nil && l.UserID != *f.UserID {
		return false
	}
	if f.BookID != nil && l.BookID != *f.BookID {
		return false
	}
	if f.ActiveOnly && l.Returned() {
		return false
	}
	return true
}

var (
	_ Repository = (*repository)(nil)
	_ Repository = (*memory)(nil)
)
