package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	AddBook(ctx context.Context, title, author string, category model.Category, copies int) (model.Book, error)
	RemoveBook(ctx context.Context, bookID uuid.UUID) error
	GetBook(ctx context.Context, bookID uuid.UUID) (model.Book, error)
	Search(ctx context.Context, query string) ([]model.Book, error)
	ListAvailable(ctx context.Context) ([]model.Book, error)

	CreateRequest(ctx context.Context, userID, bookID uuid.UUID) (model.BorrowRequest, error)
	ApproveRequest(ctx context.Context, requestID uuid.UUID) (model.IssuedBook, error)
	RejectRequest(ctx context.Context, requestID uuid.UUID) (model.BorrowRequest, error)
	PendingRequests(ctx context.Context) ([]model.BorrowRequest, error)
	UserRequests(ctx context.Context, userID uuid.UUID) ([]model.BorrowRequest, error)

	ReturnBook(ctx context.Context, issueID uuid.UUID, returnDate time.Time) (float64, error)
	RenewLoan(ctx context.Context, issueID uuid.UUID) (model.IssuedBook, error)
	GetLoan(ctx context.Context, issueID uuid.UUID) (model.IssuedBook, error)
	BorrowedBooks(ctx context.Context, userID uuid.UUID) ([]model.IssuedBook, error)
	IssuedBooks(ctx context.Context) ([]model.IssuedBook, error)

	OverdueLoans(ctx context.Context) ([]model.OverdueItem, error)
	IssueHistory(ctx context.Context, bookID uuid.UUID) ([]model.IssueHistoryItem, error)
}

type IdentityService interface {
	RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Login(ctx context.Context, email, password string) (model.AuthResponse, error)
}

var (
	_ LendingService  = (*service.Service)(nil)
	_ IdentityService = (*service.Service)(nil)
)
