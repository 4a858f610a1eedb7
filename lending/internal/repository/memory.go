package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type memory struct {
	mu       sync.RWMutex
	books    map[uuid.UUID]model.Book
	requests map[uuid.UUID]model.BorrowRequest
	loans    map[uuid.UUID]model.IssuedBook
	users    map[uuid.UUID]model.User
	log      *zap.Logger
}

// NewMemory returns a Repository kept in process memory. Every call is atomic.
func NewMemory(log *zap.Logger) *memory {
	return &memory{
		books:    make(map[uuid.UUID]model.Book),
		requests: make(map[uuid.UUID]model.BorrowRequest),
		loans:    make(map[uuid.UUID]model.IssuedBook),
		users:    make(map[uuid.UUID]model.User),
		log:      log.Named("repo"),
	}
}

func (m *memory) SaveBook(_ context.Context, book model.Book) (model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.books[book.ID]
	switch {
	case !ok && book.Version != 0:
		return model.Book{}, errs.ErrBookNotFound
	case ok && stored.Version != book.Version:
		return model.Book{}, errs.ErrEditConflict
	}
	book.Version++
	m.books[book.ID] = book
	return book, nil
}

func (m *memory) GetBook(_ context.Context, id uuid.UUID) (model.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	book, ok := m.books[id]
	if !ok {
		return model.Book{}, errs.ErrBookNotFound
	}
	return book, nil
}

func (m *memory) ListBooks(_ context.Context) ([]model.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]model.Book, 0, len(m.books))
	for _, b := range m.books {
		items = append(items, b)
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
	})
	return items, nil
}

func (m *memory) RemoveBook(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[id]; !ok {
		return errs.ErrBookNotFound
	}
	delete(m.books, id)
	return nil
}

func (m *memory) SaveRequest(_ context.Context, req model.BorrowRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if stored, ok := m.requests[req.ID]; ok {
		if !stored.Pending() {
			return errs.ErrRequestNotPending
		}
		m.requests[req.ID] = req
		return nil
	}
	if req.Pending() {
		for _, r := range m.requests {
			if r.Pending() && r.UserID == req.UserID && r.BookID == req.BookID {
				return errs.ErrDuplicateBorrowRequest
			}
		}
	}
	m.requests[req.ID] = req
	return nil
}

func (m *memory) GetRequest(_ context.Context, id uuid.UUID) (model.BorrowRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	req, ok := m.requests[id]
	if !ok {
		return model.BorrowRequest{}, errs.ErrRequestNotFound
	}
	return req, nil
}

func (m *memory) ListRequests(_ context.Context, f RequestFilter) ([]model.BorrowRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]model.BorrowRequest, 0)
	for _, r := range m.requests {
		if f.match(r) {
			items = append(items, r)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].RequestedAt.Before(items[j].RequestedAt)
	})
	return items, nil
}

func (m *memory) SaveLoan(_ context.Context, loan model.IssuedBook) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stored, ok := m.loans[loan.ID]; ok && stored.Returned() {
		return errs.ErrBookAlreadyReturned
	}
	m.loans[loan.ID] = loan
	return nil
}

func (m *memory) GetLoan(_ context.Context, id uuid.UUID) (model.IssuedBook, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	loan, ok := m.loans[id]
	if !ok {
		return model.IssuedBook{}, errs.ErrIssueNotFound
	}
	return loan, nil
}

func (m *memory) ListLoans(_ context.Context, f LoanFilter) ([]model.IssuedBook, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]model.IssuedBook, 0)
	for _, l := range m.loans {
		if f.match(l) {
			items = append(items, l)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].IssuedAt.Before(items[j].IssuedAt)
	})
	return items, nil
}

func (m *memory) RemoveLoan(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.loans[id]; !ok {
		return errs.ErrIssueNotFound
	}
	delete(m.loans, id)
	return nil
}

func (m *memory) CreateUser(_ context.Context, user model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return errs.ErrUserAlreadyExists
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memory) GetUser(_ context.Context, id uuid.UUID) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, errs.ErrUserNotFound
	}
	return u, nil
}

func (m *memory) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, errs.ErrUserNotFound
}
