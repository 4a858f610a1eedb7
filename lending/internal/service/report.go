package service

import (
	"context"
	"sort"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// OverdueLoans reports unreturned loans past their due date, most overdue
// first. Loans whose book or borrower no longer resolves are left out.
func (s *Service) OverdueLoans(ctx context.Context) ([]model.OverdueItem, error) {
	var (
		loans []model.IssuedBook
		books []model.Book
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		loans, err = s.repo.ListLoans(gctx, repository.LoanFilter{ActiveOnly: true})
		return err
	})
	gg.Go(func() (err error) {
		books, err = s.repo.ListBooks(gctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	users := newUserLookup(s.repo)

	now := s.now()
	items := make([]model.OverdueItem, 0)
	for _, loan := range loans {
		if !loan.Overdue(now) {
			continue
		}
		book, ok := byID[loan.BookID]
		if !ok {
			continue
		}
		user, ok, err := users.get(ctx, loan.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		items = append(items, model.OverdueItem{
			IssueID:     loan.ID,
			BookID:      book.ID,
			BookTitle:   book.Title,
			Author:      book.Author,
			UserID:      user.ID,
			UserName:    user.Name,
			DueAt:       loan.DueAt,
			DaysOverdue: loan.DaysOverdue(now),
			AccruedFine: loan.AccruedFine(now, s.cfg.FinePerDay),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysOverdue > items[j].DaysOverdue
	})
	return items, nil
}

// IssueHistory lists every loan of bookID in issue order.
func (s *Service) IssueHistory(ctx context.Context, bookID uuid.UUID) ([]model.IssueHistoryItem, error) {
	var (
		book  model.Book
		loans []model.IssuedBook
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		book, err = s.repo.GetBook(gctx, bookID)
		return err
	})
	gg.Go(func() (err error) {
		loans, err = s.repo.ListLoans(gctx, repository.LoanFilter{BookID: &bookID})
		return err
	})
	if err := gg.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(loans, func(i, j int) bool {
		return loans[i].IssuedAt.Before(loans[j].IssuedAt)
	})

	users := newUserLookup(s.repo)
	items := make([]model.IssueHistoryItem, 0, len(loans))
	for _, loan := range loans {
		user, ok, err := users.get(ctx, loan.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		items = append(items, model.IssueHistoryItem{
			IssueID:    loan.ID,
			BookTitle:  book.Title,
			Author:     book.Author,
			UserName:   user.Name,
			Email:      user.Email,
			IssuedAt:   loan.IssuedAt,
			DueAt:      loan.DueAt,
			ReturnedAt: loan.ReturnedAt,
			Fine:       loan.Fine,
		})
	}
	return items, nil
}

type userLookup struct {
	repo  repository.UserRepository
	cache map[uuid.UUID]*model.User
}

func newUserLookup(repo repository.UserRepository) *userLookup {
	return &userLookup{repo: repo, cache: make(map[uuid.UUID]*model.User)}
}

func (u *userLookup) get(ctx context.Context, id uuid.UUID) (model.User, bool, error) {
	if user, ok := u.cache[id]; ok {
		if user == nil {
			return model.User{}, false, nil
		}
		return *user, true, nil
	}
	user, err := u.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.cache[id] = nil
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}
	u.cache[id] = &user
	return user, true, nil
}
