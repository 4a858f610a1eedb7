package service

import (
	"context"
	"sort"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ReturnBook closes the loan at returnDate and puts the copy back. It returns
// the fine charged for the days past the due date.
func (s *Service) ReturnBook(ctx context.Context, issueID uuid.UUID, returnDate time.Time) (float64, error) {
	returned, err := s.returnBook(ctx, issueID, returnDate)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, model.LendingEvent{
		Type:    model.EventBookReturned,
		BookID:  returned.BookID,
		IssueID: &returned.ID,
		UserID:  &returned.UserID,
		Fine:    returned.Fine,
	})
	return returned.Fine, nil
}

func (s *Service) returnBook(ctx context.Context, issueID uuid.UUID, returnDate time.Time) (model.IssuedBook, error) {
	unlock := s.locks.Lock(issueKey(issueID))
	defer unlock()

	loan, err := s.repo.GetLoan(ctx, issueID)
	if err != nil {
		return model.IssuedBook{}, err
	}
	returned, err := loan.Return(returnDate, s.cfg.FinePerDay)
	if err != nil {
		return model.IssuedBook{}, err
	}

	unlockBook := s.locks.Lock(bookKey(loan.BookID))
	defer unlockBook()

	book, err := s.repo.GetBook(ctx, loan.BookID)
	switch {
	case errors.Is(err, errs.ErrBookNotFound):
		s.log.Warn("return: book missing", zap.Stringer("bookId", loan.BookID))
		if err := s.repo.SaveLoan(ctx, returned); err != nil {
			return model.IssuedBook{}, err
		}
	case err != nil:
		return model.IssuedBook{}, err
	default:
		saved, err := s.repo.SaveBook(ctx, book.ReturnCopy())
		if err != nil {
			return model.IssuedBook{}, err
		}
		if err := s.repo.SaveLoan(ctx, returned); err != nil {
			s.restoreBook(ctx, book, saved.Version)
			return model.IssuedBook{}, err
		}
	}

	s.purgeSearch()
	s.log.Debug("book returned", zap.Stringer("issueId", issueID), zap.Float64("fine", returned.Fine))
	return returned, nil
}

// RenewLoan extends a current loan's due date by the renewal window.
func (s *Service) RenewLoan(ctx context.Context, issueID uuid.UUID) (model.IssuedBook, error) {
	renewed, err := s.renewLoan(ctx, issueID)
	if err != nil {
		return model.IssuedBook{}, err
	}
	s.publish(ctx, model.LendingEvent{Type: model.EventLoanRenewed, BookID: renewed.BookID, IssueID: &renewed.ID, UserID: &renewed.UserID})
	return renewed, nil
}

func (s *Service) renewLoan(ctx context.Context, issueID uuid.UUID) (model.IssuedBook, error) {
	unlock := s.locks.Lock(issueKey(issueID))
	defer unlock()

	loan, err := s.repo.GetLoan(ctx, issueID)
	if err != nil {
		return model.IssuedBook{}, err
	}
	renewed, err := loan.Renew(s.now(), s.cfg.RenewalPeriod, s.cfg.MaxRenewals)
	if err != nil {
		return model.IssuedBook{}, err
	}
	if err := s.repo.SaveLoan(ctx, renewed); err != nil {
		return model.IssuedBook{}, err
	}
	return renewed, nil
}

func (s *Service) GetLoan(ctx context.Context, issueID uuid.UUID) (model.IssuedBook, error) {
	return s.repo.GetLoan(ctx, issueID)
}

// BorrowedBooks lists userID's unreturned loans, soonest due first.
func (s *Service) BorrowedBooks(ctx context.Context, userID uuid.UUID) ([]model.IssuedBook, error) {
	items, err := s.repo.ListLoans(ctx, repository.LoanFilter{UserID: &userID, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueAt.Before(items[j].DueAt)
	})
	return items, nil
}

func (s *Service) IssuedBooks(ctx context.Context) ([]model.IssuedBook, error) {
	items, err := s.repo.ListLoans(ctx, repository.LoanFilter{})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].IssuedAt.Before(items[j].IssuedAt)
	})
	return items, nil
}
