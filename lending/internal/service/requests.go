package service

import (
	"context"
	"sort"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateRequest files a pending borrow request. Availability is checked but
// not reserved; copies are only taken on approval.
func (s *Service) CreateRequest(ctx context.Context, userID, bookID uuid.UUID) (model.BorrowRequest, error) {
	req, err := s.createRequest(ctx, userID, bookID)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	return req, nil
}

func (s *Service) createRequest(ctx context.Context, userID, bookID uuid.UUID) (model.BorrowRequest, error) {
	unlock := s.locks.Lock(bookKey(bookID))
	defer unlock()

	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	if !book.Available() {
		return model.BorrowRequest{}, errs.ErrBookUnavailable
	}
	pending, err := s.repo.ListRequests(ctx, repository.RequestFilter{
		UserID: &userID,
		BookID: &bookID,
		Status: model.RequestPending,
	})
	if err != nil {
		return model.BorrowRequest{}, err
	}
	if len(pending) > 0 {
		return model.BorrowRequest{}, errs.ErrDuplicateBorrowRequest
	}

	req := model.NewBorrowRequest(userID, bookID, s.now())
	if err := s.repo.SaveRequest(ctx, req); err != nil {
		return model.BorrowRequest{}, err
	}
	return req, nil
}

// ApproveRequest issues a copy for a pending request. The book, the new loan
// and the request are written in that order; if a later write fails the
// earlier ones are undone before the error is returned.
func (s *Service) ApproveRequest(ctx context.Context, requestID uuid.UUID) (model.IssuedBook, error) {
	req, loan, err := s.approveRequest(ctx, requestID)
	if err != nil {
		return model.IssuedBook{}, err
	}
	s.publish(ctx, model.LendingEvent{
		Type:      model.EventRequestApproved,
		BookID:    loan.BookID,
		RequestID: &req.ID,
		IssueID:   &loan.ID,
		UserID:    &req.UserID,
	})
	return loan, nil
}

func (s *Service) approveRequest(ctx context.Context, requestID uuid.UUID) (model.BorrowRequest, model.IssuedBook, error) {
	unlock := s.locks.Lock(requestKey(requestID))
	defer unlock()

	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return model.BorrowRequest{}, model.IssuedBook{}, err
	}
	issued, err := req.Issue()
	if err != nil {
		return model.BorrowRequest{}, model.IssuedBook{}, err
	}

	unlockBook := s.locks.Lock(bookKey(req.BookID))
	defer unlockBook()

	book, err := s.repo.GetBook(ctx, req.BookID)
	if err != nil {
		if errors.Is(err, errs.ErrBookNotFound) {
			return model.BorrowRequest{}, model.IssuedBook{}, errs.ErrBookUnavailable
		}
		return model.BorrowRequest{}, model.IssuedBook{}, err
	}
	taken, err := book.IssueCopy()
	if err != nil {
		return model.BorrowRequest{}, model.IssuedBook{}, err
	}

	loan := model.NewIssuedBook(book.ID, req.UserID, s.now(), s.cfg.LoanPeriod)

	saved, err := s.repo.SaveBook(ctx, taken)
	if err != nil {
		return model.BorrowRequest{}, model.IssuedBook{}, err
	}
	if err := s.repo.SaveLoan(ctx, loan); err != nil {
		s.restoreBook(ctx, book, saved.Version)
		return model.BorrowRequest{}, model.IssuedBook{}, err
	}
	if err := s.repo.SaveRequest(ctx, issued); err != nil {
		if rmErr := s.repo.RemoveLoan(ctx, loan.ID); rmErr != nil {
			s.log.Error("approve: remove loan", zap.Stringer("issueId", loan.ID), zap.Error(rmErr))
		}
		s.restoreBook(ctx, book, saved.Version)
		return model.BorrowRequest{}, model.IssuedBook{}, err
	}

	s.purgeSearch()
	s.log.Debug("request approved",
		zap.Stringer("requestId", req.ID),
		zap.Stringer("issueId", loan.ID),
		zap.Time("dueAt", loan.DueAt))
	return issued, loan, nil
}

func (s *Service) RejectRequest(ctx context.Context, requestID uuid.UUID) (model.BorrowRequest, error) {
	rejected, err := s.rejectRequest(ctx, requestID)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	s.publish(ctx, model.LendingEvent{Type: model.EventRequestRejected, BookID: rejected.BookID, RequestID: &rejected.ID, UserID: &rejected.UserID})
	return rejected, nil
}

func (s *Service) rejectRequest(ctx context.Context, requestID uuid.UUID) (model.BorrowRequest, error) {
	unlock := s.locks.Lock(requestKey(requestID))
	defer unlock()

	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	rejected, err := req.Reject()
	if err != nil {
		return model.BorrowRequest{}, err
	}
	if err := s.repo.SaveRequest(ctx, rejected); err != nil {
		return model.BorrowRequest{}, err
	}
	return rejected, nil
}

// PendingRequests lists pending requests oldest first.
func (s *Service) PendingRequests(ctx context.Context) ([]model.BorrowRequest, error) {
	items, err := s.repo.ListRequests(ctx, repository.RequestFilter{Status: model.RequestPending})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RequestedAt.Before(items[j].RequestedAt)
	})
	return items, nil
}

// UserRequests lists every request filed by userID, newest first.
func (s *Service) UserRequests(ctx context.Context, userID uuid.UUID) ([]model.BorrowRequest, error) {
	items, err := s.repo.ListRequests(ctx, repository.RequestFilter{UserID: &userID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RequestedAt.After(items[j].RequestedAt)
	})
	return items, nil
}

// restoreBook writes orig back over the version this operation produced.
func (s *Service) restoreBook(ctx context.Context, orig model.Book, version int) {
	orig.Version = version
	if _, err := s.repo.SaveBook(ctx, orig); err != nil {
		s.log.Error("restore book", zap.Stringer("bookId", orig.ID), zap.Error(err))
	}
}
