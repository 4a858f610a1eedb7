package model

import (
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestIssued   RequestStatus = "ISSUED"
	RequestRejected RequestStatus = "REJECTED"
)

// requestTransitions lists the states reachable from each state.
// Issued and rejected are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending: {RequestIssued, RequestRejected},
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, to := range requestTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

func (s RequestStatus) Terminal() bool {
	return len(requestTransitions[s]) == 0
}

type BorrowRequest struct {
	ID          uuid.UUID     `json:"requestId" db:"id"`
	UserID      uuid.UUID     `json:"userId" db:"user_id"`
	BookID      uuid.UUID     `json:"bookId" db:"book_id"`
	RequestedAt time.Time     `json:"requestedAt" db:"requested_at"`
	Status      RequestStatus `json:"status" db:"status"`
}

func NewBorrowRequest(userID, bookID uuid.UUID, now time.Time) BorrowRequest {
	return BorrowRequest{
		ID:          uuid.New(),
		UserID:      userID,
		BookID:      bookID,
		RequestedAt: now.UTC(),
		Status:      RequestPending,
	}
}

func (r BorrowRequest) Pending() bool {
	return r.Status == RequestPending
}

func (r BorrowRequest) Issue() (BorrowRequest, error) {
	return r.transition(RequestIssued)
}

func (r BorrowRequest) Reject() (BorrowRequest, error) {
	return r.transition(RequestRejected)
}

func (r BorrowRequest) transition(next RequestStatus) (BorrowRequest, error) {
	if !r.Status.CanTransitionTo(next) {
		return r, errs.ErrRequestNotPending
	}
	r.Status = next
	return r, nil
}
