package model

import (
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/google/uuid"
)

const day = 24 * time.Hour

type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanOverdue  LoanStatus = "OVERDUE"
	LoanReturned LoanStatus = "RETURNED"
)

// IssuedBook is one copy lent to one patron. ReturnedAt and Fine are set
// exactly once, by Return.
type IssuedBook struct {
	ID         uuid.UUID  `json:"issueId" db:"id"`
	BookID     uuid.UUID  `json:"bookId" db:"book_id"`
	UserID     uuid.UUID  `json:"userId" db:"user_id"`
	IssuedAt   time.Time  `json:"issuedAt" db:"issued_at"`
	DueAt      time.Time  `json:"dueAt" db:"due_at"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
	Fine       float64    `json:"fine" db:"fine"`
	RenewCount int        `json:"renewCount" db:"renew_count"`
}

func NewIssuedBook(bookID, userID uuid.UUID, issuedAt time.Time, loanPeriod time.Duration) IssuedBook {
	issuedAt = issuedAt.UTC()
	return IssuedBook{
		ID:       uuid.New(),
		BookID:   bookID,
		UserID:   userID,
		IssuedAt: issuedAt,
		DueAt:    issuedAt.Add(loanPeriod),
	}
}

// WholeDaysBetween returns the number of complete days from..to, or 0 when to
// is not after from.
func WholeDaysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from) / day)
}

func (l IssuedBook) Returned() bool {
	return l.ReturnedAt != nil
}

func (l IssuedBook) Overdue(now time.Time) bool {
	return !l.Returned() && now.After(l.DueAt)
}

func (l IssuedBook) Status(now time.Time) LoanStatus {
	switch {
	case l.Returned():
		return LoanReturned
	case l.Overdue(now):
		return LoanOverdue
	default:
		return LoanActive
	}
}

// DaysOverdue is zero once the loan is returned.
func (l IssuedBook) DaysOverdue(now time.Time) int {
	if l.Returned() {
		return 0
	}
	return WholeDaysBetween(l.DueAt, now)
}

// AccruedFine is the fine the patron would pay if the book came back at now.
func (l IssuedBook) AccruedFine(now time.Time, finePerDay float64) float64 {
	return finePerDay * float64(l.DaysOverdue(now))
}

func (l IssuedBook) Return(at time.Time, finePerDay float64) (IssuedBook, error) {
	if l.Returned() {
		return l, errs.ErrBookAlreadyReturned
	}
	if at.Before(l.IssuedAt) {
		return l, errs.ErrInvalidReturnDate
	}
	at = at.UTC()
	l.ReturnedAt = &at
	l.Fine = finePerDay * float64(WholeDaysBetween(l.DueAt, at))
	return l, nil
}

// Renew extends DueAt by window. maxRenewals <= 0 disables the cap.
func (l IssuedBook) Renew(now time.Time, window time.Duration, maxRenewals int) (IssuedBook, error) {
	if l.Returned() {
		return l, errs.ErrBookAlreadyReturned
	}
	if l.Overdue(now) {
		return l, errs.ErrCannotRenewOverdue
	}
	if maxRenewals > 0 && l.RenewCount >= maxRenewals {
		return l, errs.ErrRenewalLimitReached
	}
	l.DueAt = l.DueAt.Add(window)
	l.RenewCount++
	return l, nil
}
