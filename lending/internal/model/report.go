package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type OverdueItem struct {
	IssueID     uuid.UUID `json:"issueId"`
	BookID      uuid.UUID `json:"bookId"`
	BookTitle   string    `json:"bookTitle"`
	Author      string    `json:"author"`
	UserID      uuid.UUID `json:"userId"`
	UserName    string    `json:"userName"`
	DueAt       time.Time `json:"dueAt"`
	DaysOverdue int       `json:"daysOverdue"`
	AccruedFine float64   `json:"accruedFine"`
}

type IssueHistoryItem struct {
	IssueID    uuid.UUID  `json:"issueId"`
	BookTitle  string     `json:"bookTitle"`
	Author     string     `json:"author"`
	UserName   string     `json:"userName"`
	Email      string     `json:"email"`
	IssuedAt   time.Time  `json:"issuedAt"`
	DueAt      time.Time  `json:"dueAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
	Fine       float64    `json:"fine"`
}

type AddBookRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Category string `json:"category" validate:"required"`
	Copies   *int   `json:"copies"`
}

type CreateBorrowRequest struct {
	BookID string `json:"bookId" validate:"required,uuid"`
}

type ReturnBookRequest struct {
	Date *Date `json:"date"`
}

type ReturnBookResponse struct {
	IssueID uuid.UUID `json:"issueId"`
	Fine    float64   `json:"fine"`
}

// Date accepts either an RFC 3339 timestamp or a bare YYYY-MM-DD date.
// A bare date resolves to the last instant of that UTC day.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	date, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if date, err = time.Parse(time.DateOnly, s); err != nil {
			return err
		}
		date = EndOfDay(date)
	}
	d.Time = date
	return
}

// EndOfDay returns the last representable instant of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
}
