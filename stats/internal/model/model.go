package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is the subset of a lending event the stats service stores. Topic,
// Partition and Offset locate the message it was read from.
type Event struct {
	Type       string    `json:"type"`
	BookID     uuid.UUID `json:"bookId"`
	Fine       float64   `json:"fine,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`

	Topic     string `json:"-"`
	Partition int32  `json:"-"`
	Offset    int64  `json:"-"`
}

const (
	EventRequestApproved = "request.approved"
	EventBookReturned    = "book.returned"
)

type BookStat struct {
	BookID  uuid.UUID `json:"bookId" db:"book_id"`
	Issues  int       `json:"issues" db:"issues"`
	Returns int       `json:"returns" db:"returns"`
}

type Stats struct {
	Events         map[string]int `json:"events"`
	OnLoan         int            `json:"onLoan"`
	FinesCollected float64        `json:"finesCollected"`
	TopBooks       []BookStat     `json:"topBooks"`
	LastEventAt    *time.Time     `json:"lastEventAt,omitempty"`
}
