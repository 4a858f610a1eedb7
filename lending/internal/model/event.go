package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookAdded       EventType = "book.added"
	EventBookRemoved     EventType = "book.removed"
	EventRequestCreated  EventType = "request.created"
	EventRequestApproved EventType = "request.approved"
	EventRequestRejected EventType = "request.rejected"
	EventBookReturned    EventType = "book.returned"
	EventLoanRenewed     EventType = "loan.renewed"
)

type LendingEvent struct {
	Type       EventType  `json:"type"`
	BookID     uuid.UUID  `json:"bookId"`
	RequestID  *uuid.UUID `json:"requestId,omitempty"`
	IssueID    *uuid.UUID `json:"issueId,omitempty"`
	UserID     *uuid.UUID `json:"userId,omitempty"`
	Fine       float64    `json:"fine,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}
