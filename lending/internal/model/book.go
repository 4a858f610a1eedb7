package model

import (
	"strings"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/google/uuid"
)

type Category string

const (
	CategoryFiction     Category = "Fiction"
	CategoryNonFiction  Category = "Non-Fiction"
	CategoryScience     Category = "Science"
	CategoryTechnology  Category = "Technology"
	CategoryHistory     Category = "History"
	CategoryProgramming Category = "Programming"
	CategoryOther       Category = "Other"
)

var categories = []Category{
	CategoryFiction,
	CategoryNonFiction,
	CategoryScience,
	CategoryTechnology,
	CategoryHistory,
	CategoryProgramming,
	CategoryOther,
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches s against the known categories ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", errs.ErrInvalidCategory
}

type Book struct {
	ID              uuid.UUID `json:"bookId" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	Category        Category  `json:"category" db:"category"`
	TotalCopies     int       `json:"totalCopies" db:"total_copies"`
	AvailableCopies int       `json:"availableCopies" db:"available_copies"`
	Version         int       `json:"-" db:"version"`
}

func NewBook(title, author string, category Category, copies int) (Book, error) {
	if copies <= 0 {
		return Book{}, errs.ErrInvalidCopyCount
	}
	return Book{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(title),
		Author:          strings.TrimSpace(author),
		Category:        category,
		TotalCopies:     copies,
		AvailableCopies: copies,
	}, nil
}

// Same reports whether b describes the title identified by title, author and category.
func (b Book) Same(title, author string, category Category) bool {
	return b.Category == category &&
		strings.EqualFold(b.Title, strings.TrimSpace(title)) &&
		strings.EqualFold(b.Author, strings.TrimSpace(author))
}

// Matches expects a lowercased, trimmed query.
func (b Book) Matches(query string) bool {
	return strings.Contains(strings.ToLower(b.Title), query) ||
		strings.Contains(strings.ToLower(b.Author), query) ||
		strings.Contains(strings.ToLower(string(b.Category)), query)
}

func (b Book) Available() bool {
	return b.AvailableCopies > 0
}

func (b Book) IssuedCopies() int {
	return b.TotalCopies - b.AvailableCopies
}

func (b Book) AddCopies(n int) (Book, error) {
	if n <= 0 {
		return b, errs.ErrInvalidCopyCount
	}
	b.TotalCopies += n
	b.AvailableCopies += n
	return b, nil
}

func (b Book) IssueCopy() (Book, error) {
	if b.AvailableCopies <= 0 {
		return b, errs.ErrBookUnavailable
	}
	b.AvailableCopies--
	return b, nil
}

// ReturnCopy puts one copy back on the shelf, never above TotalCopies.
func (b Book) ReturnCopy() Book {
	if b.AvailableCopies < b.TotalCopies {
		b.AvailableCopies++
	}
	return b
}
