package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddBook adds copies to the book matching title, author and category, or
// creates it.
func (s *Service) AddBook(ctx context.Context, title, author string, category model.Category, copies int) (model.Book, error) {
	if copies <= 0 {
		return model.Book{}, errs.ErrInvalidCopyCount
	}
	saved, err := s.addBook(ctx, title, author, category, copies)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, model.LendingEvent{Type: model.EventBookAdded, BookID: saved.ID})
	return saved, nil
}

func (s *Service) addBook(ctx context.Context, title, author string, category model.Category, copies int) (model.Book, error) {
	unlock := s.locks.Lock(catalogKey)
	defer unlock()

	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	for _, b := range books {
		if b.Same(title, author, category) {
			book = b
			break
		}
	}

	if book.ID == uuid.Nil {
		if book, err = model.NewBook(title, author, category, copies); err != nil {
			return model.Book{}, err
		}
	} else {
		unlockBook := s.locks.Lock(bookKey(book.ID))
		defer unlockBook()
		// re-read under the book lock, loans may have moved availability
		if book, err = s.repo.GetBook(ctx, book.ID); err != nil {
			return model.Book{}, err
		}
		if book, err = book.AddCopies(copies); err != nil {
			return model.Book{}, err
		}
	}

	saved, err := s.repo.SaveBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.purgeSearch()
	s.log.Debug("book added", zap.Stringer("bookId", saved.ID), zap.Int("copies", copies), zap.Int("total", saved.TotalCopies))
	return saved, nil
}

func (s *Service) RemoveBook(ctx context.Context, bookID uuid.UUID) error {
	if err := s.removeBook(ctx, bookID); err != nil {
		return err
	}
	s.publish(ctx, model.LendingEvent{Type: model.EventBookRemoved, BookID: bookID})
	return nil
}

func (s *Service) removeBook(ctx context.Context, bookID uuid.UUID) error {
	unlock := s.locks.Lock(catalogKey)
	defer unlock()
	unlockBook := s.locks.Lock(bookKey(bookID))
	defer unlockBook()

	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return err
	}
	active, err := s.repo.ListLoans(ctx, repository.LoanFilter{BookID: &bookID, ActiveOnly: true})
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return errs.ErrBookCurrentlyIssued
	}
	if err := s.repo.RemoveBook(ctx, bookID); err != nil {
		return err
	}
	s.purgeSearch()
	return nil
}

func (s *Service) GetBook(ctx context.Context, bookID uuid.UUID) (model.Book, error) {
	return s.repo.GetBook(ctx, bookID)
}

// Search matches query case-insensitively against title, author and category.
// An empty query returns the whole catalog. Results are sorted by title.
func (s *Service) Search(ctx context.Context, query string) ([]model.Book, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if s.search != nil {
		if item := s.search.Get(query); item != nil {
			return cloneBooks(item.Value()), nil
		}
	}

	var gen uint64
	if s.search != nil {
		gen = s.searchGeneration()
	}
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]model.Book, 0, len(books))
	for _, b := range books {
		if query == "" || b.Matches(query) {
			items = append(items, b)
		}
	}
	sortByTitle(items)

	if s.search != nil {
		s.cacheSearch(query, items, gen)
	}
	return items, nil
}

func (s *Service) ListAvailable(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]model.Book, 0, len(books))
	for _, b := range books {
		if b.Available() {
			items = append(items, b)
		}
	}
	sortByTitle(items)
	return items, nil
}

func sortByTitle(books []model.Book) {
	sort.SliceStable(books, func(i, j int) bool {
		return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
	})
}

func cloneBooks(books []model.Book) []model.Book {
	out := make([]model.Book, len(books))
	copy(out, books)
	return out
}
