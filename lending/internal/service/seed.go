package service

import (
	"context"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var demoUsers = []model.UserCreateRequest{
	{
		Name:     "Head Librarian",
		Email:    "librarian@library.local",
		Password: "Librarian_07",
		Phone:    "8148847642",
		Address:  "Main Library Building",
		Role:     model.RoleLibrarian,
	},
	{
		Name:     "Test User",
		Email:    "user@library.local",
		Password: "Patron_007",
		Phone:    "7904411578",
		Address:  "123 Test Street",
		Role:     model.RoleUser,
	},
}

var demoBooks = []struct {
	title    string
	author   string
	category model.Category
	copies   int
}{
	{"Swift Programming: The Big Nerd Ranch Guide", "Mikey Ward", model.CategoryProgramming, 5},
	{"Clean Architecture", "Robert C. Martin", model.CategoryProgramming, 3},
	{"The Pragmatic Programmer", "David Thomas", model.CategoryProgramming, 4},
	{"1984", "George Orwell", model.CategoryFiction, 6},
	{"To Kill a Mockingbird", "Harper Lee", model.CategoryFiction, 4},
	{"Sapiens", "Yuval Noah Harari", model.CategoryHistory, 3},
	{"Cosmos", "Carl Sagan", model.CategoryScience, 2},
}

// Seed creates the demo accounts that are missing and fills an empty catalog
// with demo books. It is safe to run on every start.
func (s *Service) Seed(ctx context.Context) error {
	for _, u := range demoUsers {
		_, err := s.repo.GetUserByEmail(ctx, u.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrUserNotFound) {
			return err
		}
		if _, err := s.RegisterUser(ctx, u); err != nil && !errors.Is(err, errs.ErrUserAlreadyExists) {
			return errors.Wrapf(err, "seed user %s", u.Email)
		}
	}

	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return nil
	}
	for _, b := range demoBooks {
		if _, err := s.AddBook(ctx, b.title, b.author, b.category, b.copies); err != nil {
			return errors.Wrapf(err, "seed book %q", b.title)
		}
	}
	s.log.Info("demo data seeded", zap.Int("books", len(demoBooks)), zap.Int("users", len(demoUsers)))
	return nil
}
