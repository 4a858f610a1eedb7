package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser stores a new account with a bcrypt-hashed password. Accounts
// default to the patron role.
func (s *Service) RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	user := model.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         role,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Login checks the credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}
	now := s.now()
	token, expiresAt, err := auth.NewToken(s.cfg.Auth, user.Profile(), now)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int64(expiresAt.Sub(now).Seconds()),
		TokenType:   "Bearer",
	}, nil
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	return s.repo.GetUser(ctx, userID)
}
