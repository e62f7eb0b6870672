package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"autores-backend/internal/domains/account/model"
	"autores-backend/internal/domains/account/repository"
	"autores-backend/pkg/jwt"
)

const bcryptCost = 12

type accountService struct {
	repo       repository.RepositoryInterface
	jwtManager *jwt.Manager
}

func NewAccountService(repo repository.RepositoryInterface, jwtManager *jwt.Manager) ServiceInterface {
	return &accountService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register creates the account and immediately issues a token, so a new
// user does not need a separate login call.
func (s *accountService) Register(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &model.User{
		Email:        creds.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(user.Email)
}

// Login never reveals whether the email or the password was wrong; both
// paths collapse into ErrInvalidCredentials.
func (s *accountService) Login(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueToken(user.Email)
}

func (s *accountService) issueToken(email string) (*model.AuthResponse, error) {
	token, expiration, err := s.jwtManager.Generate(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &model.AuthResponse{
		Token:      token,
		Expiration: expiration,
	}, nil
}
