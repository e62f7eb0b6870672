package service

import (
	"context"

	"autores-backend/internal/domains/account/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error)
	Login(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error)
}
