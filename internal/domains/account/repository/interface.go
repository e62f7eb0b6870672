package repository

import (
	"context"

	"autores-backend/internal/domains/account/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
