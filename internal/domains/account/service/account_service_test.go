package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autores-backend/internal/domains/account/model"
	"autores-backend/pkg/jwt"
)

type fakeAccountRepository struct {
	users map[string]*model.User
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{users: make(map[string]*model.User)}
}

func (f *fakeAccountRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return nil, model.ErrEmailAlreadyExists
	}
	created := &model.User{
		ID:           uuid.New(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	f.users[created.Email] = created
	return created, nil
}

func (f *fakeAccountRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, model.ErrInvalidCredentials
	}
	return user, nil
}

func validCreds() model.Credentials {
	return model.Credentials{Email: "ana@example.com", Password: "Secreto1"}
}

func TestAccountServiceRegisterIssuesToken(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepository(), jwt.NewManager("test-secret"))

	auth, err := svc.Register(context.Background(), validCreds())
	require.NoError(t, err)

	assert.NotEmpty(t, auth.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(jwt.TokenLifetime), auth.Expiration, time.Minute)
}

func TestAccountServiceRegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		creds model.Credentials
		field string
	}{
		{name: "bad email", creds: model.Credentials{Email: "not-an-email", Password: "Secreto1"}, field: "email"},
		{name: "short password", creds: model.Credentials{Email: "a@b.com", Password: "Ab1"}, field: "password"},
		{name: "no uppercase", creds: model.Credentials{Email: "a@b.com", Password: "secreto1"}, field: "password"},
		{name: "no digit", creds: model.Credentials{Email: "a@b.com", Password: "Secretooo"}, field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAccountService(newFakeAccountRepository(), jwt.NewManager("test-secret"))

			_, err := svc.Register(context.Background(), tt.creds)

			var fieldErrors validation.Errors
			require.ErrorAs(t, err, &fieldErrors)
			assert.Contains(t, fieldErrors, tt.field)
		})
	}
}

func TestAccountServiceRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := NewAccountService(repo, jwt.NewManager("test-secret"))

	_, err := svc.Register(context.Background(), validCreds())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validCreds())
	assert.ErrorIs(t, err, model.ErrEmailAlreadyExists)
}

func TestAccountServiceLogin(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := NewAccountService(repo, jwt.NewManager("test-secret"))

	_, err := svc.Register(context.Background(), validCreds())
	require.NoError(t, err)

	auth, err := svc.Login(context.Background(), validCreds())
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAccountServiceLoginFailuresAreGeneric(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := NewAccountService(repo, jwt.NewManager("test-secret"))

	_, err := svc.Register(context.Background(), validCreds())
	require.NoError(t, err)

	wrongPassword := validCreds()
	wrongPassword.Password = "Secreto2"
	_, err = svc.Login(context.Background(), wrongPassword)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	unknownEmail := validCreds()
	unknownEmail.Email = "nadie@example.com"
	_, err = svc.Login(context.Background(), unknownEmail)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
