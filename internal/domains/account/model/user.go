package model

import (
	"errors"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is a registered account. Only the bcrypt hash of the password is
// stored.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Credentials is the payload for both registration and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email is not valid"),
		),
		validation.Field(&c.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 128),
			validation.By(passwordStrength),
		),
	)
}

// passwordStrength requires at least one uppercase letter, one lowercase
// letter and one digit.
func passwordStrength(value interface{}) error {
	password, _ := value.(string)
	if password == "" {
		return nil
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("must contain an uppercase letter, a lowercase letter and a digit")
	}
	return nil
}

// AuthResponse is returned by both registration and login.
type AuthResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}
