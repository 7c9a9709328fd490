package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("user name must not be empty")
	ErrEmptyEmail = errors.New("user email must not be empty")
)

type User struct {
	id    uuid.UUID
	name  string
	email string
}

// NewUser validates shape only; email uniqueness is a store-level rule
// enforced by the usecase.
func NewUser(name, email string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func ReconstructUser(id uuid.UUID, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ApplyPatch(name, email *string) error {
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return ErrEmptyName
		}
		u.name = *name
	}
	if email != nil {
		if strings.TrimSpace(*email) == "" {
			return ErrEmptyEmail
		}
		u.email = *email
	}
	return nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
