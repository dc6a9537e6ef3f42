package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
)

// User is an operator account. Accounts are provisioned by an admin; there is
// no self-service signup.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	displayName  string
	role         authorization.Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash, displayName string, role authorization.Role) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if strings.TrimSpace(displayName) == "" {
		displayName = username
	}

	now := time.Now().UTC()

	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, email, passwordHash, displayName string,
	role authorization.Role,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                 { return u.id }
func (u *User) Username() string         { return u.username }
func (u *User) Email() string            { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) DisplayName() string      { return u.displayName }
func (u *User) Role() authorization.Role { return u.role }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
