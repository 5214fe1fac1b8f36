// Package auth registers users and exchanges credentials for signed tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"finance_system/internal/domain"
	"finance_system/internal/store"
	"finance_system/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 4
	maxUsernameLength = 50
	maxRoleLength     = 20
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token    string
	Username string
	Role     string
}

// Authenticator validates credentials against a UserStore and mints tokens.
type Authenticator struct {
	users  store.UserStore
	tokens utils.TokenConfig
	cost   int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthenticator(users store.UserStore, tokens utils.TokenConfig) *Authenticator {
	return &Authenticator{users: users, tokens: tokens, cost: bcrypt.DefaultCost}
}

// Register creates a user. Role defaults to domain.DefaultRole.
func (a *Authenticator) Register(ctx context.Context, username, password, role string) error {
	if strings.TrimSpace(username) == "" {
		return domain.NewValidationError("username", "username is required")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return domain.NewValidationError("username", fmt.Sprintf("username must be at most %d characters", maxUsernameLength))
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domain.NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	role = strings.TrimSpace(role)
	if role == "" {
		role = domain.DefaultRole
	}
	if len(role) > maxRoleLength {
		return domain.NewValidationError("role", fmt.Sprintf("role must be at most %d characters", maxRoleLength))
	}

	if _, err := a.users.FindByUsername(ctx, username); err == nil {
		return domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.NewValidationError("password", "password must be at most 72 bytes")
		}
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{Username: username, Password: string(hash), Role: role}
	if err := a.users.Create(ctx, user); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	}).Info("User registered")
	return nil
}

// Login returns domain.ErrUnauthorized for an unknown user and for a wrong
// password alike.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Burn the same bcrypt work as a real comparison.
			_ = bcrypt.CompareHashAndPassword(a.dummy(), []byte(password))
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(a.tokens, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResult{Token: token, Username: user.Username, Role: user.Role}, nil
}

func (a *Authenticator) dummy() []byte {
	a.dummyOnce.Do(func() {
		a.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), a.cost)
	})
	return a.dummyHash
}
