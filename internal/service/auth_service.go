package service

import (
	"errors"
	"strings"
	"time"

	"terravolt-cms/internal/core/auth"
	"terravolt-cms/internal/domain"
	"terravolt-cms/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

// Login verifies credentials and mints a session token. Unknown email
// and wrong password collapse into the same error.
func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Register creates an admin or superadmin account. Role defaults to
// admin when absent.
func (s *AuthService) Register(email, password string, role domain.Role) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if role == "" {
		role = domain.RoleAdmin
	}
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if !role.Valid() {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Verify(token string) (*auth.Claims, error) {
	return s.jwter.Verify(token)
}

// TokenTTL is the lifetime of issued tokens; the session cookie expiry
// is derived from it.
func (s *AuthService) TokenTTL() time.Duration { return s.jwter.TTL }
