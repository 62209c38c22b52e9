package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/abyansyah052/deploytps/internal/config"
	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/middleware"
	"github.com/abyansyah052/deploytps/internal/repository"
)

// ErrInvalidCredentials is returned for unknown emails and wrong
// passwords alike.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService issues JWTs for admin logins.
type AuthService struct {
	users *repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// LoginResult is the /api/auth/login response body.
type LoginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Login verifies the password and signs an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) signToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenExpire)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}

// EnsureAdmin creates the bootstrap admin account when the users table
// is empty. Called once at startup.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin := s.cfg.Admin
	if admin.Email == "" || admin.Password == "" {
		return errors.New("users table is empty and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	name := admin.Name
	if name == "" {
		name = "Administrator"
	}

	err = s.users.Create(ctx, &entity.User{
		Name:         name,
		Email:        strings.ToLower(admin.Email),
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	})
	if errors.Is(err, repository.ErrConflict) {
		// Another instance won the bootstrap race.
		return nil
	}
	return err
}

// Profile loads the account behind a token's user id field.
func (s *AuthService) Profile(ctx context.Context, email string) (*entity.User, error) {
	return s.users.FindByEmail(ctx, email)
}
