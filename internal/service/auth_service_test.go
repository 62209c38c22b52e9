package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/abyansyah052/deploytps/internal/config"
	"github.com/abyansyah052/deploytps/internal/entity"
	"github.com/abyansyah052/deploytps/internal/repository"
	"github.com/abyansyah052/deploytps/internal/testutil"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpire: time.Hour,
			Issuer:            "tps-dashboard",
		},
		Admin: config.AdminConfig{
			Name:     "Bootstrap Admin",
			Email:    "admin@example.com",
			Password: "bootstrap123",
		},
	}
}

func TestLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewAuthService(users, testAuthConfig())
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	if err := users.Create(ctx, &entity.User{
		Name:         "Abyansyah",
		Email:        "aby@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	result, err := svc.Login(ctx, "ABY@example.com", "rahasia123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Error("login returned empty token")
	}
	if result.User.Email != "aby@example.com" {
		t.Errorf("login user = %q", result.User.Email)
	}

	// Wrong password and unknown email fail the same way.
	if _, err := svc.Login(ctx, "aby@example.com", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "rahasia123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v", err)
	}

	if _, err := svc.Login(ctx, "", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty credentials err = %v", err)
	}
}

func TestEnsureAdminBootstrap(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewAuthService(users, testAuthConfig())
	ctx := context.Background()

	if err := svc.EnsureAdmin(ctx); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	admin, err := users.FindByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("bootstrap admin missing: %v", err)
	}
	if admin.Role != entity.RoleAdmin {
		t.Errorf("bootstrap role = %q", admin.Role)
	}

	// Second run is a no-op, not a duplicate.
	if err := svc.EnsureAdmin(ctx); err != nil {
		t.Fatalf("second EnsureAdmin: %v", err)
	}
	count, _ := users.Count(ctx)
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}

	// The bootstrap account can log in.
	if _, err := svc.Login(ctx, "admin@example.com", "bootstrap123"); err != nil {
		t.Errorf("bootstrap login failed: %v", err)
	}
}
