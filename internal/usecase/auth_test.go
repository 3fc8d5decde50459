package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	pkgAuth "github.com/polkiloo/celengan/internal/pkg/auth"
	testhelpers "github.com/polkiloo/celengan/internal/test"
)

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	cases := []struct {
		name, userName, email, password string
	}{
		{"empty name", "", "a@b.c", "secret"},
		{"empty password", "alice", "a@b.c", ""},
		{"malformed email", "alice", "not-an-email", "secret"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.userName, tc.email, tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{
		IssueFn: func(id int64) (string, error) { return "token-1", nil },
	})

	usr, token, err := uc.Register(context.Background(), "alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
	if usr.PasswordHash != "hash:secret" {
		t.Fatalf("expected hashed password, got %q", usr.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "secret"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	if _, _, err := uc.Register(context.Background(), "alice", "alice@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "ghost@example.com", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, token, err := uc.Authenticate(context.Background(), "alice@example.com", "secret"); err != nil || token == "" {
		t.Fatalf("expected successful auth, got token=%q err=%v", token, err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{
		ParseFn: func(token string) (int64, error) { return 42, nil },
	})

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	id, err := uc.ParseToken("some-token")
	if err != nil || id != 42 {
		t.Fatalf("unexpected result: id=%d err=%v", id, err)
	}
}
