package auth

import (
	"context"
	"errors"
	"testing"

	"qrupay/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
	err     error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[uuid.UUID]user.User{}, byEmail: map[string]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func TestService_Register(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{Email: "  Dana@Example.COM ", Password: "correcthorse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "dana@example.com" {
		t.Fatalf("email must be normalized, got %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must never leave the service")
	}

	stored := repo.byEmail["dana@example.com"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correcthorse")); err != nil {
		t.Fatalf("stored hash does not match the password: %v", err)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	in := RegisterInput{Email: "dana@example.com", Password: "correcthorse"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Register_InvalidInput(t *testing.T) {
	svc := NewService(newMockUserRepo())

	cases := []RegisterInput{
		{Email: "", Password: "correcthorse"},
		{Email: "no-at-sign", Password: "correcthorse"},
		{Email: "dana@example.com", Password: "short"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestService_Login(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "dana@example.com", Password: "correcthorse"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "DANA@example.com", Password: "correcthorse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "dana@example.com" || u.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestService_Login_BadCredentials(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "dana@example.com", Password: "correcthorse"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	cases := []LoginInput{
		{Email: "dana@example.com", Password: "wrongpassword"},
		{Email: "nobody@example.com", Password: "correcthorse"},
		{Email: "dana@example.com", Password: ""},
	}
	for _, in := range cases {
		if _, err := svc.Login(context.Background(), in); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %+v, got %v", in, err)
		}
	}
}
