package usecase

import (
	"context"
	"errors"
	"testing"
)

type mockRelay struct {
	calls int
	err   error

	name, email, message string
}

func (m *mockRelay) Send(_ context.Context, name, email, message string) error {
	m.calls++
	m.name, m.email, m.message = name, email, message
	return m.err
}

func TestContactUsecase_Send(t *testing.T) {
	r := &mockRelay{}
	uc := NewContactUsecase(r)

	err := uc.Send(context.Background(), ContactInput{
		Name:    "  Dana  ",
		Email:   "dana@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.calls != 1 || r.name != "Dana" {
		t.Fatalf("relay must receive trimmed input, got calls=%d name=%q", r.calls, r.name)
	}
}

func TestContactUsecase_Send_Validation(t *testing.T) {
	r := &mockRelay{}
	uc := NewContactUsecase(r)

	cases := []ContactInput{
		{Email: "dana@example.com", Message: "hi"},
		{Name: "Dana", Message: "hi"},
		{Name: "Dana", Email: "dana@example.com"},
		{Name: "Dana", Email: "not-an-email", Message: "hi"},
	}
	for _, in := range cases {
		if err := uc.Send(context.Background(), in); !errors.Is(err, ErrInvalidContactInput) {
			t.Fatalf("expected ErrInvalidContactInput for %+v, got %v", in, err)
		}
	}
	if r.calls != 0 {
		t.Fatalf("relay must not be called on invalid input")
	}
}

func TestContactUsecase_Send_Disabled(t *testing.T) {
	uc := NewContactUsecase(nil)

	in := ContactInput{Name: "Dana", Email: "dana@example.com", Message: "hi"}
	if err := uc.Send(context.Background(), in); !errors.Is(err, ErrContactDisabled) {
		t.Fatalf("expected ErrContactDisabled, got %v", err)
	}
}

func TestContactUsecase_Send_RelayFailure(t *testing.T) {
	r := &mockRelay{err: errors.New("upstream 502")}
	uc := NewContactUsecase(r)

	in := ContactInput{Name: "Dana", Email: "dana@example.com", Message: "hi"}
	if err := uc.Send(context.Background(), in); !errors.Is(err, ErrContactRelayFailed) {
		t.Fatalf("expected ErrContactRelayFailed, got %v", err)
	}
}
