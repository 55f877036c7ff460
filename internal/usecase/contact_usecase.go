package usecase

import (
	"context"
	"errors"
	"strings"

	"qrupay/internal/infrastructure/relay"
)

var (
	ErrInvalidContactInput = errors.New("invalid contact input")
	ErrContactDisabled     = errors.New("contact form disabled")
	ErrContactRelayFailed  = errors.New("contact relay failed")
)

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type ContactUsecase interface {
	Send(ctx context.Context, in ContactInput) error
}

type Contact struct {
	relay relay.FormRelay
}

func NewContactUsecase(r relay.FormRelay) *Contact {
	return &Contact{relay: r}
}

func (u *Contact) Send(ctx context.Context, in ContactInput) error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)
	if name == "" || email == "" || message == "" || !strings.Contains(email, "@") {
		return ErrInvalidContactInput
	}

	if u.relay == nil {
		return ErrContactDisabled
	}

	if err := u.relay.Send(ctx, name, email, message); err != nil {
		return ErrContactRelayFailed
	}
	return nil
}
