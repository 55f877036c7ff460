package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestEmergencyLink(t *testing.T) {
	got := EmergencyLink("https://qrupay.example", "abc123")
	if got != "https://qrupay.example/emergency/abc123" {
		t.Fatalf("unexpected link: %q", got)
	}
}

func TestQRCodeUsecase_Link(t *testing.T) {
	repo := newMockProfileRepo()
	p := storedProfile(repo, false)
	uc := NewQRCodeUsecase(repo, "https://qrupay.example")

	link, err := uc.Link(context.Background(), p.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "https://qrupay.example/emergency/" + p.ID.String()
	if link != want {
		t.Fatalf("expected %q, got %q", want, link)
	}
}

func TestQRCodeUsecase_Link_NoProfile(t *testing.T) {
	uc := NewQRCodeUsecase(newMockProfileRepo(), "https://qrupay.example")

	if _, err := uc.Link(context.Background(), uuid.New()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestQRCodeUsecase_PNG(t *testing.T) {
	repo := newMockProfileRepo()
	p := storedProfile(repo, false)
	uc := NewQRCodeUsecase(repo, "https://qrupay.example")

	png, err := uc.PNG(context.Background(), p.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatalf("expected a PNG image, got %d bytes starting %q", len(png), png[:min(4, len(png))])
	}
}

func TestQRCodeUsecase_PrintPage(t *testing.T) {
	repo := newMockProfileRepo()
	p := storedProfile(repo, false)
	p.EmergencyContactName = "Sam <Rivera>"
	repo.byUser[p.UserID] = p
	uc := NewQRCodeUsecase(repo, "https://qrupay.example")

	page, err := uc.PrintPage(context.Background(), p.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	body := string(page)
	if !strings.Contains(body, "Sam &lt;Rivera&gt;") {
		t.Fatalf("contact name must be HTML-escaped, got: %s", body)
	}
	if !strings.Contains(body, p.EmergencyContactPhone) {
		t.Fatalf("contact phone missing from print page")
	}
	if !strings.Contains(body, "data:image/png;base64,") {
		t.Fatalf("QR image must be inlined")
	}
}
