package relay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewFormRelay_EmptyEndpoint(t *testing.T) {
	if r := NewFormRelay("", nil); r != nil {
		t.Fatalf("expected nil relay for empty endpoint")
	}
	if r := NewFormRelay("   ", nil); r != nil {
		t.Fatalf("expected nil relay for blank endpoint")
	}
}

func TestHTTPFormRelay_Send(t *testing.T) {
	var got submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("bad body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewFormRelay(srv.URL, nil)
	if err := r.Send(context.Background(), "Dana", "dana@example.com", "Hello"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "Dana" || got.Email != "dana@example.com" || got.Message != "Hello" {
		t.Fatalf("unexpected submission: %+v", got)
	}
}

func TestHTTPFormRelay_Send_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := NewFormRelay(srv.URL, nil)
	if err := r.Send(context.Background(), "Dana", "dana@example.com", "Hello"); err == nil {
		t.Fatalf("expected an error for a 502 response")
	}
}
