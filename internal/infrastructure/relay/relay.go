package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// FormRelay forwards contact submissions to a hosted form endpoint
// (Formspree-style). The service never stores submissions itself.
type FormRelay interface {
	Send(ctx context.Context, name, email, message string) error
}

type httpFormRelay struct {
	endpoint string
	client   *http.Client
	logger   *log.Logger
}

type submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// NewFormRelay returns nil when no endpoint is configured; callers
// treat a nil relay as "contact form disabled".
func NewFormRelay(endpoint string, logger *log.Logger) FormRelay {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	return &httpFormRelay{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

func (r *httpFormRelay) Send(ctx context.Context, name, email, message string) error {
	if r == nil || r.client == nil {
		return errors.New("nil form relay")
	}

	b, err := json.Marshal(submission{Name: name, Email: email, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if r.logger != nil {
			r.logger.Printf("contact relay rejected | status=%d", resp.StatusCode)
		}
		return fmt.Errorf("form relay returned status %d", resp.StatusCode)
	}
	return nil
}
