// Package revalidate notifies the site frontend that content under a set of
// paths changed and any rendered pages should be refreshed.
package revalidate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

type Notifier struct {
	client *retryablehttp.Client
	url    string
	secret string
	logger *slog.Logger
}

// New returns a Notifier posting to url. An empty url disables
// notifications; the Notifier is still safe to call.
func New(url, secret string, logger *slog.Logger) *Notifier {
	client := retryablehttp.NewClient()
	client.Logger = nil
	return &Notifier{
		client: client,
		url:    url,
		secret: secret,
		logger: logger,
	}
}

type payload struct {
	Paths  []string `json:"paths"`
	Secret string   `json:"secret,omitempty"`
}

// Notify posts the changed paths to the webhook. Best-effort: failures are
// logged and swallowed so a dead frontend never blocks a write.
func (n *Notifier) Notify(ctx context.Context, paths ...string) {
	if n == nil || n.url == "" || len(paths) == 0 {
		return
	}

	body, err := json.Marshal(payload{Paths: paths, Secret: n.secret})
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to marshal revalidate payload", slog.Any("error", err))
		return
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.url, body)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to build revalidate request", slog.Any("error", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.WarnContext(ctx, "revalidate webhook failed", slog.Any("error", err))
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if err := expectStatus2xx(resp); err != nil {
		n.logger.WarnContext(ctx, "revalidate webhook rejected",
			slog.Any("error", err), slog.String("url", n.url))
	}
}

func expectStatus2xx(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
