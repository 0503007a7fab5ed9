package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MediaFetcher downloads message attachments from the transport's media
// store.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type mediaFetcher struct {
	client     *http.Client
	accountSID string
	authToken  string
}

func NewMediaFetcher(accountSID, authToken string) MediaFetcher {
	return &mediaFetcher{
		client:     &http.Client{Timeout: 30 * time.Second},
		accountSID: accountSID,
		authToken:  authToken,
	}
}

// Fetch implements MediaFetcher. Twilio media URLs require the account
// credentials as basic auth; anything but a 200 is a fetch failure.
func (m *mediaFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build media request: %w", err)
	}
	req.SetBasicAuth(m.accountSID, m.authToken)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("failed to fetch media: %d %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read media body: %w", err)
	}

	return data, nil
}
