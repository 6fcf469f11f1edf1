package upstream

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aliyevorkhan/face-recognition-frontend/internal/domain"
)

// ServiceCode is sent with every upstream request.
const ServiceCode = "face"

// Config holds the configuration for the upstream client
type Config struct {
	Timeout time.Duration
}

// DefaultConfig returns a Config with the contractual 30s deadline
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// Client is the HTTP client for the upstream face API. Each Analyze
// call issues exactly one request; failed calls are never retried.
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a new upstream client
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// Analyze posts the images to url as {"<field>": "<base64>", ...} and
// returns the decoded JSON body. Every failure comes back as a
// *domain.AppError carrying the wire shape for the caller.
func (c *Client) Analyze(ctx context.Context, url, apiKey string, images map[string][]byte) (any, error) {
	payload := make(map[string]string, len(images))
	for field, data := range images {
		payload[field] = base64.StdEncoding.EncodeToString(data)
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.ErrInternal.WithError(fmt.Errorf("marshal request: %w", err))
	}

	// The deadline covers the whole exchange, headers and body both.
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, domain.ErrInternal.WithError(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Service-Code", ServiceCode)
	req.Header.Set("X-API-KEY", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrUpstreamTimeout.WithError(err)
		}
		return nil, domain.ErrUpstreamUnreachable.WithError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrUpstreamTimeout.WithError(err)
		}
		return nil, domain.ErrUpstreamUnreachable.WithError(fmt.Errorf("read response: %w", err))
	}

	var decoded any
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr != nil {
			return nil, domain.NewUpstreamError(resp.StatusCode, domain.Excerpt(string(raw)))
		}
		return nil, domain.NewUpstreamError(resp.StatusCode, decoded)
	}

	if decodeErr != nil {
		return nil, domain.NewUpstreamBadResponse(string(raw))
	}

	return decoded, nil
}
