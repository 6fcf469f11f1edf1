// Package client re-expresses the browser form controller as a Go
// library: per-kind form state (attached images with inline previews, a
// persisted API key, the last result or failure) with an explicit
// collect → submit → render lifecycle against the proxy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aliyevorkhan/face-recognition-frontend/internal/domain"
)

// DefaultTimeout is the per-submission deadline.
const DefaultTimeout = 30 * time.Second

// State is the lifecycle position of a form.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailure    State = "failure"
)

// KeyStore persists the credential between sessions.
type KeyStore interface {
	Load() (string, error)
	Save(key string) error
	Remove() error
}

// Config configures a Form.
type Config struct {
	// BaseURL is the proxy origin, e.g. "http://localhost:3000".
	BaseURL string
	// Timeout bounds each submission. Zero selects DefaultTimeout.
	Timeout time.Duration
	// Store persists the credential. Nil keeps the key in memory only.
	Store KeyStore
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Form drives one analysis kind through the collect → submit → render
// cycle. Like the page it mirrors, every transition is an explicit
// sequential user action; a Form is not safe for concurrent use.
type Form struct {
	kind       domain.Kind
	baseURL    string
	timeout    time.Duration
	store      KeyStore
	httpClient *http.Client

	state       State
	key         string
	keySaved    bool
	attachments map[string]Attachment
	result      *Result
	failure     *Failure
}

// NewForm builds an idle form for the given kind and loads the stored
// credential, if any.
func NewForm(kind domain.Kind, cfg Config) (*Form, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unsupported analysis kind %q", kind)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	f := &Form{
		kind:        kind,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		timeout:     cfg.Timeout,
		store:       cfg.Store,
		httpClient:  cfg.HTTPClient,
		state:       StateIdle,
		attachments: make(map[string]Attachment),
	}

	if cfg.Store != nil {
		key, err := cfg.Store.Load()
		if err != nil {
			return nil, fmt.Errorf("load stored credential: %w", err)
		}
		f.key = key
		f.keySaved = key != ""
	}

	return f, nil
}

func (f *Form) Kind() domain.Kind { return f.kind }

func (f *Form) State() State { return f.state }

// Result returns the last successful reply, or nil.
func (f *Form) Result() *Result { return f.result }

// Failure returns the last normalized failure, or nil.
func (f *Form) Failure() *Failure { return f.failure }

// Attachment returns the image attached under field, if any.
func (f *Form) Attachment(field string) (Attachment, bool) {
	att, ok := f.attachments[field]
	return att, ok
}

// Attach validates and stores one image under the given field, building
// its inline preview. Validation happens before any encoding: an
// unknown field, empty content or content above the 5 MB ceiling is
// rejected locally.
func (f *Form) Attach(field, filename string, data []byte) error {
	if !f.fieldSupported(field) {
		return localFailure("Unknown image field %q for %s analysis", field, f.kind)
	}
	if len(data) == 0 {
		return localFailure("Image file %q is empty", filename)
	}
	if len(data) > domain.MaxImageBytes {
		return localFailure("Image file %q exceeds the 5 MB limit", filename)
	}

	f.attachments[field] = newAttachment(field, filename, data)
	return nil
}

func (f *Form) fieldSupported(field string) bool {
	for _, known := range f.kind.ImageFields() {
		if known == field {
			return true
		}
	}
	return false
}

// Key returns the credential currently entered.
func (f *Form) Key() string { return f.key }

// KeySaved reports whether the entered credential matches the persisted
// one, i.e. whether the key input would be disabled.
func (f *Form) KeySaved() bool { return f.keySaved }

// SetKey replaces the entered credential without persisting it.
func (f *Form) SetKey(key string) {
	f.key = strings.TrimSpace(key)
	f.keySaved = false
}

// SaveKey persists the entered credential and locks the input.
func (f *Form) SaveKey() error {
	if f.key == "" {
		return localFailure("API key is required")
	}
	if f.store == nil {
		return localFailure("No credential store configured")
	}
	if err := f.store.Save(f.key); err != nil {
		return &Failure{Message: "Failed to save API key", Detail: err.Error()}
	}
	f.keySaved = true
	return nil
}

// EditKey re-enables credential entry without discarding the value.
func (f *Form) EditKey() {
	f.keySaved = false
}

// RemoveKey clears the persisted credential and the input.
func (f *Form) RemoveKey() error {
	if f.store != nil {
		if err := f.store.Remove(); err != nil {
			return &Failure{Message: "Failed to remove API key", Detail: err.Error()}
		}
	}
	f.key = ""
	f.keySaved = false
	return nil
}

// Submit validates the form locally, then issues exactly one call to
// the proxy and records the outcome. A missing key or image fails
// before any network activity. The returned error, when non-nil, is
// always the recorded *Failure.
func (f *Form) Submit(ctx context.Context) (*Result, error) {
	if f.state == StateSubmitting {
		return nil, localFailure("A submission is already in flight")
	}

	f.result, f.failure = nil, nil

	if f.key == "" {
		return nil, f.fail(localFailure("API key is required"))
	}
	for _, field := range f.kind.ImageFields() {
		if _, ok := f.attachments[field]; !ok {
			return nil, f.fail(localFailure("Image file %q is required", field))
		}
	}

	f.state = StateSubmitting
	result, failure := f.send(ctx)
	if failure != nil {
		return nil, f.fail(failure)
	}

	f.state = StateSuccess
	f.result = result
	return result, nil
}

func (f *Form) fail(failure *Failure) *Failure {
	f.state = StateFailure
	f.failure = failure
	return failure
}

// send performs the single proxy call for this submission.
func (f *Form) send(ctx context.Context) (*Result, *Failure) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, field := range f.kind.ImageFields() {
		att := f.attachments[field]
		part, err := writer.CreateFormFile(field, att.Filename)
		if err != nil {
			return nil, transportFailure("Failed to build the request", err)
		}
		if _, err := part.Write(att.Data); err != nil {
			return nil, transportFailure("Failed to build the request", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, transportFailure("Failed to build the request", err)
	}

	// One cancellable handle per submission; the deadline is the only
	// thing that aborts it.
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	url := f.baseURL + "/api/face/" + f.kind.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, transportFailure("Failed to build the request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-KEY", f.key)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Failure{Message: "Request timed out", Detail: err.Error()}
		}
		return nil, transportFailure("Failed to reach the analysis service", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportFailure("Failed to read the response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverFailure(resp.StatusCode, raw)
	}

	if !json.Valid(raw) {
		return nil, &Failure{Message: "Response was not valid JSON", Status: resp.StatusCode, Detail: string(raw)}
	}

	return &Result{Kind: f.kind, Raw: raw}, nil
}

// Reset clears attachments, result and failure and returns the form to
// idle. The credential survives a reset.
func (f *Form) Reset() {
	f.attachments = make(map[string]Attachment)
	f.result = nil
	f.failure = nil
	f.state = StateIdle
}
