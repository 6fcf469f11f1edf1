package handler

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/aliyevorkhan/face-recognition-frontend/internal/api/middleware"
	"github.com/aliyevorkhan/face-recognition-frontend/internal/domain"
)

// Forwarder issues the single upstream call for an analysis request.
type Forwarder interface {
	Analyze(ctx context.Context, url, apiKey string, images map[string][]byte) (any, error)
}

// AnalyzeHandler serves the per-kind proxy endpoints
type AnalyzeHandler struct {
	forwarder Forwarder
	endpoints map[domain.Kind]string
}

// NewAnalyzeHandler creates a new AnalyzeHandler instance
func NewAnalyzeHandler(forwarder Forwarder, endpoints map[domain.Kind]string) *AnalyzeHandler {
	return &AnalyzeHandler{
		forwarder: forwarder,
		endpoints: endpoints,
	}
}

// Handle returns the handler for one analysis kind. All four routes
// share this flow: extract the credential and the kind's image fields,
// forward once, relay the upstream reply verbatim.
func (h *AnalyzeHandler) Handle(kind domain.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Credential was checked by the APIKey middleware
		apiKey, err := middleware.GetAPIKey(c)
		if err != nil {
			return err
		}

		// 2. Extract and validate the kind's image fields
		fields := kind.ImageFields()
		images := make(map[string][]byte, len(fields))
		for _, field := range fields {
			data, err := extractImage(c, field)
			if err != nil {
				return err
			}
			images[field] = data
		}

		// 3. Exactly one upstream call, then relay
		result, err := h.forwarder.Analyze(c.Context(), h.endpoints[kind], apiKey, images)
		if err != nil {
			return err
		}

		return c.JSON(result)
	}
}

// extractImage pulls one multipart image field, enforcing presence and
// the size ceiling before anything is encoded or sent.
func extractImage(c *fiber.Ctx, field string) ([]byte, error) {
	// 1. Extract file
	file, err := c.FormFile(field)
	if err != nil {
		return nil, domain.NewMissingImage(field)
	}

	// 2. Validate size
	if file.Size == 0 {
		return nil, domain.NewMissingImage(field)
	}

	if file.Size > domain.MaxImageBytes {
		return nil, domain.NewImageTooLarge(field)
	}

	// 3. Read image bytes
	f, err := file.Open()
	if err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}

	return data, nil
}
