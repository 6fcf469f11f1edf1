package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aliyevorkhan/face-recognition-frontend/internal/domain"
)

const (
	// HeaderAPIKey carries the caller's upstream credential.
	HeaderAPIKey = "X-API-KEY"
	// LocalAPIKey is the key to retrieve the credential from context
	LocalAPIKey = "api_key"
)

// APIKey requires the X-API-KEY header and stashes its value for the
// handlers. The credential is an opaque pass-through; nothing here
// checks more than presence.
func APIKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := strings.TrimSpace(c.Get(HeaderAPIKey))
		if key == "" {
			return domain.ErrMissingCredential
		}

		c.Locals(LocalAPIKey, key)

		return c.Next()
	}
}

// GetAPIKey retrieves the caller's credential from Fiber context
func GetAPIKey(c *fiber.Ctx) (string, error) {
	key, ok := c.Locals(LocalAPIKey).(string)
	if !ok || key == "" {
		return "", domain.ErrMissingCredential
	}
	return key, nil
}
