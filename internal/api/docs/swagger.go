package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
)

// VerifyResponse represents the upstream reply for face verification
type VerifyResponse struct {
	Verified        bool    `json:"verified" example:"true"`
	SimilarityScore float64 `json:"similarity_score" example:"0.93"`
	Message         string  `json:"message,omitempty" example:"Match"`
}

// AgeResponse represents the upstream reply for age estimation
type AgeResponse struct {
	Age        float64 `json:"age" example:"27"`
	Confidence float64 `json:"confidence" example:"0.91"`
}

// EmotionResponse represents the upstream reply for emotion detection
type EmotionResponse struct {
	Emotion    string  `json:"emotion" example:"happy"`
	Confidence float64 `json:"confidence" example:"0.88"`
}

// GenderResponse represents the upstream reply for gender detection
type GenderResponse struct {
	Gender     string  `json:"gender" example:"female"`
	Confidence float64 `json:"confidence" example:"0.97"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string      `json:"error" example:"API key is required"`
	Details interface{} `json:"details,omitempty"`
	Status  int         `json:"status,omitempty" example:"401"`
}

// HealthResponse represents the health/readiness probe response
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version,omitempty" example:"0.1.0"`
}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Face Analysis Proxy API",
		Version:     "v0.1.0",
		Description: "Same-origin proxy in front of the upstream face-analysis service. Accepts multipart images plus an X-API-KEY header, forwards one base64-encoded JSON request upstream and relays the reply.",
		Host:        "localhost:3000",
		Path:        "/api",
	})

	multipart := []mime.MIME{mime.MIME("multipart/form-data")}
	jsonOnly := []mime.MIME{mime.JSON}

	analysisErrors := []response.Response{
		response.New(ErrorResponse{Error: `Image file "image" is required`}, "400", "Missing API key or image field, or image above the 5 MB ceiling"),
		response.New(ErrorResponse{Error: "Invalid API key", Status: 401}, "401", "Upstream rejected the forwarded credential (status relayed verbatim)"),
		response.New(ErrorResponse{Error: "Failed to parse API response as JSON", Details: "not json"}, "500", "Upstream timeout, unreachable upstream or undecodable upstream body"),
	}

	endpoints := []*endpoint.EndPoint{
		// POST /api/face/verify - compare two images
		endpoint.New(
			endpoint.POST,
			"/face/verify",
			endpoint.WithTags("Face"),
			endpoint.WithSummary("Verify that two face images match"),
			endpoint.WithDescription("Forwards multipart fields img1 and img2 (each at most 5 MB) to the upstream verification endpoint and relays its JSON reply verbatim."),
			endpoint.WithConsume(multipart),
			endpoint.WithProduce(jsonOnly),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(VerifyResponse{}, "200", "Upstream verification result"),
			}),
			endpoint.WithErrors(analysisErrors),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// POST /api/face/age - estimate age from one image
		endpoint.New(
			endpoint.POST,
			"/face/age",
			endpoint.WithTags("Face"),
			endpoint.WithSummary("Estimate age from a face image"),
			endpoint.WithDescription("Forwards the multipart field image (at most 5 MB) to the upstream age endpoint and relays its JSON reply verbatim."),
			endpoint.WithConsume(multipart),
			endpoint.WithProduce(jsonOnly),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AgeResponse{}, "200", "Upstream age estimate"),
			}),
			endpoint.WithErrors(analysisErrors),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// POST /api/face/emotion - detect emotion from one image
		endpoint.New(
			endpoint.POST,
			"/face/emotion",
			endpoint.WithTags("Face"),
			endpoint.WithSummary("Detect emotion from a face image"),
			endpoint.WithDescription("Forwards the multipart field image (at most 5 MB) to the upstream emotion endpoint and relays its JSON reply verbatim."),
			endpoint.WithConsume(multipart),
			endpoint.WithProduce(jsonOnly),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmotionResponse{}, "200", "Upstream emotion result"),
			}),
			endpoint.WithErrors(analysisErrors),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// POST /api/face/gender - detect gender from one image
		endpoint.New(
			endpoint.POST,
			"/face/gender",
			endpoint.WithTags("Face"),
			endpoint.WithSummary("Detect gender from a face image"),
			endpoint.WithDescription("Forwards the multipart field image (at most 5 MB) to the upstream gender endpoint and relays its JSON reply verbatim."),
			endpoint.WithConsume(multipart),
			endpoint.WithProduce(jsonOnly),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(GenderResponse{}, "200", "Upstream gender result"),
			}),
			endpoint.WithErrors(analysisErrors),
			endpoint.WithSecurity([]map[string][]string{{"ApiKeyAuth": {}}}),
		),

		// GET /health - Health check
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Health check"),
			endpoint.WithDescription("Returns the service status and version"),
			endpoint.WithProduce(jsonOnly),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service is healthy"),
			}),
		),

		// GET /ready - Readiness check
		endpoint.New(
			endpoint.GET,
			"/ready",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Readiness check"),
			endpoint.WithDescription("Returns whether the service is ready to accept requests"),
			endpoint.WithProduce(jsonOnly),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service is ready"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
