package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/aliyevorkhan/face-recognition-frontend/internal/domain"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Upstream face API, one endpoint per analysis kind
	VerifyURL  string `envconfig:"VERIFY_API_URL" default:"https://api.visionhub.dev/v1/face/verify"`
	AgeURL     string `envconfig:"AGE_API_URL" default:"https://api.visionhub.dev/v1/face/age"`
	EmotionURL string `envconfig:"EMOTION_API_URL" default:"https://api.visionhub.dev/v1/face/emotion"`
	GenderURL  string `envconfig:"GENDER_API_URL" default:"https://api.visionhub.dev/v1/face/gender"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Endpoints maps each analysis kind to its configured upstream URL.
func (c *Config) Endpoints() map[domain.Kind]string {
	return map[domain.Kind]string{
		domain.KindVerify:  c.VerifyURL,
		domain.KindAge:     c.AgeURL,
		domain.KindEmotion: c.EmotionURL,
		domain.KindGender:  c.GenderURL,
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
