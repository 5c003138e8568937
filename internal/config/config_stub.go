package config

import (
	"fmt"
	"time"
)

// StubServer holds the stub service listener settings.
type StubServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
}

// StubConfig is the stub service view of [StructuredConfig].
type StubConfig struct {
	Server   StubServer
	DSN      string
	LogLevel string
}

// GetStubConfig builds and validates the stub service configuration.
func GetStubConfig() (*StubConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newStubConfig(cfg)
}

func newStubConfig(cfg *StructuredConfig) (*StubConfig, error) {
	stubCfg := &StubConfig{
		Server: StubServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			RateLimit:      cfg.Server.RateLimit,
			RateBurst:      cfg.Server.RateBurst,
		},
		DSN:      cfg.Storage.DB.DSN,
		LogLevel: cfg.Log.Level,
	}

	if err := stubCfg.validate(); err != nil {
		return nil, err
	}
	return stubCfg, nil
}
