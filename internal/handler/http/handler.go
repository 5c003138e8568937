package http

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-crypto-catalog/internal/config"
	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/service"
	"github.com/MKhiriev/go-crypto-catalog/internal/workers"
)

// limiterIdleTTL is how long a client's bucket survives without requests.
const limiterIdleTTL = 10 * time.Minute

type Handler struct {
	services *service.Services

	// limiter is nil when throttling is disabled.
	limiter        *multiLimiter
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StubServer, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
	if cfg.RateLimit > 0 {
		h.limiter = newMultiLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst, limiterIdleTTL)
	}

	logger.Info().
		Float64("rate_limit", cfg.RateLimit).
		Int("rate_burst", cfg.RateBurst).
		Msg("http handler created")
	return h
}

// Workers returns the background jobs the handler needs running.
func (h *Handler) Workers() []workers.Worker {
	if h.limiter == nil {
		return nil
	}
	return []workers.Worker{h.limiter}
}
