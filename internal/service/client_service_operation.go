// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-crypto-catalog/internal/adapter"
	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/utils"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

// IDGenerator produces request identifiers.
type IDGenerator interface {
	Generate() string
}

type clientOperationService struct {
	adapter adapter.ServiceAdapter
	ids     IDGenerator
	timeout time.Duration
	logger  *logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewClientOperationService creates a [ClientOperationService]. A positive
// requestTimeout bounds every submission.
func NewClientOperationService(serviceAdapter adapter.ServiceAdapter, ids IDGenerator, requestTimeout time.Duration, logger *logger.Logger) ClientOperationService {
	return &clientOperationService{
		adapter:  serviceAdapter,
		ids:      ids,
		timeout:  requestTimeout,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

func (s *clientOperationService) NewRequest(c models.Category, entry models.Entry, op models.Operation, values models.FormValues) models.OperationRequest {
	return models.OperationRequest{
		Category:  c,
		Entry:     entry.Title,
		Operation: op,
		Values:    values.ForFields(entry.Fields(op)),
		RequestID: s.ids.Generate(),
	}
}

func (s *clientOperationService) Submit(ctx context.Context, req models.OperationRequest) (models.OperationResult, error) {
	key := req.Key()
	if !s.acquire(key) {
		return models.OperationResult{}, fmt.Errorf("%s: %w", key, ErrSubmissionInFlight)
	}
	defer s.release(key)

	if req.RequestID == "" {
		req.RequestID = s.ids.Generate()
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	ctx = utils.WithRequestID(ctx, req.RequestID)

	log := s.logger.With().
		Str("request_id", req.RequestID).
		Str("operation", key).
		Logger()

	start := time.Now()
	result, err := s.adapter.Execute(ctx, req)
	if err != nil {
		err = mapAdapterError(err)
		log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("operation failed")
		return models.OperationResult{}, err
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("operation succeeded")
	return result, nil
}

func (s *clientOperationService) InFlight(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.inFlight[key]
	return ok
}

func (s *clientOperationService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inFlight[key]; ok {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *clientOperationService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, key)
}
