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
	"github.com/MKhiriev/go-crypto-catalog/models"
	"golang.org/x/sync/singleflight"
)

type clientCatalogService struct {
	adapter adapter.ServiceAdapter
	timeout time.Duration
	logger  *logger.Logger

	group singleflight.Group

	mu     sync.RWMutex
	states map[models.Category]models.CatalogState
}

// NewClientCatalogService creates a [ClientCatalogService] backed by
// serviceAdapter. Each fetch is bounded by requestTimeout when positive.
func NewClientCatalogService(serviceAdapter adapter.ServiceAdapter, requestTimeout time.Duration, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{
		adapter: serviceAdapter,
		timeout: requestTimeout,
		logger:  logger,
		states:  make(map[models.Category]models.CatalogState, len(models.Categories)),
	}
}

func (s *clientCatalogService) State(c models.Category) models.CatalogState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.states[c]
}

func (s *clientCatalogService) BeginLoad(c models.Category) bool {
	if !c.Valid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.states[c].Status {
	case models.CatalogLoading, models.CatalogLoaded:
		return false
	default:
		s.states[c] = models.CatalogState{Status: models.CatalogLoading}
		return true
	}
}

func (s *clientCatalogService) EnsureLoaded(ctx context.Context, c models.Category) (models.CatalogState, error) {
	if !c.Valid() {
		return models.CatalogState{}, fmt.Errorf("%w: %d", ErrUnknownCategory, c)
	}

	s.mu.Lock()
	if st := s.states[c]; st.Loaded() {
		s.mu.Unlock()
		return st, nil
	}
	s.states[c] = models.CatalogState{Status: models.CatalogLoading}
	s.mu.Unlock()

	_, err, shared := s.group.Do(c.Slug(), func() (any, error) {
		return nil, s.fetch(ctx, c)
	})
	if shared {
		s.logger.Debug().Str("category", c.Slug()).Msg("joined in-flight catalog fetch")
	}

	return s.State(c), err
}

func (s *clientCatalogService) fetch(ctx context.Context, c models.Category) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	entries, err := s.adapter.ListEntries(ctx, c)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("category", c.Slug()).Msg("catalog fetch failed")
		s.states[c] = models.NewFailedCatalog(err)
		return fmt.Errorf("load %s catalog: %w", c.Slug(), err)
	}

	s.states[c] = models.NewLoadedCatalog(entries)
	s.logger.Info().
		Str("category", c.Slug()).
		Int("entries", len(entries)).
		Msg("catalog loaded")

	return nil
}
