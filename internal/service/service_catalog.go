// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/store"
	"github.com/MKhiriev/go-crypto-catalog/internal/validators"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

type catalogService struct {
	repo      store.CatalogRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewCatalogService(repo store.CatalogRepository, validator validators.Validator, logger *logger.Logger) CatalogService {
	return &catalogService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

func (s *catalogService) ListEntries(ctx context.Context, category models.Category) ([]models.Entry, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, category)
	}

	entries, err := s.repo.ListEntries(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list %s entries: %w", category.Slug(), err)
	}
	return entries, nil
}

func (s *catalogService) Execute(ctx context.Context, category models.Category, entrySlug, operationSlug string, values models.FormValues) (models.OperationEcho, error) {
	log := logger.FromContext(ctx)

	if !category.HasOperations() {
		return models.OperationEcho{}, fmt.Errorf("%w: %s has no operations", ErrUnknownOperation, category.Slug())
	}

	entry, err := s.repo.FindEntry(ctx, category, models.Slugify(entrySlug))
	if errors.Is(err, store.ErrEntryNotFound) {
		return models.OperationEcho{}, fmt.Errorf("%w: %s/%s", ErrUnknownOperation, category.Slug(), entrySlug)
	}
	if err != nil {
		return models.OperationEcho{}, fmt.Errorf("find entry %s: %w", entrySlug, err)
	}

	op, ok := findOperation(entry, category, operationSlug)
	if !ok {
		return models.OperationEcho{}, fmt.Errorf("%w: %s/%s/%s", ErrUnknownOperation, category.Slug(), entrySlug, operationSlug)
	}

	fields := entry.Fields(op)
	submitted := values.ForFields(fields)

	if err = s.validator.Validate(ctx, models.Submission{Fields: fields, Values: submitted}); err != nil {
		log.Debug().
			Err(err).
			Str("func", "*catalogService.Execute").
			Str("entry", entry.Title).
			Str("operation", string(op)).
			Msg("operation input rejected")
		return models.OperationEcho{}, fmt.Errorf("%w: %w", ErrInvalidOperationInput, err)
	}

	return models.OperationEcho{
		Data: submitted,
		Operation: models.OperationRef{
			Category: category.Slug(),
			Entry:    entry.Title,
			Name:     string(op),
		},
	}, nil
}

func findOperation(entry models.Entry, category models.Category, slug string) (models.Operation, bool) {
	for _, op := range entry.Operations(category) {
		if op.Slug() == slug || string(op) == slug {
			return op, true
		}
	}
	return "", false
}
