// Package registry maps category names produced by the classifier to
// persisted categories, creating them on first use.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"
	"fjacquet/fincontrol/internal/store"
)

// DetailsProvider supplies the canonical color and icon of a category name.
type DetailsProvider interface {
	Details(name string) models.CategoryDetails
}

// CategoryRegistry resolves category names against a CategoryStore.
// It holds no cache; every call goes to the store.
type CategoryRegistry struct {
	store   store.CategoryStore
	details DetailsProvider
	logger  logging.Logger
}

// New creates a CategoryRegistry.
func New(categories store.CategoryStore, details DetailsProvider, logger logging.Logger) *CategoryRegistry {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryRegistry{store: categories, details: details, logger: logger}
}

// Resolve returns the category called name, creating it with its canonical
// attributes when it does not exist yet. A concurrent creation of the same
// name is resolved by re-reading the winner's row.
func (r *CategoryRegistry) Resolve(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, fmt.Errorf("category name is required")
	}

	existing, err := r.store.FindCategoryByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Category{}, fmt.Errorf("failed to look up category %q: %w", name, err)
	}

	details := r.details.Details(name)
	created, err := r.store.CreateCategory(ctx, models.NewCategory(name, details.Color, details.Icon))
	if err == nil {
		r.logger.WithFields(
			logging.F(logging.FieldCategory, created.Name),
			logging.F(logging.FieldCategoryID, created.ID),
		).Info("Created category")
		return created, nil
	}
	if !errors.Is(err, store.ErrDuplicate) {
		return models.Category{}, fmt.Errorf("failed to create category %q: %w", name, err)
	}

	r.logger.WithField(logging.FieldCategory, name).Debug("Category created concurrently, re-fetching")
	existing, err = r.store.FindCategoryByName(ctx, name)
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to re-fetch category %q: %w", name, err)
	}
	return existing, nil
}
