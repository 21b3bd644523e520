package service

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/fincontrol/internal/apperror"
	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"
	"fjacquet/fincontrol/internal/store"
)

// Recategorize manually assigns a category to a transaction with full
// confidence. Nothing is written when either ID is unknown.
func (s *Service) Recategorize(ctx context.Context, transactionID, categoryID string) (models.Transaction, error) {
	tx, err := s.store.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Transaction{}, apperror.NewNotFound("transaction", transactionID)
		}
		return models.Transaction{}, fmt.Errorf("failed to load transaction: %w", err)
	}

	category, err := s.store.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Transaction{}, apperror.NewNotFound("category", categoryID)
		}
		return models.Transaction{}, fmt.Errorf("failed to load category: %w", err)
	}

	tx.AssignCategory(category, models.ConfidenceManual)
	saved, err := s.store.SaveTransaction(ctx, tx)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.logger.WithFields(
		logging.F(logging.FieldTransactionID, transactionID),
		logging.F(logging.FieldCategory, category.Name),
	).Info("Transaction recategorized")
	return saved, nil
}

// ListCategories returns every stored category ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListRootCategories returns the top-level categories.
func (s *Service) ListRootCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListRootCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list root categories: %w", err)
	}
	return categories, nil
}

// ListSubcategories returns the children of a category.
func (s *Service) ListSubcategories(ctx context.Context, parentID string) ([]models.Category, error) {
	if _, err := s.store.FindCategoryByID(ctx, parentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NewNotFound("category", parentID)
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	categories, err := s.store.ListSubcategories(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	return categories, nil
}
