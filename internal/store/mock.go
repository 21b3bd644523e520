package store

import (
	"context"

	"fjacquet/fincontrol/internal/models"
)

// MockStore is a MemoryStore with injectable failures, for tests.
type MockStore struct {
	*MemoryStore

	// OnCreateCategory runs before every CreateCategory; a non-nil error is
	// returned instead of creating the category.
	OnCreateCategory func(ctx context.Context, category models.Category) error
	SaveExtractErr   error
	SaveTxErr        error
	ListErr          error
}

// NewMockStore creates a MockStore over an empty MemoryStore.
func NewMockStore() *MockStore {
	return &MockStore{MemoryStore: NewMemoryStore()}
}

func (m *MockStore) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.OnCreateCategory != nil {
		if err := m.OnCreateCategory(ctx, category); err != nil {
			return models.Category{}, err
		}
	}
	return m.MemoryStore.CreateCategory(ctx, category)
}

func (m *MockStore) SaveExtract(ctx context.Context, extract models.Extract) (models.Extract, error) {
	if m.SaveExtractErr != nil {
		return models.Extract{}, m.SaveExtractErr
	}
	return m.MemoryStore.SaveExtract(ctx, extract)
}

func (m *MockStore) SaveTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if m.SaveTxErr != nil {
		return models.Transaction{}, m.SaveTxErr
	}
	return m.MemoryStore.SaveTransaction(ctx, tx)
}

func (m *MockStore) ListExtracts(ctx context.Context, filter models.ExtractFilter) ([]models.Extract, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.MemoryStore.ListExtracts(ctx, filter)
}

func (m *MockStore) FindExtractsForPeriod(ctx context.Context, year, month int) ([]models.Extract, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.MemoryStore.FindExtractsForPeriod(ctx, year, month)
}
