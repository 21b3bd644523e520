package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"fjacquet/fincontrol/internal/models"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store with the same uniqueness rules as the
// SQLite implementation. Values are copied on the way in and out.
type MemoryStore struct {
	mu           sync.RWMutex
	categories   []models.Category
	extracts     []models.Extract
	transactions map[string]txLocation
}

type txLocation struct {
	extract int
	index   int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{transactions: make(map[string]txLocation)}
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	return nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (m *MemoryStore) FindCategoryByName(_ context.Context, name string) (models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := nameKey(name)
	for _, c := range m.categories {
		if nameKey(c.Name) == key {
			return c, nil
		}
	}
	return models.Category{}, ErrNotFound
}

func (m *MemoryStore) FindCategoryByID(_ context.Context, id string) (models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.categoryByID(id)
}

func (m *MemoryStore) categoryByID(id string) (models.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrNotFound
}

func (m *MemoryStore) CreateCategory(_ context.Context, category models.Category) (models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := nameKey(category.Name)
	for _, c := range m.categories {
		if nameKey(c.Name) == key {
			return models.Category{}, ErrDuplicate
		}
	}
	if category.ParentCategoryID != "" {
		if _, err := m.categoryByID(category.ParentCategoryID); err != nil {
			return models.Category{}, err
		}
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	m.categories = append(m.categories, category)
	return category, nil
}

func (m *MemoryStore) ListCategories(_ context.Context) ([]models.Category, error) {
	return m.filterCategories(func(models.Category) bool { return true }), nil
}

func (m *MemoryStore) ListRootCategories(_ context.Context) ([]models.Category, error) {
	return m.filterCategories(models.Category.IsRoot), nil
}

func (m *MemoryStore) ListSubcategories(_ context.Context, parentID string) ([]models.Category, error) {
	return m.filterCategories(func(c models.Category) bool { return c.ParentCategoryID == parentID }), nil
}

func (m *MemoryStore) filterCategories(keep func(models.Category) bool) []models.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return nameKey(out[i].Name) < nameKey(out[j].Name) })
	return out
}

func (m *MemoryStore) FindExtract(_ context.Context, bank models.Bank, month, year int) (models.Extract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.extracts {
		if e.Bank == bank && e.ReferenceMonth == month && e.ReferenceYear == year {
			return copyExtract(e), nil
		}
	}
	return models.Extract{}, ErrNotFound
}

func (m *MemoryStore) FindExtractByID(_ context.Context, id string) (models.Extract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.extracts {
		if e.ID == id {
			return copyExtract(e), nil
		}
	}
	return models.Extract{}, ErrNotFound
}

func (m *MemoryStore) SaveExtract(_ context.Context, extract models.Extract) (models.Extract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.extracts {
		if e.PeriodKey() == extract.PeriodKey() {
			return models.Extract{}, ErrDuplicate
		}
	}
	for _, tx := range extract.Transactions {
		if tx.Category != nil && tx.Category.ID != "" {
			if _, err := m.categoryByID(tx.Category.ID); err != nil {
				return models.Extract{}, err
			}
		}
	}

	saved := copyExtract(extract)
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	for i := range saved.Transactions {
		if saved.Transactions[i].ID == "" {
			saved.Transactions[i].ID = uuid.NewString()
		}
		saved.Transactions[i].ExtractID = saved.ID
	}

	m.extracts = append(m.extracts, saved)
	for i, tx := range saved.Transactions {
		m.transactions[tx.ID] = txLocation{extract: len(m.extracts) - 1, index: i}
	}
	return copyExtract(saved), nil
}

func (m *MemoryStore) FindExtractsForPeriod(_ context.Context, year, month int) ([]models.Extract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Extract, 0)
	for _, e := range m.extracts {
		if e.ReferenceYear == year && e.ReferenceMonth == month {
			out = append(out, copyExtract(e))
		}
	}
	return out, nil
}

func (m *MemoryStore) ListExtracts(_ context.Context, filter models.ExtractFilter) ([]models.Extract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Extract, 0)
	for _, e := range m.extracts {
		if matches(filter, e) {
			out = append(out, copyExtract(e))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return newerPeriod(out[i], out[j]) })
	return out, nil
}

// newerPeriod orders extracts by period descending, then bank ascending.
func newerPeriod(a, b models.Extract) bool {
	if a.ReferenceYear != b.ReferenceYear {
		return a.ReferenceYear > b.ReferenceYear
	}
	if a.ReferenceMonth != b.ReferenceMonth {
		return a.ReferenceMonth > b.ReferenceMonth
	}
	return a.Bank < b.Bank
}

func (m *MemoryStore) FindTransactionByID(_ context.Context, id string) (models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	loc, ok := m.transactions[id]
	if !ok {
		return models.Transaction{}, ErrNotFound
	}
	return copyTransaction(m.extracts[loc.extract].Transactions[loc.index]), nil
}

func (m *MemoryStore) SaveTransaction(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	loc, ok := m.transactions[tx.ID]
	if !ok {
		return models.Transaction{}, ErrNotFound
	}
	if tx.Category != nil && tx.Category.ID != "" {
		if _, err := m.categoryByID(tx.Category.ID); err != nil {
			return models.Transaction{}, err
		}
	}
	stored := copyTransaction(tx)
	stored.ExtractID = m.extracts[loc.extract].ID
	m.extracts[loc.extract].Transactions[loc.index] = stored
	return copyTransaction(stored), nil
}

func copyExtract(e models.Extract) models.Extract {
	out := e
	out.Transactions = make([]models.Transaction, len(e.Transactions))
	for i, tx := range e.Transactions {
		out.Transactions[i] = copyTransaction(tx)
	}
	return out
}

func copyTransaction(tx models.Transaction) models.Transaction {
	out := tx
	if tx.Category != nil {
		c := *tx.Category
		out.Category = &c
	}
	return out
}
