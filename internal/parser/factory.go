package parser

import (
	"sync"

	"fjacquet/fincontrol/internal/apperror"
	"fjacquet/fincontrol/internal/models"
)

// Registry maps each bank to the strategy able to read its exports.
type Registry struct {
	mu      sync.RWMutex
	parsers map[models.Bank]StatementParser
}

// NewRegistry creates a registry holding the given parsers.
func NewRegistry(parsers ...StatementParser) *Registry {
	r := &Registry{parsers: make(map[models.Bank]StatementParser)}
	for _, p := range parsers {
		r.Register(p)
	}
	return r
}

// Register adds p, replacing any parser previously registered for its bank.
func (r *Registry) Register(p StatementParser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[p.Bank()] = p
}

// Get returns the parser registered for bank.
func (r *Registry) Get(bank models.Bank) (StatementParser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parsers[bank]
	if !ok {
		return nil, &apperror.UnsupportedBankError{Bank: string(bank)}
	}
	return p, nil
}

// Banks lists the registered banks in declaration order.
func (r *Registry) Banks() []models.Bank {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var banks []models.Bank
	for _, b := range models.AllBanks() {
		if _, ok := r.parsers[b]; ok {
			banks = append(banks, b)
		}
	}
	return banks
}
