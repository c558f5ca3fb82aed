package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// ProductRepository implements domain.ProductRepository over the seeded
// catalogue
type ProductRepository struct {
	mu       sync.RWMutex
	products []*domain.Product
}

// NewProductRepository creates a product repository seeded with the
// given catalogue
func NewProductRepository(seed []*domain.Product) *ProductRepository {
	r := &ProductRepository{products: make([]*domain.Product, 0, len(seed))}
	for _, p := range seed {
		copied := *p
		r.products = append(r.products, &copied)
	}
	return r
}

// GetByID retrieves a product by id
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("product %s not found", id)
}

// List returns the catalogue in seed order
func (r *ProductRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

// TransactionRepository implements domain.TransactionRepository over
// the seeded vend history
type TransactionRepository struct {
	mu  sync.RWMutex
	txs []*domain.Transaction
}

// NewTransactionRepository creates a transaction repository seeded with
// the given history
func NewTransactionRepository(seed []*domain.Transaction) *TransactionRepository {
	r := &TransactionRepository{txs: make([]*domain.Transaction, 0, len(seed))}
	for _, tx := range seed {
		copied := *tx
		r.txs = append(r.txs, &copied)
	}
	return r
}

// List returns all transactions, most recent last
func (r *TransactionRepository) List(_ context.Context) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Transaction, 0, len(r.txs))
	for _, tx := range r.txs {
		copied := *tx
		out = append(out, &copied)
	}
	return out, nil
}

// ListByMachine returns the transactions recorded at one machine
func (r *TransactionRepository) ListByMachine(_ context.Context, machineID string) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Transaction
	for _, tx := range r.txs {
		if tx.MachineID == machineID {
			copied := *tx
			out = append(out, &copied)
		}
	}
	return out, nil
}
