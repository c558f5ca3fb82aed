package domain

import (
	"context"
	"time"
)

// Transaction represents a single vend recorded at a machine
type Transaction struct {
	ID            string    `json:"id"`
	MachineID     string    `json:"machine_id"`
	ProductID     string    `json:"product_id"`
	Timestamp     time.Time `json:"timestamp"`
	Amount        int       `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
}

// TransactionRepository defines the interface for transaction persistence
type TransactionRepository interface {
	List(ctx context.Context) ([]*Transaction, error)
	ListByMachine(ctx context.Context, machineID string) ([]*Transaction, error)
}
