package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// ProductRepository implements domain.ProductRepository with PostgreSQL
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetByID retrieves a catalogue item by ID
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, category, price_inr, price_jpy, popularity, stock
		FROM products WHERE id = $1
	`

	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Price.INR,
		&p.Price.JPY,
		&p.Popularity,
		&p.Stock,
	)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	return &p, nil
}

// List retrieves the full catalogue ordered by ID
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, name, category, price_inr, price_jpy, popularity, stock
		FROM products ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Category,
			&p.Price.INR,
			&p.Price.JPY,
			&p.Popularity,
			&p.Stock,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, &p)
	}

	return products, rows.Err()
}

// TransactionRepository implements domain.TransactionRepository with PostgreSQL
type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new PostgreSQL transaction repository
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// List retrieves all transactions, newest first
func (r *TransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	query := `
		SELECT id, machine_id, product_id, timestamp, amount, currency, payment_method
		FROM transactions ORDER BY timestamp DESC
	`
	return r.queryTransactions(ctx, query)
}

// ListByMachine retrieves one machine's transactions, newest first
func (r *TransactionRepository) ListByMachine(ctx context.Context, machineID string) ([]*domain.Transaction, error) {
	query := `
		SELECT id, machine_id, product_id, timestamp, amount, currency, payment_method
		FROM transactions WHERE machine_id = $1 ORDER BY timestamp DESC
	`
	return r.queryTransactions(ctx, query, machineID)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(
			&t.ID,
			&t.MachineID,
			&t.ProductID,
			&t.Timestamp,
			&t.Amount,
			&t.Currency,
			&t.PaymentMethod,
		)
		if err != nil {
			return nil, err
		}
		txs = append(txs, &t)
	}

	return txs, rows.Err()
}

// AnalyticsRepository implements domain.AnalyticsRepository with PostgreSQL.
// Daily revenue and payment splits are precomputed aggregate tables.
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new PostgreSQL analytics repository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// DailyRevenue returns per-country revenue for each recorded day
func (r *AnalyticsRepository) DailyRevenue(ctx context.Context) ([]domain.RevenuePoint, error) {
	query := `
		SELECT date, country, revenue
		FROM daily_revenue ORDER BY date, country
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []domain.RevenuePoint
	byDate := map[string]int{}
	for rows.Next() {
		var (
			date    string
			country domain.Country
			revenue int
		)
		if err := rows.Scan(&date, &country, &revenue); err != nil {
			return nil, err
		}

		idx, ok := byDate[date]
		if !ok {
			points = append(points, domain.RevenuePoint{
				Date:    date,
				Revenue: map[domain.Country]int{},
			})
			idx = len(points) - 1
			byDate[date] = idx
		}
		points[idx].Revenue[country] = revenue
	}

	return points, rows.Err()
}

// PaymentMethods returns the payment method split for one country
func (r *AnalyticsRepository) PaymentMethods(ctx context.Context, country domain.Country) (domain.PaymentSplit, error) {
	query := `
		SELECT method, share
		FROM payment_methods WHERE country = $1
	`

	rows, err := r.db.Query(ctx, query, country)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	split := domain.PaymentSplit{}
	for rows.Next() {
		var (
			method string
			share  int
		)
		if err := rows.Scan(&method, &share); err != nil {
			return nil, err
		}
		split[method] = share
	}

	return split, rows.Err()
}
