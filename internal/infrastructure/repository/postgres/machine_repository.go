package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// MachineRepository implements domain.MachineRepository with PostgreSQL
type MachineRepository struct {
	db *pgxpool.Pool
}

// NewMachineRepository creates a new PostgreSQL machine repository
func NewMachineRepository(db *pgxpool.Pool) *MachineRepository {
	return &MachineRepository{db: db}
}

const machineColumns = `
	id, name, lat, lng, city, country, status,
	revenue, transactions, uptime, stock_level, last_maintenance
`

// GetByID retrieves a machine by ID
func (r *MachineRepository) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = $1`

	var m domain.Machine
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.Location.Lat,
		&m.Location.Lng,
		&m.Location.City,
		&m.Location.Country,
		&m.Status,
		&m.Revenue,
		&m.Transactions,
		&m.Uptime,
		&m.StockLevel,
		&m.LastMaintenance,
	)
	if err != nil {
		return nil, fmt.Errorf("machine not found: %w", err)
	}

	return &m, nil
}

// List retrieves the whole fleet ordered by ID
func (r *MachineRepository) List(ctx context.Context) ([]*domain.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines ORDER BY id`
	return r.queryMachines(ctx, query)
}

// ListByCountry retrieves the machines deployed in one country
func (r *MachineRepository) ListByCountry(ctx context.Context, country domain.Country) ([]*domain.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE country = $1 ORDER BY id`
	return r.queryMachines(ctx, query, country)
}

// UpdateStatus changes a machine's operational state
func (r *MachineRepository) UpdateStatus(ctx context.Context, id string, status domain.MachineStatus) error {
	query := `UPDATE machines SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("machine not found: %s", id)
	}

	return nil
}

func (r *MachineRepository) queryMachines(ctx context.Context, query string, args ...any) ([]*domain.Machine, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var machines []*domain.Machine
	for rows.Next() {
		var m domain.Machine
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Location.Lat,
			&m.Location.Lng,
			&m.Location.City,
			&m.Location.Country,
			&m.Status,
			&m.Revenue,
			&m.Transactions,
			&m.Uptime,
			&m.StockLevel,
			&m.LastMaintenance,
		)
		if err != nil {
			return nil, err
		}
		machines = append(machines, &m)
	}

	return machines, rows.Err()
}
