package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// AlertRepository implements domain.AlertRepository with PostgreSQL
type AlertRepository struct {
	db *pgxpool.Pool
}

// NewAlertRepository creates a new PostgreSQL alert repository
func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

const alertColumns = `
	id, machine_id, type, priority, description, assigned_to, status, created_at
`

// List retrieves all maintenance alerts, newest first
func (r *AlertRepository) List(ctx context.Context) ([]*domain.MaintenanceAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM maintenance_alerts ORDER BY created_at DESC`
	return r.queryAlerts(ctx, query)
}

// ListByStatus retrieves alerts in one lifecycle state
func (r *AlertRepository) ListByStatus(ctx context.Context, status domain.AlertStatus) ([]*domain.MaintenanceAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM maintenance_alerts WHERE status = $1 ORDER BY created_at DESC`
	return r.queryAlerts(ctx, query, status)
}

// UpdateStatus moves an alert through its lifecycle
func (r *AlertRepository) UpdateStatus(ctx context.Context, id string, status domain.AlertStatus) error {
	query := `UPDATE maintenance_alerts SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert not found: %s", id)
	}

	return nil
}

func (r *AlertRepository) queryAlerts(ctx context.Context, query string, args ...any) ([]*domain.MaintenanceAlert, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []*domain.MaintenanceAlert
	for rows.Next() {
		var a domain.MaintenanceAlert
		err := rows.Scan(
			&a.ID,
			&a.MachineID,
			&a.Type,
			&a.Priority,
			&a.Description,
			&a.AssignedTo,
			&a.Status,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, &a)
	}

	return alerts, rows.Err()
}
