package domain

import (
	"context"
	"time"
)

// AlertPriority orders maintenance work
type AlertPriority string

const (
	AlertPriorityLow      AlertPriority = "low"
	AlertPriorityMedium   AlertPriority = "medium"
	AlertPriorityHigh     AlertPriority = "high"
	AlertPriorityCritical AlertPriority = "critical"
)

// AlertStatus tracks the lifecycle of an alert
type AlertStatus string

const (
	AlertStatusPending    AlertStatus = "pending"
	AlertStatusInProgress AlertStatus = "in-progress"
	AlertStatusResolved   AlertStatus = "resolved"
)

// MaintenanceAlert represents a maintenance task raised against a machine
type MaintenanceAlert struct {
	ID          string        `json:"id"`
	MachineID   string        `json:"machine_id"`
	Type        string        `json:"type"`
	Priority    AlertPriority `json:"priority"`
	Description string        `json:"description"`
	AssignedTo  string        `json:"assigned_to"`
	Status      AlertStatus   `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// AlertRepository defines the interface for maintenance alert persistence
type AlertRepository interface {
	List(ctx context.Context) ([]*MaintenanceAlert, error)
	ListByStatus(ctx context.Context, status AlertStatus) ([]*MaintenanceAlert, error)
	UpdateStatus(ctx context.Context, id string, status AlertStatus) error
}
