package domain

import "context"

// MachineStatus represents the operational state of a vending machine
type MachineStatus string

const (
	MachineStatusActive      MachineStatus = "active"
	MachineStatusMaintenance MachineStatus = "maintenance"
	MachineStatusOffline     MachineStatus = "offline"
	MachineStatusRestocking  MachineStatus = "restocking"
)

// Location pins a machine to a site
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	City    string  `json:"city"`
	Country Country `json:"country"`
}

// Machine represents a vending machine in the fleet.
// Revenue is accumulated in INR; presentation converts per the
// selected country.
type Machine struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Location        Location      `json:"location"`
	Status          MachineStatus `json:"status"`
	Revenue         int           `json:"revenue"`
	Transactions    int           `json:"transactions"`
	Uptime          float64       `json:"uptime"`
	StockLevel      int           `json:"stock_level"`
	LastMaintenance string        `json:"last_maintenance"`
}

// CountryCode returns the country the machine is deployed in
func (m *Machine) CountryCode() Country {
	return m.Location.Country
}

// MachineRepository defines the interface for machine persistence
type MachineRepository interface {
	GetByID(ctx context.Context, id string) (*Machine, error)
	List(ctx context.Context) ([]*Machine, error)
	ListByCountry(ctx context.Context, country Country) ([]*Machine, error)
	UpdateStatus(ctx context.Context, id string, status MachineStatus) error
}
