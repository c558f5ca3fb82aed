package memory

import (
	"time"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// Seed data for the demo deployment: the Bangalore, Tokyo and Osaka
// fleets with their catalogue, users and open maintenance alerts.

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// SeedUsers returns the demo user directory
func SeedUsers() []*domain.User {
	return []*domain.User{
		{ID: "U001", Name: "Raj Patel", Email: "raj.patel@grn.co.in", Role: domain.RoleAdmin, Country: domain.CountryIndia, Status: domain.UserStatusActive, LastLogin: parseTime("2025-07-15T06:30:00Z")},
		{ID: "U002", Name: "Akira Tanaka", Email: "a.tanaka@grn.co.jp", Role: domain.RoleRegionalManager, Country: domain.CountryJapan, Status: domain.UserStatusActive, LastLogin: parseTime("2025-07-15T07:15:00Z")},
		{ID: "U003", Name: "Priya Sharma", Email: "priya.s@grn.co.in", Role: domain.RoleOperator, Country: domain.CountryIndia, Status: domain.UserStatusActive, LastLogin: parseTime("2025-07-15T08:00:00Z")},
		{ID: "U004", Name: "Hiroshi Sato", Email: "h.sato@grn.co.jp", Role: domain.RoleTechnician, Country: domain.CountryJapan, Status: domain.UserStatusActive, LastLogin: parseTime("2025-07-14T18:45:00Z")},
		{ID: "U005", Name: "Arun Kumar", Email: "arun.k@grn.co.in", Role: domain.RoleAnalyst, Country: domain.CountryIndia, Status: domain.UserStatusActive, LastLogin: parseTime("2025-07-15T05:20:00Z")},
	}
}

// SeedMachines returns the demo fleet
func SeedMachines() []*domain.Machine {
	return []*domain.Machine{
		// India - Bangalore
		{ID: "VM001", Name: "Koramangala Hub", Location: domain.Location{Lat: 12.9352, Lng: 77.6245, City: "Bangalore", Country: domain.CountryIndia}, Status: domain.MachineStatusActive, Revenue: 45200, Transactions: 342, Uptime: 98.5, StockLevel: 85, LastMaintenance: "2025-07-10"},
		{ID: "VM002", Name: "MG Road Station", Location: domain.Location{Lat: 12.9716, Lng: 77.5946, City: "Bangalore", Country: domain.CountryIndia}, Status: domain.MachineStatusMaintenance, Revenue: 32100, Transactions: 256, Uptime: 92.1, StockLevel: 45, LastMaintenance: "2025-07-05"},
		{ID: "VM003", Name: "Whitefield Tech Park", Location: domain.Location{Lat: 12.9698, Lng: 77.75, City: "Bangalore", Country: domain.CountryIndia}, Status: domain.MachineStatusActive, Revenue: 52300, Transactions: 398, Uptime: 99.2, StockLevel: 78, LastMaintenance: "2025-07-12"},
		{ID: "VM004", Name: "Electronic City", Location: domain.Location{Lat: 12.8456, Lng: 77.6623, City: "Bangalore", Country: domain.CountryIndia}, Status: domain.MachineStatusRestocking, Revenue: 38900, Transactions: 289, Uptime: 95.8, StockLevel: 15, LastMaintenance: "2025-07-08"},
		{ID: "VM005", Name: "HSR Layout", Location: domain.Location{Lat: 12.9081, Lng: 77.6476, City: "Bangalore", Country: domain.CountryIndia}, Status: domain.MachineStatusActive, Revenue: 41800, Transactions: 312, Uptime: 97.3, StockLevel: 92, LastMaintenance: "2025-07-11"},
		{ID: "VM006", Name: "Indiranagar Metro", Location: domain.Location{Lat: 12.9784, Lng: 77.6408, City: "Bangalore", Country: domain.CountryIndia}, Status: domain.MachineStatusOffline, Revenue: 28700, Transactions: 201, Uptime: 78.9, StockLevel: 0, LastMaintenance: "2025-07-02"},
		{ID: "VM007", Name: "Brigade Road", Location: domain.Location{Lat: 12.9726, Lng: 77.6099, City: "Bangalore", Country: domain.CountryIndia}, Status: domain.MachineStatusActive, Revenue: 48600, Transactions: 367, Uptime: 98.8, StockLevel: 88, LastMaintenance: "2025-07-13"},
		{ID: "VM008", Name: "Jayanagar Complex", Location: domain.Location{Lat: 12.9279, Lng: 77.5838, City: "Bangalore", Country: domain.CountryIndia}, Status: domain.MachineStatusMaintenance, Revenue: 35400, Transactions: 267, Uptime: 89.4, StockLevel: 52, LastMaintenance: "2025-07-06"},

		// Japan - Tokyo
		{ID: "VM101", Name: "Shibuya Station", Location: domain.Location{Lat: 35.6598, Lng: 139.7006, City: "Tokyo", Country: domain.CountryJapan}, Status: domain.MachineStatusActive, Revenue: 89200, Transactions: 542, Uptime: 99.1, StockLevel: 91, LastMaintenance: "2025-07-14"},
		{ID: "VM102", Name: "Shinjuku East", Location: domain.Location{Lat: 35.6896, Lng: 139.7006, City: "Tokyo", Country: domain.CountryJapan}, Status: domain.MachineStatusActive, Revenue: 95800, Transactions: 612, Uptime: 98.9, StockLevel: 83, LastMaintenance: "2025-07-12"},
		{ID: "VM103", Name: "Ginza Central", Location: domain.Location{Lat: 35.6762, Lng: 139.7649, City: "Tokyo", Country: domain.CountryJapan}, Status: domain.MachineStatusRestocking, Revenue: 76400, Transactions: 456, Uptime: 96.7, StockLevel: 22, LastMaintenance: "2025-07-10"},
		{ID: "VM104", Name: "Akihabara Tech", Location: domain.Location{Lat: 35.6989, Lng: 139.7731, City: "Tokyo", Country: domain.CountryJapan}, Status: domain.MachineStatusActive, Revenue: 82300, Transactions: 498, Uptime: 98.2, StockLevel: 89, LastMaintenance: "2025-07-13"},
		{ID: "VM105", Name: "Harajuku Plaza", Location: domain.Location{Lat: 35.6703, Lng: 139.7027, City: "Tokyo", Country: domain.CountryJapan}, Status: domain.MachineStatusActive, Revenue: 71200, Transactions: 423, Uptime: 97.8, StockLevel: 76, LastMaintenance: "2025-07-11"},
		{ID: "VM106", Name: "Tokyo Station", Location: domain.Location{Lat: 35.6812, Lng: 139.7671, City: "Tokyo", Country: domain.CountryJapan}, Status: domain.MachineStatusMaintenance, Revenue: 88900, Transactions: 534, Uptime: 94.3, StockLevel: 58, LastMaintenance: "2025-07-07"},
		{ID: "VM107", Name: "Roppongi Hills", Location: domain.Location{Lat: 35.6606, Lng: 139.7292, City: "Tokyo", Country: domain.CountryJapan}, Status: domain.MachineStatusActive, Revenue: 93400, Transactions: 578, Uptime: 99.3, StockLevel: 94, LastMaintenance: "2025-07-14"},
		{ID: "VM108", Name: "Ueno Park", Location: domain.Location{Lat: 35.7148, Lng: 139.7731, City: "Tokyo", Country: domain.CountryJapan}, Status: domain.MachineStatusOffline, Revenue: 42100, Transactions: 231, Uptime: 82.1, StockLevel: 0, LastMaintenance: "2025-07-03"},

		// Japan - Osaka
		{ID: "VM201", Name: "Osaka Station", Location: domain.Location{Lat: 34.7024, Lng: 135.4959, City: "Osaka", Country: domain.CountryJapan}, Status: domain.MachineStatusActive, Revenue: 78600, Transactions: 467, Uptime: 98.6, StockLevel: 87, LastMaintenance: "2025-07-13"},
		{ID: "VM202", Name: "Namba District", Location: domain.Location{Lat: 34.6618, Lng: 135.4986, City: "Osaka", Country: domain.CountryJapan}, Status: domain.MachineStatusActive, Revenue: 84200, Transactions: 512, Uptime: 97.9, StockLevel: 79, LastMaintenance: "2025-07-11"},
		{ID: "VM203", Name: "Dotonbori Plaza", Location: domain.Location{Lat: 34.6686, Lng: 135.5023, City: "Osaka", Country: domain.CountryJapan}, Status: domain.MachineStatusRestocking, Revenue: 69800, Transactions: 398, Uptime: 95.4, StockLevel: 18, LastMaintenance: "2025-07-09"},
		{ID: "VM204", Name: "Tennoji Hub", Location: domain.Location{Lat: 34.6452, Lng: 135.5066, City: "Osaka", Country: domain.CountryJapan}, Status: domain.MachineStatusActive, Revenue: 72400, Transactions: 434, Uptime: 98.1, StockLevel: 92, LastMaintenance: "2025-07-12"},
		{ID: "VM205", Name: "Sumiyoshi Station", Location: domain.Location{Lat: 34.6198, Lng: 135.4936, City: "Osaka", Country: domain.CountryJapan}, Status: domain.MachineStatusMaintenance, Revenue: 54300, Transactions: 312, Uptime: 91.7, StockLevel: 41, LastMaintenance: "2025-07-06"},
		{ID: "VM206", Name: "Universal City", Location: domain.Location{Lat: 34.6654, Lng: 135.4323, City: "Osaka", Country: domain.CountryJapan}, Status: domain.MachineStatusActive, Revenue: 89700, Transactions: 567, Uptime: 99.0, StockLevel: 88, LastMaintenance: "2025-07-14"},
	}
}

// SeedProducts returns the demo catalogue
func SeedProducts() []*domain.Product {
	return []*domain.Product{
		{ID: "P001", Name: "Green Tea (500ml)", Category: "Beverages", Price: domain.Price{INR: 25, JPY: 120}, Popularity: 94, Stock: 1250},
		{ID: "P002", Name: "Coffee Black (250ml)", Category: "Beverages", Price: domain.Price{INR: 30, JPY: 150}, Popularity: 89, Stock: 980},
		{ID: "P003", Name: "Protein Bar", Category: "Snacks", Price: domain.Price{INR: 45, JPY: 200}, Popularity: 76, Stock: 760},
		{ID: "P004", Name: "Mineral Water (1L)", Category: "Beverages", Price: domain.Price{INR: 20, JPY: 100}, Popularity: 98, Stock: 1540},
		{ID: "P005", Name: "Instant Noodles", Category: "Meals", Price: domain.Price{INR: 35, JPY: 180}, Popularity: 82, Stock: 890},
		{ID: "P006", Name: "Energy Drink", Category: "Beverages", Price: domain.Price{INR: 50, JPY: 250}, Popularity: 71, Stock: 450},
		{ID: "P007", Name: "Sandwich (Veg)", Category: "Meals", Price: domain.Price{INR: 60, JPY: 300}, Popularity: 68, Stock: 320},
		{ID: "P008", Name: "Chips Pack", Category: "Snacks", Price: domain.Price{INR: 25, JPY: 130}, Popularity: 85, Stock: 1120},
	}
}

// SeedTransactions returns recent demo vends
func SeedTransactions() []*domain.Transaction {
	return []*domain.Transaction{
		{ID: "T001", MachineID: "VM001", ProductID: "P001", Timestamp: parseTime("2025-07-15T08:30:00Z"), Amount: 25, Currency: "INR", PaymentMethod: "UPI"},
		{ID: "T002", MachineID: "VM101", ProductID: "P004", Timestamp: parseTime("2025-07-15T09:15:00Z"), Amount: 100, Currency: "JPY", PaymentMethod: "IC Card"},
		{ID: "T003", MachineID: "VM003", ProductID: "P002", Timestamp: parseTime("2025-07-15T10:45:00Z"), Amount: 30, Currency: "INR", PaymentMethod: "Credit Card"},
		{ID: "T004", MachineID: "VM102", ProductID: "P005", Timestamp: parseTime("2025-07-15T11:20:00Z"), Amount: 180, Currency: "JPY", PaymentMethod: "Mobile Wallet"},
		{ID: "T005", MachineID: "VM007", ProductID: "P003", Timestamp: parseTime("2025-07-15T12:00:00Z"), Amount: 45, Currency: "INR", PaymentMethod: "UPI"},
	}
}

// SeedAlerts returns the open maintenance queue
func SeedAlerts() []*domain.MaintenanceAlert {
	return []*domain.MaintenanceAlert{
		{ID: "M001", MachineID: "VM002", Type: "Preventive", Priority: domain.AlertPriorityMedium, Description: "Scheduled cleaning and coin mechanism check", AssignedTo: "U003", Status: domain.AlertStatusPending, CreatedAt: parseTime("2025-07-15T06:00:00Z")},
		{ID: "M002", MachineID: "VM106", Type: "Repair", Priority: domain.AlertPriorityHigh, Description: "Display screen flickering, payment system error", AssignedTo: "U004", Status: domain.AlertStatusInProgress, CreatedAt: parseTime("2025-07-15T07:30:00Z")},
		{ID: "M003", MachineID: "VM008", Type: "Critical", Priority: domain.AlertPriorityCritical, Description: "Complete system offline, power supply failure", AssignedTo: "U004", Status: domain.AlertStatusPending, CreatedAt: parseTime("2025-07-15T08:45:00Z")},
	}
}

// SeedDailyRevenue returns the trailing week of per-country revenue
func SeedDailyRevenue() []domain.RevenuePoint {
	return []domain.RevenuePoint{
		{Date: "2025-07-09", Revenue: map[domain.Country]int{domain.CountryIndia: 285600, domain.CountryJapan: 567800}},
		{Date: "2025-07-10", Revenue: map[domain.Country]int{domain.CountryIndia: 312400, domain.CountryJapan: 623400}},
		{Date: "2025-07-11", Revenue: map[domain.Country]int{domain.CountryIndia: 298700, domain.CountryJapan: 589200}},
		{Date: "2025-07-12", Revenue: map[domain.Country]int{domain.CountryIndia: 341200, domain.CountryJapan: 678900}},
		{Date: "2025-07-13", Revenue: map[domain.Country]int{domain.CountryIndia: 356800, domain.CountryJapan: 701500}},
		{Date: "2025-07-14", Revenue: map[domain.Country]int{domain.CountryIndia: 334500, domain.CountryJapan: 645300}},
		{Date: "2025-07-15", Revenue: map[domain.Country]int{domain.CountryIndia: 378900, domain.CountryJapan: 724600}},
	}
}

// SeedPaymentMethods returns the payment method share per country
func SeedPaymentMethods() map[domain.Country]domain.PaymentSplit {
	return map[domain.Country]domain.PaymentSplit{
		domain.CountryIndia: {"UPI": 45, "Credit Card": 25, "Debit Card": 20, "Mobile Wallet": 10},
		domain.CountryJapan: {"IC Card": 40, "Mobile Wallet": 30, "Credit Card": 20, "Cash": 10},
	}
}
