package domain

import "context"

// RevenuePoint is one day of revenue per operating country
type RevenuePoint struct {
	Date    string          `json:"date"`
	Revenue map[Country]int `json:"revenue"`
}

// PaymentSplit maps payment method name to its share in percent
type PaymentSplit map[string]int

// AnalyticsRepository defines the interface for aggregate analytics reads
type AnalyticsRepository interface {
	DailyRevenue(ctx context.Context) ([]RevenuePoint, error)
	PaymentMethods(ctx context.Context, country Country) (PaymentSplit, error)
}
