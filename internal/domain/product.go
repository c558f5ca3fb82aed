package domain

import "context"

// Price carries a product's list price per operating currency
type Price struct {
	INR int `json:"INR"`
	JPY int `json:"JPY"`
}

// In returns the list price for the given country's currency
func (p Price) In(country Country) int {
	if country == CountryIndia {
		return p.INR
	}
	return p.JPY
}

// Product represents a stocked catalogue item
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      Price  `json:"price"`
	Popularity int    `json:"popularity"`
	Stock      int    `json:"stock"`
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
}
