package application

import (
	"context"

	"github.com/grn-engineering/smartvend/backend/internal/currency"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// MachineStock is a machine's stock view for the inventory page
type MachineStock struct {
	MachineID    string               `json:"machine_id"`
	Name         string               `json:"name"`
	City         string               `json:"city"`
	Status       domain.MachineStatus `json:"status"`
	StockLevel   int                  `json:"stock_level"`
	NeedsRestock bool                 `json:"needs_restock"`
}

// CatalogueItem is a product priced for the selected country
type CatalogueItem struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      int    `json:"price"`
	PriceText  string `json:"price_text"`
	Popularity int    `json:"popularity"`
	Stock      int    `json:"stock"`
}

// InventoryService builds country-scoped stock and catalogue views
type InventoryService struct {
	machines domain.MachineRepository
	products domain.ProductRepository
	format   *currency.Formatter
}

// NewInventoryService creates a new inventory service
func NewInventoryService(machines domain.MachineRepository, products domain.ProductRepository, format *currency.Formatter) *InventoryService {
	return &InventoryService{machines: machines, products: products, format: format}
}

// MachineStocks returns per-machine stock levels for a country
func (s *InventoryService) MachineStocks(ctx context.Context, country domain.Country) ([]MachineStock, error) {
	machines, err := s.machines.ListByCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	out := make([]MachineStock, 0, len(machines))
	for _, m := range machines {
		out = append(out, MachineStock{
			MachineID:    m.ID,
			Name:         m.Name,
			City:         m.Location.City,
			Status:       m.Status,
			StockLevel:   m.StockLevel,
			NeedsRestock: m.StockLevel < lowStockThreshold,
		})
	}
	return out, nil
}

// RestockList returns only the machines below the restock threshold
func (s *InventoryService) RestockList(ctx context.Context, country domain.Country) ([]MachineStock, error) {
	stocks, err := s.MachineStocks(ctx, country)
	if err != nil {
		return nil, err
	}
	out := stocks[:0]
	for _, st := range stocks {
		if st.NeedsRestock {
			out = append(out, st)
		}
	}
	return out, nil
}

// Catalogue returns the product list priced in the selected country's
// currency. Catalogue prices are per-country list prices, not
// conversions, so the formatter only renders the symbol and grouping.
func (s *InventoryService) Catalogue(ctx context.Context, country domain.Country) ([]CatalogueItem, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CatalogueItem, 0, len(products))
	for _, p := range products {
		price := p.Price.In(country)
		item := CatalogueItem{
			ProductID:  p.ID,
			Name:       p.Name,
			Category:   p.Category,
			Price:      price,
			Popularity: p.Popularity,
			Stock:      p.Stock,
		}
		if country == domain.CountryIndia {
			item.PriceText = s.format.Format(price, domain.CountryIndia)
		} else {
			// list price is already in JPY; reuse the grouped yen rendering
			item.PriceText = currency.NewFormatter(1).Format(price, country)
		}
		out = append(out, item)
	}
	return out, nil
}
