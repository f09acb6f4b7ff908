package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de supermercado/hogar con su precio actual.
// Active=false es un borrado lógico: se excluye de totales y listados por defecto.
type Product struct {
	ID           string
	Name         string
	Brand        string
	Unit         string // kg, lt, unidad
	Store        string // punto de venta
	Category     string // nombre de Category; puede no existir
	Price        decimal.Decimal
	Active       bool
	PriceHistory PriceLog
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProduct crea un producto activo con la entrada inicial del historial.
func NewProduct(name, brand, unit, store, category string, price decimal.Decimal, now time.Time) *Product {
	return &Product{
		Name:         name,
		Brand:        brand,
		Unit:         unit,
		Store:        store,
		Category:     category,
		Price:        price,
		Active:       true,
		PriceHistory: NewPriceLog(InitialEntry(price, now)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ChangePrice asigna el nuevo precio. Solo agrega una entrada al historial si el
// precio es numéricamente distinto al actual; devuelve true en ese caso.
func (p *Product) ChangePrice(price decimal.Decimal, at time.Time) bool {
	if price.Equal(p.Price) {
		return false
	}
	p.PriceHistory = p.PriceHistory.Append(ChangeEntry(p.Price, price, at))
	p.Price = price
	return true
}
