package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// Product representa un producto del inventario de la tienda.
// StockQuantity es el stock vivo (nunca negativo); su historial completo vive
// en StockMovement. VendorID/VendorName es una copia desnormalizada intencional:
// el nombre del proveedor al momento de vincularlo, no una referencia viva.
type Product struct {
	ID                string
	SKU               string // sin garantía de unicidad
	Name              string
	Description       string
	PurchasePrice     decimal.Decimal // costo de compra
	SalePrice         decimal.Decimal // precio de venta
	StockQuantity     decimal.Decimal // >= 0
	LowStockThreshold decimal.Decimal
	VendorID          string // opcional
	VendorName        string // snapshot al momento de vincular
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StockMovement representa un registro inmutable del historial de stock de un
// producto. Quantity siempre es el valor absoluto del delta; Type indica el
// signo. El log es append-only: nunca se editan ni borran movimientos.
type StockMovement struct {
	ID          string
	ProductID   string
	Type        string // in | out
	Quantity    decimal.Decimal // absoluta, > 0
	Date        time.Time
	Reason      string
	ReferenceID string // opcional: id de factura, producto o compra que lo originó
	CreatedAt   time.Time
}

// Signed devuelve el delta con signo del movimiento (+Quantity para "in", -Quantity para "out").
func (m *StockMovement) Signed() decimal.Decimal {
	if m.Type == MovementTypeOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
