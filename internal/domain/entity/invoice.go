package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pago de una factura.
const (
	PaymentTypeCash   = "cash"
	PaymentTypeCredit = "credit"
)

// Invoice representa una factura confirmada. Inmutable: no existe operación de
// actualización ni de anulación; una reversión se modela externamente como
// abono compensatorio. CustomerName es un snapshot al momento de la emisión
// (la exactitud histórica depende del nombre en ese momento, no del actual).
type Invoice struct {
	ID           string
	Number       string // "{prefijo}-{consecutivo con ceros}", ej: INV-00007
	CustomerID   string
	CustomerName string // snapshot
	Date         time.Time
	Subtotal     decimal.Decimal // suma de Item.Total
	Tax          decimal.Decimal // siempre 0 por ahora; se conserva el campo
	Discount     decimal.Decimal
	Total        decimal.Decimal // Subtotal - Discount
	PaidAmount   decimal.Decimal // 0 <= PaidAmount <= Total
	PaymentType  string          // cash | credit
	Notes        string
	CreatedAt    time.Time
}

// InvoiceItem representa una línea de una factura.
// ProductName y PurchasePrice son snapshots al momento de la venta: el costo
// capturado aquí alimenta los reportes de utilidad y es inmune a ediciones
// posteriores del producto (o a su borrado).
type InvoiceItem struct {
	ID            string
	InvoiceID     string
	ProductID     string
	ProductName   string          // snapshot
	Quantity      decimal.Decimal // > 0
	PurchasePrice decimal.Decimal // snapshot de costo
	SalePrice     decimal.Decimal
	Total         decimal.Decimal // Quantity * SalePrice
}
