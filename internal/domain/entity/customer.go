package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento en el libro de clientes.
const (
	LedgerEntryTypeInvoice = "invoice" // cargo por factura
	LedgerEntryTypePayment = "payment" // abono del cliente
)

// Customer representa un cliente de la tienda.
// TotalOutstanding (> 0 = el cliente debe) es un total acumulado en caché:
// debe ser igual, después de cada mutación, al Balance del último LedgerEntry
// del cliente. El historial vive en LedgerEntry, no aquí.
type Customer struct {
	ID               string
	Name             string
	Phone            string
	Address          string
	TotalOutstanding decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LedgerEntry representa un asiento append-only del libro de un cliente.
// Convención de cuentas por cobrar: Debit = cargo (aumenta la deuda),
// Credit = abono (la reduce). Balance = saldo corrido después del asiento.
// Los asientos se agregan en orden de confirmación y nunca se editan.
type LedgerEntry struct {
	ID          string
	CustomerID  string
	Date        time.Time
	RefID       string // id de factura o de pago
	Type        string // invoice | payment
	Description string
	Debit       decimal.Decimal // >= 0
	Credit      decimal.Decimal // >= 0
	Balance     decimal.Decimal // saldo anterior + Debit - Credit
	CreatedAt   time.Time
}
