package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento en el libro de proveedores.
const (
	VendorEntryTypePurchase = "purchase" // compra (aumenta lo adeudado)
	VendorEntryTypePayment  = "payment"  // pago al proveedor (lo reduce)
)

// Vendor representa un proveedor de la tienda.
// TotalBalance (> 0 = la tienda debe) sigue el mismo contrato de saldo corrido
// que Customer: igual al Balance del último VendorLedgerEntry tras cada mutación.
type Vendor struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	TotalBalance  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VendorLedgerEntry representa un asiento append-only del libro de un proveedor.
// Polaridad invertida respecto a LedgerEntry (cuentas por pagar vs por cobrar):
// Credit = compra (aumenta lo adeudado), Debit = pago (lo reduce).
// Balance = saldo anterior + Credit - Debit. Puede ser negativo (el proveedor
// le debe a la tienda); no se impone piso.
type VendorLedgerEntry struct {
	ID          string
	VendorID    string
	Date        time.Time
	RefID       string // id de producto, ajuste o pago que originó el asiento
	Type        string // purchase | payment
	Description string
	Debit       decimal.Decimal // >= 0
	Credit      decimal.Decimal // >= 0
	Balance     decimal.Decimal
	CreatedAt   time.Time
}
