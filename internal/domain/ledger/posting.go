// Package ledger implementa la aritmética de saldos corridos de los libros de
// clientes (cuentas por cobrar) y proveedores (cuentas por pagar).
// Funciones puras: la atomicidad y el bloqueo son responsabilidad del caller.
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain"
)

// CustomerBalance calcula el saldo resultante de un asiento de cliente.
// Convención por cobrar: Debit = cargo (aumenta la deuda del cliente),
// Credit = abono (la reduce). No se impone piso: un abono mayor al saldo deja
// al cliente con saldo a favor (balance negativo), permitido por diseño.
func CustomerBalance(previous, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmounts(debit, credit); err != nil {
		return decimal.Zero, err
	}
	return previous.Add(debit).Sub(credit), nil
}

// VendorBalance calcula el saldo resultante de un asiento de proveedor.
// Polaridad invertida respecto a CustomerBalance (por pagar vs por cobrar):
// Credit = compra (aumenta lo adeudado al proveedor), Debit = pago (lo reduce).
// Tampoco hay piso: balance negativo significa que el proveedor debe a la tienda.
func VendorBalance(previous, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmounts(debit, credit); err != nil {
		return decimal.Zero, err
	}
	return previous.Add(credit).Sub(debit), nil
}

func validateAmounts(debit, credit decimal.Decimal) error {
	if debit.IsNegative() || credit.IsNegative() {
		return domain.ErrNegativeAmount
	}
	return nil
}
