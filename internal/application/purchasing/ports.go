package purchasing

import (
	"context"

	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos del
// libro de proveedores atados a ella (compras y pagos son atómicos respecto
// al saldo corrido del proveedor).
type TxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		vendorRepo repository.VendorRepository,
		vendorLedgerRepo repository.VendorLedgerRepository,
	) error) error
}
