package inventory

import (
	"context"

	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando
// repositorios atados a esa transacción. Garantiza atomicidad para el motor de
// inventario: si la función retorna error, ningún cambio queda aplicado.
// Incluye los repos de proveedor porque una entrada de stock con proveedor
// vinculado registra la compra en su libro dentro de la misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		vendorRepo repository.VendorRepository,
		vendorLedgerRepo repository.VendorLedgerRepository,
	) error) error
}
