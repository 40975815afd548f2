package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con todos los repos
// que toca la confirmación de una factura atados a ella. El commit es todo o
// nada: número, factura, líneas, descuentos de stock, asiento del cliente y
// avance del consecutivo quedan juntos o no queda ninguno.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		customerRepo repository.CustomerRepository,
		ledgerRepo repository.CustomerLedgerRepository,
		invoiceRepo repository.InvoiceRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}

// StockDeductor descuenta stock por venta dentro de la transacción del caller.
// La implementación (motor de inventario) verifica suficiencia y retorna
// ErrInsufficientStock sin recortar, lo que aborta el commit completo.
type StockDeductor interface {
	DeductInTx(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		product *entity.Product,
		quantity decimal.Decimal,
		now time.Time,
		invoiceID string,
	) error
}

// TxRunnerCustomer ejecuta una función con los repos del libro de clientes
// atados a una transacción (abonos atómicos respecto al saldo corrido).
type TxRunnerCustomer interface {
	RunCustomer(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		ledgerRepo repository.CustomerLedgerRepository,
	) error) error
}
