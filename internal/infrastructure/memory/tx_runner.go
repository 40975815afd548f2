package memory

import (
	"context"

	"github.com/tu-usuario/tienda-pro/internal/application/billing"
	"github.com/tu-usuario/tienda-pro/internal/application/inventory"
	"github.com/tu-usuario/tienda-pro/internal/application/purchasing"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// TxRunner implementa los runners de transacción de los tres casos de uso
// sobre el almacén en memoria: snapshot al entrar, restore si fn falla.
type TxRunner struct {
	s *Store
}

var (
	_ inventory.TxRunner       = (*TxRunner)(nil)
	_ purchasing.TxRunner      = (*TxRunner)(nil)
	_ billing.TxRunner         = (*TxRunner)(nil)
	_ billing.TxRunnerCustomer = (*TxRunner)(nil)
)

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

// Run implementa inventory.TxRunner.
func (t *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	vendorRepo repository.VendorRepository,
	vendorLedgerRepo repository.VendorLedgerRepository,
) error) error {
	return t.s.runTx(ctx, func() error {
		return fn(
			&ProductRepo{s: t.s, tx: true},
			&MovementRepo{s: t.s, tx: true},
			&VendorRepo{s: t.s, tx: true},
			&VendorLedgerRepo{s: t.s, tx: true},
		)
	})
}

// RunPurchasing implementa purchasing.TxRunner.
func (t *TxRunner) RunPurchasing(ctx context.Context, fn func(
	vendorRepo repository.VendorRepository,
	vendorLedgerRepo repository.VendorLedgerRepository,
) error) error {
	return t.s.runTx(ctx, func() error {
		return fn(
			&VendorRepo{s: t.s, tx: true},
			&VendorLedgerRepo{s: t.s, tx: true},
		)
	})
}

// RunBilling implementa billing.TxRunner.
func (t *TxRunner) RunBilling(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	customerRepo repository.CustomerRepository,
	ledgerRepo repository.CustomerLedgerRepository,
	invoiceRepo repository.InvoiceRepository,
	profileRepo repository.ProfileRepository,
) error) error {
	return t.s.runTx(ctx, func() error {
		return fn(
			&ProductRepo{s: t.s, tx: true},
			&MovementRepo{s: t.s, tx: true},
			&CustomerRepo{s: t.s, tx: true},
			&CustomerLedgerRepo{s: t.s, tx: true},
			&InvoiceRepo{s: t.s, tx: true},
			&ProfileRepo{s: t.s, tx: true},
		)
	})
}

// RunCustomer implementa billing.TxRunnerCustomer.
func (t *TxRunner) RunCustomer(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	ledgerRepo repository.CustomerLedgerRepository,
) error) error {
	return t.s.runTx(ctx, func() error {
		return fn(
			&CustomerRepo{s: t.s, tx: true},
			&CustomerLedgerRepo{s: t.s, tx: true},
		)
	})
}
