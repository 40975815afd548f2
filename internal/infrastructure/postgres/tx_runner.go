package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/tienda-pro/internal/application/billing"
	"github.com/tu-usuario/tienda-pro/internal/application/inventory"
	"github.com/tu-usuario/tienda-pro/internal/application/purchasing"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

var (
	_ inventory.TxRunner       = (*TxRunner)(nil)
	_ purchasing.TxRunner      = (*TxRunner)(nil)
	_ billing.TxRunner         = (*TxRunner)(nil)
	_ billing.TxRunnerCustomer = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, pasando
// repos atados a la tx. Begin/Commit aquí; los repos nunca manejan la tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run implementa inventory.TxRunner.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	vendorRepo repository.VendorRepository,
	vendorLedgerRepo repository.VendorLedgerRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(
			NewProductRepository(tx),
			NewMovementRepository(tx),
			NewVendorRepository(tx),
			NewVendorLedgerRepository(tx),
		)
	})
}

// RunPurchasing implementa purchasing.TxRunner.
func (r *TxRunner) RunPurchasing(ctx context.Context, fn func(
	vendorRepo repository.VendorRepository,
	vendorLedgerRepo repository.VendorLedgerRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewVendorRepository(tx), NewVendorLedgerRepository(tx))
	})
}

// RunBilling implementa billing.TxRunner (confirmación de facturas).
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	customerRepo repository.CustomerRepository,
	ledgerRepo repository.CustomerLedgerRepository,
	invoiceRepo repository.InvoiceRepository,
	profileRepo repository.ProfileRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(
			NewProductRepository(tx),
			NewMovementRepository(tx),
			NewCustomerRepository(tx),
			NewCustomerLedgerRepository(tx),
			NewInvoiceRepository(tx),
			NewProfileRepository(tx),
		)
	})
}

// RunCustomer implementa billing.TxRunnerCustomer (abonos de clientes).
func (r *TxRunner) RunCustomer(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	ledgerRepo repository.CustomerLedgerRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewCustomerRepository(tx), NewCustomerLedgerRepository(tx))
	})
}
