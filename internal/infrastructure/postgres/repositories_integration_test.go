package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/tienda-pro/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
//
// Tests de integración contra PostgreSQL real: se saltan si no hay
// DATABASE_URL. Ejercitan el SQL tal cual (casts de uuid incluidos), que los
// tests sobre el almacén en memoria no tocan.
//
//	DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
// ──────────────────────────────────────────────────────────────────────────────

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL no definido; test de integración omitido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../../migrations/001_init.sql")
	require.NoError(t, err, "debe poder leerse el esquema")
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "el esquema es idempotente (IF NOT EXISTS)")
	return pool
}

func seedTestVendor(t *testing.T, pool *pgxpool.Pool) *entity.Vendor {
	t.Helper()
	now := time.Now()
	v := &entity.Vendor{
		ID:           uuid.New().String(),
		Name:         "Proveedor integración",
		TotalBalance: decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, postgres.NewVendorRepository(pool).Create(v))
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM vendors WHERE id = $1`, v.ID)
	})
	return v
}

func seedTestProduct(t *testing.T, pool *pgxpool.Pool, vendorID string) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:            uuid.New().String(),
		Name:          "Producto integración",
		PurchasePrice: decimal.RequireFromString("2800"),
		SalePrice:     decimal.RequireFromString("3600"),
		StockQuantity: decimal.RequireFromString("10"),
		VendorID:      vendorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, postgres.NewProductRepository(pool).Create(p))
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, p.ID)
	})
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos: vendor_id nullable (uuid) en insert, update y scan
// ──────────────────────────────────────────────────────────────────────────────

func TestIntegracionProductos_VendorIDNullable(t *testing.T) {
	pool := newTestPool(t)
	repo := postgres.NewProductRepository(pool)

	// Sin proveedor: el '' del dominio entra como NULL
	sinVendor := seedTestProduct(t, pool, "")
	got, err := repo.GetByID(sinVendor.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.VendorID)

	// Con proveedor: el uuid entra y sale intacto
	vendor := seedTestVendor(t, pool)
	conVendor := seedTestProduct(t, pool, vendor.ID)
	got, err = repo.GetByID(conVendor.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, vendor.ID, got.VendorID)

	// Update que desvincula el proveedor vuelve a NULL
	got.VendorID = ""
	got.VendorName = ""
	got.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(got))
	got, err = repo.GetByID(conVendor.ID)
	require.NoError(t, err)
	assert.Empty(t, got.VendorID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos: reference_id nullable (uuid) en insert y lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestIntegracionMovimientos_ReferenceIDNullable(t *testing.T) {
	pool := newTestPool(t)
	product := seedTestProduct(t, pool, "")
	repo := postgres.NewMovementRepository(pool)
	now := time.Now()

	refID := uuid.New().String()
	require.NoError(t, repo.Create(&entity.StockMovement{
		ID: uuid.New().String(), ProductID: product.ID, Type: entity.MovementTypeIn,
		Quantity: decimal.RequireFromString("10"), Date: now, Reason: "stock inicial",
		ReferenceID: refID, CreatedAt: now,
	}))
	require.NoError(t, repo.Create(&entity.StockMovement{
		ID: uuid.New().String(), ProductID: product.ID, Type: entity.MovementTypeOut,
		Quantity: decimal.RequireFromString("2"), Date: now, Reason: "ajuste manual",
		CreatedAt: now.Add(time.Millisecond),
	}))

	movs, err := repo.ListByProduct(product.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, refID, movs[0].ReferenceID)
	assert.Empty(t, movs[1].ReferenceID, "NULL vuelve como '' al dominio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Libros de clientes y proveedores: ref_id nullable (uuid)
// ──────────────────────────────────────────────────────────────────────────────

func TestIntegracionLibroClientes_RefIDNullable(t *testing.T) {
	pool := newTestPool(t)
	now := time.Now()

	customer := &entity.Customer{
		ID: uuid.New().String(), Name: "Cliente integración",
		TotalOutstanding: decimal.Zero, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, postgres.NewCustomerRepository(pool).Create(customer))
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, customer.ID)
	})

	repo := postgres.NewCustomerLedgerRepository(pool)
	refID := uuid.New().String()
	require.NoError(t, repo.Append(&entity.LedgerEntry{
		ID: uuid.New().String(), CustomerID: customer.ID, Date: now, RefID: refID,
		Type: entity.LedgerEntryTypeInvoice, Description: "Factura INV-00001",
		Debit: decimal.RequireFromString("10000"), Credit: decimal.Zero,
		Balance: decimal.RequireFromString("10000"), CreatedAt: now,
	}))
	require.NoError(t, repo.Append(&entity.LedgerEntry{
		ID: uuid.New().String(), CustomerID: customer.ID, Date: now,
		Type: entity.LedgerEntryTypePayment, Description: "Abono del cliente",
		Debit: decimal.Zero, Credit: decimal.RequireFromString("4000"),
		Balance: decimal.RequireFromString("6000"), CreatedAt: now.Add(time.Millisecond),
	}))

	entries, err := repo.ListByCustomer(customer.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, refID, entries[0].RefID)
	assert.Empty(t, entries[1].RefID)
	assert.True(t, entries[1].Balance.Equal(decimal.RequireFromString("6000")))

	last, err := repo.GetLastByCustomer(customer.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, entity.LedgerEntryTypePayment, last.Type)
}

func TestIntegracionLibroProveedores_RefIDNullable(t *testing.T) {
	pool := newTestPool(t)
	vendor := seedTestVendor(t, pool)
	repo := postgres.NewVendorLedgerRepository(pool)
	now := time.Now()

	refID := uuid.New().String()
	require.NoError(t, repo.Append(&entity.VendorLedgerEntry{
		ID: uuid.New().String(), VendorID: vendor.ID, Date: now, RefID: refID,
		Type: entity.VendorEntryTypePurchase, Description: "Compra de stock",
		Debit: decimal.Zero, Credit: decimal.RequireFromString("76000"),
		Balance: decimal.RequireFromString("76000"), CreatedAt: now,
	}))
	require.NoError(t, repo.Append(&entity.VendorLedgerEntry{
		ID: uuid.New().String(), VendorID: vendor.ID, Date: now,
		Type: entity.VendorEntryTypePayment, Description: "Pago a proveedor",
		Debit: decimal.RequireFromString("50000"), Credit: decimal.Zero,
		Balance: decimal.RequireFromString("26000"), CreatedAt: now.Add(time.Millisecond),
	}))

	entries, err := repo.ListByVendor(vendor.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, refID, entries[0].RefID)
	assert.Empty(t, entries[1].RefID)

	last, err := repo.GetLastByVendor(vendor.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Balance.Equal(decimal.RequireFromString("26000")))
}
