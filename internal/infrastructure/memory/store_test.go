package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/memory"
)

func sampleProduct(id string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:            id,
		Name:          "Arroz 1kg",
		PurchasePrice: decimal.RequireFromString("2800"),
		SalePrice:     decimal.RequireFromString("3600"),
		StockQuantity: decimal.RequireFromString("10"),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Si fn falla, todo lo escrito dentro de la transacción se descarta.
func TestTxRunner_RollbackRestauraEstado(t *testing.T) {
	store := memory.New()
	products := memory.NewProductRepo(store)
	require.NoError(t, products.Create(sampleProduct("p-1")))

	boom := errors.New("boom")
	err := memory.NewTxRunner(store).Run(context.Background(), func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.VendorRepository,
		_ repository.VendorLedgerRepository,
	) error {
		if err := productRepo.Create(sampleProduct("p-2")); err != nil {
			return err
		}
		if err := productRepo.UpdateStock("p-1", decimal.Zero); err != nil {
			return err
		}
		if err := movementRepo.Create(&entity.StockMovement{
			ID: "m-1", ProductID: "p-1", Type: entity.MovementTypeOut,
			Quantity: decimal.RequireFromString("10"),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	p2, err := products.GetByID("p-2")
	require.NoError(t, err)
	assert.Nil(t, p2, "el alta dentro de la tx fallida se descarta")

	p1, err := products.GetByID("p-1")
	require.NoError(t, err)
	assert.True(t, p1.StockQuantity.Equal(decimal.RequireFromString("10")), "el stock vuelve al snapshot")

	movs, err := memory.NewMovementRepo(store).ListByProduct("p-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

// Si fn termina bien, los cambios quedan visibles fuera de la transacción.
func TestTxRunner_CommitPersisteCambios(t *testing.T) {
	store := memory.New()
	products := memory.NewProductRepo(store)

	err := memory.NewTxRunner(store).Run(context.Background(), func(
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
		_ repository.VendorRepository,
		_ repository.VendorLedgerRepository,
	) error {
		return productRepo.Create(sampleProduct("p-1"))
	})
	require.NoError(t, err)

	p, err := products.GetByID("p-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Arroz 1kg", p.Name)
}

// Un contexto ya cancelado impide entrar a la transacción.
func TestTxRunner_ContextoCancelado(t *testing.T) {
	store := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := memory.NewTxRunner(store).Run(ctx, func(
		repository.ProductRepository,
		repository.StockMovementRepository,
		repository.VendorRepository,
		repository.VendorLedgerRepository,
	) error {
		t.Fatal("fn no debería ejecutarse con el contexto cancelado")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
