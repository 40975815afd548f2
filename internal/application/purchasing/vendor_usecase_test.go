package purchasing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/application/purchasing"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/memory"
)

func newVendorUC(t *testing.T) (*purchasing.VendorUseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	return purchasing.NewVendorUseCase(
		memory.NewTxRunner(store),
		memory.NewVendorRepo(store),
		memory.NewVendorLedgerRepo(store),
	), store
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Polaridad invertida respecto al libro de clientes: la compra (Credit) sube
// lo que la tienda debe; el pago (Debit) lo baja. El estado de cuenta lleva
// los saldos corridos.
func TestVendorLedger_CompraYPagoConSaldosCorridos(t *testing.T) {
	uc, _ := newVendorUC(t)
	ctx := context.Background()

	v, err := uc.Create(ctx, dto.CreateVendorRequest{Name: "Distribuidora La Central"})
	require.NoError(t, err)

	purchase, err := uc.RegisterPurchase(ctx, v.ID, dto.PurchaseRequest{
		Amount:      dec("120000"),
		Description: "Pedido semanal",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorEntryTypePurchase, purchase.Type)
	assert.True(t, purchase.Credit.Equal(dec("120000")))
	assert.True(t, purchase.Balance.Equal(dec("120000")))

	payment, err := uc.RegisterPayment(ctx, v.ID, dto.PaymentRequest{
		Amount: dec("50000"),
		Method: "transferencia",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorEntryTypePayment, payment.Type)
	assert.True(t, payment.Debit.Equal(dec("50000")))
	assert.True(t, payment.Balance.Equal(dec("70000")))
	assert.Contains(t, payment.Description, "transferencia")

	got, err := uc.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalBalance.Equal(dec("70000")))

	entries, err := uc.Statement(ctx, v.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Balance.Equal(dec("120000")))
	assert.True(t, entries[1].Balance.Equal(dec("70000")))
}

// Pagar más de lo adeudado deja el saldo negativo (el proveedor le debe a la
// tienda): no hay piso en cero.
func TestVendorLedger_PagoMayorAlSaldoPermitido(t *testing.T) {
	uc, _ := newVendorUC(t)
	ctx := context.Background()

	v, err := uc.Create(ctx, dto.CreateVendorRequest{Name: "Mayorista Norte"})
	require.NoError(t, err)

	_, err = uc.RegisterPurchase(ctx, v.ID, dto.PurchaseRequest{Amount: dec("30000")})
	require.NoError(t, err)

	payment, err := uc.RegisterPayment(ctx, v.ID, dto.PaymentRequest{Amount: dec("45000")})
	require.NoError(t, err)
	assert.True(t, payment.Balance.Equal(dec("-15000")))

	got, err := uc.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalBalance.Equal(dec("-15000")))
}

func TestVendorLedger_MontosInvalidos(t *testing.T) {
	uc, _ := newVendorUC(t)
	ctx := context.Background()

	v, err := uc.Create(ctx, dto.CreateVendorRequest{Name: "Proveedor X"})
	require.NoError(t, err)

	_, err = uc.RegisterPurchase(ctx, v.ID, dto.PurchaseRequest{Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterPayment(ctx, v.ID, dto.PaymentRequest{Amount: dec("-10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterPurchase(ctx, "no-existe", dto.PurchaseRequest{Amount: dec("100")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVendorCreate_NombreObligatorio(t *testing.T) {
	uc, _ := newVendorUC(t)
	_, err := uc.Create(context.Background(), dto.CreateVendorRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
