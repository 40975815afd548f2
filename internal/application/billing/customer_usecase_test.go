package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
)

// Un abono reduce la deuda del cliente y queda como asiento con Credit.
func TestRegisterPayment_ReduceSaldo(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Camila")
	productID := env.addProduct(t, "Café", "6500", "8900", "10")

	// Deuda inicial vía venta a crédito sin pago
	_, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("2")}},
		PaymentType: entity.PaymentTypeCredit,
	})
	require.NoError(t, err)

	entry, err := env.customerUC.RegisterPayment(context.Background(), customerID, dto.PaymentRequest{
		Amount: dec("10000"),
		Method: "efectivo",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LedgerEntryTypePayment, entry.Type)
	assert.True(t, entry.Credit.Equal(dec("10000")))
	assert.True(t, entry.Balance.Equal(dec("7800")), "17800 - 10000")
	assert.Contains(t, entry.Description, "efectivo")

	customer, err := env.customerUC.GetByID(context.Background(), customerID)
	require.NoError(t, err)
	assert.True(t, customer.TotalOutstanding.Equal(dec("7800")))
}

// Un abono mayor al saldo deja al cliente con saldo a favor: no hay piso en cero.
func TestRegisterPayment_SobrepagoDejaSaldoAFavor(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Diego")

	entry, err := env.customerUC.RegisterPayment(context.Background(), customerID, dto.PaymentRequest{
		Amount: dec("5000"),
	})
	require.NoError(t, err)
	assert.True(t, entry.Balance.Equal(dec("-5000")), "saldo a favor del cliente")

	customer, err := env.customerUC.GetByID(context.Background(), customerID)
	require.NoError(t, err)
	assert.True(t, customer.TotalOutstanding.Equal(dec("-5000")))
}

// El estado de cuenta sale en orden de inserción con los saldos corridos.
func TestStatement_OrdenYSaldosCorridos(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Paula")
	productID := env.addProduct(t, "Arroz", "2800", "3600", "50")

	_, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("5")}},
		PaymentType: entity.PaymentTypeCredit,
	})
	require.NoError(t, err)
	_, err = env.customerUC.RegisterPayment(context.Background(), customerID, dto.PaymentRequest{Amount: dec("8000")})
	require.NoError(t, err)
	_, err = env.customerUC.RegisterPayment(context.Background(), customerID, dto.PaymentRequest{Amount: dec("10000")})
	require.NoError(t, err)

	entries, err := env.customerUC.Statement(context.Background(), customerID, 50, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, entity.LedgerEntryTypeInvoice, entries[0].Type)
	assert.True(t, entries[0].Balance.Equal(dec("18000")))
	assert.True(t, entries[1].Balance.Equal(dec("10000")))
	assert.True(t, entries[2].Balance.Equal(dec("0")))
}

// Montos no positivos y cliente inexistente se rechazan.
func TestRegisterPayment_Invalidos(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Hugo")

	_, err := env.customerUC.RegisterPayment(context.Background(), customerID, dto.PaymentRequest{Amount: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.customerUC.RegisterPayment(context.Background(), customerID, dto.PaymentRequest{Amount: dec("-100")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.customerUC.RegisterPayment(context.Background(), "no-existe", dto.PaymentRequest{Amount: dec("100")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Editar contacto no toca el saldo.
func TestUpdateCustomer_NoTocaSaldo(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Irene")
	_, err := env.customerUC.RegisterPayment(context.Background(), customerID, dto.PaymentRequest{Amount: dec("3000")})
	require.NoError(t, err)

	updated, err := env.customerUC.Update(context.Background(), customerID, dto.CreateCustomerRequest{
		Name:  "Irene Gómez",
		Phone: "3005556677",
	})
	require.NoError(t, err)
	assert.Equal(t, "Irene Gómez", updated.Name)
	assert.True(t, updated.TotalOutstanding.Equal(dec("-3000")), "el saldo solo lo mueven los asientos")
}
