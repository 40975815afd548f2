package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/internal/application/billing"
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/application/inventory"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testProfileID = "00000000-0000-0000-0000-0000000000aa"

type billingEnv struct {
	store       *memory.Store
	invoiceUC   *billing.InvoiceUseCase
	customerUC  *billing.CustomerUseCase
	inventoryUC *inventory.UseCase
	products    *memory.ProductRepo
	movements   *memory.MovementRepo
	customers   *memory.CustomerRepo
	ledger      *memory.CustomerLedgerRepo
	profiles    *memory.ProfileRepo
}

// newBillingEnv arma el grafo completo sobre el almacén en memoria con un
// perfil en consecutivo 1 (INV, relleno 5).
func newBillingEnv(t *testing.T) *billingEnv {
	t.Helper()
	store := memory.New()
	now := time.Now()
	store.SetProfile(entity.ShopProfile{
		ID:                testProfileID,
		Name:              "Admin",
		ShopName:          "Tienda Test",
		Email:             "admin@test.local",
		InvoicePrefix:     entity.DefaultInvoicePrefix,
		NextInvoiceNumber: 1,
		InvoicePadding:    entity.DefaultInvoicePadding,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	tx := memory.NewTxRunner(store)
	products := memory.NewProductRepo(store)
	movements := memory.NewMovementRepo(store)
	vendors := memory.NewVendorRepo(store)
	invUC := inventory.NewUseCase(tx, products, movements, vendors)
	return &billingEnv{
		store:       store,
		invoiceUC:   billing.NewInvoiceUseCase(tx, invUC, memory.NewInvoiceRepo(store)),
		customerUC:  billing.NewCustomerUseCase(tx, memory.NewCustomerRepo(store), memory.NewCustomerLedgerRepo(store)),
		inventoryUC: invUC,
		products:    products,
		movements:   movements,
		customers:   memory.NewCustomerRepo(store),
		ledger:      memory.NewCustomerLedgerRepo(store),
		profiles:    memory.NewProfileRepo(store),
	}
}

func (e *billingEnv) addCustomer(t *testing.T, name string) string {
	t.Helper()
	c, err := e.customerUC.Create(context.Background(), dto.CreateCustomerRequest{Name: name})
	require.NoError(t, err)
	return c.ID
}

func (e *billingEnv) addProduct(t *testing.T, name string, purchase, sale, stock string) string {
	t.Helper()
	p, err := e.inventoryUC.AddProduct(context.Background(), dto.CreateProductRequest{
		Name:          name,
		PurchasePrice: decimal.RequireFromString(purchase),
		SalePrice:     decimal.RequireFromString(sale),
		InitialStock:  decimal.RequireFromString(stock),
	})
	require.NoError(t, err)
	return p.ID
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Confirmación de factura
// ──────────────────────────────────────────────────────────────────────────────

// Venta de contado: la factura sale pagada completa, el stock baja con su
// movimiento "venta" y el saldo del cliente no cambia (cargo y abono iguales).
func TestCreateInvoice_VentaDeContado(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Ana")
	productID := env.addProduct(t, "Arroz 1kg", "2800", "3600", "10")

	inv, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("3")}},
		PaymentType: entity.PaymentTypeCash,
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-00001", inv.Number)
	assert.True(t, inv.Total.Equal(dec("10800")), "total = 3 x 3600")
	assert.True(t, inv.PaidAmount.Equal(inv.Total), "contado paga el total completo")
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Arroz 1kg", inv.Items[0].ProductName)
	assert.True(t, inv.Items[0].PurchasePrice.Equal(dec("2800")), "snapshot de costo")

	product, err := env.products.GetByID(productID)
	require.NoError(t, err)
	assert.True(t, product.StockQuantity.Equal(dec("7")))

	movs, err := env.movements.ListByProduct(productID, 10, 0)
	require.NoError(t, err)
	require.Len(t, movs, 2, "inicial + venta")
	assert.Equal(t, entity.MovementTypeOut, movs[1].Type)
	assert.True(t, movs[1].Quantity.Equal(dec("3")))
	assert.Equal(t, inv.ID, movs[1].ReferenceID)

	customer, err := env.customers.GetByID(customerID)
	require.NoError(t, err)
	assert.True(t, customer.TotalOutstanding.IsZero(), "contado no deja saldo")

	entries, err := env.ledger.ListByCustomer(customerID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1, "la venta de contado también queda en el libro")
	assert.True(t, entries[0].Debit.Equal(inv.Total))
	assert.True(t, entries[0].Credit.Equal(inv.Total))
}

// Venta a crédito con pago parcial: el saldo del cliente sube en total - pagado.
func TestCreateInvoice_CreditoConPagoParcial(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Luis")
	productID := env.addProduct(t, "Aceite 900ml", "7200", "9500", "5")

	inv, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("2")}},
		PaidAmount:  dec("10000"),
		PaymentType: entity.PaymentTypeCredit,
	})
	require.NoError(t, err)
	assert.True(t, inv.Total.Equal(dec("19000")))

	customer, err := env.customers.GetByID(customerID)
	require.NoError(t, err)
	assert.True(t, customer.TotalOutstanding.Equal(dec("9000")), "saldo = 19000 - 10000")

	entries, err := env.ledger.ListByCustomer(customerID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.LedgerEntryTypeInvoice, entries[0].Type)
	assert.True(t, entries[0].Balance.Equal(dec("9000")))
}

// Stock insuficiente aborta el commit completo: sin factura, sin movimiento,
// sin asiento, consecutivo intacto. Nunca se recorta la cantidad a lo disponible.
func TestCreateInvoice_StockInsuficienteRevierteTodo(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Marta")
	productID := env.addProduct(t, "Panela 500g", "1900", "2700", "2")

	_, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("5")}},
		PaymentType: entity.PaymentTypeCash,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	product, err := env.products.GetByID(productID)
	require.NoError(t, err)
	assert.True(t, product.StockQuantity.Equal(dec("2")), "stock intacto")

	movs, err := env.movements.ListByProduct(productID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 1, "solo el movimiento inicial")

	entries, err := env.ledger.ListByCustomer(customerID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	profile, err := env.profiles.Get()
	require.NoError(t, err)
	assert.EqualValues(t, 1, profile.NextInvoiceNumber, "el consecutivo no se quema")
}

// Mezcla de líneas válidas e insuficientes: todas se revierten juntas.
func TestCreateInvoice_FallaUnaLineaRevierteLasDemas(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Pedro")
	okID := env.addProduct(t, "Café molido", "6500", "8900", "10")
	shortID := env.addProduct(t, "Jabón", "1500", "2300", "1")

	_, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID: customerID,
		Items: []dto.InvoiceItemRequest{
			{ProductID: okID, Quantity: dec("4")},
			{ProductID: shortID, Quantity: dec("3")},
		},
		PaymentType: entity.PaymentTypeCash,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	ok, err := env.products.GetByID(okID)
	require.NoError(t, err)
	assert.True(t, ok.StockQuantity.Equal(dec("10")), "la línea válida también se revierte")
}

// El consecutivo avanza de a 1 y los números salen en orden.
func TestCreateInvoice_ConsecutivoMonotono(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Sofía")
	productID := env.addProduct(t, "Arroz 1kg", "2800", "3600", "100")

	want := []string{"INV-00001", "INV-00002", "INV-00003"}
	for _, number := range want {
		inv, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
			CustomerID:  customerID,
			Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("1")}},
			PaymentType: entity.PaymentTypeCash,
		})
		require.NoError(t, err)
		assert.Equal(t, number, inv.Number)
	}

	profile, err := env.profiles.Get()
	require.NoError(t, err)
	assert.EqualValues(t, 4, profile.NextInvoiceNumber)
}

// Contrato de numeración: con el consecutivo en 7 la siguiente factura es INV-00007.
func TestCreateInvoice_NumeroConRellenoExacto(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Iván")
	productID := env.addProduct(t, "Panela", "1900", "2700", "10")

	profile, err := env.profiles.Get()
	require.NoError(t, err)
	profile.NextInvoiceNumber = 7
	require.NoError(t, env.profiles.Update(profile))

	inv, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("1")}},
		PaymentType: entity.PaymentTypeCash,
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-00007", inv.Number)
}

// Si el operador baja el consecutivo a un número ya emitido, la confirmación
// se rechaza con colisión y no emite nada.
func TestCreateInvoice_ColisionDeConsecutivo(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Rosa")
	productID := env.addProduct(t, "Café", "6500", "8900", "10")

	_, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("1")}},
		PaymentType: entity.PaymentTypeCash,
	})
	require.NoError(t, err)

	// El operador baja el consecutivo de vuelta a 1
	profile, err := env.profiles.Get()
	require.NoError(t, err)
	profile.NextInvoiceNumber = 1
	require.NoError(t, env.profiles.Update(profile))

	_, err = env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("1")}},
		PaymentType: entity.PaymentTypeCash,
	})
	require.ErrorIs(t, err, domain.ErrSequenceCollision)

	product, err := env.products.GetByID(productID)
	require.NoError(t, err)
	assert.True(t, product.StockQuantity.Equal(dec("9")), "solo la primera venta descontó stock")
}

// El costo capturado en la línea no cambia aunque el producto se edite después.
func TestCreateInvoice_SnapshotDeCostoInmutable(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Elena")
	productID := env.addProduct(t, "Aceite", "7200", "9500", "10")

	inv, err := env.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("2")}},
		PaymentType: entity.PaymentTypeCash,
	})
	require.NoError(t, err)

	// Sube el costo del producto después de la venta
	_, err = env.inventoryUC.UpdateProduct(context.Background(), productID, dto.UpdateProductRequest{
		Name:          "Aceite",
		PurchasePrice: dec("9000"),
		SalePrice:     dec("11000"),
		StockQuantity: dec("8"),
	})
	require.NoError(t, err)

	got, err := env.invoiceUC.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].PurchasePrice.Equal(dec("7200")), "el snapshot no sigue al precio vivo")
}

// Validaciones de entrada del orquestador.
func TestCreateInvoice_Validaciones(t *testing.T) {
	env := newBillingEnv(t)
	customerID := env.addCustomer(t, "Nora")
	productID := env.addProduct(t, "Jabón", "1500", "2300", "10")

	cases := []struct {
		name string
		in   dto.CreateInvoiceRequest
	}{
		{"sin cliente", dto.CreateInvoiceRequest{
			Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("1")}},
			PaymentType: entity.PaymentTypeCash,
		}},
		{"sin líneas", dto.CreateInvoiceRequest{
			CustomerID: customerID, PaymentType: entity.PaymentTypeCash,
		}},
		{"cantidad cero", dto.CreateInvoiceRequest{
			CustomerID:  customerID,
			Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: decimal.Zero}},
			PaymentType: entity.PaymentTypeCash,
		}},
		{"forma de pago desconocida", dto.CreateInvoiceRequest{
			CustomerID:  customerID,
			Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("1")}},
			PaymentType: "cheque",
		}},
		{"pago mayor al total a crédito", dto.CreateInvoiceRequest{
			CustomerID:  customerID,
			Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("1")}},
			PaidAmount:  dec("999999"),
			PaymentType: entity.PaymentTypeCredit,
		}},
		{"descuento mayor al subtotal", dto.CreateInvoiceRequest{
			CustomerID:  customerID,
			Items:       []dto.InvoiceItemRequest{{ProductID: productID, Quantity: dec("1")}},
			Discount:    dec("999999"),
			PaymentType: entity.PaymentTypeCash,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.invoiceUC.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
