package memory

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
)

// NewSeeded crea el almacén del modo demo: perfil de tienda con credenciales
// de desarrollo, proveedores, clientes y productos con su movimiento inicial.
// Las credenciales se leen de SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD; si no
// están definidas se usan valores de desarrollo con una advertencia en el log.
// Nunca se usan en producción (con DATABASE_URL el backend usa PostgreSQL).
func NewSeeded() *Store {
	s := New()
	now := time.Now()

	email := envOr("SEED_ADMIN_EMAIL", "admin@tienda.local")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")
	if os.Getenv("SEED_ADMIN_PASSWORD") == "" {
		log.Warn().Msg("almacén en memoria: usando credenciales de desarrollo; defina SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén en memoria: no se pudo hashear la contraseña seed")
	}

	s.d.profile = entity.ShopProfile{
		ID:                uuid.New().String(),
		Name:              "Administrador",
		ShopName:          "Tienda Demo",
		Email:             email,
		PasswordHash:      string(hash),
		Phone:             "3000000000",
		Address:           "Calle 1 # 2-34",
		InvoicePrefix:     entity.DefaultInvoicePrefix,
		NextInvoiceNumber: 1,
		InvoicePadding:    entity.DefaultInvoicePadding,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	vendor := entity.Vendor{
		ID:            uuid.New().String(),
		Name:          "Distribuidora La Central",
		ContactPerson: "Marta Ruiz",
		Phone:         "3011111111",
		TotalBalance:  decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.d.vendors[vendor.ID] = vendor
	s.d.vendorOrder = append(s.d.vendorOrder, vendor.ID)

	customers := []entity.Customer{
		{ID: uuid.New().String(), Name: "Cliente Mostrador", TotalOutstanding: decimal.Zero, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Ana Torres", Phone: "3022222222", TotalOutstanding: decimal.Zero, CreatedAt: now, UpdatedAt: now},
	}
	for _, c := range customers {
		s.d.customers[c.ID] = c
		s.d.customerOrder = append(s.d.customerOrder, c.ID)
	}

	type seedProduct struct {
		sku, name       string
		purchase, sale  string
		stock, minStock string
	}
	for _, sp := range []seedProduct{
		{"SKU-ARROZ-01", "Arroz 1kg", "2800", "3600", "50", "10"},
		{"SKU-ACEITE-01", "Aceite 900ml", "7200", "9500", "30", "8"},
		{"SKU-PANELA-01", "Panela 500g", "1900", "2700", "40", "10"},
		{"SKU-CAFE-01", "Café molido 250g", "6500", "8900", "25", "5"},
		{"SKU-JABON-01", "Jabón de baño", "1500", "2300", "60", "15"},
	} {
		p := entity.Product{
			ID:                uuid.New().String(),
			SKU:               sp.sku,
			Name:              sp.name,
			PurchasePrice:     decimal.RequireFromString(sp.purchase),
			SalePrice:         decimal.RequireFromString(sp.sale),
			StockQuantity:     decimal.RequireFromString(sp.stock),
			LowStockThreshold: decimal.RequireFromString(sp.minStock),
			VendorID:          vendor.ID,
			VendorName:        vendor.Name,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		s.d.products[p.ID] = p
		s.d.productOrder = append(s.d.productOrder, p.ID)
		s.d.movements = append(s.d.movements, entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   p.ID,
			Type:        entity.MovementTypeIn,
			Quantity:    p.StockQuantity,
			Date:        now,
			Reason:      "stock inicial",
			ReferenceID: p.ID,
			CreatedAt:   now,
		})
	}

	log.Info().
		Int("productos", len(s.d.products)).
		Int("clientes", len(s.d.customers)).
		Str("email", email).
		Msg("almacén en memoria inicializado con datos demo")
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
