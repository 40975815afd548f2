// seed_demo crea el perfil de la tienda y datos de demostración en PostgreSQL
// (proveedor, clientes y productos con su movimiento inicial). Idempotente a
// nivel de perfil: si ya existe uno, no toca nada y termina.
//
// Uso: go run ./cmd/seed_demo
// Requiere DATABASE_URL o DB_HOST en el entorno. Credenciales del admin vía
// SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD (con defaults de desarrollo).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/tienda-pro/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("cargar configuración: %v", err)
	}
	if cfg.DB.InMemory() {
		fatalf("seed_demo requiere DATABASE_URL o DB_HOST (el modo memoria se siembra solo)")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fatalf("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	profileRepo := postgres.NewProfileRepository(pool)
	existing, err := profileRepo.Get()
	if err != nil {
		fatalf("leer perfil: %v", err)
	}
	if existing != nil {
		fmt.Println("el perfil ya existe; nada que sembrar")
		return
	}

	email := envOr("SEED_ADMIN_EMAIL", "admin@tienda.local")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fatalf("hashear contraseña: %v", err)
	}

	now := time.Now()
	profileID := uuid.New().String()
	_, err = pool.Exec(ctx, `
		INSERT INTO shop_profile (id, name, shop_name, email, password_hash, phone, address, invoice_prefix, next_invoice_number, invoice_padding, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		profileID, "Administrador", "Tienda Demo", email, string(hash),
		"3000000000", "Calle 1 # 2-34", entity.DefaultInvoicePrefix, int64(1),
		entity.DefaultInvoicePadding, now, now,
	)
	if err != nil {
		fatalf("insertar perfil: %v", err)
	}

	vendorRepo := postgres.NewVendorRepository(pool)
	vendor := &entity.Vendor{
		ID:            uuid.New().String(),
		Name:          "Distribuidora La Central",
		ContactPerson: "Marta Ruiz",
		Phone:         "3011111111",
		TotalBalance:  decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := vendorRepo.Create(vendor); err != nil {
		fatalf("insertar proveedor: %v", err)
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	for _, name := range []string{"Cliente Mostrador", "Ana Torres"} {
		c := &entity.Customer{
			ID:               uuid.New().String(),
			Name:             name,
			TotalOutstanding: decimal.Zero,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := customerRepo.Create(c); err != nil {
			fatalf("insertar cliente: %v", err)
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	type seedProduct struct {
		sku, name      string
		purchase, sale string
		stock, minimum string
	}
	for _, sp := range []seedProduct{
		{"SKU-ARROZ-01", "Arroz 1kg", "2800", "3600", "50", "10"},
		{"SKU-ACEITE-01", "Aceite 900ml", "7200", "9500", "30", "8"},
		{"SKU-PANELA-01", "Panela 500g", "1900", "2700", "40", "10"},
		{"SKU-CAFE-01", "Café molido 250g", "6500", "8900", "25", "5"},
		{"SKU-JABON-01", "Jabón de baño", "1500", "2300", "60", "15"},
	} {
		p := &entity.Product{
			ID:                uuid.New().String(),
			SKU:               sp.sku,
			Name:              sp.name,
			PurchasePrice:     decimal.RequireFromString(sp.purchase),
			SalePrice:         decimal.RequireFromString(sp.sale),
			StockQuantity:     decimal.RequireFromString(sp.stock),
			LowStockThreshold: decimal.RequireFromString(sp.minimum),
			VendorID:          vendor.ID,
			VendorName:        vendor.Name,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := productRepo.Create(p); err != nil {
			fatalf("insertar producto %s: %v", sp.name, err)
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   p.ID,
			Type:        entity.MovementTypeIn,
			Quantity:    p.StockQuantity,
			Date:        now,
			Reason:      "stock inicial",
			ReferenceID: p.ID,
			CreatedAt:   now,
		}
		if err := movementRepo.Create(mov); err != nil {
			fatalf("insertar movimiento inicial de %s: %v", sp.name, err)
		}
	}

	fmt.Printf("datos demo sembrados (admin: %s)\n", email)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
