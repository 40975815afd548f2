package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-pro/internal/application/auth"
	"github.com/tu-usuario/tienda-pro/internal/application/billing"
	"github.com/tu-usuario/tienda-pro/internal/application/inventory"
	"github.com/tu-usuario/tienda-pro/internal/application/purchasing"
	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProfileUC   *usecase.ProfileUseCase
	InventoryUC *inventory.UseCase
	CustomerUC  *billing.CustomerUseCase
	InvoiceUC   *billing.InvoiceUseCase
	VendorUC    *purchasing.VendorUseCase
	ReportUC    *usecase.ReportUseCase
	AIUC        *usecase.AIUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authGroup2 := protected.Group("/auth")
	authGroup2.Post("/change-password", authHandler.ChangePassword)

	// Perfil de la tienda (solo admin puede editar el consecutivo)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile := protected.Group("/profile")
	profile.Get("/", profileHandler.Get)
	profile.Put("/", RequireRole(entity.RoleAdmin), profileHandler.Update)

	// Productos y movimientos de stock
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.InventoryUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)
	products.Post("/:id/adjust-stock", productHandler.AdjustStock)
	products.Get("/:id/movements", productHandler.ListMovements)

	// Clientes y su libro
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id/payments", customerHandler.RegisterPayment)
	customers.Get("/:id/ledger", customerHandler.Statement)

	// Proveedores y su libro
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Post("/:id/purchases", vendorHandler.RegisterPurchase)
	vendors.Post("/:id/payments", vendorHandler.RegisterPayment)
	vendors.Get("/:id/ledger", vendorHandler.Statement)

	// Facturas
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)

	// Reportes e insights
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/low-stock", reportHandler.LowStock)

	aiGroup := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	aiGroup.Get("/insight", aiHandler.Insight)
}
