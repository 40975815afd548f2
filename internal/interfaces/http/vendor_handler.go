package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/application/purchasing"
)

// VendorHandler maneja las peticiones HTTP del libro de proveedores (protegido).
type VendorHandler struct {
	uc *purchasing.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *purchasing.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// Create crea un proveedor.
// POST /api/vendors
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	vendor, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

// List lista proveedores.
// GET /api/vendors
func (h *VendorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	vendors, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(vendors)
}

// GetByID obtiene un proveedor.
// GET /api/vendors/:id
func (h *VendorHandler) GetByID(c *fiber.Ctx) error {
	vendor, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(vendor)
}

// RegisterPurchase registra una compra manual al proveedor.
// POST /api/vendors/:id/purchases
func (h *VendorHandler) RegisterPurchase(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.uc.RegisterPurchase(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// RegisterPayment registra un pago al proveedor.
// POST /api/vendors/:id/payments
func (h *VendorHandler) RegisterPayment(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.uc.RegisterPayment(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Statement devuelve el estado de cuenta del proveedor.
// GET /api/vendors/:id/ledger
func (h *VendorHandler) Statement(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	entries, err := h.uc.Statement(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(entries)
}
