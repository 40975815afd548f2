package entity

import "time"

// Roles válidos para el acceso al sistema.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// Valores por defecto del consecutivo de facturación.
const (
	DefaultInvoicePrefix  = "INV"
	DefaultInvoicePadding = 5
)

// ShopProfile representa el perfil de la tienda y su dueño (sistema mono-tienda).
// Además de la identidad, es el dueño del consecutivo de facturación:
// NextInvoiceNumber solo avanza, de a 1, cuando una factura se confirma.
type ShopProfile struct {
	ID                string
	Name              string // nombre del dueño/operador
	ShopName          string
	Email             string
	PasswordHash      string // bcrypt hash, nunca plano en dominio después de persistir
	Phone             string
	Address           string
	InvoicePrefix     string // ej: "INV"
	NextInvoiceNumber int64  // >= 1
	InvoicePadding    int    // ancho de relleno con ceros; 0 = usar DefaultInvoicePadding
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Padding devuelve el ancho efectivo de relleno del consecutivo.
func (p *ShopProfile) Padding() int {
	if p.InvoicePadding <= 0 {
		return DefaultInvoicePadding
	}
	return p.InvoicePadding
}
