package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	// GetForUpdate bloquea la fila del proveedor para serializar los asientos
	// que tocan su saldo corrido.
	GetForUpdate(id string) (*entity.Vendor, error)
	Update(vendor *entity.Vendor) error
	// UpdateBalance actualiza solo el total en caché.
	UpdateBalance(vendorID string, balance decimal.Decimal) error
	List(limit, offset int) ([]*entity.Vendor, error)
	Delete(id string) error
}

// VendorLedgerRepository define el puerto de persistencia para el libro de
// proveedores. Append-only, igual que el de clientes.
type VendorLedgerRepository interface {
	Append(entry *entity.VendorLedgerEntry) error
	ListByVendor(vendorID string, limit, offset int) ([]*entity.VendorLedgerEntry, error)
	GetLastByVendor(vendorID string) (*entity.VendorLedgerEntry, error)
}
