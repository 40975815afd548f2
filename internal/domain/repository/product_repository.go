package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de
	// una transacción, para que dos commits concurrentes no lean stock viejo.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo el stock vivo (usado por el motor de inventario).
	UpdateStock(productID string, quantity decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListBelowThreshold devuelve los productos con stock vivo <= umbral de alerta.
	ListBelowThreshold() ([]*entity.Product, error)
	Delete(id string) error
}
