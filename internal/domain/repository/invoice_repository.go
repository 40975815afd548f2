package repository

import "github.com/tu-usuario/tienda-pro/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Las facturas son inmutables: no hay Update ni Delete.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	// ExistsByNumber verifica si un número de factura ya fue emitido (detección
	// de colisión cuando el operador baja manualmente el consecutivo).
	ExistsByNumber(number string) (bool, error)
}
