package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetForUpdate bloquea la fila del cliente para serializar los asientos
	// que tocan su saldo corrido.
	GetForUpdate(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// UpdateBalance actualiza solo el total en caché (usado por los casos de uso de libro).
	UpdateBalance(customerID string, balance decimal.Decimal) error
	List(limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}

// CustomerLedgerRepository define el puerto de persistencia para el libro de
// clientes. Append-only: los asientos nunca se editan ni eliminan.
type CustomerLedgerRepository interface {
	Append(entry *entity.LedgerEntry) error
	ListByCustomer(customerID string, limit, offset int) ([]*entity.LedgerEntry, error)
	// GetLastByCustomer devuelve el asiento más reciente por orden de inserción
	// (nil si el cliente no tiene asientos).
	GetLastByCustomer(customerID string) (*entity.LedgerEntry, error)
}
