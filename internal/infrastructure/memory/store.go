// Package memory implementa el almacén en memoria para modo demo/desarrollo
// (cuando no hay DATABASE_URL configurada). Un solo mutex protege todo el
// estado; las transacciones clonan el estado al entrar y lo restauran si la
// función falla, de modo que los repos atados a la transacción operan directo
// sobre los datos sin bloquear de nuevo.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
)

// data agrupa todas las colecciones del almacén. Los mapas guardan valores,
// no punteros: clonar el struct con maps.Clone/slices.Clone produce un
// snapshot independiente barato.
type data struct {
	profile entity.ShopProfile

	products     map[string]entity.Product
	productOrder []string
	movements    []entity.StockMovement

	customers      map[string]entity.Customer
	customerOrder  []string
	customerLedger []entity.LedgerEntry

	vendors      map[string]entity.Vendor
	vendorOrder  []string
	vendorLedger []entity.VendorLedgerEntry

	invoices     map[string]entity.Invoice
	invoiceOrder []string
	invoiceItems []entity.InvoiceItem
}

func newData() *data {
	return &data{
		products:  map[string]entity.Product{},
		customers: map[string]entity.Customer{},
		vendors:   map[string]entity.Vendor{},
		invoices:  map[string]entity.Invoice{},
	}
}

func (d *data) clone() *data {
	return &data{
		profile:        d.profile,
		products:       maps.Clone(d.products),
		productOrder:   slices.Clone(d.productOrder),
		movements:      slices.Clone(d.movements),
		customers:      maps.Clone(d.customers),
		customerOrder:  slices.Clone(d.customerOrder),
		customerLedger: slices.Clone(d.customerLedger),
		vendors:        maps.Clone(d.vendors),
		vendorOrder:    slices.Clone(d.vendorOrder),
		vendorLedger:   slices.Clone(d.vendorLedger),
		invoices:       maps.Clone(d.invoices),
		invoiceOrder:   slices.Clone(d.invoiceOrder),
		invoiceItems:   slices.Clone(d.invoiceItems),
	}
}

// Store almacén en memoria. Comparten la misma instancia todos los repos y el
// runner de transacciones.
type Store struct {
	mu sync.RWMutex
	d  *data
}

// New crea un almacén vacío (sin perfil; usar NewSeeded para el modo demo).
func New() *Store {
	return &Store{d: newData()}
}

// SetProfile instala el perfil de la tienda (el esquema es de fila única,
// así que no hay Create en el puerto). Lo usan el seed y los tests.
func (s *Store) SetProfile(p entity.ShopProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.profile = p
}

// runTx ejecuta fn bajo el lock de escritura con semántica todo-o-nada:
// si fn falla, el estado vuelve al snapshot tomado al entrar.
func (s *Store) runTx(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := s.d.clone()
	if err := fn(); err != nil {
		s.d = snapshot
		return err
	}
	return nil
}

// paginate aplica limit/offset sobre una colección ya ordenada.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
