package memory

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// CustomerRepo implementa repository.CustomerRepository sobre el almacén.
type CustomerRepo struct {
	s  *Store
	tx bool
}

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// NewCustomerRepo crea el repo en modo autónomo.
func NewCustomerRepo(s *Store) *CustomerRepo { return &CustomerRepo{s: s} }

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.customers[customer.ID]; ok {
			return domain.ErrDuplicate
		}
		d.customers[customer.ID] = *customer
		d.customerOrder = append(d.customerOrder, customer.ID)
		return nil
	})
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.s.read(r.tx, func(d *data) error {
		if c, ok := d.customers[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CustomerRepo) GetForUpdate(id string) (*entity.Customer, error) {
	return r.GetByID(id)
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.customers[customer.ID]; !ok {
			return domain.ErrNotFound
		}
		d.customers[customer.ID] = *customer
		return nil
	})
}

func (r *CustomerRepo) UpdateBalance(customerID string, balance decimal.Decimal) error {
	return r.s.write(r.tx, func(d *data) error {
		c, ok := d.customers[customerID]
		if !ok {
			return domain.ErrNotFound
		}
		c.TotalOutstanding = balance
		d.customers[customerID] = c
		return nil
	})
}

func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	err := r.s.read(r.tx, func(d *data) error {
		ids := paginate(d.customerOrder, limit, offset)
		out = make([]*entity.Customer, 0, len(ids))
		for _, id := range ids {
			c := d.customers[id]
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r *CustomerRepo) Delete(id string) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.customers[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.customers, id)
		d.customerOrder = slices.DeleteFunc(d.customerOrder, func(cid string) bool { return cid == id })
		return nil
	})
}

// CustomerLedgerRepo implementa repository.CustomerLedgerRepository.
// El slice subyacente solo crece: append-only por construcción.
type CustomerLedgerRepo struct {
	s  *Store
	tx bool
}

var _ repository.CustomerLedgerRepository = (*CustomerLedgerRepo)(nil)

// NewCustomerLedgerRepo crea el repo en modo autónomo.
func NewCustomerLedgerRepo(s *Store) *CustomerLedgerRepo { return &CustomerLedgerRepo{s: s} }

func (r *CustomerLedgerRepo) Append(entry *entity.LedgerEntry) error {
	return r.s.write(r.tx, func(d *data) error {
		d.customerLedger = append(d.customerLedger, *entry)
		return nil
	})
}

func (r *CustomerLedgerRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	err := r.s.read(r.tx, func(d *data) error {
		var all []*entity.LedgerEntry
		for i := range d.customerLedger {
			if d.customerLedger[i].CustomerID == customerID {
				e := d.customerLedger[i]
				all = append(all, &e)
			}
		}
		out = paginate(all, limit, offset)
		return nil
	})
	return out, err
}

func (r *CustomerLedgerRepo) GetLastByCustomer(customerID string) (*entity.LedgerEntry, error) {
	var out *entity.LedgerEntry
	err := r.s.read(r.tx, func(d *data) error {
		for i := len(d.customerLedger) - 1; i >= 0; i-- {
			if d.customerLedger[i].CustomerID == customerID {
				e := d.customerLedger[i]
				out = &e
				return nil
			}
		}
		return nil
	})
	return out, err
}
