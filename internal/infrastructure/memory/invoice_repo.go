package memory

import (
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// InvoiceRepo implementa repository.InvoiceRepository sobre el almacén.
// Facturas y líneas son inmutables: el repo no expone update ni delete.
type InvoiceRepo struct {
	s  *Store
	tx bool
}

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// NewInvoiceRepo crea el repo en modo autónomo.
func NewInvoiceRepo(s *Store) *InvoiceRepo { return &InvoiceRepo{s: s} }

func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.invoices[invoice.ID]; ok {
			return domain.ErrDuplicate
		}
		d.invoices[invoice.ID] = *invoice
		d.invoiceOrder = append(d.invoiceOrder, invoice.ID)
		return nil
	})
}

func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.invoices[item.InvoiceID]; !ok {
			return domain.ErrNotFound
		}
		d.invoiceItems = append(d.invoiceItems, *item)
		return nil
	})
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	var out *entity.Invoice
	err := r.s.read(r.tx, func(d *data) error {
		if inv, ok := d.invoices[id]; ok {
			out = &inv
		}
		return nil
	})
	return out, err
}

func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	err := r.s.read(r.tx, func(d *data) error {
		for i := range d.invoiceItems {
			if d.invoiceItems[i].InvoiceID == invoiceID {
				item := d.invoiceItems[i]
				out = append(out, &item)
			}
		}
		return nil
	})
	return out, err
}

// List devuelve facturas de la más reciente a la más antigua.
func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	err := r.s.read(r.tx, func(d *data) error {
		reversed := make([]string, 0, len(d.invoiceOrder))
		for i := len(d.invoiceOrder) - 1; i >= 0; i-- {
			reversed = append(reversed, d.invoiceOrder[i])
		}
		ids := paginate(reversed, limit, offset)
		out = make([]*entity.Invoice, 0, len(ids))
		for _, id := range ids {
			inv := d.invoices[id]
			out = append(out, &inv)
		}
		return nil
	})
	return out, err
}

func (r *InvoiceRepo) ExistsByNumber(number string) (bool, error) {
	var exists bool
	err := r.s.read(r.tx, func(d *data) error {
		for _, inv := range d.invoices {
			if inv.Number == number {
				exists = true
				return nil
			}
		}
		return nil
	})
	return exists, err
}

// ProfileRepo implementa repository.ProfileRepository (fila única).
type ProfileRepo struct {
	s  *Store
	tx bool
}

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// NewProfileRepo crea el repo en modo autónomo.
func NewProfileRepo(s *Store) *ProfileRepo { return &ProfileRepo{s: s} }

func (r *ProfileRepo) Get() (*entity.ShopProfile, error) {
	var out *entity.ShopProfile
	err := r.s.read(r.tx, func(d *data) error {
		if d.profile.ID != "" {
			p := d.profile
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProfileRepo) GetForUpdate() (*entity.ShopProfile, error) {
	return r.Get()
}

func (r *ProfileRepo) Update(profile *entity.ShopProfile) error {
	return r.s.write(r.tx, func(d *data) error {
		if d.profile.ID == "" || d.profile.ID != profile.ID {
			return domain.ErrNotFound
		}
		d.profile = *profile
		return nil
	})
}

func (r *ProfileRepo) UpdateSequence(profileID string, next int64) error {
	return r.s.write(r.tx, func(d *data) error {
		if d.profile.ID != profileID {
			return domain.ErrNotFound
		}
		d.profile.NextInvoiceNumber = next
		return nil
	})
}
