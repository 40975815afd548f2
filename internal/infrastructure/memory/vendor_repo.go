package memory

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// VendorRepo implementa repository.VendorRepository sobre el almacén.
type VendorRepo struct {
	s  *Store
	tx bool
}

var _ repository.VendorRepository = (*VendorRepo)(nil)

// NewVendorRepo crea el repo en modo autónomo.
func NewVendorRepo(s *Store) *VendorRepo { return &VendorRepo{s: s} }

func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.vendors[vendor.ID]; ok {
			return domain.ErrDuplicate
		}
		d.vendors[vendor.ID] = *vendor
		d.vendorOrder = append(d.vendorOrder, vendor.ID)
		return nil
	})
}

func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	var out *entity.Vendor
	err := r.s.read(r.tx, func(d *data) error {
		if v, ok := d.vendors[id]; ok {
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *VendorRepo) GetForUpdate(id string) (*entity.Vendor, error) {
	return r.GetByID(id)
}

func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.vendors[vendor.ID]; !ok {
			return domain.ErrNotFound
		}
		d.vendors[vendor.ID] = *vendor
		return nil
	})
}

func (r *VendorRepo) UpdateBalance(vendorID string, balance decimal.Decimal) error {
	return r.s.write(r.tx, func(d *data) error {
		v, ok := d.vendors[vendorID]
		if !ok {
			return domain.ErrNotFound
		}
		v.TotalBalance = balance
		d.vendors[vendorID] = v
		return nil
	})
}

func (r *VendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	err := r.s.read(r.tx, func(d *data) error {
		ids := paginate(d.vendorOrder, limit, offset)
		out = make([]*entity.Vendor, 0, len(ids))
		for _, id := range ids {
			v := d.vendors[id]
			out = append(out, &v)
		}
		return nil
	})
	return out, err
}

func (r *VendorRepo) Delete(id string) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.vendors[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.vendors, id)
		d.vendorOrder = slices.DeleteFunc(d.vendorOrder, func(vid string) bool { return vid == id })
		return nil
	})
}

// VendorLedgerRepo implementa repository.VendorLedgerRepository. Append-only.
type VendorLedgerRepo struct {
	s  *Store
	tx bool
}

var _ repository.VendorLedgerRepository = (*VendorLedgerRepo)(nil)

// NewVendorLedgerRepo crea el repo en modo autónomo.
func NewVendorLedgerRepo(s *Store) *VendorLedgerRepo { return &VendorLedgerRepo{s: s} }

func (r *VendorLedgerRepo) Append(entry *entity.VendorLedgerEntry) error {
	return r.s.write(r.tx, func(d *data) error {
		d.vendorLedger = append(d.vendorLedger, *entry)
		return nil
	})
}

func (r *VendorLedgerRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.VendorLedgerEntry, error) {
	var out []*entity.VendorLedgerEntry
	err := r.s.read(r.tx, func(d *data) error {
		var all []*entity.VendorLedgerEntry
		for i := range d.vendorLedger {
			if d.vendorLedger[i].VendorID == vendorID {
				e := d.vendorLedger[i]
				all = append(all, &e)
			}
		}
		out = paginate(all, limit, offset)
		return nil
	})
	return out, err
}

func (r *VendorLedgerRepo) GetLastByVendor(vendorID string) (*entity.VendorLedgerEntry, error) {
	var out *entity.VendorLedgerEntry
	err := r.s.read(r.tx, func(d *data) error {
		for i := len(d.vendorLedger) - 1; i >= 0; i-- {
			if d.vendorLedger[i].VendorID == vendorID {
				e := d.vendorLedger[i]
				out = &e
				return nil
			}
		}
		return nil
	})
	return out, err
}
