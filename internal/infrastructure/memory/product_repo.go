package memory

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// ProductRepo implementa repository.ProductRepository sobre el almacén.
type ProductRepo struct {
	s  *Store
	tx bool
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// NewProductRepo crea el repo en modo autónomo (toma el lock por operación).
func NewProductRepo(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(product *entity.Product) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		d.products[product.ID] = *product
		d.productOrder = append(d.productOrder, product.ID)
		return nil
	})
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.read(r.tx, func(d *data) error {
		if p, ok := d.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetForUpdate en memoria equivale a GetByID: el lock del almacén ya
// serializa a los escritores.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *ProductRepo) Update(product *entity.Product) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.products[product.ID]; !ok {
			return domain.ErrNotFound
		}
		d.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) UpdateStock(productID string, quantity decimal.Decimal) error {
	return r.s.write(r.tx, func(d *data) error {
		p, ok := d.products[productID]
		if !ok {
			return domain.ErrNotFound
		}
		p.StockQuantity = quantity
		d.products[productID] = p
		return nil
	})
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.s.read(r.tx, func(d *data) error {
		ids := paginate(d.productOrder, limit, offset)
		out = make([]*entity.Product, 0, len(ids))
		for _, id := range ids {
			p := d.products[id]
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) ListBelowThreshold() ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.s.read(r.tx, func(d *data) error {
		for _, id := range d.productOrder {
			p := d.products[id]
			if p.LowStockThreshold.IsPositive() && p.StockQuantity.LessThanOrEqual(p.LowStockThreshold) {
				cp := p
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) Delete(id string) error {
	return r.s.write(r.tx, func(d *data) error {
		if _, ok := d.products[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.products, id)
		d.productOrder = slices.DeleteFunc(d.productOrder, func(pid string) bool { return pid == id })
		return nil
	})
}

// MovementRepo implementa repository.StockMovementRepository sobre el almacén.
type MovementRepo struct {
	s  *Store
	tx bool
}

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// NewMovementRepo crea el repo en modo autónomo.
func NewMovementRepo(s *Store) *MovementRepo { return &MovementRepo{s: s} }

func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	return r.s.write(r.tx, func(d *data) error {
		d.movements = append(d.movements, *movement)
		return nil
	})
}

func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.s.read(r.tx, func(d *data) error {
		var all []*entity.StockMovement
		for i := range d.movements {
			if d.movements[i].ProductID == productID {
				m := d.movements[i]
				all = append(all, &m)
			}
		}
		out = paginate(all, limit, offset)
		return nil
	})
	return out, err
}

func (r *MovementRepo) DeleteByProduct(productID string) error {
	return r.s.write(r.tx, func(d *data) error {
		d.movements = slices.DeleteFunc(d.movements, func(m entity.StockMovement) bool {
			return m.ProductID == productID
		})
		return nil
	})
}
