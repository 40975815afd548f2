package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, name, contact_person, phone, email, address, total_balance, created_at, updated_at`

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un proveedor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.ContactPerson, vendor.Phone, vendor.Email,
		vendor.Address, vendor.TotalBalance, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	return r.scanOne(`SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila del proveedor dentro de una transacción.
func (r *VendorRepo) GetForUpdate(id string) (*entity.Vendor, error) {
	return r.scanOne(`SELECT `+vendorColumns+` FROM vendors WHERE id = $1 FOR UPDATE`, id)
}

func (r *VendorRepo) scanOne(query string, args ...any) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&v.ID, &v.Name, &v.ContactPerson, &v.Phone, &v.Email, &v.Address,
		&v.TotalBalance, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// Update actualiza los datos de contacto del proveedor.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, contact_person = $3, phone = $4, email = $5, address = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.ContactPerson, vendor.Phone, vendor.Email,
		vendor.Address, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateBalance actualiza solo el total en caché.
func (r *VendorRepo) UpdateBalance(vendorID string, balance decimal.Decimal) error {
	query := `UPDATE vendors SET total_balance = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, vendorID, balance)
	if err != nil {
		return fmt.Errorf("update vendor balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista proveedores por orden de creación.
func (r *VendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.ContactPerson, &v.Phone, &v.Email, &v.Address, &v.TotalBalance, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Delete elimina un proveedor.
func (r *VendorRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.VendorLedgerRepository = (*VendorLedgerRepo)(nil)

// VendorLedgerRepo implementación del libro de proveedores sobre PostgreSQL.
// Append-only: solo INSERT y SELECT.
type VendorLedgerRepo struct {
	q Querier
}

// NewVendorLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorLedgerRepository(q Querier) *VendorLedgerRepo {
	return &VendorLedgerRepo{q: q}
}

// Append agrega un asiento al libro del proveedor.
func (r *VendorLedgerRepo) Append(entry *entity.VendorLedgerEntry) error {
	query := `
		INSERT INTO vendor_ledger (id, vendor_id, date, ref_id, type, description, debit, credit, balance, created_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.VendorID, entry.Date, entry.RefID, entry.Type,
		entry.Description, entry.Debit, entry.Credit, entry.Balance, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor ledger entry: %w", err)
	}
	return nil
}

const vendorLedgerColumns = `id, vendor_id, date, COALESCE(ref_id::text, ''), type, description, debit, credit, balance, created_at`

// ListByVendor devuelve los asientos del proveedor en orden de inserción.
func (r *VendorLedgerRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.VendorLedgerEntry, error) {
	query := `
		SELECT ` + vendorLedgerColumns + ` FROM vendor_ledger
		WHERE vendor_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendor ledger: %w", err)
	}
	defer rows.Close()

	var out []*entity.VendorLedgerEntry
	for rows.Next() {
		var e entity.VendorLedgerEntry
		if err := rows.Scan(&e.ID, &e.VendorID, &e.Date, &e.RefID, &e.Type, &e.Description, &e.Debit, &e.Credit, &e.Balance, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor ledger entry: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// GetLastByVendor devuelve el asiento más reciente del proveedor (nil si no hay).
func (r *VendorLedgerRepo) GetLastByVendor(vendorID string) (*entity.VendorLedgerEntry, error) {
	query := `
		SELECT ` + vendorLedgerColumns + ` FROM vendor_ledger
		WHERE vendor_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`
	var e entity.VendorLedgerEntry
	err := r.q.QueryRow(context.Background(), query, vendorID).Scan(
		&e.ID, &e.VendorID, &e.Date, &e.RefID, &e.Type, &e.Description, &e.Debit, &e.Credit, &e.Balance, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last vendor ledger entry: %w", err)
	}
	return &e, nil
}
