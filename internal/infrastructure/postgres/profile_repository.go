package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `id, name, shop_name, email, password_hash, phone, address, invoice_prefix, next_invoice_number, invoice_padding, created_at, updated_at`

// ProfileRepo implementación del perfil de la tienda sobre PostgreSQL
// (fila única; usable con pool o tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Get devuelve el perfil (nil si aún no existe).
func (r *ProfileRepo) Get() (*entity.ShopProfile, error) {
	return r.scanOne(`SELECT ` + profileColumns + ` FROM shop_profile LIMIT 1`)
}

// GetForUpdate bloquea la fila del perfil: serializa el avance del consecutivo
// entre commits de factura concurrentes.
func (r *ProfileRepo) GetForUpdate() (*entity.ShopProfile, error) {
	return r.scanOne(`SELECT ` + profileColumns + ` FROM shop_profile LIMIT 1 FOR UPDATE`)
}

func (r *ProfileRepo) scanOne(query string) (*entity.ShopProfile, error) {
	var p entity.ShopProfile
	err := r.q.QueryRow(context.Background(), query).Scan(
		&p.ID, &p.Name, &p.ShopName, &p.Email, &p.PasswordHash, &p.Phone, &p.Address,
		&p.InvoicePrefix, &p.NextInvoiceNumber, &p.InvoicePadding, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Update guarda el perfil completo.
func (r *ProfileRepo) Update(profile *entity.ShopProfile) error {
	query := `
		UPDATE shop_profile SET name = $2, shop_name = $3, email = $4, password_hash = $5,
			phone = $6, address = $7, invoice_prefix = $8, next_invoice_number = $9,
			invoice_padding = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Name, profile.ShopName, profile.Email, profile.PasswordHash,
		profile.Phone, profile.Address, profile.InvoicePrefix, profile.NextInvoiceNumber,
		profile.InvoicePadding, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateSequence actualiza solo el consecutivo de facturación.
func (r *ProfileRepo) UpdateSequence(profileID string, next int64) error {
	query := `UPDATE shop_profile SET next_invoice_number = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, profileID, next)
	if err != nil {
		return fmt.Errorf("update invoice sequence: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
