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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, address, total_outstanding, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Address,
		customer.TotalOutstanding, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.scanOne(`SELECT id, name, phone, address, total_outstanding, created_at, updated_at FROM customers WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila del cliente dentro de una transacción.
func (r *CustomerRepo) GetForUpdate(id string) (*entity.Customer, error) {
	return r.scanOne(`SELECT id, name, phone, address, total_outstanding, created_at, updated_at FROM customers WHERE id = $1 FOR UPDATE`, id)
}

func (r *CustomerRepo) scanOne(query string, args ...any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Address, &c.TotalOutstanding, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza los datos de contacto del cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `UPDATE customers SET name = $2, phone = $3, address = $4, updated_at = $5 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Address, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateBalance actualiza solo el total en caché.
func (r *CustomerRepo) UpdateBalance(customerID string, balance decimal.Decimal) error {
	query := `UPDATE customers SET total_outstanding = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, customerID, balance)
	if err != nil {
		return fmt.Errorf("update customer balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista clientes por orden de creación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, phone, address, total_outstanding, created_at, updated_at
		FROM customers ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.TotalOutstanding, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Delete elimina un cliente.
func (r *CustomerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.CustomerLedgerRepository = (*CustomerLedgerRepo)(nil)

// CustomerLedgerRepo implementación del libro de clientes sobre PostgreSQL.
// Append-only: solo INSERT y SELECT.
type CustomerLedgerRepo struct {
	q Querier
}

// NewCustomerLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerLedgerRepository(q Querier) *CustomerLedgerRepo {
	return &CustomerLedgerRepo{q: q}
}

// Append agrega un asiento al libro del cliente.
func (r *CustomerLedgerRepo) Append(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO customer_ledger (id, customer_id, date, ref_id, type, description, debit, credit, balance, created_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CustomerID, entry.Date, entry.RefID, entry.Type,
		entry.Description, entry.Debit, entry.Credit, entry.Balance, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer ledger entry: %w", err)
	}
	return nil
}

const customerLedgerColumns = `id, customer_id, date, COALESCE(ref_id::text, ''), type, description, debit, credit, balance, created_at`

// ListByCustomer devuelve los asientos del cliente en orden de inserción.
func (r *CustomerLedgerRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + customerLedgerColumns + ` FROM customer_ledger
		WHERE customer_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customer ledger: %w", err)
	}
	defer rows.Close()

	var out []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.Date, &e.RefID, &e.Type, &e.Description, &e.Debit, &e.Credit, &e.Balance, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer ledger entry: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// GetLastByCustomer devuelve el asiento más reciente del cliente (nil si no hay).
func (r *CustomerLedgerRepo) GetLastByCustomer(customerID string) (*entity.LedgerEntry, error) {
	query := `
		SELECT ` + customerLedgerColumns + ` FROM customer_ledger
		WHERE customer_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`
	var e entity.LedgerEntry
	err := r.q.QueryRow(context.Background(), query, customerID).Scan(
		&e.ID, &e.CustomerID, &e.Date, &e.RefID, &e.Type, &e.Description, &e.Debit, &e.Credit, &e.Balance, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last customer ledger entry: %w", err)
	}
	return &e, nil
}
