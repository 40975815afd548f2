package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/ledger"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// CustomerUseCase casos de uso del libro de clientes (cuentas por cobrar):
// alta de clientes, registro de abonos y consulta de estado de cuenta.
// Los cargos por factura los hace el orquestador de facturación.
type CustomerUseCase struct {
	txRunner     TxRunnerCustomer
	customerRepo repository.CustomerRepository
	ledgerRepo   repository.CustomerLedgerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	txRunner TxRunnerCustomer,
	customerRepo repository.CustomerRepository,
	ledgerRepo repository.CustomerLedgerRepository,
) *CustomerUseCase {
	return &CustomerUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Create crea un cliente con saldo inicial en cero.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Phone:            in.Phone,
		Address:          in.Address,
		TotalOutstanding: decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.customerRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update edita los datos de contacto del cliente. El saldo no se toca aquí:
// solo lo mueven los asientos del libro.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if id == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// RegisterPayment registra un abono del cliente: asiento con Credit = monto,
// que reduce su deuda. No se impone piso: un abono mayor al saldo deja al
// cliente con saldo a favor (balance negativo), permitido por diseño.
func (uc *CustomerUseCase) RegisterPayment(ctx context.Context, customerID string, in dto.PaymentRequest) (*dto.LedgerEntryResponse, error) {
	if customerID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	description := "Abono del cliente"
	if in.Method != "" {
		description = fmt.Sprintf("Abono del cliente (%s)", in.Method)
	}
	if in.Note != "" {
		description += ": " + in.Note
	}
	now := time.Now()
	paymentID := uuid.New().String()

	var entry *entity.LedgerEntry
	err := uc.txRunner.RunCustomer(ctx, func(
		customerRepo repository.CustomerRepository,
		ledgerRepo repository.CustomerLedgerRepository,
	) error {
		customer, err := customerRepo.GetForUpdate(customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		balance, err := ledger.CustomerBalance(customer.TotalOutstanding, decimal.Zero, in.Amount)
		if err != nil {
			return err
		}
		entry = &entity.LedgerEntry{
			ID:          uuid.New().String(),
			CustomerID:  customerID,
			Date:        now,
			RefID:       paymentID,
			Type:        entity.LedgerEntryTypePayment,
			Description: description,
			Debit:       decimal.Zero,
			Credit:      in.Amount,
			Balance:     balance,
			CreatedAt:   now,
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return err
		}
		return customerRepo.UpdateBalance(customerID, balance)
	})
	if err != nil {
		return nil, err
	}
	return toLedgerEntryResponse(entry), nil
}

// Statement devuelve los asientos del libro del cliente en orden de inserción.
func (uc *CustomerUseCase) Statement(ctx context.Context, customerID string, limit, offset int) ([]*dto.LedgerEntryResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByCustomer(customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toLedgerEntryResponse(e))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		Address:          c.Address,
		TotalOutstanding: c.TotalOutstanding,
	}
}

func toLedgerEntryResponse(e *entity.LedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		RefID:       e.RefID,
		Type:        e.Type,
		Description: e.Description,
		Debit:       e.Debit,
		Credit:      e.Credit,
		Balance:     e.Balance,
	}
}
