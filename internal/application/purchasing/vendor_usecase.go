package purchasing

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

// VendorUseCase casos de uso del libro de proveedores (cuentas por pagar):
// alta de proveedores, registro de compras y pagos, consulta de estado de cuenta.
type VendorUseCase struct {
	txRunner   TxRunner
	vendorRepo repository.VendorRepository
	ledgerRepo repository.VendorLedgerRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(
	txRunner TxRunner,
	vendorRepo repository.VendorRepository,
	ledgerRepo repository.VendorLedgerRepository,
) *VendorUseCase {
	return &VendorUseCase{
		txRunner:   txRunner,
		vendorRepo: vendorRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Create crea un proveedor con saldo inicial en cero.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		TotalBalance:  decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.vendorRepo.Create(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor.
func (uc *VendorUseCase) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return toVendorResponse(vendor), nil
}

// List lista proveedores.
func (uc *VendorUseCase) List(ctx context.Context, limit, offset int) ([]*dto.VendorResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.vendorRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVendorResponse(v))
	}
	return out, nil
}

// RegisterPurchase registra una compra manual al proveedor: asiento con
// Credit = monto, que aumenta lo adeudado. Atómico respecto al saldo corrido.
func (uc *VendorUseCase) RegisterPurchase(ctx context.Context, vendorID string, in dto.PurchaseRequest) (*dto.LedgerEntryResponse, error) {
	if vendorID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	description := in.Description
	if description == "" {
		description = "Compra a proveedor"
	}
	now := time.Now()
	var entry *entity.VendorLedgerEntry
	err := uc.txRunner.RunPurchasing(ctx, func(
		vendorRepo repository.VendorRepository,
		ledgerRepo repository.VendorLedgerRepository,
	) error {
		var err error
		entry, err = PostPurchaseInTx(vendorRepo, ledgerRepo, vendorID, in.Amount, description, in.RefID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// RegisterPayment registra un pago al proveedor: asiento con Debit = monto,
// que reduce lo adeudado. No se impone piso: el saldo puede quedar negativo
// (el proveedor le debe a la tienda), permitido por diseño.
func (uc *VendorUseCase) RegisterPayment(ctx context.Context, vendorID string, in dto.PaymentRequest) (*dto.LedgerEntryResponse, error) {
	if vendorID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	description := "Pago a proveedor"
	if in.Method != "" {
		description = fmt.Sprintf("Pago a proveedor (%s)", in.Method)
	}
	if in.Note != "" {
		description += ": " + in.Note
	}
	now := time.Now()
	paymentID := uuid.New().String()

	var entry *entity.VendorLedgerEntry
	err := uc.txRunner.RunPurchasing(ctx, func(
		vendorRepo repository.VendorRepository,
		ledgerRepo repository.VendorLedgerRepository,
	) error {
		vendor, err := vendorRepo.GetForUpdate(vendorID)
		if err != nil {
			return err
		}
		if vendor == nil {
			return domain.ErrNotFound
		}
		balance, err := ledger.VendorBalance(vendor.TotalBalance, in.Amount, decimal.Zero)
		if err != nil {
			return err
		}
		entry = &entity.VendorLedgerEntry{
			ID:          uuid.New().String(),
			VendorID:    vendorID,
			Date:        now,
			RefID:       paymentID,
			Type:        entity.VendorEntryTypePayment,
			Description: description,
			Debit:       in.Amount,
			Credit:      decimal.Zero,
			Balance:     balance,
			CreatedAt:   now,
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return err
		}
		return vendorRepo.UpdateBalance(vendorID, balance)
	})
	if err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// Statement devuelve los asientos del libro del proveedor en orden de inserción.
func (uc *VendorUseCase) Statement(ctx context.Context, vendorID string, limit, offset int) ([]*dto.LedgerEntryResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	vendor, err := uc.vendorRepo.GetByID(vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByVendor(vendorID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out, nil
}

// PostPurchaseInTx registra una compra usando los repositorios del caller
// (misma transacción): asiento Credit = monto y saldo en caché actualizados.
// Lo invoca también el motor de inventario cuando una entrada de stock tiene
// proveedor vinculado.
func PostPurchaseInTx(
	vendorRepo repository.VendorRepository,
	ledgerRepo repository.VendorLedgerRepository,
	vendorID string,
	amount decimal.Decimal,
	description, refID string,
	now time.Time,
) (*entity.VendorLedgerEntry, error) {
	vendor, err := vendorRepo.GetForUpdate(vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	balance, err := ledger.VendorBalance(vendor.TotalBalance, decimal.Zero, amount)
	if err != nil {
		return nil, err
	}
	entry := &entity.VendorLedgerEntry{
		ID:          uuid.New().String(),
		VendorID:    vendorID,
		Date:        now,
		RefID:       refID,
		Type:        entity.VendorEntryTypePurchase,
		Description: description,
		Debit:       decimal.Zero,
		Credit:      amount,
		Balance:     balance,
		CreatedAt:   now,
	}
	if err := ledgerRepo.Append(entry); err != nil {
		return nil, err
	}
	if err := vendorRepo.UpdateBalance(vendorID, balance); err != nil {
		return nil, err
	}
	return entry, nil
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Phone:         v.Phone,
		Email:         v.Email,
		Address:       v.Address,
		TotalBalance:  v.TotalBalance,
	}
}

func toEntryResponse(e *entity.VendorLedgerEntry) *dto.LedgerEntryResponse {
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
