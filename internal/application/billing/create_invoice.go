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
	"github.com/tu-usuario/tienda-pro/internal/domain/numbering"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// InvoiceUseCase orquestador de facturación: valida el carrito, asigna el
// número consecutivo, descuenta stock, registra el cargo en el libro del
// cliente y avanza el consecutivo — todo dentro de una sola transacción.
type InvoiceUseCase struct {
	txRunner    TxRunner
	deductor    StockDeductor
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el orquestador.
func NewInvoiceUseCase(txRunner TxRunner, deductor StockDeductor, invoiceRepo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		deductor:    deductor,
		invoiceRepo: invoiceRepo,
	}
}

// Create confirma una venta. Pasos, todos en la misma transacción:
//
//  1. bloquea el perfil y formatea el número con el consecutivo vigente;
//     si ese número ya existe (el operador bajó el consecutivo a mano)
//     retorna ErrSequenceCollision sin emitir nada
//  2. bloquea cada producto, captura snapshots de nombre y costo, y
//     descuenta stock; stock insuficiente aborta el commit completo
//  3. crea la factura y sus líneas (inmutables desde aquí)
//  4. agrega el asiento al libro del cliente: Debit = total,
//     Credit = monto pagado, y actualiza su saldo en caché
//  5. avanza el consecutivo en 1
//
// Cualquier error revierte los cinco pasos: no existen facturas a medias ni
// números quemados.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() || in.PaidAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentType != entity.PaymentTypeCash && in.PaymentType != entity.PaymentTypeCredit {
		return nil, fmt.Errorf("forma de pago %q: %w", in.PaymentType, domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if item.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	invoiceID := uuid.New().String()

	var (
		invoice *entity.Invoice
		items   []*entity.InvoiceItem
	)
	err := uc.txRunner.RunBilling(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		customerRepo repository.CustomerRepository,
		ledgerRepo repository.CustomerLedgerRepository,
		invoiceRepo repository.InvoiceRepository,
		profileRepo repository.ProfileRepository,
	) error {
		// 1. número consecutivo
		profile, err := profileRepo.GetForUpdate()
		if err != nil {
			return err
		}
		if profile == nil {
			return domain.ErrNotFound
		}
		number, err := numbering.Format(profile.InvoicePrefix, profile.NextInvoiceNumber, profile.Padding())
		if err != nil {
			return err
		}
		taken, err := invoiceRepo.ExistsByNumber(number)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("número %s: %w", number, domain.ErrSequenceCollision)
		}

		customer, err := customerRepo.GetForUpdate(in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}

		// 2. líneas, snapshots y descuento de stock
		subtotal := decimal.Zero
		items = make([]*entity.InvoiceItem, 0, len(in.Items))
		for _, req := range in.Items {
			product, err := productRepo.GetForUpdate(req.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("producto %s: %w", req.ProductID, domain.ErrNotFound)
			}
			salePrice := req.SalePrice
			if salePrice.IsZero() {
				salePrice = product.SalePrice
			}
			if err := uc.deductor.DeductInTx(productRepo, movementRepo, product, req.Quantity, now, invoiceID); err != nil {
				return fmt.Errorf("producto %s: %w", product.Name, err)
			}
			lineTotal := req.Quantity.Mul(salePrice)
			items = append(items, &entity.InvoiceItem{
				ID:            uuid.New().String(),
				InvoiceID:     invoiceID,
				ProductID:     product.ID,
				ProductName:   product.Name,
				Quantity:      req.Quantity,
				PurchasePrice: product.PurchasePrice,
				SalePrice:     salePrice,
				Total:         lineTotal,
			})
			subtotal = subtotal.Add(lineTotal)
		}

		total := subtotal.Sub(in.Discount)
		if total.IsNegative() {
			return fmt.Errorf("descuento mayor al subtotal: %w", domain.ErrInvalidInput)
		}
		// Contado paga el total completo; a crédito el pago parcial no puede excederlo.
		paid := in.PaidAmount
		if in.PaymentType == entity.PaymentTypeCash {
			paid = total
		} else if paid.GreaterThan(total) {
			return fmt.Errorf("pago %s excede el total %s: %w", paid.String(), total.String(), domain.ErrInvalidInput)
		}

		// 3. factura y líneas
		invoice = &entity.Invoice{
			ID:           invoiceID,
			Number:       number,
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Date:         now,
			Subtotal:     subtotal,
			Tax:          decimal.Zero,
			Discount:     in.Discount,
			Total:        total,
			PaidAmount:   paid,
			PaymentType:  in.PaymentType,
			Notes:        in.Notes,
			CreatedAt:    now,
		}
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}

		// 4. asiento en el libro del cliente
		balance, err := ledger.CustomerBalance(customer.TotalOutstanding, total, paid)
		if err != nil {
			return err
		}
		entry := &entity.LedgerEntry{
			ID:          uuid.New().String(),
			CustomerID:  customer.ID,
			Date:        now,
			RefID:       invoiceID,
			Type:        entity.LedgerEntryTypeInvoice,
			Description: fmt.Sprintf("Factura %s", number),
			Debit:       total,
			Credit:      paid,
			Balance:     balance,
			CreatedAt:   now,
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return err
		}
		if err := customerRepo.UpdateBalance(customer.ID, balance); err != nil {
			return err
		}

		// 5. avance del consecutivo
		return profileRepo.UpdateSequence(profile.ID, profile.NextInvoiceNumber+1)
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items), nil
}

// GetByID obtiene una factura con sus líneas.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, items), nil
}

// List lista facturas con paginación (sin líneas).
func (uc *InvoiceUseCase) List(ctx context.Context, limit, offset int) ([]*dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	invoices, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv, nil))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		Number:       inv.Number,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		Date:         inv.Date.Format("2006-01-02"),
		Subtotal:     inv.Subtotal,
		Tax:          inv.Tax,
		Discount:     inv.Discount,
		Total:        inv.Total,
		PaidAmount:   inv.PaidAmount,
		PaymentType:  inv.PaymentType,
		Notes:        inv.Notes,
		Items:        []dto.InvoiceItemResponse{},
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:            item.ID,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			PurchasePrice: item.PurchasePrice,
			SalePrice:     item.SalePrice,
			Total:         item.Total,
		})
	}
	return resp
}
