package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/application/purchasing"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// Razones por defecto de los movimientos generados por el motor.
const (
	reasonInitialStock = "stock inicial"
	reasonManualAdjust = "ajuste manual"
	reasonSale         = "venta"
)

// UseCase motor del libro de productos/stock: altas con movimiento inicial,
// diffing de stock en ediciones (exactamente un movimiento por delta), ajustes,
// descuentos por venta y borrado. Toda mutación de stock corre dentro de una
// transacción y deja su rastro append-only en StockMovement.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	vendorRepo   repository.VendorRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	vendorRepo repository.VendorRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		vendorRepo:   vendorRepo,
	}
}

// AddProduct crea un producto con su movimiento "in" inicial. Si viene con
// proveedor vinculado y stock inicial > 0, registra además la compra en el
// libro del proveedor (purchasePrice × stock inicial) en la misma transacción:
// ambas cosas quedan o ninguna.
func (uc *UseCase) AddProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() || in.InitialStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	// Snapshot del nombre del proveedor al momento de vincular (lectura fuera de la tx)
	vendorName := ""
	if in.VendorID != "" {
		vendor, err := uc.vendorRepo.GetByID(in.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrNotFound
		}
		vendorName = vendor.Name
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SKU:               in.SKU,
		Name:              in.Name,
		Description:       in.Description,
		PurchasePrice:     in.PurchasePrice,
		SalePrice:         in.SalePrice,
		StockQuantity:     in.InitialStock,
		LowStockThreshold: in.LowStockThreshold,
		VendorID:          in.VendorID,
		VendorName:        vendorName,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		vendorRepo repository.VendorRepository,
		vendorLedgerRepo repository.VendorLedgerRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if in.InitialStock.IsPositive() {
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				Type:        entity.MovementTypeIn,
				Quantity:    in.InitialStock,
				Date:        now,
				Reason:      reasonInitialStock,
				ReferenceID: product.ID,
				CreatedAt:   now,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
			if product.VendorID != "" {
				amount := in.PurchasePrice.Mul(in.InitialStock)
				description := fmt.Sprintf("Compra inicial: %s x%s", product.Name, in.InitialStock.String())
				if _, err := purchasing.PostPurchaseInTx(
					vendorRepo, vendorLedgerRepo,
					product.VendorID, amount, description, product.ID, now,
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateProduct edita un producto. Compara StockQuantity contra el stock vivo
// (bloqueado con GetForUpdate): si cambió, genera exactamente un movimiento
// del tamaño |delta|, tipo "in" si delta > 0 y "out" si delta < 0. Un delta
// positivo con proveedor vinculado registra la compra correspondiente.
// Las ediciones que no tocan stock nunca producen movimiento.
func (uc *UseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if id == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() || in.StockQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	reason := in.Reason
	if reason == "" {
		reason = reasonManualAdjust
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		vendorRepo repository.VendorRepository,
		vendorLedgerRepo repository.VendorLedgerRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		product.SKU = in.SKU
		product.Name = in.Name
		product.Description = in.Description
		product.PurchasePrice = in.PurchasePrice
		product.SalePrice = in.SalePrice
		product.LowStockThreshold = in.LowStockThreshold

		// Revincular proveedor re-captura el snapshot del nombre
		if in.VendorID != product.VendorID {
			product.VendorID = in.VendorID
			product.VendorName = ""
			if in.VendorID != "" {
				vendor, err := vendorRepo.GetByID(in.VendorID)
				if err != nil {
					return err
				}
				if vendor == nil {
					return domain.ErrNotFound
				}
				product.VendorName = vendor.Name
			}
		}

		now := time.Now()
		product.UpdatedAt = now
		if err := applyStockDelta(productRepo, movementRepo, vendorRepo, vendorLedgerRepo, product, in.StockQuantity, reason, now); err != nil {
			return err
		}
		if err := productRepo.Update(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// AdjustStock fija el stock vivo en NewQuantity y registra el movimiento del
// delta con la razón dada. Rechaza cantidades negativas.
func (uc *UseCase) AdjustStock(ctx context.Context, id string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if id == "" || in.NewQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	reason := in.Reason
	if reason == "" {
		reason = reasonManualAdjust
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		vendorRepo repository.VendorRepository,
		vendorLedgerRepo repository.VendorLedgerRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		product.UpdatedAt = now
		if err := applyStockDelta(productRepo, movementRepo, vendorRepo, vendorLedgerRepo, product, in.NewQuantity, reason, now); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// applyStockDelta aplica la diferencia entre el stock vivo y newQuantity:
// actualiza el stock, agrega exactamente un movimiento con |delta| y, si el
// delta es positivo y hay proveedor vinculado, registra la compra
// (purchasePrice × delta) en el libro del proveedor. Delta cero no hace nada.
func applyStockDelta(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	vendorRepo repository.VendorRepository,
	vendorLedgerRepo repository.VendorLedgerRepository,
	product *entity.Product,
	newQuantity decimal.Decimal,
	reason string,
	now time.Time,
) error {
	delta := newQuantity.Sub(product.StockQuantity)
	if delta.IsZero() {
		return nil
	}
	movType := entity.MovementTypeIn
	if delta.IsNegative() {
		movType = entity.MovementTypeOut
	}
	if err := productRepo.UpdateStock(product.ID, newQuantity); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Type:      movType,
		Quantity:  delta.Abs(),
		Date:      now,
		Reason:    reason,
		CreatedAt: now,
	}
	if err := movementRepo.Create(mov); err != nil {
		return err
	}
	if delta.IsPositive() && product.VendorID != "" {
		amount := product.PurchasePrice.Mul(delta)
		description := fmt.Sprintf("Compra de stock: %s x%s", product.Name, delta.String())
		if _, err := purchasing.PostPurchaseInTx(
			vendorRepo, vendorLedgerRepo,
			product.VendorID, amount, description, mov.ID, now,
		); err != nil {
			return err
		}
	}
	product.StockQuantity = newQuantity
	return nil
}

// DeductInTx descuenta stock por una venta usando los repositorios del caller
// (misma transacción del orquestador de facturas). Verifica suficiencia de
// forma explícita: si el stock vivo es menor a la cantidad pedida retorna
// ErrInsufficientStock y el caller debe hacer rollback de todo el commit —
// nunca se recorta silenciosamente a cero.
func (uc *UseCase) DeductInTx(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	product *entity.Product,
	quantity decimal.Decimal,
	now time.Time,
	invoiceID string,
) error {
	if !quantity.IsPositive() {
		return domain.ErrInvalidInput
	}
	if product.StockQuantity.LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	newQty := product.StockQuantity.Sub(quantity)
	if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Type:        entity.MovementTypeOut,
		Quantity:    quantity,
		Date:        now,
		Reason:      reasonSale,
		ReferenceID: invoiceID,
		CreatedAt:   now,
	}
	if err := movementRepo.Create(mov); err != nil {
		return err
	}
	product.StockQuantity = newQty
	return nil
}

// DeleteProduct elimina un producto y su historial de movimientos.
// Las facturas históricas sobreviven gracias a sus snapshots de nombre y costo.
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.VendorRepository,
		_ repository.VendorLedgerRepository,
	) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := movementRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

// GetProduct obtiene un producto por ID.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListProducts lista productos con paginación.
func (uc *UseCase) ListProducts(ctx context.Context, limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListMovements devuelve el historial de stock de un producto en orden de inserción.
func (uc *UseCase) ListMovements(ctx context.Context, productID string, limit, offset int) ([]*dto.MovementResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, &dto.MovementResponse{
			ID:          m.ID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Date:        m.Date.Format("2006-01-02"),
			Reason:      m.Reason,
			ReferenceID: m.ReferenceID,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		PurchasePrice:     p.PurchasePrice,
		SalePrice:         p.SalePrice,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
		VendorID:          p.VendorID,
		VendorName:        p.VendorName,
	}
}
