package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
// InitialStock genera el movimiento "in" inicial; si VendorID está presente y
// el stock inicial es > 0, también se registra la compra en el libro del proveedor.
type CreateProductRequest struct {
	SKU               string          `json:"sku,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	InitialStock      decimal.Decimal `json:"initial_stock"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold,omitempty"`
	VendorID          string          `json:"vendor_id,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// Si StockQuantity difiere del stock vivo se genera exactamente un movimiento;
// Reason lo describe (por defecto "ajuste manual").
type UpdateProductRequest struct {
	SKU               string          `json:"sku,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	StockQuantity     decimal.Decimal `json:"stock_quantity"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold,omitempty"`
	VendorID          string          `json:"vendor_id,omitempty"`
	Reason            string          `json:"reason,omitempty"`
}

// AdjustStockRequest body para POST /api/products/:id/adjust-stock.
type AdjustStockRequest struct {
	NewQuantity decimal.Decimal `json:"new_quantity"`
	Reason      string          `json:"reason"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	StockQuantity     decimal.Decimal `json:"stock_quantity"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	VendorID          string          `json:"vendor_id,omitempty"`
	VendorName        string          `json:"vendor_name,omitempty"`
}

// MovementResponse movimiento de stock en respuestas.
type MovementResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"` // in | out
	Quantity    decimal.Decimal `json:"quantity"`
	Date        string          `json:"date"`
	Reason      string          `json:"reason"`
	ReferenceID string          `json:"reference_id,omitempty"`
}
