package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerResponse cliente en respuestas. TotalOutstanding > 0 = el cliente debe.
type CustomerResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone,omitempty"`
	Address          string          `json:"address,omitempty"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	CustomerID  string               `json:"customer_id"`
	Items       []InvoiceItemRequest `json:"items"`
	Discount    decimal.Decimal      `json:"discount,omitempty"`
	PaidAmount  decimal.Decimal      `json:"paid_amount"`
	PaymentType string               `json:"payment_type"` // cash | credit
	Notes       string               `json:"notes,omitempty"`
}

// InvoiceItemRequest línea del carrito (producto y cantidad; el precio de
// venta puede omitirse para usar el precio vivo del producto).
type InvoiceItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	SalePrice decimal.Decimal `json:"sale_price,omitempty"`
}

// InvoiceResponse factura confirmada con sus líneas.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name"`
	Date         string                `json:"date"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	Tax          decimal.Decimal       `json:"tax"`
	Discount     decimal.Decimal       `json:"discount"`
	Total        decimal.Decimal       `json:"total"`
	PaidAmount   decimal.Decimal       `json:"paid_amount"`
	PaymentType  string                `json:"payment_type"`
	Notes        string                `json:"notes,omitempty"`
	Items        []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse línea en la respuesta (con snapshots de nombre y costo).
type InvoiceItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Total         decimal.Decimal `json:"total"`
}

// PaymentRequest body para registrar un abono de cliente o un pago a proveedor.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"` // etiqueta libre del canal: efectivo, transferencia...
	Note   string          `json:"note,omitempty"`
}

// LedgerEntryResponse asiento del libro de clientes o proveedores.
type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	RefID       string          `json:"ref_id,omitempty"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}
