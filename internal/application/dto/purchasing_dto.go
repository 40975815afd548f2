package dto

import "github.com/shopspring/decimal"

// CreateVendorRequest body para POST /api/vendors.
type CreateVendorRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
}

// VendorResponse proveedor en respuestas. TotalBalance > 0 = la tienda debe.
type VendorResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	TotalBalance  decimal.Decimal `json:"total_balance"`
}

// PurchaseRequest body para POST /api/vendors/:id/purchases (compra manual).
type PurchaseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	RefID       string          `json:"ref_id,omitempty"`
}
