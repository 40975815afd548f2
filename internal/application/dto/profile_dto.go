package dto

// ProfileResponse perfil de la tienda en respuestas.
type ProfileResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ShopName          string `json:"shop_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	InvoicePrefix     string `json:"invoice_prefix"`
	NextInvoiceNumber int64  `json:"next_invoice_number"`
	InvoicePadding    int    `json:"invoice_padding"`
}

// UpdateProfileRequest body para PUT /api/profile.
// NextInvoiceNumber es editable (el operador puede bajar el consecutivo);
// la colisión resultante se detecta y rechaza al confirmar la factura.
type UpdateProfileRequest struct {
	Name              string `json:"name"`
	ShopName          string `json:"shop_name"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	InvoicePrefix     string `json:"invoice_prefix,omitempty"`
	NextInvoiceNumber int64  `json:"next_invoice_number,omitempty"`
	InvoicePadding    int    `json:"invoice_padding,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token y perfil tras un login exitoso.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
