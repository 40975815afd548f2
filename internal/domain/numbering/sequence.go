// Package numbering implementa el contrato de numeración de facturas
// (servicio de dominio puro, sin dependencias de infraestructura).
package numbering

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/tienda-pro/internal/domain"
)

// Valores por defecto del contrato de numeración.
const (
	DefaultPrefix  = "INV"
	DefaultPadding = 5
)

// Format construye el número de factura: "{prefix}-{sequence con ceros a la izquierda}".
// Contrato exacto: prefijo por defecto "INV", relleno por defecto 5 dígitos
// (ej: INV-00001). Si la secuencia desborda el ancho de relleno, no se trunca.
func Format(prefix string, sequence int64, padding int) (string, error) {
	if sequence < 1 {
		return "", fmt.Errorf("numeración: secuencia inválida %d: %w", sequence, domain.ErrInvalidInput)
	}
	p := strings.TrimSpace(prefix)
	if p == "" {
		p = DefaultPrefix
	}
	if padding <= 0 {
		padding = DefaultPadding
	}
	return fmt.Sprintf("%s-%0*d", p, padding, sequence), nil
}
