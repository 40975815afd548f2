package numbering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/tienda-pro/internal/domain/numbering"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestFormat valida el contrato exacto de numeración de facturas.
//
// Este test es el "canario en la mina" de la facturación: si alguien modifica
// inadvertidamente el separador, el relleno con ceros o el prefijo por defecto,
// los números dejan de coincidir con las facturas ya emitidas y el test falla
// de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func TestFormat_ContratoExacto(t *testing.T) {
	number, err := numbering.Format("INV", 7, 5)
	require.NoError(t, err)
	assert.Equal(t, "INV-00007", number,
		"prefijo INV con relleno 5 y secuencia 7 debe producir INV-00007")
}

func TestFormat_PrefijoPersonalizado(t *testing.T) {
	number, err := numbering.Format("FAC", 123, 5)
	require.NoError(t, err)
	assert.Equal(t, "FAC-00123", number)
}

func TestFormat_RellenoPersonalizado(t *testing.T) {
	number, err := numbering.Format("INV", 42, 3)
	require.NoError(t, err)
	assert.Equal(t, "INV-042", number)
}

func TestFormat_PrefijoVacioUsaDefault(t *testing.T) {
	number, err := numbering.Format("", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "INV-00001", number,
		"sin prefijo ni relleno debe aplicar los valores por defecto")
}

func TestFormat_SecuenciaDesbordaRelleno(t *testing.T) {
	// El consecutivo no se trunca cuando supera el ancho de relleno.
	number, err := numbering.Format("INV", 1234567, 5)
	require.NoError(t, err)
	assert.Equal(t, "INV-1234567", number)
}

func TestFormat_SecuenciaCeroEsError(t *testing.T) {
	_, err := numbering.Format("INV", 0, 5)
	assert.Error(t, err, "la secuencia mínima válida es 1")
}

func TestFormat_SecuenciaNegativaEsError(t *testing.T) {
	_, err := numbering.Format("INV", -3, 5)
	assert.Error(t, err)
}

func TestFormat_Determinista(t *testing.T) {
	n1, err1 := numbering.Format("INV", 99, 5)
	n2, err2 := numbering.Format("INV", 99, 5)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, n1, n2, "el mismo input siempre debe producir el mismo número")
}
