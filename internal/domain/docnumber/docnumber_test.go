package docnumber_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/docnumber"
)

var day = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func TestFormat_NumeroDeVenta(t *testing.T) {
	assert.Equal(t, "VEN20240115-001", docnumber.Format(docnumber.KindSale, day, 1))
	assert.Equal(t, "VEN20240115-042", docnumber.Format(docnumber.KindSale, day, 42))
}

func TestFormat_PrefijosPorTipo(t *testing.T) {
	assert.Equal(t, "DEV20240115-001", docnumber.Format(docnumber.KindReturn, day, 1))
	assert.Equal(t, "OC20240115-007", docnumber.Format(docnumber.KindPurchaseOrder, day, 7))
	assert.Equal(t, "COT20240115-099", docnumber.Format(docnumber.KindQuotation, day, 99))
}

// El consecutivo crece más allá de 999 sin fallar: el orden se conserva.
func TestFormat_ConsecutivoMayorATresDigitos(t *testing.T) {
	assert.Equal(t, "VEN20240115-1234", docnumber.Format(docnumber.KindSale, day, 1234))
}

func TestParse_RoundTrip(t *testing.T) {
	number := docnumber.Format(docnumber.KindSale, day, 17)

	prefix, date, seq, err := docnumber.Parse(number)
	require.NoError(t, err)

	assert.Equal(t, "VEN", prefix)
	assert.Equal(t, "20240115", date.Format("20060102"))
	assert.Equal(t, 17, seq)
}

func TestParse_FormatoInvalido(t *testing.T) {
	casos := []string{
		"",
		"VEN2024-001",        // fecha incompleta
		"VEN20240115001",     // sin guion
		"ven20240115-001",    // prefijo en minúscula
		"VEN20240115-01",     // consecutivo de menos de 3 dígitos
		"VEN20241399-001",    // fecha imposible
		"20240115-001",       // sin prefijo
	}
	for _, caso := range casos {
		_, _, _, err := docnumber.Parse(caso)
		assert.Error(t, err, "debe rechazar %q", caso)
	}
}

func TestKind_Valid(t *testing.T) {
	assert.True(t, docnumber.KindSale.Valid())
	assert.True(t, docnumber.KindReturn.Valid())
	assert.True(t, docnumber.KindPurchaseOrder.Valid())
	assert.True(t, docnumber.KindQuotation.Valid())
	assert.False(t, docnumber.Kind("factura").Valid())
}
