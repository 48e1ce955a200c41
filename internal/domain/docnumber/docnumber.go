// Package docnumber define la numeración humana de documentos:
// {PREFIJO}{YYYYMMDD}-{NNN}, con consecutivo de 3 dígitos por tipo y por día.
package docnumber

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Kind identifica el tipo de documento a numerar.
type Kind string

const (
	KindSale          Kind = "sale"
	KindReturn        Kind = "return"
	KindPurchaseOrder Kind = "purchase_order"
	KindQuotation     Kind = "quotation"
)

// prefixes por tipo de documento.
var prefixes = map[Kind]string{
	KindSale:          "VEN",
	KindReturn:        "DEV",
	KindPurchaseOrder: "OC",
	KindQuotation:     "COT",
}

// Prefix devuelve el prefijo del tipo (VEN, DEV, OC, COT).
func (k Kind) Prefix() string {
	return prefixes[k]
}

// Valid indica si el tipo es conocido.
func (k Kind) Valid() bool {
	_, ok := prefixes[k]
	return ok
}

// Format construye el número: VEN20240115-001. El consecutivo reinicia en
// 001 cada día por tipo; no hay arrastre entre días. seq > 999 se formatea
// con más dígitos en lugar de fallar (día excepcional, el orden se conserva).
func Format(k Kind, date time.Time, seq int) string {
	return fmt.Sprintf("%s%s-%03d", k.Prefix(), date.Format("20060102"), seq)
}

var numberRe = regexp.MustCompile(`^([A-Z]+)(\d{8})-(\d{3,})$`)

// Parse descompone un número de documento en prefijo, fecha y consecutivo.
// Tolera huecos en la secuencia: solo valida el formato.
func Parse(number string) (prefix string, date time.Time, seq int, err error) {
	m := numberRe.FindStringSubmatch(number)
	if m == nil {
		return "", time.Time{}, 0, fmt.Errorf("número de documento inválido: %q", number)
	}
	date, err = time.Parse("20060102", m[2])
	if err != nil {
		return "", time.Time{}, 0, fmt.Errorf("fecha inválida en %q: %w", number, err)
	}
	seq, err = strconv.Atoi(m[3])
	if err != nil {
		return "", time.Time{}, 0, fmt.Errorf("consecutivo inválido en %q: %w", number, err)
	}
	return m[1], date, seq, nil
}
