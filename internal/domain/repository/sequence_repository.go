package repository

import (
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/docnumber"
)

// SequenceRepository define el puerto del contador atómico de numeración.
// Next incrementa y devuelve el consecutivo del par (tipo, día). Debe
// invocarse dentro de la misma transacción que inserta el documento para que
// leer-el-máximo-e-insertar dejen de ser operaciones separadas (cierre de la
// carrera de numeración).
type SequenceRepository interface {
	Next(kind docnumber.Kind, date time.Time) (int, error)
}
