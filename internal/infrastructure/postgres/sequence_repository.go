package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/domain/docnumber"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador de numeración por (tipo, día) sobre PostgreSQL.
// El upsert incrementa y retorna en una sola sentencia, así dos transacciones
// concurrentes nunca obtienen el mismo consecutivo: la segunda espera el lock
// de fila de la primera.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el contador. Pasar la tx del documento.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el consecutivo del par (tipo, día).
func (r *SequenceRepo) Next(kind docnumber.Kind, date time.Time) (int, error) {
	query := `
		INSERT INTO document_sequences (kind, seq_date, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (kind, seq_date)
		DO UPDATE SET last_number = document_sequences.last_number + 1
		RETURNING last_number`
	var n int
	err := r.q.QueryRow(context.Background(), query, string(kind), date.Format("2006-01-02")).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
