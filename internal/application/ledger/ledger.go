// Package ledger es el único componente autorizado a mutar
// products.current_stock. Todos los workflows (venta, devolución, recepción
// de orden de compra, movimiento manual) pasan por Apply, que mantiene el
// invariante: el contador de stock es igual a la suma con signo de los
// movimientos registrados, y nunca es negativo.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/docnumber"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// DeltaInput describe un cambio de stock de un producto.
// Quantity es la magnitud (> 0) para IN, OUT y RETURN; para ADJUSTMENT
// lleva su propio signo y puede ser negativa.
type DeltaInput struct {
	ProductID string
	Type      string
	Quantity  int64
	Reference string // número del documento causante
	Reason    string
	UserID    string
	SaleID    *string
	Now       time.Time
}

// SignedQuantity aplica la convención de signos del ledger:
// OUT resta; IN y RETURN suman; ADJUSTMENT conserva el signo recibido.
func SignedQuantity(movementType string, quantity int64) (int64, error) {
	switch movementType {
	case entity.MovementTypeIN, entity.MovementTypeRETURN:
		if quantity <= 0 {
			return 0, domain.ErrInvalidInput
		}
		return quantity, nil
	case entity.MovementTypeOUT:
		if quantity <= 0 {
			return 0, domain.ErrInvalidInput
		}
		return -quantity, nil
	case entity.MovementTypeADJUSTMENT:
		if quantity == 0 {
			return 0, domain.ErrInvalidInput
		}
		return quantity, nil
	}
	return 0, domain.ErrInvalidInput
}

// Apply lee el stock actual con bloqueo de fila (SELECT FOR UPDATE), calcula
// new_stock = previous_stock + signed(quantity, type), rechaza resultados
// negativos con ErrInsufficientStock, persiste el contador y registra el
// movimiento de auditoría. Lectura y escritura ocurren dentro de la misma
// transacción del caller: dos workflows concurrentes sobre el mismo producto
// serializan en la fila, no en la aplicación.
func Apply(r *TxRepos, in DeltaInput) (*entity.StockMovement, error) {
	signed, err := SignedQuantity(in.Type, in.Quantity)
	if err != nil {
		return nil, err
	}

	product, err := r.Products.GetForUpdate(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	previous := product.CurrentStock
	newStock := previous + signed
	if newStock < 0 {
		return nil, domain.ErrInsufficientStock
	}

	if err := r.Products.UpdateStock(in.ProductID, newStock); err != nil {
		return nil, err
	}

	// Magnitud siempre no negativa; la dirección queda en el tipo y en el
	// par previous/new.
	magnitude := signed
	if magnitude < 0 {
		magnitude = -magnitude
	}
	movement := &entity.StockMovement{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		Type:          in.Type,
		Quantity:      magnitude,
		PreviousStock: previous,
		NewStock:      newStock,
		Reference:     in.Reference,
		Reason:        in.Reason,
		UserID:        in.UserID,
		SaleID:        in.SaleID,
		CreatedAt:     in.Now,
	}
	if err := r.Movements.Create(movement); err != nil {
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}
	return movement, nil
}

// NextNumber genera el siguiente número de documento del tipo y día dados
// usando el contador atómico, dentro de la transacción del caller.
func NextNumber(r *TxRepos, kind docnumber.Kind, date time.Time) (string, error) {
	seq, err := r.Sequences.Next(kind, date)
	if err != nil {
		return "", fmt.Errorf("consecutivo %s: %w", kind, err)
	}
	return docnumber.Format(kind, date, seq), nil
}
