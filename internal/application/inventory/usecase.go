package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/application/dto"
	"github.com/tu-usuario/ferreteria-pro/internal/application/ledger"
	"github.com/tu-usuario/ferreteria-pro/internal/domain"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/repository"
)

// UseCase registra movimientos manuales de stock (IN, OUT, ADJUSTMENT)
// directamente contra el ledger, con las mismas reglas de atomicidad y
// no-negatividad que los workflows de documentos.
type UseCase struct {
	txRunner     ledger.TxRunner
	movementRepo repository.StockMovementRepository // lecturas fuera de transacción
}

// NewUseCase construye el caso de uso de movimientos manuales.
func NewUseCase(txRunner ledger.TxRunner, movementRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// RegisterMovement aplica un movimiento manual. RETURN no se permite aquí:
// las devoluciones tienen su propio workflow con documento.
func (uc *UseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeADJUSTMENT:
	default:
		return nil, domain.ErrInvalidInput
	}

	var movement *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(r *ledger.TxRepos) error {
		var err error
		movement, err = ledger.Apply(r, ledger.DeltaInput{
			ProductID: in.ProductID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			Reason:    in.Reason,
			UserID:    userID,
			Now:       time.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toResponse(movement), nil
}

// ListByProduct historial de movimientos de un producto, más reciente primero.
func (uc *UseCase) ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*dto.MovementResponse, error) {
	movements, err := uc.movementRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toResponse(m))
	}
	return out, nil
}

func toResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Reference:     m.Reference,
		Reason:        m.Reason,
		CreatedAt:     m.CreatedAt,
	}
}
