package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la ferretería.
// CurrentStock es el contador autoritativo de existencias; solo el ledger
// (internal/application/ledger) puede mutarlo. MinStock es el umbral para
// la lista de stock bajo.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Description   string
	CategoryID    *string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	CurrentStock  int64
	MinStock      int64
	Unit          string // unidad, caja, metro, kg...
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
