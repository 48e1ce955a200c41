package entity

import "time"

// Supplier representa un proveedor de órdenes de compra.
type Supplier struct {
	ID        string
	Name      string
	Document  string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
