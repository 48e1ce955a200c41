package entity

import "time"

// Customer representa un cliente (opcional en ventas de mostrador).
type Customer struct {
	ID        string
	Name      string
	Document  string // NIT o cédula
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
