package entity

import "time"

// Customer representa un cliente del negocio.
type Customer struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
