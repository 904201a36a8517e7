package entity

import "time"

// Shop representa una tienda/tenant del sistema. Name es único global.
type Shop struct {
	ID          string
	Name        string
	Description string
	Address     string
	PhoneNumber string
	Email       string
	Status      string // active, inactive, suspended
	Users       []*User // back-reference informativa, cargada en lecturas
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
