package models

import (
	"strings"
	"time"
)

type Customer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	MiddleName string    `gorm:"type:varchar(100);not null;default:''" json:"middle_name"`
	LastName   string    `gorm:"type:varchar(100);not null;index" json:"last_name"`
	Phone      string    `gorm:"type:varchar(50);not null;default:''" json:"phone"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// FullName joins first, middle and last name, skipping empty parts.
func (c Customer) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.FirstName, c.MiddleName, c.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// RankedCustomer is a customer row with its reservation count, as returned by the top ten query.
type RankedCustomer struct {
	Customer
	ReservationCount int64 `json:"reservation_count"`
}

// CustomerPatch holds the editable fields of a customer.
type CustomerPatch struct {
	FirstName  string
	MiddleName string
	LastName   string
	Phone      string
	Notes      string
}

// Apply copies every patch field onto c. ID and timestamps are left alone.
func (p CustomerPatch) Apply(c *Customer) {
	c.FirstName = p.FirstName
	c.MiddleName = p.MiddleName
	c.LastName = p.LastName
	c.Phone = p.Phone
	c.Notes = p.Notes
}

// NewCustomer builds an unsaved customer from a patch.
func NewCustomer(p CustomerPatch) *Customer {
	c := &Customer{}
	p.Apply(c)
	return c
}
