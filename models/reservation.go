package models

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	StartAt    time.Time `gorm:"not null;index" json:"start_at"`
	NumGuests  int       `gorm:"not null" json:"num_guests"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeSave stores start times in UTC so ordering is the same on every driver.
func (r *Reservation) BeforeSave(tx *gorm.DB) error {
	r.StartAt = r.StartAt.UTC()
	return nil
}

// ReservationParams is what a new reservation is built from.
type ReservationParams struct {
	CustomerID uint
	StartAt    time.Time
	NumGuests  int
	Notes      string
}

func NewReservation(p ReservationParams) *Reservation {
	return &Reservation{
		CustomerID: p.CustomerID,
		StartAt:    p.StartAt,
		NumGuests:  p.NumGuests,
		Notes:      p.Notes,
	}
}

// ReservationPatch holds the editable fields of a reservation.
type ReservationPatch struct {
	StartAt   time.Time
	NumGuests int
	Notes     string
}

func (p ReservationPatch) Apply(r *Reservation) {
	r.StartAt = p.StartAt
	r.NumGuests = p.NumGuests
	r.Notes = p.Notes
}
