package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/lunchly/models"
)

func TestNewReservationAndPatch(t *testing.T) {
	start := time.Date(2023, 6, 1, 19, 30, 0, 0, time.UTC)
	r := models.NewReservation(models.ReservationParams{CustomerID: 3, StartAt: start, NumGuests: 4, Notes: "window"})

	assert.Zero(t, r.ID)
	assert.Equal(t, uint(3), r.CustomerID)
	assert.Equal(t, 4, r.NumGuests)

	later := start.Add(24 * time.Hour)
	models.ReservationPatch{StartAt: later, NumGuests: 2}.Apply(r)
	assert.Equal(t, uint(3), r.CustomerID)
	assert.True(t, later.Equal(r.StartAt))
	assert.Equal(t, 2, r.NumGuests)
	assert.Empty(t, r.Notes)
}
