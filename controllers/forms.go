package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/views"
)

// startAtLayouts are tried in order; the first is the one the edit form shows.
var startAtLayouts = []string{
	views.EditLayout,
	"2006-01-02 3:04 PM",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type CustomerForm struct {
	FirstName  string `form:"firstName" binding:"required"`
	MiddleName string `form:"middleName"`
	LastName   string `form:"lastName" binding:"required"`
	Phone      string `form:"phone"`
	Notes      string `form:"notes"`
}

func (f CustomerForm) Patch() models.CustomerPatch {
	return models.CustomerPatch{
		FirstName:  strings.TrimSpace(f.FirstName),
		MiddleName: strings.TrimSpace(f.MiddleName),
		LastName:   strings.TrimSpace(f.LastName),
		Phone:      strings.TrimSpace(f.Phone),
		Notes:      f.Notes,
	}
}

type ReservationForm struct {
	StartAt   string `form:"startAt" binding:"required"`
	NumGuests string `form:"numGuests" binding:"required"`
	Notes     string `form:"notes"`
}

func (f ReservationForm) Params(customerID uint) (models.ReservationParams, error) {
	patch, err := f.Patch()
	if err != nil {
		return models.ReservationParams{}, err
	}
	return models.ReservationParams{
		CustomerID: customerID,
		StartAt:    patch.StartAt,
		NumGuests:  patch.NumGuests,
		Notes:      patch.Notes,
	}, nil
}

func (f ReservationForm) Patch() (models.ReservationPatch, error) {
	startAt, err := ParseStartAt(f.StartAt)
	if err != nil {
		return models.ReservationPatch{}, err
	}
	numGuests, err := ParseNumGuests(f.NumGuests)
	if err != nil {
		return models.ReservationPatch{}, err
	}
	return models.ReservationPatch{
		StartAt:   startAt,
		NumGuests: numGuests,
		Notes:     f.Notes,
	}, nil
}

// ParseStartAt reads a start time in local time.
func ParseStartAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range startAtLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &models.ValidationError{Field: "startAt", Message: "expected a date like 2023-06-01 7:30 pm"}
}

// ParseNumGuests requires a whole number of at least one.
func ParseNumGuests(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &models.ValidationError{Field: "numGuests", Message: "must be a whole number"}
	}
	if n < 1 {
		return 0, &models.ValidationError{Field: "numGuests", Message: "must be at least 1"}
	}
	return n, nil
}

func bindForm(c *gin.Context, form interface{}) error {
	if err := c.ShouldBind(form); err != nil {
		return &models.ValidationError{Field: "form", Message: err.Error()}
	}
	return nil
}

// pathID reads a positive integer path parameter. Anything else is reported as not found.
func pathID(c *gin.Context, param, resource string) (uint, error) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, models.NewNotFound(resource, raw)
	}
	return uint(id), nil
}
