package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/services"
	"github.com/yeremiapane/lunchly/utils"
	"github.com/yeremiapane/lunchly/views"
	"gorm.io/gorm"
)

type ReservationController struct {
	Customers    *services.CustomerService
	Reservations *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		Customers:    services.NewCustomerService(db),
		Reservations: services.NewReservationService(db),
	}
}

// Create -> POST /:id/add-reservation/
func (rc *ReservationController) Create(c *gin.Context) {
	customerID, err := pathID(c, "id", "customer")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	ctx := c.Request.Context()
	// a reservation for a missing customer is rejected before anything is written
	if _, err := rc.Customers.Get(ctx, customerID); err != nil {
		utils.RespondError(c, err)
		return
	}

	var form ReservationForm
	if err := bindForm(c, &form); err != nil {
		utils.RespondError(c, err)
		return
	}
	params, err := form.Params(customerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	reservation := models.NewReservation(params)
	if err := rc.Reservations.Save(ctx, reservation); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New reservation created (ID=%d) for CustomerID=%d", reservation.ID, customerID)
	c.Redirect(http.StatusFound, customerPath(customerID))
}

// EditForm -> GET /:id/edit-reservation/:r_id
func (rc *ReservationController) EditForm(c *gin.Context) {
	customer, reservation, err := rc.load(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "reservation_edit_form.html", gin.H{
		"customer":    customer,
		"reservation": reservation,
		"startAt":     reservation.StartAt.Local().Format(views.EditLayout),
	})
}

// Update -> POST /:id/edit-reservation/:r_id
func (rc *ReservationController) Update(c *gin.Context) {
	customer, reservation, err := rc.load(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var form ReservationForm
	if err := bindForm(c, &form); err != nil {
		utils.RespondError(c, err)
		return
	}
	patch, err := form.Patch()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	patch.Apply(reservation)
	if err := rc.Reservations.Save(c.Request.Context(), reservation); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation updated (ID=%d)", reservation.ID)
	c.Redirect(http.StatusFound, customerPath(customer.ID))
}

// load fetches the customer and reservation named in the path. A reservation that
// belongs to another customer is reported as not found.
func (rc *ReservationController) load(c *gin.Context) (*models.Customer, *models.Reservation, error) {
	customerID, err := pathID(c, "id", "customer")
	if err != nil {
		return nil, nil, err
	}
	reservationID, err := pathID(c, "r_id", "reservation")
	if err != nil {
		return nil, nil, err
	}

	ctx := c.Request.Context()
	customer, err := rc.Customers.Get(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	reservation, err := rc.Reservations.Get(ctx, reservationID)
	if err != nil {
		return nil, nil, err
	}
	if reservation.CustomerID != customer.ID {
		return nil, nil, models.NewNotFound("reservation", reservationID)
	}
	return customer, reservation, nil
}
