package controllers

import (
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/services"
	"github.com/yeremiapane/lunchly/utils"
	"gorm.io/gorm"
)

type CustomerController struct {
	Customers *services.CustomerService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{Customers: services.NewCustomerService(db)}
}

// Search -> GET /search?name=
func (cc *CustomerController) Search(c *gin.Context) {
	term := c.Query("name")
	customers, err := cc.Customers.SearchByName(c.Request.Context(), term)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "customer_search.html", gin.H{
		"customers": customers,
		"term":      term,
	})
}

// List -> GET /, every customer with their last reservation
func (cc *CustomerController) List(c *gin.Context) {
	ctx := c.Request.Context()
	customers, err := cc.Customers.All(ctx)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	lastReservations, err := cc.Customers.LastReservations(ctx)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "customer_list.html", gin.H{
		"customers":        customers,
		"lastReservations": lastReservations,
	})
}

// TopTen -> GET /top-ten/
func (cc *CustomerController) TopTen(c *gin.Context) {
	customers, err := cc.Customers.TopTen(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "customer_top_ten.html", gin.H{"customers": customers})
}

// NewForm -> GET /add/
func (cc *CustomerController) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "customer_new_form.html", gin.H{})
}

// Create -> POST /add/
func (cc *CustomerController) Create(c *gin.Context) {
	var form CustomerForm
	if err := bindForm(c, &form); err != nil {
		utils.RespondError(c, err)
		return
	}

	customer := models.NewCustomer(form.Patch())
	if err := cc.Customers.Save(c.Request.Context(), customer); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)
	c.Redirect(http.StatusFound, customerPath(customer.ID))
}

// Detail -> GET /:id/
func (cc *CustomerController) Detail(c *gin.Context) {
	id, err := pathID(c, "id", "customer")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := cc.Customers.Get(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	reservations, err := cc.Customers.Reservations(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	last, err := cc.Customers.LastReservation(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	fromNow := ""
	if last != nil {
		fromNow = humanize.Time(last.StartAt)
	}

	c.HTML(http.StatusOK, "customer_detail.html", gin.H{
		"customer":               customer,
		"reservations":           reservations,
		"lastReservation":        last,
		"lastReservationFromNow": fromNow,
	})
}

// EditForm -> GET /:id/edit/
func (cc *CustomerController) EditForm(c *gin.Context) {
	id, err := pathID(c, "id", "customer")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	customer, err := cc.Customers.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "customer_edit_form.html", gin.H{"customer": customer})
}

// Update -> POST /:id/edit/
func (cc *CustomerController) Update(c *gin.Context) {
	id, err := pathID(c, "id", "customer")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := cc.Customers.Get(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var form CustomerForm
	if err := bindForm(c, &form); err != nil {
		utils.RespondError(c, err)
		return
	}

	form.Patch().Apply(customer)
	if err := cc.Customers.Save(ctx, customer); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Customer updated (ID=%d)", customer.ID)
	c.Redirect(http.StatusFound, customerPath(customer.ID))
}

func customerPath(id uint) string {
	return fmt.Sprintf("/%d/", id)
}
