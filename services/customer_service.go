package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yeremiapane/lunchly/models"
	"gorm.io/gorm"
)

const topTenLimit = 10

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// All returns every customer ordered by last name, then first name.
func (s *CustomerService) All(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.DB.WithContext(ctx).
		Order("last_name ASC").
		Order("first_name ASC").
		Order("id ASC").
		Find(&customers).Error
	if err != nil {
		return nil, &models.DataAccessError{Op: "list customers", Err: err}
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound("customer", id)
		}
		return nil, &models.DataAccessError{Op: "get customer", Err: err}
	}
	return &customer, nil
}

// SearchByName returns the customers whose full name contains term, ignoring case.
// A blank term matches everyone.
func (s *CustomerService) SearchByName(ctx context.Context, term string) ([]models.Customer, error) {
	customers, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(term) == "" {
		return customers, nil
	}
	term = strings.ToLower(term)

	matched := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.FullName()), term) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// TopTen returns the customers with the most reservations, busiest first.
func (s *CustomerService) TopTen(ctx context.Context) ([]models.RankedCustomer, error) {
	var ranked []models.RankedCustomer
	err := s.DB.WithContext(ctx).
		Model(&models.Customer{}).
		Select("customers.*, COUNT(reservations.id) AS reservation_count").
		Joins("JOIN reservations ON reservations.customer_id = customers.id").
		Group("customers.id").
		Order("reservation_count DESC").
		Order("customers.last_name ASC").
		Order("customers.id ASC").
		Limit(topTenLimit).
		Scan(&ranked).Error
	if err != nil {
		return nil, &models.DataAccessError{Op: "top ten customers", Err: err}
	}
	return ranked, nil
}

// Save inserts c when it has no ID yet, otherwise updates the row with c's ID.
// Updating an ID that has no row is a NotFound error; nothing is inserted.
func (s *CustomerService) Save(ctx context.Context, c *models.Customer) error {
	db := s.DB.WithContext(ctx)
	if c.ID == 0 {
		if err := db.Create(c).Error; err != nil {
			return &models.DataAccessError{Op: "create customer", Err: err}
		}
		return nil
	}

	result := db.Model(c).Select("*").Omit("id", "created_at").Updates(c)
	if result.Error != nil {
		return &models.DataAccessError{Op: "update customer", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return models.NewNotFound("customer", c.ID)
	}
	return nil
}

// Reservations returns the customer's reservations, earliest first.
func (s *CustomerService) Reservations(ctx context.Context, customerID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_at ASC").
		Order("id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, &models.DataAccessError{Op: "list reservations", Err: err}
	}
	return reservations, nil
}

// LastReservation returns the reservation with the latest start time, or nil if there is none.
func (s *CustomerService) LastReservation(ctx context.Context, customerID uint) (*models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&reservations).Error
	if err != nil {
		return nil, &models.DataAccessError{Op: "last reservation", Err: err}
	}
	if len(reservations) == 0 {
		return nil, nil
	}
	return &reservations[0], nil
}

// LastReservations returns every customer's last reservation keyed by customer ID
// in a single query. Customers without reservations have no entry.
func (s *CustomerService) LastReservations(ctx context.Context) (map[uint]*models.Reservation, error) {
	var latest []models.Reservation
	err := s.DB.WithContext(ctx).
		Raw(`SELECT r.* FROM reservations r
			WHERE r.start_at = (
				SELECT MAX(r2.start_at) FROM reservations r2 WHERE r2.customer_id = r.customer_id
			)`).
		Scan(&latest).Error
	if err != nil {
		return nil, &models.DataAccessError{Op: "last reservations", Err: err}
	}

	byCustomer := make(map[uint]*models.Reservation, len(latest))
	for i := range latest {
		r := &latest[i]
		// same start time twice: keep the newer row, like LastReservation does
		if prev, ok := byCustomer[r.CustomerID]; ok && prev.ID > r.ID {
			continue
		}
		byCustomer[r.CustomerID] = r
	}
	return byCustomer, nil
}
