package config

import (
	"time"

	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/utils"
	"gorm.io/gorm"
)

// SeedDatabase inserts a few demo customers and reservations when the store is empty.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		utils.InfoLogger.Println("Customers already seeded")
		return nil
	}

	now := time.Now().UTC().Truncate(time.Hour)
	seed := []struct {
		customer     models.Customer
		reservations []models.ReservationParams
	}{
		{
			customer: models.Customer{FirstName: "Anthony", LastName: "Gonzales", Phone: "415-555-0101", Notes: "Prefers the patio."},
			reservations: []models.ReservationParams{
				{StartAt: now.AddDate(0, 0, -30), NumGuests: 2, Notes: "Anniversary"},
				{StartAt: now.AddDate(0, 0, 7), NumGuests: 4},
			},
		},
		{
			customer: models.Customer{FirstName: "Mary", MiddleName: "Jo", LastName: "Ellison", Phone: "415-555-0102"},
			reservations: []models.ReservationParams{
				{StartAt: now.AddDate(0, 0, -2), NumGuests: 6, Notes: "Birthday, needs a high chair"},
			},
		},
		{
			customer: models.Customer{FirstName: "Wei", LastName: "Chen", Phone: "415-555-0103", Notes: "Shellfish allergy."},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range seed {
			c := seed[i].customer
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			for _, p := range seed[i].reservations {
				p.CustomerID = c.ID
				if err := tx.Create(models.NewReservation(p)).Error; err != nil {
					return err
				}
			}
		}
		utils.InfoLogger.Printf("Seeded %d demo customers", len(seed))
		return nil
	})
}
