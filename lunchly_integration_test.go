package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/lunchly/config"
	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/router"
	"github.com/yeremiapane/lunchly/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	utils.InitLogger("warn")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the whole resource lifecycle:
// 1. Create a customer
// 2. Book two reservations
// 3. Check the detail, list, search and top ten pages
// 4. Edit the later reservation and the customer
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB(t)
	r, err := router.SetupRouter(db, &config.Config{RateLimitRPS: 1000, RateLimitBurst: 1000})
	if err != nil {
		t.Fatalf("setup router: %v", err)
	}

	customerID := createCustomerTest(t, r)

	addReservationTest(t, r, customerID, "2023-01-01T12:00", "2")
	addReservationTest(t, r, customerID, "2023-06-01T19:30", "5")

	var reservations []models.Reservation
	if err := db.Where("customer_id = ?", customerID).Order("start_at ASC").Find(&reservations).Error; err != nil {
		t.Fatalf("load reservations: %v", err)
	}
	if len(reservations) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(reservations))
	}
	june := reservations[1]

	body := expectPage(t, r, fmt.Sprintf("/%d/", customerID))
	if !strings.Contains(body, "Ann Lee") || !strings.Contains(body, "ago") {
		t.Fatalf("detail page missing name or relative time: %s", body)
	}

	body = expectPage(t, r, "/")
	if !strings.Contains(body, "5 guests") {
		t.Fatalf("list page should show the June reservation: %s", body)
	}

	body = expectPage(t, r, "/search?name=ann")
	if !strings.Contains(body, "Ann Lee") {
		t.Fatalf("search did not find Ann: %s", body)
	}

	body = expectPage(t, r, "/top-ten/")
	if !strings.Contains(body, "(2 reservations)") {
		t.Fatalf("top ten should count two reservations: %s", body)
	}

	editPath := fmt.Sprintf("/%d/edit-reservation/%d", customerID, june.ID)
	body = expectPage(t, r, editPath)
	if !strings.Contains(body, "2023-06-01 7:30 pm") {
		t.Fatalf("edit form should show the formatted start time: %s", body)
	}

	w := post(r, editPath, url.Values{"startAt": {"2023-06-01 8:00 pm"}, "numGuests": {"3"}, "notes": {""}})
	if w.Code != http.StatusFound {
		t.Fatalf("edit reservation: expected 302, got %d, body=%s", w.Code, w.Body.String())
	}

	var edited models.Reservation
	db.First(&edited, june.ID)
	if edited.NumGuests != 3 {
		t.Fatalf("expected 3 guests after edit, got %d", edited.NumGuests)
	}

	w = post(r, fmt.Sprintf("/%d/edit/", customerID), url.Values{"firstName": {"Ann"}, "lastName": {"Park"}, "phone": {"555"}})
	if w.Code != http.StatusFound {
		t.Fatalf("edit customer: expected 302, got %d", w.Code)
	}
	body = expectPage(t, r, fmt.Sprintf("/%d/", customerID))
	if !strings.Contains(body, "Ann Park") {
		t.Fatalf("detail page should show the new last name: %s", body)
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func createCustomerTest(t *testing.T, r http.Handler) uint {
	w := post(r, "/add/", url.Values{"firstName": {"Ann"}, "lastName": {"Lee"}, "phone": {"555"}, "notes": {""}})
	if w.Code != http.StatusFound {
		t.Fatalf("createCustomerTest: expected 302, got %d, body=%s", w.Code, w.Body.String())
	}
	id, err := strconv.Atoi(strings.Trim(w.Header().Get("Location"), "/"))
	if err != nil {
		t.Fatalf("createCustomerTest: bad location %q", w.Header().Get("Location"))
	}
	return uint(id)
}

func addReservationTest(t *testing.T, r http.Handler, customerID uint, startAt, numGuests string) {
	w := post(r, fmt.Sprintf("/%d/add-reservation/", customerID), url.Values{
		"startAt":   {startAt},
		"numGuests": {numGuests},
		"notes":     {""},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("addReservationTest: expected 302, got %d, body=%s", w.Code, w.Body.String())
	}
}

func expectPage(t *testing.T, r http.Handler, path string) string {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d, body=%s", path, w.Code, w.Body.String())
	}
	return w.Body.String()
}

func post(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
