package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/lunchly/config"
	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := router.SetupRouter(db, &config.Config{})
	require.NoError(t, err)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// idFromLocation reads the customer id out of a "/{id}/" redirect.
func idFromLocation(t *testing.T, w *httptest.ResponseRecorder) uint {
	t.Helper()
	loc := strings.Trim(w.Header().Get("Location"), "/")
	id, err := strconv.ParseUint(loc, 10, 64)
	require.NoError(t, err, "location %q", w.Header().Get("Location"))
	return uint(id)
}

func seedCustomer(t *testing.T, db *gorm.DB, first, last string) *models.Customer {
	t.Helper()
	c := models.NewCustomer(models.CustomerPatch{FirstName: first, LastName: last})
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedReservation(t *testing.T, db *gorm.DB, p models.ReservationParams) *models.Reservation {
	t.Helper()
	r := models.NewReservation(p)
	require.NoError(t, db.Create(r).Error)
	return r
}
