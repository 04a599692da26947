package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunchly/config"
	"github.com/yeremiapane/lunchly/controllers"
	"github.com/yeremiapane/lunchly/middlewares"
	"github.com/yeremiapane/lunchly/models"
	"github.com/yeremiapane/lunchly/utils"
	"github.com/yeremiapane/lunchly/views"
	"gorm.io/gorm"
)

// SetupRouter builds the application engine. The store handle is shared by every controller.
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowedOrigins))
	if cfg.RateLimitRPS > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())
	}
	r.Use(middlewares.ErrorReporter())

	customerCtrl := controllers.NewCustomerController(db)
	reservationCtrl := controllers.NewReservationController(db)

	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, 200, "pong", nil)
	})

	r.GET("/search", customerCtrl.Search)
	r.GET("/", customerCtrl.List)
	r.GET("/top-ten/", customerCtrl.TopTen)
	r.GET("/add/", customerCtrl.NewForm)
	r.POST("/add/", customerCtrl.Create)

	r.GET("/:id/", customerCtrl.Detail)
	r.GET("/:id/edit/", customerCtrl.EditForm)
	r.POST("/:id/edit/", customerCtrl.Update)

	r.POST("/:id/add-reservation/", reservationCtrl.Create)
	r.GET("/:id/edit-reservation/:r_id", reservationCtrl.EditForm)
	r.POST("/:id/edit-reservation/:r_id", reservationCtrl.Update)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, models.NewNotFound("page", c.Request.URL.Path))
	})

	return r, nil
}
