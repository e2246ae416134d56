package handler

import (
	"net/http"

	"aoa/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the full HTTP surface. identitySecret enables verified-id
// enforcement on the log routes; empty disables it.
func NewRouter(users *UserHandler, logs *LogHandler, allowOrigins []string, identitySecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello AOA"})
	})

	u := r.Group("/users")
	u.POST("", users.Create)
	u.POST("/create-with-log", users.CreateWithLog)
	u.GET("", users.List)
	u.GET("/:user_id", users.Get)

	l := r.Group("/dailylogs", middleware.Identity(identitySecret))
	l.POST("/:user_id", logs.CheckIn)
	l.PATCH("/:user_id/:log_date/checkout", logs.Checkout)
	l.PATCH("/:user_id/:log_date", logs.Edit)
	l.GET("/:user_id", logs.List)
	l.GET("/:user_id/:log_date", logs.Get)

	return r
}
