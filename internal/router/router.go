package router

import (
	"net/http"

	"github.com/Minarsribabu/Eco-Cred/internal/config"
	"github.com/Minarsribabu/Eco-Cred/internal/emission"
	"github.com/Minarsribabu/Eco-Cred/internal/handler"
	"github.com/Minarsribabu/Eco-Cred/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	svc := emission.NewService(db)

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	protected.GET("/auth/me", authHandler.Me)

	activityHandler := handler.NewActivityHandler(svc, cfg.App.RecentLimit)
	protected.POST("/activities", activityHandler.Create)
	protected.GET("/activities", activityHandler.List)

	summaryHandler := handler.NewSummaryHandler(svc)
	protected.GET("/summary", summaryHandler.Summary)
	protected.GET("/credits", summaryHandler.Credits)

	tipHandler := handler.NewTipHandler(db)
	protected.GET("/tips", tipHandler.List)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
