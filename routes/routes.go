package routes

import (
	"customer-portal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(h.JWTSecret))
	{
		auth.GET("/dashboard/customer", h.Dashboard.Mount)
		auth.POST("/dashboard/customer/profile", h.Dashboard.CreateProfile)
		auth.POST("/dashboard/customer/avatar", h.Dashboard.UpdateAvatar)
		auth.POST("/dashboard/customer/email", h.Dashboard.SendEmail)

		auth.GET("/orders", h.Orders.Mount)
		auth.GET("/orders/redo-search", h.Orders.RedoSearch)
		auth.GET("/orders/:id/open", h.Orders.OpenOrder)
		auth.POST("/orders/pagination/:direction", h.Orders.Paginate)
		auth.POST("/orders/calendar/toggle", h.Orders.ToggleCalendar)
		auth.POST("/orders/calendar/dates", h.Orders.ChangeDates)
		auth.POST("/orders/calendar/close", h.Orders.CloseCalendar)
	}

	if h.UploadDir != "" {
		router.Static("/uploads", h.UploadDir)
	}
}
