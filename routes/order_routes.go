package routes

import (
	"github.com/liennt-dev/GlowCart/controllers"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/gin-gonic/gin"
)

// initOrderRoutes initializes the customer-facing order routes
func initOrderRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", controllers.ListOrders)
		orders.GET("/:id", controllers.GetOrder)
		orders.GET("/:id/refund", controllers.GetRefundPreview)
	}
}
