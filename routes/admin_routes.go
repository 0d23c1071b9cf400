package routes

import (
	"github.com/liennt-dev/GlowCart/controllers"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes the customer-support routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		// Return / refund review
		admin.GET("/returns", controllers.AdminListReturnRequests)
		admin.GET("/returns/export", controllers.AdminExportReturnRequests)
		admin.GET("/returns/:id", controllers.AdminGetReturnRequest)
		admin.GET("/returns/:id/statement", controllers.AdminDownloadRefundStatement)
		admin.POST("/returns/:id/send-statement", controllers.AdminSendRefundStatement)
	}
}
