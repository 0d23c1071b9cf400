package controllers

import (
	"strconv"

	"github.com/liennt-dev/GlowCart/config"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/liennt-dev/GlowCart/utils"
	"github.com/gin-gonic/gin"
)

// GetOrder returns one order with its normalized status. Orders in the return
// flow also include the parsed refund info and the computed breakdown.
func GetOrder(c *gin.Context) {
	utils.LogInfo("GetOrder called")

	token := middleware.RequestToken(c)
	if token == "" {
		utils.LogError("Token not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.LogError("Invalid order ID format: %v", err)
		utils.BadRequest(c, utils.ErrInvalidOrderID, nil)
		return
	}
	utils.LogDebug("Fetching order ID: %d", orderID)

	order, err := config.Backend.GetOrder(c.Request.Context(), token, orderID)
	if err != nil {
		utils.LogError("Failed to fetch order %d from backend: %v", orderID, err)
		utils.UpstreamError(c, err)
		return
	}
	utils.LogDebug("Found order %d with %d items", orderID, len(order.Items))

	utils.Success(c, utils.MsgOrderFetched, gin.H{
		"order": orderDetail(order),
	})
}
