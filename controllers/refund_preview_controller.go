package controllers

import (
	"strconv"

	"github.com/liennt-dev/GlowCart/config"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/liennt-dev/GlowCart/utils"
	"github.com/gin-gonic/gin"
)

// GetRefundPreview computes the refund breakdown for one of the customer's
// orders. Pure derivation from the order snapshot; nothing is stored.
func GetRefundPreview(c *gin.Context) {
	utils.LogInfo("GetRefundPreview called")

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
	utils.LogDebug("Computing refund preview for order ID: %d", orderID)

	order, err := config.Backend.GetOrder(c.Request.Context(), token, orderID)
	if err != nil {
		utils.LogError("Failed to fetch order %d from backend: %v", orderID, err)
		utils.UpstreamError(c, err)
		return
	}

	utils.LogInfo("Refund preview computed for order ID: %d", orderID)
	utils.Success(c, utils.MsgRefundComputed, gin.H{
		"refund": refundBreakdown(order),
	})
}
