package controllers

import (
	"strconv"

	"github.com/liennt-dev/GlowCart/config"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/liennt-dev/GlowCart/models"
	"github.com/liennt-dev/GlowCart/utils"
	"github.com/gin-gonic/gin"
)

// AdminGetReturnRequest shows one return request for support review: full
// order detail, parsed refund info (including bank details and media), the
// money breakdown, and the states the backend may move the order into next.
// The transitions themselves happen in the backend, not here.
func AdminGetReturnRequest(c *gin.Context) {
	utils.LogInfo("AdminGetReturnRequest called")

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
	utils.LogDebug("Fetching return request for order ID: %d", orderID)

	order, err := config.Backend.GetOrder(c.Request.Context(), token, orderID)
	if err != nil {
		utils.LogError("Failed to fetch order %d from backend: %v", orderID, err)
		utils.UpstreamError(c, err)
		return
	}

	if !models.InReturnFlow(order.Status) {
		utils.LogError("Order %d is not in the return flow - Status: %s", orderID, order.Status)
		utils.BadRequest(c, "Order has no return request", nil)
		return
	}

	detail := orderDetail(order)
	detail["refund"] = refundBreakdown(order)
	detail["allowed_next_states"] = models.ReturnFlowNext(order.Status)
	if order.RefundRejectionReason != "" {
		detail["rejection"] = gin.H{
			"reason": order.RefundRejectionReason,
			"source": order.RefundRejectionSource,
		}
	}

	utils.LogInfo("Return request detail prepared for order ID: %d", orderID)
	utils.Success(c, utils.MsgReturnsFetched, gin.H{
		"return_request": detail,
	})
}
