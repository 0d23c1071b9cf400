package controllers

import (
	"github.com/liennt-dev/GlowCart/config"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/liennt-dev/GlowCart/models"
	"github.com/liennt-dev/GlowCart/utils"
	"github.com/gin-gonic/gin"
)

// ListOrders lists the logged-in customer's orders with normalized status
// groups, an optional group filter, and pagination.
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	token := middleware.RequestToken(c)
	if token == "" {
		utils.LogError("Token not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	orders, err := config.Backend.GetMyOrders(c.Request.Context(), token)
	if err != nil {
		utils.LogError("Failed to fetch orders from backend: %v", err)
		utils.UpstreamError(c, err)
		return
	}
	utils.LogDebug("Retrieved %d orders from backend", len(orders))

	groupCounts := utils.CountStatusGroups(orders)

	// Optional group filter, e.g. ?group=returned for the returns tab.
	group := c.Query("group")
	if group != "" {
		if _, ok := groupCounts[group]; !ok {
			utils.LogError("Unknown status group requested: %s", group)
			utils.BadRequest(c, utils.ErrInvalidGroup, nil)
			return
		}
		filtered := make([]models.Order, 0, len(orders))
		for _, order := range orders {
			if utils.NormalizeOrderStatus(order.Status).GroupKey == group {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
		utils.LogDebug("Filtered to %d orders in group %s", len(orders), group)
	}

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(orders)))
	start, end := pagination.Bounds(len(orders))

	summaries := make([]gin.H, 0, end-start)
	for i := start; i < end; i++ {
		summaries = append(summaries, orderSummary(&orders[i]))
	}

	utils.LogInfo("Returning %d order summaries", len(summaries))
	utils.SuccessWithPagination(c, utils.MsgOrdersFetched, gin.H{
		"orders":       summaries,
		"group_counts": groupCounts,
	}, pagination.Total, pagination.Page, pagination.Limit)
}
