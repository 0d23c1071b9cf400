package controllers

import (
	"github.com/liennt-dev/GlowCart/config"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/liennt-dev/GlowCart/models"
	"github.com/liennt-dev/GlowCart/utils"
	"github.com/gin-gonic/gin"
)

// AdminListReturnRequests lists return requests for the support screen, each
// with its parsed refund info and money breakdown. Supports ?status= to
// narrow to a single raw return status; the chosen filter is remembered in
// the staff session so the screen reopens where they left it.
func AdminListReturnRequests(c *gin.Context) {
	utils.LogInfo("AdminListReturnRequests called")

	token := middleware.RequestToken(c)
	if token == "" {
		utils.LogError("Token not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	orders, err := config.Backend.GetReturnRequests(c.Request.Context(), token)
	if err != nil {
		utils.LogError("Failed to fetch return requests from backend: %v", err)
		utils.UpstreamError(c, err)
		return
	}
	utils.LogDebug("Retrieved %d return requests from backend", len(orders))

	status := c.Query("status")
	if status == "" {
		status = utils.LastReturnsFilter(c)
		if status != "" {
			utils.LogDebug("Using remembered returns filter: %s", status)
		}
	} else {
		utils.RememberReturnsFilter(c, status)
	}

	if status != "" {
		filtered := make([]models.Order, 0, len(orders))
		for _, order := range orders {
			if order.Status == status {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
		utils.LogDebug("Filtered to %d return requests with status %s", len(orders), status)
	}

	// Count per raw return status for the screen's filter chips.
	statusCounts := make(map[string]int)
	for _, order := range orders {
		statusCounts[order.Status]++
	}

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(orders)))
	start, end := pagination.Bounds(len(orders))

	requests := make([]gin.H, 0, end-start)
	for i := start; i < end; i++ {
		order := &orders[i]
		entry := orderSummary(order)
		entry["refund"] = refundBreakdown(order)
		requests = append(requests, entry)
	}

	utils.LogInfo("Returning %d return requests", len(requests))
	utils.SuccessWithPagination(c, utils.MsgReturnsFetched, gin.H{
		"return_requests": requests,
		"status_counts":   statusCounts,
	}, pagination.Total, pagination.Page, pagination.Limit)
}
