package controllers

import (
	"github.com/liennt-dev/GlowCart/models"
	"github.com/liennt-dev/GlowCart/utils"
	"github.com/gin-gonic/gin"
)

// orderSummary builds the list-view payload for one order.
func orderSummary(order *models.Order) gin.H {
	view := utils.NormalizeOrderStatus(order.Status)

	summary := gin.H{
		"id":           order.ID,
		"code":         order.Code,
		"status":       order.Status,
		"status_label": view.DisplayLabel,
		"status_group": view.GroupKey,
		"total_amount": order.TotalAmount,
		"shipping_fee": order.ShippingFee,
		"items_count":  len(order.Items),
	}
	if order.CreatedAt != nil {
		summary["created_at"] = order.CreatedAt
	}
	return summary
}

// orderDetail builds the detail payload. Orders inside the return flow also
// carry their parsed refund info and computed money breakdown.
func orderDetail(order *models.Order) gin.H {
	view := utils.NormalizeOrderStatus(order.Status)

	items := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		entry := gin.H{
			"id":         item.ID,
			"name":       item.Name,
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
		}
		if item.TotalPrice != nil {
			entry["total_price"] = *item.TotalPrice
		}
		if item.FinalPrice != nil {
			entry["final_price"] = *item.FinalPrice
		}
		items = append(items, entry)
	}

	detail := gin.H{
		"id":           order.ID,
		"code":         order.Code,
		"status":       order.Status,
		"status_label": view.DisplayLabel,
		"status_group": view.GroupKey,
		"note":         order.Note,
		"items":        items,
		"total_amount": order.TotalAmount,
		"shipping_fee": order.ShippingFee,
	}
	if order.CreatedAt != nil {
		detail["created_at"] = order.CreatedAt
	}

	if models.InReturnFlow(order.Status) {
		info := utils.ParseRefundInfo(order)
		detail["refund_info"] = info
		detail["refund_summary"] = utils.CalculateRefund(order, info)
	}

	return detail
}

// refundBreakdown builds the payload shared by the preview endpoint and the
// support screens.
func refundBreakdown(order *models.Order) gin.H {
	info := utils.ParseRefundInfo(order)
	summary := utils.CalculateRefund(order, info)

	return gin.H{
		"order_id":   order.ID,
		"order_code": order.Code,
		"info":       info,
		"summary":    summary,
		"formatted": gin.H{
			"product_value":       utils.FormatVND(summary.ProductValue),
			"shipping_fee":        utils.FormatVND(summary.ShippingFee),
			"second_shipping_fee": utils.FormatVND(summary.SecondShippingFee),
			"return_penalty":      utils.FormatVND(summary.ReturnPenalty),
			"total":               utils.FormatVND(summary.Total),
			"total_paid":          utils.FormatVND(summary.TotalPaid),
		},
	}
}
