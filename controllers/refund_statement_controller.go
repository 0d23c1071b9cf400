package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/liennt-dev/GlowCart/config"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/liennt-dev/GlowCart/models"
	"github.com/liennt-dev/GlowCart/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// buildRefundStatementPDF renders the refund breakdown of one return request
// as a PDF for support staff and customers.
func buildRefundStatementPDF(order *models.Order, info models.RefundInfo, summary models.RefundSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "GlowCart")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "125 Nguyen Trai, District 1, HCMC")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@glowcart.vn | Phone: +84-28-1234-5678")
	pdf.Ln(12)

	// Statement title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "REFUND STATEMENT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(50, 8, "Order ID: "+strconv.FormatInt(order.ID, 10))
	pdf.Cell(60, 8, "Order Code: "+order.Code)
	pdf.Ln(8)
	view := utils.NormalizeOrderStatus(order.Status)
	pdf.Cell(50, 8, "Status: "+order.Status)
	pdf.Cell(60, 8, "Group: "+view.GroupKey)
	pdf.Ln(8)
	if info.ReasonType != "" {
		pdf.Cell(100, 8, "Reason type: "+info.ReasonType)
		pdf.Ln(8)
	}
	if info.RefundMethod != "" {
		method := info.RefundMethod
		if info.Bank != "" {
			method += fmt.Sprintf(" (%s - %s)", info.Bank, info.AccountNumber)
		}
		pdf.Cell(100, 8, "Refund method: "+method)
		pdf.Ln(8)
	}
	pdf.Ln(4)

	// Items table header
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 8, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Unit", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		total := 0.0
		if item.TotalPrice != nil {
			total = *item.TotalPrice
		} else if item.FinalPrice != nil {
			total = *item.FinalPrice
		}
		pdf.CellFormat(70, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.0f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.0f", total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Breakdown section
	pdf.Ln(4)
	rows := refundStatementRows(summary)
	for i, row := range rows {
		if i == len(rows)-1 {
			pdf.SetFont("Arial", "B", 13)
		} else {
			pdf.SetFont("Arial", "B", 12)
		}
		pdf.CellFormat(120, 8, row[0]+":", "", 0, "L", false, 0, "")
		if i != len(rows)-1 {
			pdf.SetFont("Arial", "", 12)
		}
		pdf.CellFormat(30, 8, row[1], "", 1, "R", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for shopping with GlowCart!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// refundStatementRows lists the breakdown lines in display order, refund
// total last.
func refundStatementRows(summary models.RefundSummary) [][2]string {
	return [][2]string{
		{"Total paid", utils.FormatVND(summary.TotalPaid)},
		{"Product value", utils.FormatVND(summary.ProductValue)},
		{"Shipping fee", utils.FormatVND(summary.ShippingFee)},
		{"Return shipping fee", utils.FormatVND(summary.SecondShippingFee)},
		{"Return penalty", utils.FormatVND(summary.ReturnPenalty)},
		{"Refund total", utils.FormatVND(summary.Total)},
	}
}

func fetchReturnFlowOrder(c *gin.Context) (*models.Order, bool) {
	token := middleware.RequestToken(c)
	if token == "" {
		utils.LogError("Token not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return nil, false
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.LogError("Invalid order ID format: %v", err)
		utils.BadRequest(c, utils.ErrInvalidOrderID, nil)
		return nil, false
	}

	order, err := config.Backend.GetOrder(c.Request.Context(), token, orderID)
	if err != nil {
		utils.LogError("Failed to fetch order %d from backend: %v", orderID, err)
		utils.UpstreamError(c, err)
		return nil, false
	}

	if !models.InReturnFlow(order.Status) {
		utils.LogError("Order %d is not in the return flow - Status: %s", orderID, order.Status)
		utils.BadRequest(c, "Order has no return request", nil)
		return nil, false
	}

	return order, true
}

// AdminDownloadRefundStatement generates and returns the refund statement PDF.
func AdminDownloadRefundStatement(c *gin.Context) {
	utils.LogInfo("AdminDownloadRefundStatement called")

	order, ok := fetchReturnFlowOrder(c)
	if !ok {
		return
	}

	info := utils.ParseRefundInfo(order)
	summary := utils.CalculateRefund(order, info)

	pdfBytes, err := buildRefundStatementPDF(order, info, summary)
	if err != nil {
		utils.LogError("Failed to generate refund statement PDF for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate refund statement", nil)
		return
	}
	utils.LogInfo("Refund statement PDF generated for order ID: %d", order.ID)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=refund_statement_%d.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// AdminSendRefundStatement emails the refund statement to the customer.
func AdminSendRefundStatement(c *gin.Context) {
	utils.LogInfo("AdminSendRefundStatement called")

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid send-statement request: %v", err)
		utils.BadRequest(c, "A valid customer email is required", nil)
		return
	}

	order, ok := fetchReturnFlowOrder(c)
	if !ok {
		return
	}

	info := utils.ParseRefundInfo(order)
	summary := utils.CalculateRefund(order, info)

	pdfBytes, err := buildRefundStatementPDF(order, info, summary)
	if err != nil {
		utils.LogError("Failed to generate refund statement PDF for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate refund statement", nil)
		return
	}

	if err := utils.SendRefundStatementEmail(req.Email, order.Code, refundStatementRows(summary), pdfBytes); err != nil {
		utils.LogError("Failed to send refund statement for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to send refund statement", nil)
		return
	}

	utils.LogInfo("Refund statement sent for order ID: %d to %s", order.ID, req.Email)
	utils.Success(c, utils.MsgStatementSent, gin.H{
		"order_id": order.ID,
		"email":    req.Email,
	})
}
