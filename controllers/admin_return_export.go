package controllers

import (
	"fmt"
	"time"

	"github.com/liennt-dev/GlowCart/config"
	"github.com/liennt-dev/GlowCart/middleware"
	"github.com/liennt-dev/GlowCart/models"
	"github.com/liennt-dev/GlowCart/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// AdminExportReturnRequests downloads the current return requests as an Excel
// report for the support team.
func AdminExportReturnRequests(c *gin.Context) {
	utils.LogInfo("AdminExportReturnRequests called")

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
	status := c.Query("status")
	utils.LogDebug("Exporting %d return requests (status filter: %q)", len(orders), status)

	// --- Excel Generation ---
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Return Requests")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}
	utils.LogDebug("Created Excel sheet for return requests")

	// Company details
	companyRow := sheet.AddRow()
	companyRow.AddCell().SetString("GLOWCART - Return Requests Report")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("125 Nguyễn Trãi, Quận 1, TP.HCM")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Email: support@glowcart.vn")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	// Table headers
	headers := []string{"Order ID", "Code", "Status", "Reason Type", "Reason", "Product Value", "Shipping", "Return Shipping", "Penalty", "Refund Total"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	// Table rows
	var totalRefunds int64
	exported := 0
	for i := range orders {
		order := &orders[i]
		if !statusFilterMatches(order, status) {
			continue
		}
		exported++
		info := utils.ParseRefundInfo(order)
		summary := utils.CalculateRefund(order, info)
		totalRefunds += summary.Total

		view := utils.NormalizeOrderStatus(order.Status)
		row := sheet.AddRow()
		row.AddCell().SetInt(int(order.ID))
		row.AddCell().SetString(order.Code)
		row.AddCell().SetString(view.DisplayLabel)
		row.AddCell().SetString(info.ReasonType)
		row.AddCell().SetString(info.Reason)
		row.AddCell().SetInt64(summary.ProductValue)
		row.AddCell().SetInt64(summary.ShippingFee)
		row.AddCell().SetInt64(summary.SecondShippingFee)
		row.AddCell().SetInt64(summary.ReturnPenalty)
		row.AddCell().SetInt64(summary.Total)
	}

	sheet.AddRow() // spacing

	// --- Summary Section ---
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Requests", fmt.Sprintf("%d", exported)},
		{"Total Refund Amount", utils.FormatVND(totalRefunds)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=return_requests_%s.xlsx", time.Now().Format("2006-01-02")))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated return requests export")
}

// statusFilterMatches keeps the export consistent with the list screen when a
// status filter is supplied.
func statusFilterMatches(order *models.Order, status string) bool {
	return status == "" || order.Status == status
}
