package utils

import (
	"testing"

	"github.com/liennt-dev/GlowCart/models"
	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func customerReturnOrder() *models.Order {
	// Items sum to 450000, shipping 50000, paid 500000: no voucher involved.
	return &models.Order{
		ID:          100,
		TotalAmount: 500000,
		ShippingFee: 50000,
		Items: []models.OrderItem{
			{ID: 1, Quantity: 1, TotalPrice: fptr(300000)},
			{ID: 2, Quantity: 1, TotalPrice: fptr(150000)},
		},
		RefundSecondShippingFee: fptr(30000),
	}
}

func TestCalculateRefundCustomerFaultFormula(t *testing.T) {
	order := customerReturnOrder()
	info := ParseRefundInfo(order)
	info.ReasonType = models.RefundReasonCustomer

	summary := CalculateRefund(order, info)
	assert.Equal(t, int64(450000), summary.ProductValue)
	assert.Equal(t, int64(50000), summary.ShippingFee)
	assert.Equal(t, int64(30000), summary.SecondShippingFee)
	assert.Equal(t, int64(45000), summary.ReturnPenalty) // 10% of product value
	assert.Equal(t, int64(425000), summary.Total)        // 500000 - 30000 - 45000
	assert.Equal(t, int64(500000), summary.TotalPaid)
}

func TestCalculateRefundStoreFaultFormula(t *testing.T) {
	order := customerReturnOrder()
	info := ParseRefundInfo(order)
	info.ReasonType = models.RefundReasonStore

	summary := CalculateRefund(order, info)
	assert.Equal(t, int64(0), summary.ReturnPenalty)
	assert.Equal(t, int64(530000), summary.Total) // 500000 + 30000
}

func TestCalculateRefundStoredAmountIsAuthoritative(t *testing.T) {
	order := customerReturnOrder()
	order.RefundAmount = fptr(999999)
	info := ParseRefundInfo(order)
	info.ReasonType = models.RefundReasonStore

	summary := CalculateRefund(order, info)
	assert.Equal(t, int64(999999), summary.Total)
}

func TestCalculateRefundStoredPenaltyIsAuthoritative(t *testing.T) {
	order := customerReturnOrder()
	order.RefundPenaltyAmount = fptr(12345)
	info := ParseRefundInfo(order)
	info.ReasonType = models.RefundReasonCustomer

	summary := CalculateRefund(order, info)
	assert.Equal(t, int64(12345), summary.ReturnPenalty)
	assert.Equal(t, int64(457655), summary.Total) // 500000 - 30000 - 12345
}

func TestCalculateRefundVoucherReconciliation(t *testing.T) {
	// Items sum to 300000 but only 250000 was paid: a voucher applied at
	// order time, so the paid amount drives the product value.
	order := &models.Order{
		ID:          101,
		TotalAmount: 250000,
		ShippingFee: 20000,
		Items: []models.OrderItem{
			{ID: 1, Quantity: 2, TotalPrice: fptr(300000)},
		},
	}
	info := ParseRefundInfo(order)

	summary := CalculateRefund(order, info)
	assert.Equal(t, int64(230000), summary.ProductValue) // 250000 - 20000
}

func TestCalculateRefundSecondShippingFeePrecedence(t *testing.T) {
	order := customerReturnOrder()
	info := ParseRefundInfo(order)

	// refundSecondShippingFee first.
	assert.Equal(t, int64(30000), CalculateRefund(order, info).SecondShippingFee)

	// Then info.returnFee.
	order.RefundSecondShippingFee = nil
	order.Refund = &models.RefundDetails{ReturnFee: fptr(28000)}
	info = ParseRefundInfo(order)
	assert.Equal(t, int64(28000), CalculateRefund(order, info).SecondShippingFee)

	// Then refundReturnFee.
	order.Refund = nil
	order.RefundReturnFee = fptr(26000)
	info = ParseRefundInfo(order)
	assert.Equal(t, int64(26000), CalculateRefund(order, info).SecondShippingFee)

	// Then estimatedReturnShippingFee.
	order.RefundReturnFee = nil
	order.EstimatedReturnShippingFee = fptr(24000)
	info = ParseRefundInfo(order)
	assert.Equal(t, int64(24000), CalculateRefund(order, info).SecondShippingFee)

	// Finally the first-leg shipping fee.
	order.EstimatedReturnShippingFee = nil
	info = ParseRefundInfo(order)
	assert.Equal(t, int64(50000), CalculateRefund(order, info).SecondShippingFee)
}

func TestCalculateRefundEmptyItems(t *testing.T) {
	order := &models.Order{ID: 102, RefundAmount: fptr(75000)}
	info := ParseRefundInfo(order)

	summary := CalculateRefund(order, info)
	assert.Equal(t, int64(75000), summary.Total)
	assert.Equal(t, int64(0), summary.ProductValue)
	assert.Equal(t, int64(0), summary.ShippingFee)
	assert.Equal(t, int64(0), summary.SecondShippingFee)
	assert.Equal(t, int64(0), summary.ReturnPenalty)
	assert.Equal(t, int64(0), summary.TotalPaid)

	// No stored amount at all still yields a defined summary.
	summary = CalculateRefund(&models.Order{ID: 103}, ParseRefundInfo(&models.Order{ID: 103}))
	assert.Equal(t, int64(0), summary.Total)
}

func TestCalculateRefundNilOrder(t *testing.T) {
	summary := CalculateRefund(nil, models.RefundInfo{})
	assert.Equal(t, models.RefundSummary{}, summary)
}

func TestCalculateRefundNeverNegative(t *testing.T) {
	// Return leg and penalty exceed what was paid.
	order := &models.Order{
		ID:          104,
		TotalAmount: 40000,
		ShippingFee: 10000,
		Items: []models.OrderItem{
			{ID: 1, Quantity: 1, TotalPrice: fptr(30000)},
		},
		RefundSecondShippingFee: fptr(60000),
	}
	info := ParseRefundInfo(order)
	info.ReasonType = models.RefundReasonCustomer

	summary := CalculateRefund(order, info)
	assert.GreaterOrEqual(t, summary.ProductValue, int64(0))
	assert.GreaterOrEqual(t, summary.ShippingFee, int64(0))
	assert.GreaterOrEqual(t, summary.SecondShippingFee, int64(0))
	assert.GreaterOrEqual(t, summary.ReturnPenalty, int64(0))
	assert.GreaterOrEqual(t, summary.TotalPaid, int64(0))
	assert.Equal(t, int64(0), summary.Total)
}

func TestCalculateRefundSelectedProductsSubset(t *testing.T) {
	order := customerReturnOrder()
	order.RefundTotalPaid = fptr(350000) // matches item 1 + shipping
	info := ParseRefundInfo(order)
	info.SelectedProducts = []int64{1}

	summary := CalculateRefund(order, info)
	assert.Equal(t, int64(300000), summary.ProductValue)
	assert.Equal(t, int64(350000), summary.TotalPaid)
}

func TestCalculateRefundFinalPriceFallback(t *testing.T) {
	order := &models.Order{
		ID:          105,
		TotalAmount: 220000,
		ShippingFee: 20000,
		Items: []models.OrderItem{
			{ID: 1, Quantity: 1, TotalPrice: fptr(120000)},
			{ID: 2, Quantity: 1, FinalPrice: fptr(80000)}, // no totalPrice on legacy rows
		},
	}
	info := ParseRefundInfo(order)

	summary := CalculateRefund(order, info)
	assert.Equal(t, int64(200000), summary.ProductValue)
}

func TestRefundComputationIsIdempotent(t *testing.T) {
	order := customerReturnOrder()
	order.Note = "Thay đổi nhu cầu\nMô tả: không hợp da"

	first := ParseRefundInfo(order)
	second := ParseRefundInfo(order)
	assert.Equal(t, first, second)

	firstSummary := CalculateRefund(order, first)
	secondSummary := CalculateRefund(order, second)
	assert.Equal(t, firstSummary, secondSummary)
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0 ₫", FormatVND(0))
	assert.Equal(t, "999 ₫", FormatVND(999))
	assert.Equal(t, "1.250.000 ₫", FormatVND(1250000))
	assert.Equal(t, "-45.000 ₫", FormatVND(-45000))
}
