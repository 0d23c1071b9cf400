package utils

import (
	"math"

	"github.com/liennt-dev/GlowCart/models"
)

// ReturnPenaltyRate is the share of product value deducted when the customer
// is at fault for the return. Fixed by store policy; the backend applies the
// same rate when it confirms a refund.
const ReturnPenaltyRate = 0.10

// voucherEpsilon is the tolerance for deciding whether an order total was
// discounted at purchase time (vouchers), in which case the item sum no
// longer reflects what the customer actually paid.
const voucherEpsilon = 0.01

// CalculateRefund computes the money breakdown of a refund from an order
// snapshot and its parsed refund info. It is a pure function: same inputs,
// same summary. All outputs are VND, rounded half-up and clamped at zero.
//
// Stored amounts always win over formulas: refundPenaltyAmount and
// refundAmount are staff-confirmed values and are used verbatim.
func CalculateRefund(order *models.Order, info models.RefundInfo) models.RefundSummary {
	if order == nil {
		return models.RefundSummary{}
	}

	if len(order.Items) == 0 {
		return degenerateSummary(order, info)
	}

	totalPaid := order.TotalAmount
	if order.RefundTotalPaid != nil {
		totalPaid = *order.RefundTotalPaid
	}

	shippingFee := order.ShippingFee

	productValue := selectedItemsValue(order.Items, info.SelectedProducts)
	// A gap between what was paid and items+shipping means a voucher or
	// discount applied at order time; the paid amount is authoritative then.
	if math.Abs(totalPaid-(productValue+shippingFee)) > voucherEpsilon {
		productValue = math.Max(0, totalPaid-shippingFee)
	}

	secondShippingFee := resolveSecondShippingFee(order, info)

	returnPenalty := 0.0
	if order.RefundPenaltyAmount != nil {
		returnPenalty = *order.RefundPenaltyAmount
	} else if info.ReasonType == models.RefundReasonCustomer {
		returnPenalty = roundHalfUp(productValue * ReturnPenaltyRate)
	}

	total := resolveTotal(order, info, totalPaid, secondShippingFee, returnPenalty)

	return models.RefundSummary{
		ProductValue:      clampVND(productValue),
		ShippingFee:       clampVND(shippingFee),
		SecondShippingFee: clampVND(secondShippingFee),
		ReturnPenalty:     clampVND(returnPenalty),
		Total:             clampVND(total),
		TotalPaid:         clampVND(totalPaid),
	}
}

// degenerateSummary covers orders whose items never arrived from the backend.
// Only a stored refund amount can be reported then.
func degenerateSummary(order *models.Order, info models.RefundInfo) models.RefundSummary {
	total := 0.0
	if info.RefundAmount != nil {
		total = *info.RefundAmount
	} else if order.RefundAmount != nil {
		total = *order.RefundAmount
	}
	return models.RefundSummary{Total: clampVND(total)}
}

func selectedItemsValue(items []models.OrderItem, selected []int64) float64 {
	selectedSet := make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	sum := 0.0
	for _, item := range items {
		if _, ok := selectedSet[item.ID]; !ok {
			continue
		}
		switch {
		case item.TotalPrice != nil:
			sum += *item.TotalPrice
		case item.FinalPrice != nil:
			sum += *item.FinalPrice
		}
	}
	return sum
}

// resolveSecondShippingFee picks the return-leg shipping cost from the
// candidate fields accumulated across backend schema versions, newest first.
// The first-leg shippingFee doubles as the estimate of last resort.
func resolveSecondShippingFee(order *models.Order, info models.RefundInfo) float64 {
	candidates := []*float64{
		order.RefundSecondShippingFee,
		info.ReturnFee,
		order.RefundReturnFee,
		order.EstimatedReturnShippingFee,
	}
	for _, candidate := range candidates {
		if candidate != nil {
			return math.Max(0, roundHalfUp(*candidate))
		}
	}
	return math.Max(0, roundHalfUp(order.ShippingFee))
}

func resolveTotal(order *models.Order, info models.RefundInfo, totalPaid, secondShippingFee, returnPenalty float64) float64 {
	if info.RefundAmount != nil {
		return *info.RefundAmount
	}
	if order.RefundAmount != nil {
		return *order.RefundAmount
	}

	if info.ReasonType == models.RefundReasonStore {
		// Store at fault: full refund plus compensation for return shipping.
		return totalPaid + secondShippingFee
	}
	// Customer at fault (or unknown): customer absorbs the return leg and
	// the penalty.
	return math.Max(0, totalPaid-secondShippingFee-returnPenalty)
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clampVND(v float64) int64 {
	rounded := roundHalfUp(v)
	if rounded < 0 {
		return 0
	}
	return int64(rounded)
}
