package utils

import (
	"strings"

	"github.com/liennt-dev/GlowCart/models"
)

// statusTable maps backend status codes to their storefront presentation.
// All five return-flow codes land in the single "returned" group on purpose:
// the UI filters returns as one tab while still showing distinct labels.
var statusTable = map[string]models.StatusView{
	models.OrderStatusCreated:              {DisplayLabel: "Chờ xác nhận", GroupKey: models.StatusGroupPending},
	models.OrderStatusConfirmed:            {DisplayLabel: "Đã xác nhận", GroupKey: models.StatusGroupReady},
	models.OrderStatusPaid:                 {DisplayLabel: "Đã thanh toán", GroupKey: models.StatusGroupReady},
	models.OrderStatusShipped:              {DisplayLabel: "Đang giao hàng", GroupKey: models.StatusGroupShipping},
	models.OrderStatusDelivered:            {DisplayLabel: "Đã giao hàng", GroupKey: models.StatusGroupDelivered},
	models.OrderStatusReturnRequested:      {DisplayLabel: "Yêu cầu trả hàng", GroupKey: models.StatusGroupReturned},
	models.OrderStatusReturnCSConfirmed:    {DisplayLabel: "CSKH đã xác nhận trả hàng", GroupKey: models.StatusGroupReturned},
	models.OrderStatusReturnStaffConfirmed: {DisplayLabel: "Nhân viên đã xác nhận trả hàng", GroupKey: models.StatusGroupReturned},
	models.OrderStatusRefunded:             {DisplayLabel: "Đã hoàn tiền", GroupKey: models.StatusGroupReturned},
	models.OrderStatusReturnRejected:       {DisplayLabel: "Từ chối trả hàng", GroupKey: models.StatusGroupReturned},
	models.OrderStatusCancelled:            {DisplayLabel: "Đã hủy", GroupKey: models.StatusGroupCancelled},
}

// legacyKeyword matches free-text Vietnamese statuses found on orders that
// predate the status enum. Order matters: more specific phrases come first
// ("chờ xác nhận" before "đã xác nhận", "đang giao" before "đã giao").
type legacyKeyword struct {
	keyword string
	view    models.StatusView
}

var legacyKeywords = []legacyKeyword{
	{"chờ xác nhận", models.StatusView{DisplayLabel: "Chờ xác nhận", GroupKey: models.StatusGroupPending}},
	{"chờ duyệt", models.StatusView{DisplayLabel: "Chờ xác nhận", GroupKey: models.StatusGroupPending}},
	{"đã thanh toán", models.StatusView{DisplayLabel: "Đã thanh toán", GroupKey: models.StatusGroupReady}},
	{"đã xác nhận", models.StatusView{DisplayLabel: "Đã xác nhận", GroupKey: models.StatusGroupReady}},
	{"đang giao", models.StatusView{DisplayLabel: "Đang giao hàng", GroupKey: models.StatusGroupShipping}},
	{"vận chuyển", models.StatusView{DisplayLabel: "Đang giao hàng", GroupKey: models.StatusGroupShipping}},
	{"đã giao", models.StatusView{DisplayLabel: "Đã giao hàng", GroupKey: models.StatusGroupDelivered}},
	{"hoàn tiền", models.StatusView{DisplayLabel: "Đã hoàn tiền", GroupKey: models.StatusGroupReturned}},
	{"trả hàng", models.StatusView{DisplayLabel: "Yêu cầu trả hàng", GroupKey: models.StatusGroupReturned}},
	{"hủy", models.StatusView{DisplayLabel: "Đã hủy", GroupKey: models.StatusGroupCancelled}},
	{"huỷ", models.StatusView{DisplayLabel: "Đã hủy", GroupKey: models.StatusGroupCancelled}},
}

// defaultStatusView is where everything unrecognized (including empty input)
// lands. Falling back to pending keeps unknown orders visible in the first
// tab instead of dropping them.
var defaultStatusView = models.StatusView{
	DisplayLabel: "Chờ xác nhận",
	GroupKey:     models.StatusGroupPending,
}

// NormalizeOrderStatus maps a raw backend status, or a legacy free-text
// Vietnamese status, to its display label and UI group. It never fails; input
// that matches nothing normalizes to the pending group.
func NormalizeOrderStatus(raw string) models.StatusView {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaultStatusView
	}

	if view, ok := statusTable[strings.ToUpper(trimmed)]; ok {
		return view
	}

	lowered := strings.ToLower(trimmed)
	for _, entry := range legacyKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.view
		}
	}

	LogDebug("Unrecognized order status %q, defaulting to pending", raw)
	return defaultStatusView
}

// CountStatusGroups tallies orders per UI group for the tab badges.
func CountStatusGroups(orders []models.Order) map[string]int {
	counts := make(map[string]int, len(models.StatusGroups()))
	for _, group := range models.StatusGroups() {
		counts[group] = 0
	}
	for _, order := range orders {
		counts[NormalizeOrderStatus(order.Status).GroupKey]++
	}
	return counts
}
