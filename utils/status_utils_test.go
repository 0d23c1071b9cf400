package utils

import (
	"testing"

	"github.com/liennt-dev/GlowCart/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrderStatusEnumCodes(t *testing.T) {
	cases := []struct {
		raw   string
		group string
		label string
	}{
		{"CREATED", models.StatusGroupPending, "Chờ xác nhận"},
		{"CONFIRMED", models.StatusGroupReady, "Đã xác nhận"},
		{"PAID", models.StatusGroupReady, "Đã thanh toán"},
		{"SHIPPED", models.StatusGroupShipping, "Đang giao hàng"},
		{"DELIVERED", models.StatusGroupDelivered, "Đã giao hàng"},
		{"RETURN_REQUESTED", models.StatusGroupReturned, "Yêu cầu trả hàng"},
		{"RETURN_CS_CONFIRMED", models.StatusGroupReturned, "CSKH đã xác nhận trả hàng"},
		{"RETURN_STAFF_CONFIRMED", models.StatusGroupReturned, "Nhân viên đã xác nhận trả hàng"},
		{"REFUNDED", models.StatusGroupReturned, "Đã hoàn tiền"},
		{"RETURN_REJECTED", models.StatusGroupReturned, "Từ chối trả hàng"},
		{"CANCELLED", models.StatusGroupCancelled, "Đã hủy"},
	}

	for _, tc := range cases {
		view := NormalizeOrderStatus(tc.raw)
		assert.Equal(t, tc.group, view.GroupKey, "group for %s", tc.raw)
		assert.Equal(t, tc.label, view.DisplayLabel, "label for %s", tc.raw)
	}
}

func TestNormalizeOrderStatusCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.StatusGroupDelivered, NormalizeOrderStatus("delivered").GroupKey)
	assert.Equal(t, models.StatusGroupReturned, NormalizeOrderStatus("  return_requested  ").GroupKey)
}

func TestNormalizeOrderStatusTotality(t *testing.T) {
	validGroups := map[string]bool{}
	for _, group := range models.StatusGroups() {
		validGroups[group] = true
	}

	inputs := []string{
		"", "   ", "GARBAGE", "42", "đơn hàng lạ", "RETURNED???",
		"CREATED", "CONFIRMED", "PAID", "SHIPPED", "DELIVERED",
		"RETURN_REQUESTED", "RETURN_CS_CONFIRMED", "RETURN_STAFF_CONFIRMED",
		"REFUNDED", "RETURN_REJECTED", "CANCELLED",
	}
	for _, raw := range inputs {
		view := NormalizeOrderStatus(raw)
		assert.True(t, validGroups[view.GroupKey], "group %q for input %q", view.GroupKey, raw)
		assert.NotEmpty(t, view.DisplayLabel, "label for input %q", raw)
	}
}

func TestNormalizeOrderStatusReturnGroupCollapse(t *testing.T) {
	returnCodes := []string{
		"RETURN_REQUESTED", "RETURN_CS_CONFIRMED", "RETURN_STAFF_CONFIRMED",
		"REFUNDED", "RETURN_REJECTED",
	}

	labels := map[string]bool{}
	for _, code := range returnCodes {
		view := NormalizeOrderStatus(code)
		assert.Equal(t, models.StatusGroupReturned, view.GroupKey, "group for %s", code)
		assert.False(t, labels[view.DisplayLabel], "label %q reused by %s", view.DisplayLabel, code)
		labels[view.DisplayLabel] = true
	}
	assert.Len(t, labels, len(returnCodes))
}

func TestNormalizeOrderStatusLegacyText(t *testing.T) {
	cases := []struct {
		raw   string
		group string
	}{
		{"Đơn hàng đang chờ xác nhận", models.StatusGroupPending},
		{"Đã xác nhận, chờ lấy hàng", models.StatusGroupReady},
		{"Đang giao cho đơn vị vận chuyển", models.StatusGroupShipping},
		{"Đã giao thành công", models.StatusGroupDelivered},
		{"Khách yêu cầu trả hàng", models.StatusGroupReturned},
		{"Đã hoàn tiền cho khách", models.StatusGroupReturned},
		{"Đơn bị hủy bởi khách", models.StatusGroupCancelled},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.group, NormalizeOrderStatus(tc.raw).GroupKey, "input %q", tc.raw)
	}
}

func TestNormalizeOrderStatusUnknownDefaultsToPending(t *testing.T) {
	view := NormalizeOrderStatus("SOMETHING_NEW")
	assert.Equal(t, models.StatusGroupPending, view.GroupKey)
	assert.Equal(t, "Chờ xác nhận", view.DisplayLabel)
}

func TestCountStatusGroups(t *testing.T) {
	orders := []models.Order{
		{Status: "CREATED"},
		{Status: "DELIVERED"},
		{Status: "RETURN_REQUESTED"},
		{Status: "REFUNDED"},
		{Status: "totally unknown"},
	}

	counts := CountStatusGroups(orders)
	assert.Equal(t, 2, counts[models.StatusGroupPending]) // unknown falls into pending
	assert.Equal(t, 1, counts[models.StatusGroupDelivered])
	assert.Equal(t, 2, counts[models.StatusGroupReturned])
	assert.Equal(t, 0, counts[models.StatusGroupCancelled])

	// Every group key is present for the UI tabs, even when zero.
	for _, group := range models.StatusGroups() {
		_, ok := counts[group]
		assert.True(t, ok, "missing group %s", group)
	}
}
