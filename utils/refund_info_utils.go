package utils

import (
	"encoding/json"
	"strings"

	"github.com/liennt-dev/GlowCart/models"
)

// noteLabels are the labeled lines legacy orders embed in their note field.
// Extraction is label-anchored: a value runs from its label to the nearest
// following label, or to the end of the note.
var noteLabels = []string{
	"Mô tả:",
	"Địa chỉ gửi hàng:",
	"Phương thức hoàn tiền:",
	"Ngân hàng:",
	"Số tài khoản:",
	"Chủ tài khoản:",
	"Lý do:",
}

// ParseRefundInfo extracts the structured refund request from an order.
// Dedicated refund fields always win; the note text is parsed only for legacy
// orders that carry nothing else. The parser never fails: malformed sub-fields
// degrade to their zero values and the rest of the order is still parsed.
func ParseRefundInfo(order *models.Order) models.RefundInfo {
	info := models.RefundInfo{
		MediaURLs:        []string{},
		SelectedProducts: []int64{},
	}
	if order == nil {
		return info
	}

	info.MediaURLs = extractMediaURLs(order)
	info.SelectedProducts = order.ItemIDs()
	info.RefundAmount = order.RefundAmount
	if order.Refund != nil {
		info.ReturnFee = order.Refund.ReturnFee
	}

	if hasDedicatedRefundFields(order, info.MediaURLs) {
		fillFromDedicatedFields(order, &info)
		return info
	}

	fillFromNote(order.Note, &info)
	return info
}

// hasDedicatedRefundFields reports whether the order carries any of the newer
// refund columns. Presence of any one of them means the note must be ignored.
func hasDedicatedRefundFields(order *models.Order, mediaURLs []string) bool {
	return order.RefundReasonType != "" ||
		order.RefundDescription != "" ||
		order.RefundReturnAddress != "" ||
		len(mediaURLs) > 0
}

func fillFromDedicatedFields(order *models.Order, info *models.RefundInfo) {
	info.ReasonType = normalizeReasonType(order.RefundReasonType)
	info.Reason = reasonText(info.ReasonType)
	info.Description = strings.TrimSpace(order.RefundDescription)
	info.ReturnAddress = strings.TrimSpace(order.RefundReturnAddress)
	info.RefundMethod = strings.TrimSpace(order.RefundMethod)
	info.Bank = strings.TrimSpace(order.RefundBank)
	info.AccountNumber = strings.TrimSpace(order.RefundAccountNumber)
	info.AccountHolder = strings.TrimSpace(order.RefundAccountHolder)
}

func fillFromNote(note string, info *models.RefundInfo) {
	if strings.TrimSpace(note) == "" {
		return
	}

	info.Description = extractLabeledValue(note, "Mô tả:")
	info.ReturnAddress = extractLabeledValue(note, "Địa chỉ gửi hàng:")
	info.RefundMethod = extractLabeledValue(note, "Phương thức hoàn tiền:")
	info.Bank = extractLabeledValue(note, "Ngân hàng:")
	info.AccountNumber = extractLabeledValue(note, "Số tài khoản:")
	info.AccountHolder = extractLabeledValue(note, "Chủ tài khoản:")
	info.Reason = extractLabeledValue(note, "Lý do:")

	info.ReasonType = inferReasonType(note)
	if info.Reason == "" {
		info.Reason = reasonText(info.ReasonType)
	}
}

// extractLabeledValue returns the text following label up to the next known
// label or the end of the note, trimmed. Missing labels yield "".
func extractLabeledValue(note, label string) string {
	start := strings.Index(note, label)
	if start < 0 {
		return ""
	}
	start += len(label)

	end := len(note)
	for _, other := range noteLabels {
		if other == label {
			continue
		}
		if idx := strings.Index(note[start:], other); idx >= 0 && start+idx < end {
			end = start + idx
		}
	}
	return strings.TrimSpace(note[start:end])
}

// inferReasonType classifies the fault side from the canonical reason phrases
// the storefront writes into legacy notes.
func inferReasonType(text string) string {
	switch {
	case strings.Contains(text, models.RefundReasonStoreText):
		return models.RefundReasonStore
	case strings.Contains(text, models.RefundReasonCustomerText):
		return models.RefundReasonCustomer
	default:
		return ""
	}
}

func normalizeReasonType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.RefundReasonStore:
		return models.RefundReasonStore
	case models.RefundReasonCustomer:
		return models.RefundReasonCustomer
	default:
		return ""
	}
}

func reasonText(reasonType string) string {
	switch reasonType {
	case models.RefundReasonStore:
		return models.RefundReasonStoreText
	case models.RefundReasonCustomer:
		return models.RefundReasonCustomerText
	default:
		return ""
	}
}

// mediaExtractor pulls candidate media URLs from one historical carrier.
type mediaExtractor func(*models.Order) []string

// mediaExtractors run in precedence order; the first one returning anything
// wins. The list tracks the backend's schema history, newest field first.
var mediaExtractors = []mediaExtractor{
	mediaFromRefundMediaURLs,
	mediaFromRefundDetails,
	mediaFromMediaURLs,
	mediaFromAttachments,
	mediaFromFiles,
}

func extractMediaURLs(order *models.Order) []string {
	for _, extract := range mediaExtractors {
		if urls := extract(order); len(urls) > 0 {
			return urls
		}
	}
	return []string{}
}

// mediaFromRefundMediaURLs decodes the JSON-encoded URL array the backend
// stores today. Invalid JSON is tolerated: legacy rows hold garbage here.
func mediaFromRefundMediaURLs(order *models.Order) []string {
	raw := strings.TrimSpace(order.RefundMediaURLs)
	if raw == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		LogDebug("Skipping malformed refundMediaUrls on order %d: %v", order.ID, err)
		return nil
	}
	return compactURLs(urls)
}

func mediaFromRefundDetails(order *models.Order) []string {
	if order.Refund == nil {
		return nil
	}
	return compactURLs(order.Refund.MediaURLs)
}

func mediaFromMediaURLs(order *models.Order) []string {
	return compactURLs(order.MediaURLs)
}

func mediaFromAttachments(order *models.Order) []string {
	return attachmentURLs(order.Attachments)
}

func mediaFromFiles(order *models.Order) []string {
	return attachmentURLs(order.Files)
}

func attachmentURLs(attachments []models.Attachment) []string {
	urls := make([]string, 0, len(attachments))
	for _, a := range attachments {
		if strings.TrimSpace(a.URL) != "" {
			urls = append(urls, a.URL)
		}
	}
	if len(urls) == 0 {
		return nil
	}
	return urls
}

func compactURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			out = append(out, u)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
