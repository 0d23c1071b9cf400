package models

// Refund reason classification. Store fault means a free return; customer
// fault (change of mind) means the customer bears return shipping plus a
// penalty.
const (
	RefundReasonStore    = "store"
	RefundReasonCustomer = "customer"
)

// Canonical reason phrases shown in the storefront and, on legacy orders,
// embedded verbatim inside the note field.
const (
	RefundReasonStoreText    = "Sản phẩm gặp sự cố từ cửa hàng"
	RefundReasonCustomerText = "Thay đổi nhu cầu"
)

// RefundInfo is the structured refund request derived from an order. It is
// recomputed on every read and never persisted.
type RefundInfo struct {
	Reason           string   `json:"reason"`
	ReasonType       string   `json:"reasonType,omitempty"`
	Description      string   `json:"description,omitempty"`
	ReturnAddress    string   `json:"returnAddress,omitempty"`
	RefundMethod     string   `json:"refundMethod,omitempty"`
	Bank             string   `json:"bank,omitempty"`
	AccountNumber    string   `json:"accountNumber,omitempty"`
	AccountHolder    string   `json:"accountHolder,omitempty"`
	MediaURLs        []string `json:"mediaUrls"`
	SelectedProducts []int64  `json:"selectedProducts"`

	// Carried over from the order so the calculator sees one input.
	RefundAmount *float64 `json:"refundAmount,omitempty"`
	ReturnFee    *float64 `json:"returnFee,omitempty"`
}

// RefundSummary is the money breakdown of a refund. All amounts are VND,
// which has no fractional subunit, so everything is a non-negative integer.
type RefundSummary struct {
	ProductValue      int64 `json:"productValue"`
	ShippingFee       int64 `json:"shippingFee"`
	SecondShippingFee int64 `json:"secondShippingFee"`
	ReturnPenalty     int64 `json:"returnPenalty"`
	Total             int64 `json:"total"`
	TotalPaid         int64 `json:"totalPaid"`
}
