package models

import (
	"encoding/json"
	"time"
)

// Order mirrors the order record served by the commerce backend. This service
// never writes orders; every field is read-only here.
type Order struct {
	ID          int64       `json:"id"`
	Code        string      `json:"code"`
	UserID      int64       `json:"userId,omitempty"`
	Status      string      `json:"status"`
	Note        string      `json:"note,omitempty"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	ShippingFee float64     `json:"shippingFee"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty"`

	// Dedicated refund fields, present on newer orders only. Legacy orders
	// carry the same information inside Note as labeled lines.
	RefundReasonType        string   `json:"refundReasonType,omitempty"`
	RefundDescription       string   `json:"refundDescription,omitempty"`
	RefundReturnAddress     string   `json:"refundReturnAddress,omitempty"`
	RefundMethod            string   `json:"refundMethod,omitempty"`
	RefundBank              string   `json:"refundBank,omitempty"`
	RefundAccountNumber     string   `json:"refundAccountNumber,omitempty"`
	RefundAccountHolder     string   `json:"refundAccountHolder,omitempty"`
	RefundMediaURLs         string   `json:"refundMediaUrls,omitempty"`
	RefundAmount            *float64 `json:"refundAmount,omitempty"`
	RefundTotalPaid         *float64 `json:"refundTotalPaid,omitempty"`
	RefundSecondShippingFee *float64 `json:"refundSecondShippingFee,omitempty"`
	RefundReturnFee         *float64 `json:"refundReturnFee,omitempty"`
	RefundPenaltyAmount     *float64 `json:"refundPenaltyAmount,omitempty"`
	RefundConfirmedAmount   *float64 `json:"refundConfirmedAmount,omitempty"`
	RefundRejectionReason   string   `json:"refundRejectionReason,omitempty"`
	RefundRejectionSource   string   `json:"refundRejectionSource,omitempty"`

	EstimatedReturnShippingFee *float64 `json:"estimatedReturnShippingFee,omitempty"`

	// Legacy media carriers, kept for orders created before refundMediaUrls
	// existed. The parser tries them in a fixed order.
	Refund      *RefundDetails `json:"refund,omitempty"`
	MediaURLs   []string       `json:"mediaUrls,omitempty"`
	Attachments []Attachment   `json:"attachments,omitempty"`
	Files       []Attachment   `json:"files,omitempty"`
}

// OrderItem is a single line item on an order. TotalPrice and FinalPrice are
// pointers because historical records carry only one of the two.
type OrderItem struct {
	ID         int64    `json:"id"`
	ProductID  int64    `json:"productId,omitempty"`
	Name       string   `json:"name,omitempty"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice,omitempty"`
	FinalPrice *float64 `json:"finalPrice,omitempty"`
	TotalPrice *float64 `json:"totalPrice,omitempty"`
}

// RefundDetails is the nested refund object some backend versions return.
type RefundDetails struct {
	MediaURLs []string `json:"mediaUrls,omitempty"`
	ReturnFee *float64 `json:"returnFee,omitempty"`
}

// Attachment decodes both shapes the backend has used over time: a plain URL
// string, or an object carrying "url" or "path".
type Attachment struct {
	URL string
}

// UnmarshalJSON accepts "https://..." as well as {"url": ...} / {"path": ...}.
// Anything unreadable decodes to an empty URL rather than failing the order.
func (a *Attachment) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		a.URL = plain
		return nil
	}
	var obj struct {
		URL  string `json:"url"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		a.URL = ""
		return nil
	}
	if obj.URL != "" {
		a.URL = obj.URL
	} else {
		a.URL = obj.Path
	}
	return nil
}

// MarshalJSON keeps attachments symmetric on the way out.
func (a Attachment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.URL)
}

// ItemIDs returns the IDs of all line items in order.
func (o *Order) ItemIDs() []int64 {
	ids := make([]int64, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ID)
	}
	return ids
}
