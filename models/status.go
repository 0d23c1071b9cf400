package models

// Raw order status codes as emitted by the commerce backend. Legacy orders may
// carry free-text Vietnamese statuses instead; see utils.NormalizeOrderStatus.
const (
	OrderStatusCreated              = "CREATED"
	OrderStatusConfirmed            = "CONFIRMED"
	OrderStatusPaid                 = "PAID"
	OrderStatusShipped              = "SHIPPED"
	OrderStatusDelivered            = "DELIVERED"
	OrderStatusReturnRequested      = "RETURN_REQUESTED"
	OrderStatusReturnCSConfirmed    = "RETURN_CS_CONFIRMED"
	OrderStatusReturnStaffConfirmed = "RETURN_STAFF_CONFIRMED"
	OrderStatusRefunded             = "REFUNDED"
	OrderStatusReturnRejected       = "RETURN_REJECTED"
	OrderStatusCancelled            = "CANCELLED"
)

// Status groups used by the storefront UI tabs. Every raw status maps into
// exactly one of these.
const (
	StatusGroupPending   = "pending"
	StatusGroupReady     = "ready"
	StatusGroupShipping  = "shipping"
	StatusGroupDelivered = "delivered"
	StatusGroupReturned  = "returned"
	StatusGroupCancelled = "cancelled"
)

// StatusView is the normalized form of a raw order status.
type StatusView struct {
	DisplayLabel string `json:"displayLabel"`
	GroupKey     string `json:"groupKey"`
}

// StatusGroups lists all UI groups in display order.
func StatusGroups() []string {
	return []string{
		StatusGroupPending,
		StatusGroupReady,
		StatusGroupShipping,
		StatusGroupDelivered,
		StatusGroupReturned,
		StatusGroupCancelled,
	}
}

// returnFlowNext describes the refund lifecycle enforced by the backend. This
// service only reads the current state; it never performs a transition.
var returnFlowNext = map[string][]string{
	OrderStatusReturnRequested:      {OrderStatusReturnCSConfirmed, OrderStatusReturnRejected},
	OrderStatusReturnCSConfirmed:    {OrderStatusReturnStaffConfirmed, OrderStatusReturnRejected},
	OrderStatusReturnStaffConfirmed: {OrderStatusRefunded},
	OrderStatusRefunded:             {},
	OrderStatusReturnRejected:       {},
}

// ReturnFlowNext returns the states the backend may move a return-flow order
// into, for display on the support review screen. Unknown or non-return
// statuses yield an empty list.
func ReturnFlowNext(status string) []string {
	next, ok := returnFlowNext[status]
	if !ok {
		return []string{}
	}
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// InReturnFlow reports whether the raw status is part of the return/refund
// sub-flow.
func InReturnFlow(status string) bool {
	_, ok := returnFlowNext[status]
	return ok
}
