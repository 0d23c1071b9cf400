package utils

// Application constants
const (
	// Application name
	AppName = "GlowCart Support"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default commerce backend base URL
	DefaultBackendBaseURL = "http://localhost:8081"

	// Default timeout for calls to the commerce backend
	DefaultBackendTimeout = "15s"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"
)

// Error messages
const (
	// Authentication errors
	ErrInvalidToken = "Invalid or expired token"
	ErrUnauthorized = "Unauthorized access"
	ErrForbidden    = "Access forbidden"
	ErrStaffOnly    = "Support staff access required"

	// Upstream errors
	ErrBackendUnavailable = "Store service is temporarily unavailable"
	ErrOrderNotFound      = "Order not found"

	// Validation errors
	ErrInvalidOrderID    = "Invalid order ID"
	ErrInvalidPagination = "Invalid pagination parameters"
	ErrInvalidGroup      = "Unknown status group"

	// Server errors
	ErrInternalServer = "Internal server error"
)

// Success messages
const (
	MsgOrdersFetched   = "Orders fetched successfully"
	MsgOrderFetched    = "Order fetched successfully"
	MsgRefundComputed  = "Refund breakdown computed successfully"
	MsgReturnsFetched  = "Return requests fetched successfully"
	MsgStatementSent   = "Refund statement sent successfully"
	MsgExportGenerated = "Export generated successfully"
)
