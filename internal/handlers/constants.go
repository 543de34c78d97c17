package handlers

const (
	ErrInvalidJSON         = "Invalid JSON body"
	ErrInvalidIndex        = "Invalid index"
	ErrTooManyRequests     = "Too many requests"
	ErrInternalServerError = "Internal server error"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds JSON and import request bodies
const maxBodyBytes = 4 << 20
