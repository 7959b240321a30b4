package handlers

import (
	"net/http"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report client errors with SendError and hide internal failures
// behind SendSystemError. Neither echo.NewHTTPError nor a raw c.JSON is used
// for error bodies.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok || traceID == "" {
		return "unknown"
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendLedgerError reports an account whose transaction history cannot be aggregated
func SendLedgerError(c echo.Context, accountID, reason string) error {
	errorResponse := errors.NewLedgerError(accountID, reason, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
