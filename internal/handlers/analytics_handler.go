package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/analytics"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/dto"
	apierrors "github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/errors"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const asOfLayout = "2006-01-02"

// AnalyticsHandler serves the debt reduction reports of the authenticated owner
type AnalyticsHandler struct {
	analyticsService services.DebtAnalyticsServiceInterface
	now              func() time.Time
}

// NewAnalyticsHandler creates a new analytics handler. Requests without asOf
// are reported as of today's UTC date.
func NewAnalyticsHandler(analyticsService services.DebtAnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		now:              time.Now,
	}
}

// WithClock replaces the clock used for the default reporting date
func (h *AnalyticsHandler) WithClock(now func() time.Time) *AnalyticsHandler {
	h.now = now
	return h
}

// GetAccountSummary returns one account with its debt reduction analytics
//
// Method: GET /api/v1/accounts/:accountId/summary
// Authentication: Required (JWT)
//
// Query parameters:
//   - asOf: reporting date YYYY-MM-DD (optional, defaults to today UTC)
//
// Error Responses:
//   - 400: Invalid account ID or asOf
//   - 401: Unauthorized
//   - 404: Account not found or owned by someone else
//   - 422: Account ledger cannot be aggregated
//   - 500: Internal server error
func (h *AnalyticsHandler) GetAccountSummary(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.AccountSummaryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return sendRequestValidationError(c, err)
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	asOf, err := h.resolveAsOf(req.AsOf)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("asOf must be a date in the format YYYY-MM-DD"))
	}

	summary, err := h.analyticsService.ComputeAccountSummary(c.Request().Context(), ownerID, accountID, asOf)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// GetDashboardOverview returns portfolio totals and trends across active accounts
//
// Method: GET /api/v1/dashboard/overview
// Authentication: Required (JWT)
//
// Query parameters:
//   - asOf: reporting date YYYY-MM-DD (optional, defaults to today UTC)
func (h *AnalyticsHandler) GetDashboardOverview(c echo.Context) error {
	ownerID, asOf, err := h.bindPortfolioRequest(c)
	if err != nil || ownerID == uuid.Nil {
		return err
	}

	overview, err := h.analyticsService.ComputeDashboardOverview(c.Request().Context(), ownerID, asOf)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: overview})
}

// GetProgressSummary returns per-account progress for every account, closed ones included
//
// Method: GET /api/v1/progress
// Authentication: Required (JWT)
//
// Query parameters:
//   - asOf: reporting date YYYY-MM-DD (optional, defaults to today UTC)
func (h *AnalyticsHandler) GetProgressSummary(c echo.Context) error {
	ownerID, asOf, err := h.bindPortfolioRequest(c)
	if err != nil || ownerID == uuid.Nil {
		return err
	}

	progress, err := h.analyticsService.ComputeProgressSummary(c.Request().Context(), ownerID, asOf)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: progress})
}

// bindPortfolioRequest returns a nil owner once an error response has been written
func (h *AnalyticsHandler) bindPortfolioRequest(c echo.Context) (uuid.UUID, time.Time, error) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return uuid.Nil, time.Time{}, SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.AnalyticsQuery
	if err := c.Bind(&query); err != nil {
		return uuid.Nil, time.Time{}, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return uuid.Nil, time.Time{}, sendRequestValidationError(c, err)
	}

	asOf, err := h.resolveAsOf(query.AsOf)
	if err != nil {
		return uuid.Nil, time.Time{}, SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("asOf must be a date in the format YYYY-MM-DD"))
	}

	return ownerID, asOf, nil
}

func (h *AnalyticsHandler) resolveAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return models.DateOf(h.now()), nil
	}
	return time.ParseInLocation(asOfLayout, raw, time.UTC)
}

func (h *AnalyticsHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return SendError(c, apierrors.AccountNotFound)
	}

	var ledgerErr *analytics.InvalidLedgerStateError
	if errors.As(err, &ledgerErr) {
		return SendLedgerError(c, ledgerErr.AccountID.String(), ledgerErr.Reason)
	}

	if errors.Is(err, services.ErrInvalidAsOf) {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	if errors.Is(err, services.ErrInvalidOwner) {
		return SendError(c, apierrors.AuthMissingToken)
	}

	if errors.Is(err, services.ErrLedgerUnavailable) {
		return SendError(c, apierrors.SystemServiceUnavailable)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return SendError(c, apierrors.AnalyticsCanceled)
	}

	slog.ErrorContext(c.Request().Context(), "analytics report failed",
		"trace_id", getTraceID(c),
		"path", c.Path(),
		"error", err)
	return SendSystemError(c, err)
}

// sendRequestValidationError reports the first failing field with the code matching it
func sendRequestValidationError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	code := apierrors.ValidationGeneral
	for _, fe := range validationErrs {
		switch fe.Field() {
		case "accountId":
			code = apierrors.AccountInvalidID
			fieldErrors[fe.Field()] = "must be a valid UUID"
		case "asOf":
			if code == apierrors.ValidationGeneral {
				code = apierrors.ValidationInvalidDate
			}
			fieldErrors[fe.Field()] = "must be a date in the format YYYY-MM-DD"
		default:
			fieldErrors[fe.Field()] = "failed validation for '" + fe.Tag() + "'"
		}
	}

	response := apierrors.NewValidationError(fieldErrors, getTraceID(c))
	response.Error.Code = string(code)
	response.Error.Message = apierrors.GetErrorMessage(code)
	return c.JSON(response.GetHTTPStatus(), response)
}
