package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/dto"
	apierrors "github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/errors"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/repositories"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultDevRole       = "user"
	defaultHistoryMonths = 12
	maxHistoryMonths     = 60
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	tokenService    services.TokenServiceInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.LedgerHistoryGeneratorInterface
	now             func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	tokenService services.TokenServiceInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	generator services.LedgerHistoryGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		tokenService:    tokenService,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		generator:       generator,
		now:             time.Now,
	}
}

// IssueToken mints an access token for any owner so reports can be requested locally
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Request body:
//   - user_id: owner UUID (required)
//   - role: user or admin (optional, default user)
//
// Error Responses:
//   - 400: Invalid request body
//   - 500: Signing key not configured
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return sendRequestValidationError(c, err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("user_id must be a valid UUID"))
	}

	role := req.Role
	if role == "" {
		role = defaultDevRole
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(userID, role)
	if err != nil {
		if errors.Is(err, services.ErrSigningDisabled) {
			return SendError(c, apierrors.SystemConfigurationError, apierrors.WithDetails("JWT_PRIVATE_KEY is not configured"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
		},
	})
}

// GenerateTestData fills an empty account with generated payments, charges and interest
//
// Method: POST /api/v1/dev/accounts/:accountId/generate-test-data
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - months: Months of history ending today (default: 12, max: 60)
//
// Error Responses:
//   - 400: Invalid account ID, or the account already has transactions
//   - 401: Unauthorized
//   - 404: Account not found or owned by someone else
//   - 500: Internal server error
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	account, err := h.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}
	if account.UserID != ownerID {
		return SendError(c, apierrors.AccountNotFound)
	}

	existing, err := h.transactionRepo.ListByAccountID(accountID, nil)
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(existing) > 0 {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("account already has transactions"))
	}

	months := getIntQueryParam(c, "months", defaultHistoryMonths)
	if months < 1 {
		months = 1
	}
	if months > maxHistoryMonths {
		months = maxHistoryMonths
	}

	if !account.OpeningBalance.Valid {
		account.OpeningBalance = decimal.NewNullDecimal(account.CurrentBalance)
	}

	endDate := models.DateOf(h.now())
	startDate := endDate.AddDate(0, -months, 0)
	history, ending := h.generator.GenerateHistory(account, startDate, endDate)

	if err := h.transactionRepo.CreateBatch(history); err != nil {
		return SendSystemError(c, err)
	}

	account.CurrentBalance = ending
	if err := h.accountRepo.Update(account); err != nil {
		return SendSystemError(c, err)
	}

	slog.InfoContext(c.Request().Context(), "generated demo ledger",
		"account_id", accountID,
		"transactions", len(history),
		"months", months)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "test data generated successfully",
		Data: map[string]interface{}{
			"account_id":           accountID,
			"transactions_created": len(history),
			"opening_balance":      account.OpeningBalance.Decimal.StringFixed(models.MoneyPlaces),
			"current_balance":      ending.StringFixed(models.MoneyPlaces),
			"date_range": map[string]string{
				"start": startDate.Format(asOfLayout),
				"end":   endDate.Format(asOfLayout),
			},
		},
	})
}

// getIntQueryParam reads an integer query parameter, falling back on absence or parse failure
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	value, err := strconv.Atoi(c.QueryParam(key))
	if err != nil {
		return defaultValue
	}
	return value
}
