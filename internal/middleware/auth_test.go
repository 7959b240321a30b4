package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/config"
	apperrors "github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/errors"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/handlers"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/services"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tokenService services.TokenServiceInterface
	mockTokens   *service_mocks.MockTokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.tokenService = services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	})
	s.mockTokens = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) serve(tokens services.TokenServiceInterface, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.Require().NoError(RequireAuth(tokens)(next)(c))
	return rec
}

func (s *AuthMiddlewareSuite) okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	userID := uuid.New()
	token, _, err := s.tokenService.GenerateAccessToken(userID, "customer")
	s.Require().NoError(err)

	rec := s.serve(s.tokenService, "Bearer "+token, func(c echo.Context) error {
		s.Equal(userID, c.Get(handlers.UserIDContextKey))
		s.Equal("customer", c.Get(handlers.UserRoleContextKey))
		s.NotEmpty(c.Get("token_jti"))
		return s.okHandler(c)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec := s.serve(s.tokenService, "", s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidHeaderFormat() {
	rec := s.serve(s.tokenService, "Token abc", s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidToken() {
	rec := s.serve(s.tokenService, "Bearer not.a.token", s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	s.mockTokens.EXPECT().ExtractTokenFromHeader("Bearer expired").Return("expired", nil)
	s.mockTokens.EXPECT().ValidateAccessToken("expired").Return(nil, services.ErrExpiredToken)

	rec := s.serve(s.mockTokens, "Bearer expired", s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedUserID() {
	s.mockTokens.EXPECT().ExtractTokenFromHeader("Bearer odd").Return("odd", nil)
	s.mockTokens.EXPECT().ValidateAccessToken("odd").Return(&models.CustomClaims{UserID: "not-a-uuid"}, nil)

	rec := s.serve(s.mockTokens, "Bearer odd", s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromOtherIssuer() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	other := services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	})
	token, _, err := other.GenerateAccessToken(uuid.New(), "customer")
	s.Require().NoError(err)

	rec := s.serve(s.tokenService, "Bearer "+token, s.okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
}
