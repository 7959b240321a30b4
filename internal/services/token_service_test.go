package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/config"
	"github.com/dmcguire80/Budget-Reduction-Tracking-sub001/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	service    TokenServiceInterface
	issuer     string
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Hour,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) signClaims(claims models.CustomClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.privateKey)
	s.Require().NoError(err)
	return signed
}

func (s *TokenServiceTestSuite) claimsFor(userID string, expiresAt time.Time) models.CustomClaims {
	return models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    userID,
		TokenType: TokenTypeAccess,
	}
}

func (s *TokenServiceTestSuite) TestGenerateAndValidateAccessToken() {
	userID := uuid.New()

	token, expiresAt, err := s.service.GenerateAccessToken(userID, "customer")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(2 * time.Hour)))

	claims, err := s.service.ValidateAccessToken(token)
	s.Require().NoError(err)
	s.Equal(userID.String(), claims.UserID)
	s.Equal("customer", claims.Role)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.Equal(s.issuer, claims.Issuer)
	s.NotEmpty(claims.ID)
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_NilUser() {
	token, _, err := s.service.GenerateAccessToken(uuid.Nil, "customer")
	s.Error(err)
	s.Empty(token)
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_VerifyOnlyKeys() {
	verifier := NewTokenService(&config.JWTConfig{
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Hour,
	})

	token, _, err := verifier.GenerateAccessToken(uuid.New(), "customer")
	s.ErrorIs(err, ErrSigningDisabled)
	s.Empty(token)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_EmptyToken() {
	claims, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Malformed() {
	claims, err := s.service.ValidateAccessToken("not.a.jwt")
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Expired() {
	token := s.signClaims(s.claimsFor(uuid.NewString(), time.Now().Add(-time.Minute)))

	claims, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongIssuer() {
	claims := s.claimsFor(uuid.NewString(), time.Now().Add(time.Hour))
	claims.Issuer = "someone-else"

	parsed, err := s.service.ValidateAccessToken(s.signClaims(claims))
	s.ErrorIs(err, ErrInvalidIssuer)
	s.Nil(parsed)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongTokenType() {
	claims := s.claimsFor(uuid.NewString(), time.Now().Add(time.Hour))
	claims.TokenType = "refresh"

	parsed, err := s.service.ValidateAccessToken(s.signClaims(claims))
	s.ErrorIs(err, ErrInvalidTokenType)
	s.Nil(parsed)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_MalformedUserID() {
	parsed, err := s.service.ValidateAccessToken(s.signClaims(s.claimsFor("not-a-uuid", time.Now().Add(time.Hour))))
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(parsed)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_DifferentKeys() {
	otherPrivate, otherPublic, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	other := NewTokenService(&config.JWTConfig{
		PrivateKey:          otherPrivate,
		PublicKey:           otherPublic,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Hour,
	})

	token, _, err := other.GenerateAccessToken(uuid.New(), "customer")
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsHMAC() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, s.claimsFor(uuid.NewString(), time.Now().Add(time.Hour)))
	signed, err := token.SignedString([]byte("shared-secret"))
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(signed)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase bearer", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "no prefix", header: "abc.def.ghi", wantErr: true},
		{name: "empty", header: "", wantErr: true},
		{name: "only bearer", header: "Bearer", wantErr: true},
		{name: "bearer and space", header: "Bearer ", wantErr: true},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tc.header)
			if tc.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				s.Empty(token)
				return
			}
			s.NoError(err)
			s.Equal(tc.want, token)
		})
	}
}
