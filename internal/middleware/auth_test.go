package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string
}

func (suite *AuthMiddlewareTestSuite) generateToken(userID string, orgs []int64, expiresIn time.Duration) string {
	signed, err := middleware.GenerateLedgerToken(userID, orgs, suite.jwtSecret, "ledger-test", expiresIn)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router = gin.New()

	group := suite.router.Group("/organizations/:org_id",
		middleware.AuthMiddleware(suite.jwtSecret),
		middleware.OrganizationAccess(),
	)
	group.GET("/whoami", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		orgID, _ := middleware.GetOrganizationIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "organizationId": orgID})
	})
}

func (suite *AuthMiddlewareTestSuite) do(path, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthMiddlewareTestSuite) TestValidTokenAndMembership() {
	w := suite.do("/organizations/7/whoami", "Bearer "+suite.generateToken("user-1", []int64{3, 7}, time.Hour))

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("user-1", body["userId"])
	suite.Equal(float64(7), body["organizationId"])
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	w := suite.do("/organizations/7/whoami", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestMalformedHeader() {
	w := suite.do("/organizations/7/whoami", "Token abc")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestExpiredToken() {
	w := suite.do("/organizations/7/whoami", "Bearer "+suite.generateToken("user-1", []int64{7}, -time.Minute))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Token has expired")
}

func (suite *AuthMiddlewareTestSuite) TestWrongSecret() {
	claims := middleware.LedgerClaims{
		Organizations:    []int64{7},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	suite.Require().NoError(err)

	w := suite.do("/organizations/7/whoami", "Bearer "+signed)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestForeignOrganization() {
	w := suite.do("/organizations/9/whoami", "Bearer "+suite.generateToken("user-1", []int64{7}, time.Hour))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "FORBIDDEN")
}

func (suite *AuthMiddlewareTestSuite) TestInvalidOrganizationID() {
	w := suite.do("/organizations/abc/whoami", "Bearer "+suite.generateToken("user-1", []int64{7}, time.Hour))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestGenerateLedgerTokenRequiresSubject() {
	_, err := middleware.GenerateLedgerToken("", []int64{7}, suite.jwtSecret, "ledger-test", time.Hour)
	suite.Error(err)
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
