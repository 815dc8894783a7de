package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/invoice_management_app/internal/core/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/handlers"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/SscSPs/invoice_management_app/internal/platform/config"
	"github.com/SscSPs/invoice_management_app/internal/repositories/memory"
)

// APITestSuite drives the whole router against in-memory repositories.
type APITestSuite struct {
	suite.Suite
	router *gin.Engine
	token  string
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		IsProduction:       true,
		JWTSecret:          "api-test-secret",
		JWTExpiryDuration:  time.Hour,
		JWTIssuer:          "api-test",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	loginLimiter, err := middleware.NewLimiter("3-M", nil)
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services.NewServiceContainer(cfg, memory.NewRepositoryProvider()), loginLimiter)

	w := suite.request(http.MethodPost, "/api/v1/auth/signup", map[string]any{
		"email":    "Owner@Example.com",
		"password": "password123",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var auth dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &auth))
	suite.Equal("owner@example.com", auth.User.Email)
	suite.Equal("owner", auth.User.Name)
	suite.token = auth.Token
}

func (suite *APITestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if suite.token != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (suite *APITestSuite) TestInvoicePaymentFlow() {
	w := suite.request(http.MethodPost, "/api/v1/invoices", map[string]any{
		"invoiceNumber": "INV-2024-001",
		"customerName":  "Acme Corporation",
		"issueDate":     "2024-01-01",
		"dueDate":       "2024-01-31",
		"lineItems": []map[string]any{
			{"description": "Web Development Services", "quantity": 40, "unitPrice": "150.00"},
			{"description": "Hosting Setup", "quantity": 1, "unitPrice": "499.99"},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.CreateInvoiceResponse
	suite.decode(w, &created)
	base := "/api/v1/invoices/" + created.InvoiceID

	var totals dto.TotalsResponse
	suite.decode(suite.request(http.MethodGet, base+"/totals", nil), &totals)
	suite.True(decimal.RequireFromString("6499.99").Equal(totals.Total))

	w = suite.request(http.MethodPost, base+"/payments", map[string]any{"amount": "6000"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var paid dto.RecordPaymentResponse
	suite.decode(w, &paid)
	suite.True(decimal.RequireFromString("499.99").Equal(paid.Totals.BalanceDue))

	w = suite.request(http.MethodPost, base+"/payments", map[string]any{"amount": "499.99"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.request(http.MethodPost, base+"/payments", map[string]any{"amount": "0.01"})
	suite.Equal(http.StatusBadRequest, w.Code)

	var details dto.InvoiceResponse
	suite.decode(suite.request(http.MethodGet, base, nil), &details)
	suite.Equal("PAID", details.Status)
	suite.Len(details.Payments, 2)
	suite.True(details.BalanceDue.IsZero())

	w = suite.request(http.MethodPost, "/api/v1/invoices", map[string]any{
		"invoiceNumber": "INV-2024-001",
		"customerName":  "Someone Else",
		"dueDate":       "2030-01-01",
		"lineItems":     []map[string]any{{"description": "x", "quantity": 1, "unitPrice": 1}},
	})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *APITestSuite) TestSeedThenList() {
	suite.Equal(http.StatusCreated, suite.request(http.MethodPost, "/api/v1/seed", nil).Code)

	var list dto.ListInvoicesResponse
	suite.decode(suite.request(http.MethodGet, "/api/v1/invoices", nil), &list)
	suite.Require().Len(list.Invoices, 1)
	suite.Equal("Acme Corporation", list.Invoices[0].CustomerName)
	suite.Nil(list.NextToken)
}

func (suite *APITestSuite) TestAuthRoutes() {
	var me dto.UserResponse
	suite.decode(suite.request(http.MethodGet, "/api/v1/auth/me", nil), &me)
	suite.Equal("owner@example.com", me.Email)

	suite.token = ""
	suite.Equal(http.StatusUnauthorized, suite.request(http.MethodGet, "/api/v1/auth/me", nil).Code)

	w := suite.request(http.MethodPost, "/api/v1/auth/login", map[string]any{"email": "owner@example.com", "password": "password123"})
	suite.Equal(http.StatusOK, w.Code)
	w = suite.request(http.MethodPost, "/api/v1/auth/login", map[string]any{"email": "owner@example.com", "password": "wrong-password"})
	suite.Equal(http.StatusUnauthorized, w.Code)
	w = suite.request(http.MethodPost, "/api/v1/auth/login", map[string]any{"email": "nobody@example.com", "password": "password123"})
	suite.Equal(http.StatusUnauthorized, w.Code)
	w = suite.request(http.MethodPost, "/api/v1/auth/login", map[string]any{"email": "owner@example.com", "password": "password123"})
	suite.Equal(http.StatusTooManyRequests, w.Code)

	w = suite.request(http.MethodPost, "/api/v1/auth/signup", map[string]any{"email": "OWNER@example.com", "password": "password123"})
	suite.Equal(http.StatusConflict, w.Code)
	w = suite.request(http.MethodPost, "/api/v1/auth/signup", map[string]any{"email": "short@example.com", "password": "123"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestGoogleSignInNotConfigured() {
	w := suite.request(http.MethodPost, "/api/v1/auth/google/callback", map[string]any{"code": "abc"})
	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *APITestSuite) TestRateRoutes() {
	var converted dto.ConvertCurrencyResponse
	w := suite.request(http.MethodPost, "/api/v1/convert-currency", map[string]any{"amount": "100", "from": "USD", "to": "EUR"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &converted)
	suite.True(decimal.RequireFromString("85").Equal(converted.Converted))

	w = suite.request(http.MethodPost, "/api/v1/convert-currency", map[string]any{"amount": "100", "from": "USD", "to": "XXX"})
	suite.Equal(http.StatusBadRequest, w.Code)

	var tax dto.CalculateTaxResponse
	suite.decode(suite.request(http.MethodPost, "/api/v1/calculate-tax", map[string]any{"amount": "100", "country": "UK"}), &tax)
	suite.True(decimal.RequireFromString("20").Equal(tax.TaxAmount))
	suite.True(decimal.RequireFromString("120").Equal(tax.Total))
}

func (suite *APITestSuite) TestHealthAndCORS() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
	suite.Equal("http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
