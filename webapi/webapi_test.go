package webapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/mibanco/fintech/pkg/config"
	"github.com/mibanco/fintech/pkg/eventbus"
	"github.com/mibanco/fintech/pkg/repository/memory"
	productsvc "github.com/mibanco/fintech/pkg/service/product"
	"github.com/mibanco/fintech/webapi"
	"github.com/mibanco/fintech/webapi/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testConfig() *config.App {
	return &config.App{
		Env: "test",
		Products: &config.Products{
			DefaultKind:           "savings",
			SavingsRate:           decimal.NewFromInt(5),
			CheckingRate:          decimal.NewFromInt(1),
			OverdraftLimit:        decimal.NewFromInt(50),
			CertificateRate:       decimal.NewFromInt(12),
			CertificateTermMonths: 12,
			CreditLimit:           decimal.NewFromInt(500),
			CreditCardRate:        decimal.NewFromInt(2),
		},
	}
}

func newApp(cfg *config.App) *fiber.App {
	svc := productsvc.NewService(config.Deps{
		Registry: memory.NewRegistry(),
		EventBus: eventbus.NewSimpleEventBus(),
		Config:   cfg,
	})
	return webapi.SetupApp(svc, cfg)
}

type APITestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *APITestSuite) SetupTest() {
	s.app = newApp(testConfig())
	s.registerCustomer("100")
}

// do sends a JSON request and decodes the body into out when non-nil.
func (s *APITestSuite) do(method, path string, body any, out any) int {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, 10000)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *APITestSuite) registerCustomer(document string) {
	status := s.do(fiber.MethodPost, "/customers", map[string]string{
		"document": document,
		"name":     "Ana Perez",
		"email":    "ana@example.com",
		"phone":    "5551234",
		"address":  "Calle 1",
	}, nil)
	s.Require().Equal(fiber.StatusCreated, status)
}

func (s *APITestSuite) open(body map[string]any) map[string]any {
	var resp common.Response
	status := s.do(fiber.MethodPost, "/products", body, &resp)
	s.Require().Equal(fiber.StatusCreated, status, resp.Message)
	return resp.Data.(map[string]any)
}

func data(resp common.Response) map[string]any {
	return resp.Data.(map[string]any)
}

func (s *APITestSuite) TestHealth() {
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	resp, err := s.app.Test(req)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *APITestSuite) TestSwaggerDocs() {
	req := httptest.NewRequest(fiber.MethodGet, "/swagger/index.html", nil)
	resp, err := s.app.Test(req, 10000)
	s.Require().NoError(err)
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/swagger/doc.json", nil)
	resp, err = s.app.Test(req, 10000)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&doc))
	s.Equal("Financial Products API", doc.Info.Title)
	s.Contains(doc.Paths, "/products/{number}/transfer")
	s.Contains(doc.Paths, "/customers/{document}")
}

func (s *APITestSuite) TestCustomerEndpoints() {
	var pd common.ProblemDetails
	status := s.do(fiber.MethodPost, "/customers", map[string]string{
		"document": "100", "name": "X", "email": "x@y.com", "phone": "1", "address": "A",
	}, &pd)
	s.Equal(fiber.StatusConflict, status)

	pd = common.ProblemDetails{}
	status = s.do(fiber.MethodPost, "/customers", map[string]string{
		"document": "200", "name": "X", "email": "foo.example.com", "phone": "1", "address": "A",
	}, &pd)
	s.Equal(fiber.StatusBadRequest, status)
	s.Contains(pd.Errors, "email")

	pd = common.ProblemDetails{}
	status = s.do(fiber.MethodPost, "/customers", map[string]string{"document": "300"}, &pd)
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("Validation failed", pd.Title)

	var resp common.Response
	status = s.do(fiber.MethodGet, "/customers/100", nil, &resp)
	s.Equal(fiber.StatusOK, status)
	s.Equal("Ana Perez", data(resp)["name"])

	status = s.do(fiber.MethodPatch, "/customers/100", map[string]string{"phone": "12a45"}, nil)
	s.Equal(fiber.StatusBadRequest, status)

	resp = common.Response{}
	status = s.do(fiber.MethodPatch, "/customers/100", map[string]string{"address": "Calle 2"}, &resp)
	s.Equal(fiber.StatusOK, status)
	s.Equal("Calle 2", data(resp)["address"])
	s.Equal("5551234", data(resp)["phone"])

	status = s.do(fiber.MethodGet, "/customers/999", nil, nil)
	s.Equal(fiber.StatusNotFound, status)
}

func (s *APITestSuite) TestSavingsFlow() {
	d := s.open(map[string]any{
		"kind": "savings", "account_number": "SAV-1", "customer_document": "100",
	})
	s.Equal("0.00", d["balance"])
	s.Equal("5", d["interest_rate"])

	var resp common.Response
	status := s.do(fiber.MethodPost, "/products/SAV-1/deposit", map[string]any{"amount": "1000"}, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("1000.00", data(resp)["balance"])

	resp = common.Response{}
	status = s.do(fiber.MethodPost, "/products/SAV-1/interest", nil, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("1050.00", data(resp)["balance"])
	s.Equal("savings account SAV-1: interest added 50.00, balance 1050.00", data(resp)["record"])

	var pd common.ProblemDetails
	status = s.do(fiber.MethodPost, "/products/SAV-1/deposit", map[string]any{"amount": -5}, &pd)
	s.Equal(fiber.StatusBadRequest, status)

	status = s.do(fiber.MethodPost, "/products/SAV-1/withdraw", map[string]any{"amount": 2000}, nil)
	s.Equal(fiber.StatusUnprocessableEntity, status)

	status = s.do(fiber.MethodPost, "/products/SAV-1/deposit", map[string]any{}, nil)
	s.Equal(fiber.StatusBadRequest, status)

	status = s.do(fiber.MethodPost, "/products/NOPE/deposit", map[string]any{"amount": 1}, nil)
	s.Equal(fiber.StatusNotFound, status)
}

func (s *APITestSuite) TestCheckingOverdraft() {
	s.open(map[string]any{
		"kind": "checking", "account_number": "CHK-1", "customer_document": "100",
		"initial_balance": 100, "overdraft_limit": 50,
	})

	var resp common.Response
	status := s.do(fiber.MethodPost, "/products/CHK-1/withdraw", map[string]any{"amount": 151}, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal(false, data(resp)["approved"])

	resp = common.Response{}
	status = s.do(fiber.MethodPost, "/products/CHK-1/withdraw", map[string]any{"amount": 140}, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal(true, data(resp)["approved"])
	s.Equal("-40.00", data(resp)["product"].(map[string]any)["balance"])
}

func (s *APITestSuite) TestCreditCardFlow() {
	s.open(map[string]any{
		"kind": "card", "account_number": "CC-1", "customer_document": "100", "credit_limit": 500,
	})

	status := s.do(fiber.MethodPost, "/products/CC-1/charge", map[string]any{"amount": 500}, nil)
	s.Equal(fiber.StatusOK, status)

	var pd common.ProblemDetails
	status = s.do(fiber.MethodPost, "/products/CC-1/charge", map[string]any{"amount": 1}, &pd)
	s.Equal(fiber.StatusUnprocessableEntity, status)
	s.Equal("Charge failed", pd.Title)

	status = s.do(fiber.MethodPost, "/products/CC-1/pay", map[string]any{"amount": 600}, nil)
	s.Equal(fiber.StatusBadRequest, status)

	var resp common.Response
	status = s.do(fiber.MethodPost, "/products/CC-1/pay", map[string]any{"amount": 100}, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("400.00", data(resp)["used_balance"])
}

func (s *APITestSuite) TestTransferPayoutAndAccrueAll() {
	s.open(map[string]any{
		"kind": "cd", "account_number": "CD-1", "customer_document": "100", "initial_balance": 1000,
	})
	s.open(map[string]any{
		"kind": "savings", "account_number": "SAV-1", "customer_document": "100", "initial_balance": 500,
		"interest_rate": 0,
	})

	var resp common.Response
	status := s.do(fiber.MethodGet, "/products/CD-1/payout", nil, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("1120.00", data(resp)["final_payout"])

	status = s.do(fiber.MethodGet, "/products/SAV-1/payout", nil, nil)
	s.Equal(fiber.StatusBadRequest, status)

	resp = common.Response{}
	status = s.do(fiber.MethodPost, "/products/SAV-1/transfer",
		map[string]any{"destination": "CD-1", "amount": 200}, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("300.00", data(resp)["source"].(map[string]any)["balance"])
	s.Equal("1200.00", data(resp)["destination"].(map[string]any)["balance"])

	resp = common.Response{}
	status = s.do(fiber.MethodPost, "/interest", nil, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	accruals := resp.Data.([]any)
	s.Require().Len(accruals, 2)
	s.Equal("1212.00", accruals[0].(map[string]any)["balance"])

	resp = common.Response{}
	status = s.do(fiber.MethodGet, "/products?customer=100", nil, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(resp.Data.([]any), 2)

	resp = common.Response{}
	status = s.do(fiber.MethodGet, "/customers/100/products", nil, &resp)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(resp.Data.([]any), 2)
}

func (s *APITestSuite) TestOpenValidation() {
	status := s.do(fiber.MethodPost, "/products", map[string]any{
		"kind": "mortgage", "account_number": "X-1", "customer_document": "100",
	}, nil)
	s.Equal(fiber.StatusBadRequest, status)

	status = s.do(fiber.MethodPost, "/products", map[string]any{
		"kind": "cd", "account_number": "CD-9", "customer_document": "100", "term_months": 0,
	}, nil)
	s.Equal(fiber.StatusBadRequest, status)

	status = s.do(fiber.MethodPost, "/products", map[string]any{
		"kind": "savings", "account_number": "SAV-9", "customer_document": "999",
	}, nil)
	s.Equal(fiber.StatusNotFound, status)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

type RateLimitTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *RateLimitTestSuite) SetupTest() {
	cfg := testConfig()
	cfg.RateLimit = &config.RateLimit{MaxRequests: 5, Window: time.Minute}
	s.app = newApp(cfg)
}

func (s *RateLimitTestSuite) TestRateLimit() {
	for i := range [6]int{} {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		resp, err := s.app.Test(req)
		s.Require().NoError(err)
		resp.Body.Close() //nolint: errcheck

		if i < 5 {
			s.Equal(fiber.StatusOK, resp.StatusCode, "Expected OK for request %d", i+1)
		} else {
			s.Equal(fiber.StatusTooManyRequests, resp.StatusCode, "Expected Too Many Requests for request %d", i+1)
		}
	}

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	resp, err := s.app.Test(req)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode, "other clients keep their own budget")
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}
