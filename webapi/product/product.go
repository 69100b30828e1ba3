package product

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	domainproduct "github.com/mibanco/fintech/pkg/domain/product"
	"github.com/mibanco/fintech/pkg/money"
	productsvc "github.com/mibanco/fintech/pkg/service/product"
	"github.com/mibanco/fintech/webapi/common"
	"github.com/shopspring/decimal"
)

// Routes registers product endpoints.
//
// Routes:
//   - POST   /products                   : Open a product of any kind.
//   - GET    /products                   : List every product.
//   - GET    /products/:number           : Fetch one product.
//   - POST   /products/:number/deposit   : Deposit funds.
//   - POST   /products/:number/withdraw  : Withdraw funds under the product's policy.
//   - POST   /products/:number/interest  : Run one monthly interest cycle.
//   - POST   /products/:number/transfer  : Move funds to another product.
//   - POST   /products/:number/charge    : Charge a credit card.
//   - POST   /products/:number/pay       : Pay down a credit card.
//   - GET    /products/:number/payout    : Projected payout of a certificate of deposit.
//   - POST   /interest                   : Run one monthly interest cycle on every product.
func Routes(app *fiber.App, svc *productsvc.Service) {
	app.Post("/products", Open(svc))
	app.Get("/products", List(svc))
	app.Get("/products/:number", Get(svc))
	app.Post("/products/:number/deposit", Deposit(svc))
	app.Post("/products/:number/withdraw", Withdraw(svc))
	app.Post("/products/:number/interest", Accrue(svc))
	app.Post("/products/:number/transfer", Transfer(svc))
	app.Post("/products/:number/charge", Charge(svc))
	app.Post("/products/:number/pay", Pay(svc))
	app.Get("/products/:number/payout", Payout(svc))
	app.Post("/interest", AccrueAll(svc))
}

// Open returns a handler that opens a product. Omitted parameters take the
// configured defaults for the kind.
//
// @Summary Open a product
// @Tags products
// @Accept json
// @Produce json
// @Param request body OpenProductRequest true "Product to open"
// @Success 201 {object} common.Response "Product opened"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 409 {object} common.ProblemDetails "Account number taken"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /products [post]
func Open(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OpenProductRequest](c)
		if input == nil {
			return err
		}
		kind, err := domainproduct.ParseKind(input.Kind)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid product kind", err)
		}
		initial := money.Zero()
		if input.InitialBalance != nil {
			initial = *input.InitialBalance
		}
		log.Infof("Opening %s %s for customer %s", kind, input.AccountNumber, input.CustomerDocument)
		p, err := svc.Open(c.UserContext(), productsvc.OpenParams{
			Kind:             kind,
			AccountNumber:    input.AccountNumber,
			CustomerDocument: input.CustomerDocument,
			InitialBalance:   initial,
			InterestRate:     input.InterestRate,
			OverdraftLimit:   input.OverdraftLimit,
			TermMonths:       input.TermMonths,
			CreditLimit:      input.CreditLimit,
		})
		if err != nil {
			log.Errorf("Failed to open product: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to open product", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Product opened", p.Details())
	}
}

// List returns a handler listing products, optionally filtered by owner.
//
// @Summary List products
// @Tags products
// @Produce json
// @Param customer query string false "Owner document"
// @Success 200 {object} common.Response "Products fetched"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /products [get]
func List(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := svc.Products(c.UserContext(), c.Query("customer"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list products", err)
		}
		out := make([]domainproduct.Details, 0, len(products))
		for _, p := range products {
			out = append(out, p.Details())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Products fetched", out)
	}
}

// Get returns a handler that fetches one product.
//
// @Summary Fetch a product
// @Tags products
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} common.Response "Product fetched"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /products/{number} [get]
func Get(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Product(c.UserContext(), c.Params("number"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Product not available", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Product fetched", p.Details())
	}
}

// Deposit returns a handler that adds funds to a product.
//
// @Summary Deposit funds
// @Tags products
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} common.Response "Deposit successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /products/{number}/deposit [post]
func Deposit(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		d, err := svc.Deposit(c.UserContext(), c.Params("number"), *input.Amount)
		if err != nil {
			log.Errorf("Deposit failed: %v", err)
			return common.ProblemDetailsJSON(c, "Deposit failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", d)
	}
}

// Withdraw returns a handler for withdrawals. A checking account beyond its
// overdraft limit answers 200 with approved=false, mirroring the domain.
//
// @Summary Withdraw funds
// @Tags products
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} common.Response{data=WithdrawResponse} "Withdrawal applied or declined"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient funds"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /products/{number}/withdraw [post]
func Withdraw(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		ok, d, err := svc.Withdraw(c.UserContext(), c.Params("number"), *input.Amount)
		if err != nil {
			log.Errorf("Withdraw failed: %v", err)
			return common.ProblemDetailsJSON(c, "Withdraw failed", err)
		}
		msg := "Withdrawal successful"
		if !ok {
			msg = "Withdrawal declined: overdraft limit reached"
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, msg, WithdrawResponse{Approved: ok, Product: d})
	}
}

// Accrue returns a handler running one interest cycle on a product.
//
// @Summary Run one monthly interest cycle
// @Tags products
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} common.Response{data=AccrualResponse} "Interest accrued"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /products/{number}/interest [post]
func Accrue(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.AccrueInterest(c.UserContext(), c.Params("number"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Interest accrual failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Interest accrued", toAccrualResponse(a))
	}
}

// AccrueAll returns a handler running one interest cycle on every product.
//
// @Summary Run one monthly interest cycle on every product
// @Tags products
// @Produce json
// @Success 200 {object} common.Response{data=[]AccrualResponse} "Interest accrued"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /interest [post]
func AccrueAll(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accruals, err := svc.AccrueAll(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Interest accrual failed", err)
		}
		out := make([]AccrualResponse, 0, len(accruals))
		for _, a := range accruals {
			out = append(out, toAccrualResponse(a))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Interest accrued", out)
	}
}

// Transfer returns a handler moving funds between two products.
//
// @Summary Transfer funds to another product
// @Tags products
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Param request body TransferRequest true "Destination and amount"
// @Success 200 {object} common.Response{data=TransferResponse} "Transfer successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient funds"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /products/{number}/transfer [post]
func Transfer(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		src, dst, err := svc.Transfer(c.UserContext(), c.Params("number"), input.Destination, *input.Amount)
		if err != nil {
			log.Errorf("Transfer failed: %v", err)
			return common.ProblemDetailsJSON(c, "Transfer failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful",
			TransferResponse{Source: src, Destination: dst})
	}
}

// Charge returns a handler for card purchases.
//
// @Summary Charge a credit card
// @Tags cards
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} common.Response "Charge approved"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 422 {object} common.ProblemDetails "Credit limit exceeded"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /products/{number}/charge [post]
func Charge(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		d, err := svc.Charge(c.UserContext(), c.Params("number"), *input.Amount)
		if err != nil {
			log.Errorf("Charge failed: %v", err)
			return common.ProblemDetailsJSON(c, "Charge failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Charge approved", d)
	}
}

// Pay returns a handler for card payments.
//
// @Summary Pay down a credit card
// @Tags cards
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} common.Response "Payment applied"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /products/{number}/pay [post]
func Pay(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		d, err := svc.Pay(c.UserContext(), c.Params("number"), *input.Amount)
		if err != nil {
			log.Errorf("Payment failed: %v", err)
			return common.ProblemDetailsJSON(c, "Payment failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment applied", d)
	}
}

// Payout returns a handler projecting a certificate's value at term.
//
// @Summary Projected payout of a certificate of deposit
// @Tags products
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} common.Response{data=PayoutResponse} "Final payout computed"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /products/{number}/payout [get]
func Payout(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number := c.Params("number")
		payout, err := svc.FinalPayout(c.UserContext(), number)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payout not available", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Final payout computed",
			PayoutResponse{AccountNumber: number, FinalPayout: payout})
	}
}

// OpenProductRequest is the body of POST /products.
type OpenProductRequest struct {
	Kind             string           `json:"kind" validate:"required"`
	AccountNumber    string           `json:"account_number" validate:"required"`
	CustomerDocument string           `json:"customer_document" validate:"required"`
	InitialBalance   *money.Money     `json:"initial_balance"`
	InterestRate     *decimal.Decimal `json:"interest_rate"`
	OverdraftLimit   *money.Money     `json:"overdraft_limit"`
	TermMonths       *int             `json:"term_months"`
	CreditLimit      *money.Money     `json:"credit_limit"`
}

// AmountRequest carries a single amount for deposit, withdraw, charge and pay.
type AmountRequest struct {
	Amount *money.Money `json:"amount" validate:"required"`
}

type TransferRequest struct {
	Destination string       `json:"destination" validate:"required"`
	Amount      *money.Money `json:"amount" validate:"required"`
}

type WithdrawResponse struct {
	Approved bool                  `json:"approved"`
	Product  domainproduct.Details `json:"product"`
}

type TransferResponse struct {
	Source      domainproduct.Details `json:"source"`
	Destination domainproduct.Details `json:"destination"`
}

type PayoutResponse struct {
	AccountNumber string      `json:"account_number"`
	FinalPayout   money.Money `json:"final_payout"`
}

// AccrualResponse adds the human-readable record to an accrual.
type AccrualResponse struct {
	domainproduct.Accrual
	Record string `json:"record"`
}

func toAccrualResponse(a domainproduct.Accrual) AccrualResponse {
	return AccrualResponse{Accrual: a, Record: a.String()}
}
