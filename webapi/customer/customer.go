package customer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/mibanco/fintech/pkg/domain/product"
	productsvc "github.com/mibanco/fintech/pkg/service/product"
	"github.com/mibanco/fintech/webapi/common"
)

// CreateCustomerRequest is the body of POST /customers. Format rules
// (email, digits-only phone) are enforced by the domain.
type CreateCustomerRequest struct {
	Document string `json:"document" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

// UpdateCustomerRequest is the body of PATCH /customers/:document.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// Routes registers customer endpoints.
//
// Routes:
//   - POST   /customers            : Register a customer.
//   - GET    /customers/:document  : Fetch a customer.
//   - PATCH  /customers/:document  : Change contact data.
//   - GET    /customers/:document/products : List the customer's products.
func Routes(app *fiber.App, svc *productsvc.Service) {
	app.Post("/customers", Register(svc))
	app.Get("/customers/:document", Get(svc))
	app.Patch("/customers/:document", Update(svc))
	app.Get("/customers/:document/products", Products(svc))
}

// Register returns a handler that validates and stores a new customer.
//
// @Summary Register a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body CreateCustomerRequest true "Customer data"
// @Success 201 {object} common.Response "Customer registered"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 409 {object} common.ProblemDetails "Document already registered"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /customers [post]
func Register(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateCustomerRequest](c)
		if input == nil {
			return err
		}
		log.Infof("Registering customer %s", input.Document)
		cust, err := svc.RegisterCustomer(c.UserContext(), productsvc.CustomerInput{
			Document: input.Document,
			Name:     input.Name,
			Email:    input.Email,
			Phone:    input.Phone,
			Address:  input.Address,
		})
		if err != nil {
			log.Errorf("Failed to register customer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to register customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Customer registered", cust.Snapshot())
	}
}

// Get returns a handler that fetches one customer by document.
//
// @Summary Fetch a customer
// @Tags customers
// @Produce json
// @Param document path string true "Identity document"
// @Success 200 {object} common.Response "Customer fetched"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /customers/{document} [get]
func Get(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cust, err := svc.Customer(c.UserContext(), c.Params("document"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Customer not available", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer fetched", cust.Snapshot())
	}
}

// Update returns a handler applying a partial contact update. A rejected
// field leaves every field unchanged.
//
// @Summary Change a customer's contact data
// @Tags customers
// @Accept json
// @Produce json
// @Param document path string true "Identity document"
// @Param request body UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} common.Response "Customer updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /customers/{document} [patch]
func Update(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateCustomerRequest](c)
		if input == nil {
			return err
		}
		cust, err := svc.UpdateCustomer(c.UserContext(), c.Params("document"), productsvc.CustomerUpdate{
			Name:    input.Name,
			Email:   input.Email,
			Phone:   input.Phone,
			Address: input.Address,
		})
		if err != nil {
			log.Errorf("Failed to update customer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to update customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer updated", cust.Snapshot())
	}
}

// Products returns a handler listing the products a customer owns.
//
// @Summary List a customer's products
// @Tags customers
// @Produce json
// @Param document path string true "Identity document"
// @Success 200 {object} common.Response "Products fetched"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /customers/{document}/products [get]
func Products(svc *productsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := svc.Products(c.UserContext(), c.Params("document"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list products", err)
		}
		out := make([]product.Details, 0, len(products))
		for _, p := range products {
			out = append(out, p.Details())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Products fetched", out)
	}
}
