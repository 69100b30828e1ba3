// Package docs registers the OpenAPI document served under /swagger.
// It has the layout `swag init -g cmd/server/main.go -o webapi/docs` emits;
// regenerate it with swag when handler annotations change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/customers": {
            "post": {
                "tags": ["customers"],
                "summary": "Register a customer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/customer.CreateCustomerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Customer registered", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "409": {"description": "Document already registered", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/customers/{document}": {
            "get": {
                "tags": ["customers"],
                "summary": "Fetch a customer",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "document", "required": true, "description": "Identity document"}
                ],
                "responses": {
                    "200": {"description": "Customer fetched", "schema": {"$ref": "#/definitions/common.Response"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            },
            "patch": {
                "tags": ["customers"],
                "summary": "Change a customer's contact data",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "document", "required": true, "description": "Identity document"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/customer.UpdateCustomerRequest"}}
                ],
                "responses": {
                    "200": {"description": "Customer updated", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Invalid field", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/customers/{document}/products": {
            "get": {
                "tags": ["customers"],
                "summary": "List a customer's products",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "document", "required": true, "description": "Identity document"}
                ],
                "responses": {
                    "200": {"description": "Products fetched", "schema": {"$ref": "#/definitions/common.Response"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/products": {
            "get": {
                "tags": ["products"],
                "summary": "List products",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "query", "name": "customer", "description": "Filter by owner document"}
                ],
                "responses": {
                    "200": {"description": "Products fetched", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            },
            "post": {
                "tags": ["products"],
                "summary": "Open a product",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/product.OpenProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Product opened", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "409": {"description": "Account number taken", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/products/{number}": {
            "get": {
                "tags": ["products"],
                "summary": "Fetch a product",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "number", "required": true, "description": "Account number"}
                ],
                "responses": {
                    "200": {"description": "Product fetched", "schema": {"$ref": "#/definitions/common.Response"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/products/{number}/deposit": {
            "post": {
                "tags": ["products"],
                "summary": "Deposit funds",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "number", "required": true, "description": "Account number"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/product.AmountRequest"}}
                ],
                "responses": {
                    "200": {"description": "Deposit successful", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Invalid amount", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/products/{number}/withdraw": {
            "post": {
                "tags": ["products"],
                "summary": "Withdraw funds",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "number", "required": true, "description": "Account number"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/product.AmountRequest"}}
                ],
                "responses": {
                    "200": {"description": "Withdrawal applied or declined", "schema": {"$ref": "#/definitions/common.Response"}},
                    "422": {"description": "Insufficient funds", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/products/{number}/interest": {
            "post": {
                "tags": ["products"],
                "summary": "Run one monthly interest cycle",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "number", "required": true, "description": "Account number"}
                ],
                "responses": {
                    "200": {"description": "Interest accrued", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        },
        "/products/{number}/transfer": {
            "post": {
                "tags": ["products"],
                "summary": "Transfer funds to another product",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "number", "required": true, "description": "Source account number"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/product.TransferRequest"}}
                ],
                "responses": {
                    "200": {"description": "Transfer successful", "schema": {"$ref": "#/definitions/common.Response"}},
                    "422": {"description": "Insufficient funds", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/products/{number}/charge": {
            "post": {
                "tags": ["cards"],
                "summary": "Charge a credit card",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "number", "required": true, "description": "Card account number"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/product.AmountRequest"}}
                ],
                "responses": {
                    "200": {"description": "Charge approved", "schema": {"$ref": "#/definitions/common.Response"}},
                    "422": {"description": "Credit limit exceeded", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/products/{number}/pay": {
            "post": {
                "tags": ["cards"],
                "summary": "Pay down a credit card",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "number", "required": true, "description": "Card account number"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/product.AmountRequest"}}
                ],
                "responses": {
                    "200": {"description": "Payment applied", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Payment exceeds used balance", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/products/{number}/payout": {
            "get": {
                "tags": ["products"],
                "summary": "Projected payout of a certificate of deposit",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "number", "required": true, "description": "Certificate account number"}
                ],
                "responses": {
                    "200": {"description": "Final payout computed", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Not a certificate", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/interest": {
            "post": {
                "tags": ["products"],
                "summary": "Run one monthly interest cycle on every product",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Interest accrued", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        }
    },
    "definitions": {
        "common.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "common.ProblemDetails": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "instance": {"type": "string"},
                "errors": {}
            }
        },
        "customer.CreateCustomerRequest": {
            "type": "object",
            "required": ["address", "document", "email", "name", "phone"],
            "properties": {
                "document": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "customer.UpdateCustomerRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "product.OpenProductRequest": {
            "type": "object",
            "required": ["account_number", "customer_document", "kind"],
            "properties": {
                "kind": {"type": "string", "enum": ["savings", "checking", "certificate_of_deposit", "credit_card"]},
                "account_number": {"type": "string"},
                "customer_document": {"type": "string"},
                "initial_balance": {"type": "string", "example": "1000.00"},
                "interest_rate": {"type": "string", "example": "5"},
                "overdraft_limit": {"type": "string"},
                "term_months": {"type": "integer"},
                "credit_limit": {"type": "string"}
            }
        },
        "product.AmountRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {
                "amount": {"type": "string", "example": "100.00"}
            }
        },
        "product.TransferRequest": {
            "type": "object",
            "required": ["amount", "destination"],
            "properties": {
                "destination": {"type": "string"},
                "amount": {"type": "string", "example": "100.00"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Financial Products API",
	Description:      "Customers, savings and checking accounts, certificates of deposit and credit cards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
