package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mibanco/fintech/pkg/config"
	"github.com/mibanco/fintech/pkg/domain/product"
	"github.com/mibanco/fintech/pkg/money"
	productsvc "github.com/mibanco/fintech/pkg/service/product"
)

// runFlow reads a customer and a product from the session, deposits (and
// charges, for a credit card), accrues one month of interest and reports
// the outcome on out.
func runFlow(
	ctx context.Context,
	svc *productsvc.Service,
	s *session,
	kind product.Kind,
	defaults *config.Products,
	out io.Writer,
) error {
	input, err := readCustomer(s)
	if err != nil {
		return err
	}
	if _, err := svc.RegisterCustomer(ctx, input); err != nil {
		return err
	}

	params, err := readProduct(s, kind, defaults)
	if err != nil {
		return err
	}
	params.CustomerDocument = input.Document
	if _, err := svc.Open(ctx, params); err != nil {
		return err
	}

	deposit, err := s.amount("Deposit amount", nil)
	if err != nil {
		return err
	}
	if _, err := svc.Deposit(ctx, params.AccountNumber, deposit); err != nil {
		return err
	}
	if kind == product.KindCreditCard {
		zero := money.Zero()
		charge, err := s.amount("Charge amount", &zero)
		if err != nil {
			return err
		}
		if !charge.IsZero() {
			if _, err := svc.Charge(ctx, params.AccountNumber, charge); err != nil {
				return err
			}
		}
	}
	if _, err := svc.AccrueInterest(ctx, params.AccountNumber); err != nil {
		return err
	}

	p, err := svc.Product(ctx, params.AccountNumber)
	if err != nil {
		return err
	}
	report(out, p.Details())
	return nil
}

func readCustomer(s *session) (productsvc.CustomerInput, error) {
	var in productsvc.CustomerInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"Customer document", &in.Document},
		{"Name", &in.Name},
		{"Email", &in.Email},
		{"Phone", &in.Phone},
		{"Address", &in.Address},
	}
	for _, f := range fields {
		v, err := s.line(f.label, "")
		if err != nil {
			return in, err
		}
		*f.dst = v
	}
	return in, nil
}

// readProduct prompts for the account number, the initial balance and the
// parameters that apply to kind. Blank kind-specific answers take the
// configured defaults; the initial balance is required.
func readProduct(s *session, kind product.Kind, defaults *config.Products) (productsvc.OpenParams, error) {
	params := productsvc.OpenParams{Kind: kind}
	var err error
	if params.AccountNumber, err = s.line("Account number", ""); err != nil {
		return params, err
	}
	if params.InitialBalance, err = s.amount("Initial balance", nil); err != nil {
		return params, err
	}

	rate := defaults.SavingsRate
	switch kind {
	case product.KindChecking:
		rate = defaults.CheckingRate
	case product.KindCertificate:
		rate = defaults.CertificateRate
	case product.KindCreditCard:
		rate = defaults.CreditCardRate
	}
	r, err := s.rate(rateLabel(kind), rate)
	if err != nil {
		return params, err
	}
	params.InterestRate = &r

	switch kind {
	case product.KindChecking:
		fallback := money.FromDecimal(defaults.OverdraftLimit)
		limit, err := s.amount("Overdraft limit", &fallback)
		if err != nil {
			return params, err
		}
		params.OverdraftLimit = &limit
	case product.KindCertificate:
		term, err := s.months("Term (months)", defaults.CertificateTermMonths)
		if err != nil {
			return params, err
		}
		params.TermMonths = &term
	case product.KindCreditCard:
		fallback := money.FromDecimal(defaults.CreditLimit)
		limit, err := s.amount("Credit limit", &fallback)
		if err != nil {
			return params, err
		}
		params.CreditLimit = &limit
	}
	return params, nil
}

// rateLabel names the period a kind's rate is quoted in. Certificates take an
// annual rate and accrue a twelfth of it each month.
func rateLabel(kind product.Kind) string {
	if kind == product.KindCertificate {
		return "Annual interest rate (%)"
	}
	return "Monthly interest rate (%)"
}

func report(out io.Writer, d product.Details) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(out, "Final balance on %s account %s: %s\n", d.Kind, d.AccountNumber, d.Balance)
	if d.FinalPayout != nil {
		fmt.Fprintf(out, "Projected payout at term: %s\n", *d.FinalPayout)
	}
	if d.UsedBalance != nil {
		fmt.Fprintf(out, "Used balance: %s\n", *d.UsedBalance)
	}
	if d.AvailableCredit != nil {
		fmt.Fprintf(out, "Available credit: %s\n", *d.AvailableCredit)
	}
}
