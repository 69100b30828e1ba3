package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const customerLines = "1020304050\nAna Torres\nana@example.com\n5551234\nAv. Siempre Viva 742\n"

func runCLI(t *testing.T, input string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("PRODUCT_DEFAULT_KIND", "savings")
	var out, errOut bytes.Buffer
	code = run(append([]string{"-env", "missing.env"}, args...), strings.NewReader(input), &out, &errOut, false)
	return code, out.String(), errOut.String()
}

func TestRun_SavingsFlow(t *testing.T) {
	code, out, errOut := runCLI(t, customerLines+"SAV-1\n500\n\n500\n")

	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Final balance on savings account SAV-1: 1050.00")
	assert.Contains(t, out, "customer 1020304050 registered")
	assert.Contains(t, out, "deposit of 500.00 to SAV-1 completed")
	assert.NotContains(t, out, "Customer document", "prompts are hidden when not interactive")
}

func TestRun_CheckingFlow(t *testing.T) {
	code, out, errOut := runCLI(t, customerLines+"CHK-1\n100\n1\n50\n100\n", "-product", "checking")

	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Final balance on checking account CHK-1: 202.00")
}

func TestRun_CertificateFlow(t *testing.T) {
	code, out, errOut := runCLI(t, customerLines+"CD-1\n1000\n12\n\n200\n", "-product", "cd")

	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Final balance on certificate_of_deposit account CD-1: 1212.00")
	assert.Contains(t, out, "Projected payout at term: 1357.44")
}

func TestRun_CreditCardFlow(t *testing.T) {
	code, out, errOut := runCLI(t, customerLines+"CC-1\n0\n2\n\n10\n100\n", "-product", "card")

	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Final balance on credit_card account CC-1: 10.00")
	assert.Contains(t, out, "Used balance: 102.00")
	assert.Contains(t, out, "Available credit: 398.00")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		args    []string
		code    int
		wantErr string
	}{
		{
			name:    "invalid email",
			input:   "1020304050\nAna\nnot-an-email\n5551234\nCalle 1\n",
			code:    1,
			wantErr: "Error: validation error: email",
		},
		{
			name:    "negative initial balance",
			input:   customerLines + "SAV-1\n-5\n\n10\n",
			code:    1,
			wantErr: "Error: ",
		},
		{
			name:    "input ends early",
			input:   customerLines + "SAV-1\n",
			code:    1,
			wantErr: "unexpected EOF",
		},
		{
			name:    "blank initial balance",
			input:   customerLines + "SAV-1\n\n\n10\n",
			code:    1,
			wantErr: "Error: Initial balance: invalid amount: empty value",
		},
		{
			name:    "amount is not a number",
			input:   customerLines + "SAV-1\n100\n\nten\n",
			code:    1,
			wantErr: "Error: ",
		},
		{
			name:    "unknown product",
			args:    []string{"-product", "mortgage"},
			code:    1,
			wantErr: "unknown product kind",
		},
		{
			name: "bad flag",
			args: []string{"-nope"},
			code: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.input, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, errOut, tt.wantErr)
			assert.NotContains(t, out, "Final balance")
		})
	}
}

func TestRun_InteractivePrompts(t *testing.T) {
	t.Setenv("PRODUCT_DEFAULT_KIND", "savings")
	var out, errOut bytes.Buffer
	input := customerLines + "SAV-1\n500\n\n500\n"

	code := run([]string{"-env", "missing.env"}, strings.NewReader(input), &out, &errOut, true)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "Customer document: ")
	assert.Contains(t, out.String(), "Monthly interest rate (%) [5]: ")
	assert.Contains(t, out.String(), "Deposit amount: ")
}

func TestRun_CertificateRateIsAnnual(t *testing.T) {
	t.Setenv("PRODUCT_DEFAULT_KIND", "savings")
	var out, errOut bytes.Buffer
	input := customerLines + "CD-1\n1000\n\n\n200\n"

	code := run([]string{"-env", "missing.env", "-product", "cd"}, strings.NewReader(input), &out, &errOut, true)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "Annual interest rate (%) [12]: ")
	assert.NotContains(t, out.String(), "Monthly interest rate")
}

func TestRun_MissingEnvFileVar(t *testing.T) {
	t.Setenv("ENV_FILE", "/nonexistent/bank.env")
	var out, errOut bytes.Buffer

	code := run(nil, strings.NewReader(customerLines), &out, &errOut, false)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "Error: ENV_FILE=/nonexistent/bank.env")
	assert.Empty(t, out.String())
}
