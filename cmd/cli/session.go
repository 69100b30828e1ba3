package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mibanco/fintech/pkg/domain"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
)

var errSessionClosed = errors.New("session closed")

// session owns the console input for one run. It is opened by withSession
// and closed on every exit path; reads after Close fail.
type session struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompts bool
	prompt  *color.Color
	closed  bool
}

// withSession opens a session over in, runs fn and closes the session
// whatever fn returns.
func withSession(in io.Reader, out io.Writer, prompts bool, fn func(*session) error) error {
	s := &session{
		scanner: bufio.NewScanner(in),
		out:     out,
		prompts: prompts,
		prompt:  color.New(color.FgCyan),
	}
	defer s.Close()
	return fn(s)
}

func (s *session) Close() {
	s.closed = true
	s.scanner = nil
}

// line reads the next input line, trimmed. Prompts are written only for
// interactive sessions; hint is shown after the label when non-empty.
func (s *session) line(label, hint string) (string, error) {
	if s.closed {
		return "", errSessionClosed
	}
	if s.prompts {
		text := label
		if hint != "" {
			text = fmt.Sprintf("%s [%s]", label, hint)
		}
		_, _ = s.prompt.Fprint(s.out, text+": ")
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", label, err)
		}
		return "", fmt.Errorf("reading %s: %w", label, io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// amount reads a decimal amount. A blank line yields fallback when one is
// given and is an error otherwise.
func (s *session) amount(label string, fallback *money.Money) (money.Money, error) {
	hint := ""
	if fallback != nil {
		hint = fallback.String()
	}
	raw, err := s.line(label, hint)
	if err != nil {
		return money.Zero(), err
	}
	if raw == "" && fallback != nil {
		return *fallback, nil
	}
	m, err := money.Parse(raw)
	if err != nil {
		return money.Zero(), fmt.Errorf("%s: %w", label, err)
	}
	return m, nil
}

// rate reads a percentage rate; blank yields fallback.
func (s *session) rate(label string, fallback decimal.Decimal) (decimal.Decimal, error) {
	raw, err := s.line(label, fallback.String())
	if err != nil {
		return decimal.Zero, err
	}
	if raw == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.NewValidationError("interest_rate", fmt.Sprintf("%q is not a number", raw))
	}
	return d, nil
}

// months reads a whole number of months; blank yields fallback.
func (s *session) months(label string, fallback int) (int, error) {
	raw, err := s.line(label, strconv.Itoa(fallback))
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("term_months", fmt.Sprintf("%q is not a whole number", raw))
	}
	return n, nil
}
