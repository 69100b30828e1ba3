package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mibanco/fintech/pkg/domain"
	"github.com/mibanco/fintech/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ClosedAfterUse(t *testing.T) {
	var kept *session
	err := withSession(strings.NewReader("a\n"), io.Discard, false, func(s *session) error {
		kept = s
		v, err := s.line("First", "")
		require.NoError(t, err)
		assert.Equal(t, "a", v)
		return nil
	})
	require.NoError(t, err)

	_, err = kept.line("Again", "")
	assert.ErrorIs(t, err, errSessionClosed)
}

func TestSession_ClosedOnError(t *testing.T) {
	boom := errors.New("boom")
	var kept *session
	err := withSession(strings.NewReader(""), io.Discard, false, func(s *session) error {
		kept = s
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.True(t, kept.closed)
}

func TestSession_Defaults(t *testing.T) {
	var out bytes.Buffer
	err := withSession(strings.NewReader("\n\n\n 12.5 \n"), &out, true, func(s *session) error {
		fallback := money.MustParse("50")
		limit, err := s.amount("Overdraft limit", &fallback)
		require.NoError(t, err)
		assert.Equal(t, "50.00", limit.String())

		rate, err := s.rate("Rate", decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.NewFromInt(5)))

		term, err := s.months("Term", 12)
		require.NoError(t, err)
		assert.Equal(t, 12, term)

		amount, err := s.amount("Amount", nil)
		require.NoError(t, err)
		assert.Equal(t, "12.50", amount.String())
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Overdraft limit [50.00]: ")
	assert.Contains(t, out.String(), "Term [12]: ")
}

func TestSession_InvalidInput(t *testing.T) {
	err := withSession(strings.NewReader("\nabc\nx\n"), io.Discard, false, func(s *session) error {
		_, err := s.amount("Amount", nil)
		assert.ErrorIs(t, err, money.ErrInvalidAmount)

		_, err = s.rate("Rate", decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = s.months("Term", 1)
		assert.ErrorIs(t, err, domain.ErrValidation)
		return nil
	})
	require.NoError(t, err)
}
