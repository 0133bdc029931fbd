package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses a two-digit amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("10.50")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("whole amounts render with two fraction digits", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("15")

		require.NoError(t, err)
		assert.Equal(t, "15.00", m.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten dollars")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-3.20")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is negative")
	})

	t.Run("rejects sub-cent precision", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("9.999")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "fraction digits")
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("exact decimal sum of priced lines", func(t *testing.T) {
		price1, _ := kernel.NewMoneyFromString("10.50")
		price2, _ := kernel.NewMoneyFromString("15.00")

		total := kernel.ZeroMoney().
			Add(price1.MulInt(2)).
			Add(price2.MulInt(1))

		assert.Equal(t, "36.00", total.String())
	})

	t.Run("multiplication keeps the cent scale", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("0.10")

		// 0.10 * 3 must be exactly 0.30, which float arithmetic cannot guarantee
		assert.Equal(t, "0.30", price.MulInt(3).String())
	})

	t.Run("numeric equality ignores trailing zeros", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromDecimal(decimal.RequireFromString("10.5"))
		b, _ := kernel.NewMoneyFromString("10.50")

		assert.True(t, a.IsEqual(b))
	})
}

func TestMoneyValidate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var m kernel.Money

		assert.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("ZeroMoney is a valid 0.00", func(t *testing.T) {
		m := kernel.ZeroMoney()

		require.NoError(t, m.Validate())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("sum of constructed amounts stays valid", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("1.00")
		b, _ := kernel.NewMoneyFromString("2.00")

		require.NoError(t, a.Add(b).Validate())
	})
}
