package customer_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("creates a valid customer", func(t *testing.T) {
		c, err := customer.NewCustomer(id, "Sara", "Ali", "sara@test.com", "0999999999", "Damascus")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Sara", c.FirstName())
		assert.Equal(t, "Ali", c.LastName())
		assert.Equal(t, "sara@test.com", c.Email())
		assert.Equal(t, "0999999999", c.Phone())
		assert.Equal(t, "Damascus", c.Address())
		assert.WithinDuration(t, time.Now().UTC(), c.RegisteredAt(), time.Minute)
	})

	t.Run("fails with a one-character first name", func(t *testing.T) {
		_, err := customer.NewCustomer(id, "S", "Ali", "sara@test.com", "0999999999", "Damascus")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "firstName")
	})

	t.Run("fails with a one-character last name", func(t *testing.T) {
		_, err := customer.NewCustomer(id, "Sara", "A", "sara@test.com", "0999999999", "Damascus")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lastName")
	})

	t.Run("fails with a malformed email", func(t *testing.T) {
		for _, email := range []string{"", "sara", "sara@", "@test.com", "sara@test", "sa ra@test.com"} {
			_, err := customer.NewCustomer(id, "Sara", "Ali", email, "0999999999", "Damascus")
			require.Error(t, err, email)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("fails unless the phone has exactly ten digits", func(t *testing.T) {
		for _, phone := range []string{"", "12345", "12345678901", "099999999x"} {
			_, err := customer.NewCustomer(id, "Sara", "Ali", "sara@test.com", phone, "Damascus")
			require.Error(t, err, phone)
			assert.Contains(t, err.Error(), "phone")
		}
	})

	t.Run("collects multiple validation errors", func(t *testing.T) {
		_, err := customer.NewCustomer(id, "S", "A", "bad", "123", "Damascus")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "firstName")
		assert.Contains(t, err.Error(), "lastName")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "phone")
	})
}

func TestRestoreCustomer(t *testing.T) {
	registeredAt := time.Now().UTC().Add(-24 * time.Hour)

	c, err := customer.RestoreCustomer(kernel.NewUUID(), "Sara", "Ali", "sara@test.com", "0999999999", "Damascus", registeredAt)

	require.NoError(t, err)
	assert.Equal(t, registeredAt, c.RegisteredAt())
}

func TestCustomerValidate(t *testing.T) {
	var zero customer.Customer

	assert.ErrorIs(t, zero.Validate(), customer.ErrCustomerIsNotConstructed)

	var nilCustomer *customer.Customer
	assert.ErrorIs(t, nilCustomer.Validate(), customer.ErrCustomerIsNotConstructed)
}
