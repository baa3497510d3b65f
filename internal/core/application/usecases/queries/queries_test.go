package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should create query", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID)

		require.NoError(t, err)
		assert.True(t, orderID.IsEqual(query.OrderID()))
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject an empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		query := queries.GetOrderQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("should compute the row offset from the page", func(t *testing.T) {
		query, err := queries.NewGetCustomerOrdersQuery(customerID, nil, 3, 20)

		require.NoError(t, err)
		assert.Equal(t, 40, query.Offset())
		assert.Equal(t, 20, query.PageSize())
		assert.Nil(t, query.Status())
	})

	t.Run("first page starts at offset zero", func(t *testing.T) {
		query, err := queries.NewGetCustomerOrdersQuery(customerID, nil, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 0, query.Offset())
	})

	t.Run("should carry the status filter", func(t *testing.T) {
		status := order.Delivered

		query, err := queries.NewGetCustomerOrdersQuery(customerID, &status, 1, 10)

		require.NoError(t, err)
		require.NotNil(t, query.Status())
		assert.Equal(t, order.Delivered, *query.Status())
	})

	t.Run("should reject an unknown status filter", func(t *testing.T) {
		status := order.Status(99)

		_, err := queries.NewGetCustomerOrdersQuery(customerID, &status, 1, 10)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject page zero", func(t *testing.T) {
		_, err := queries.NewGetCustomerOrdersQuery(customerID, nil, 0, 10)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an oversized page", func(t *testing.T) {
		_, err := queries.NewGetCustomerOrdersQuery(customerID, nil, 1, 101)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewValidateVoucherQuery(t *testing.T) {
	orderAmount := kernel.NewMoneyFromUnits(150_000)
	deliveryFee := kernel.NewMoneyFromUnits(18_000)

	t.Run("should normalize the code to upper case", func(t *testing.T) {
		query, err := queries.NewValidateVoucherQuery("  save10 ", orderAmount, deliveryFee)

		require.NoError(t, err)
		assert.Equal(t, "SAVE10", query.Code())
		assert.True(t, orderAmount.IsEqual(query.OrderAmount()))
		assert.True(t, deliveryFee.IsEqual(query.DeliveryFee()))
	})

	t.Run("should reject a blank code", func(t *testing.T) {
		_, err := queries.NewValidateVoucherQuery("   ", orderAmount, deliveryFee)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		query := queries.ValidateVoucherQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrValidateVoucherQueryIsNotConstructed)
	})
}

func TestNewGetCartQuery(t *testing.T) {
	t.Run("should reject an empty customer id", func(t *testing.T) {
		_, err := queries.NewGetCartQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		query := queries.GetCartQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrGetCartQueryIsNotConstructed)
	})
}
