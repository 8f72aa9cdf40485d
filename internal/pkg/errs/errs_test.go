package errs_test

import (
	"errors"
	"testing"

	"agritrade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("unitPrice", -5, 0, 100)

		assert.Equal(t, "unitPrice", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -5 is unitPrice, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("deliveryAddress")

		assert.Equal(t, "deliveryAddress", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: deliveryAddress", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("deliveryAddress", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: deliveryAddress (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestAccessDeniedError(t *testing.T) {
	t.Run("NewAccessDeniedError", func(t *testing.T) {
		err := errs.NewAccessDeniedError("only the order creator may publish it")

		assert.Equal(t, "only the order creator may publish it", err.Rule)
		require.NoError(t, err.Cause)
		assert.Equal(t, "access denied: only the order creator may publish it", err.Error())
		assert.Equal(t, errs.ErrAccessDenied, err.Unwrap())
	})

	t.Run("NewAccessDeniedErrorWithCause", func(t *testing.T) {
		cause := errors.New("actor organization mismatch")
		err := errs.NewAccessDeniedErrorWithCause("supplier only", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "access denied: supplier only (cause: actor organization mismatch)", err.Error())
	})
}

func TestInvalidStatusTransitionError(t *testing.T) {
	err := errs.NewInvalidStatusTransitionError("start fulfillment", "Pending")

	assert.Equal(t, "start fulfillment", err.Operation)
	assert.Equal(t, "Pending", err.CurrentStatus)
	assert.Equal(t, "status transition is invalid: cannot start fulfillment in status Pending", err.Error())
	assert.Equal(t, errs.ErrInvalidStatusTransition, err.Unwrap())
}

func TestConcurrencyConflictError(t *testing.T) {
	err := errs.NewConcurrencyConflictError("order", "abc-123")

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "abc-123", err.ID)
	assert.Equal(t, "concurrent modification detected: param is: order, ID is: abc-123", err.Error())
	assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "access denied", errs.ErrAccessDenied.Error())
	assert.Equal(t, "status transition is invalid", errs.ErrInvalidStatusTransition.Error())
	assert.Equal(t, "concurrent modification detected", errs.ErrConcurrencyConflict.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("qty", -1, 1, 10), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("title"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewAccessDeniedError("participants only"), errs.ErrAccessDenied)
	require.ErrorIs(t, errs.NewInvalidStatusTransitionError("accept", "Pending"), errs.ErrInvalidStatusTransition)
	require.ErrorIs(t, errs.NewConcurrencyConflictError("order", "x"), errs.ErrConcurrencyConflict)
}
