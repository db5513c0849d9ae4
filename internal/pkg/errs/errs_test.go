package errs_test

import (
	"errors"
	"testing"

	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "42")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("foreign key violation")
		err := errs.NewObjectNotFoundErrorWithCause("customer", "1001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customer, ID is: 1001 (cause: foreign key violation)",
			err.Error())
	})

	t.Run("numeric id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", int64(456))
		assert.Equal(t, "object not found: order 456", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("supplier", int64(7))

	assert.Equal(t, "object already exists: supplier 7", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	withCause := errs.NewObjectAlreadyExistsErrorWithCause("supplier", int64(7), errors.New("duplicate key"))
	assert.Equal(t, "object already exists: supplier 7 (cause: duplicate key)", withCause.Error())
}

func TestObjectIsReferencedError(t *testing.T) {
	err := errs.NewObjectIsReferencedError("product", int64(3))

	assert.Equal(t, "object is referenced: product 3", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectIsReferenced)
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("first name")

		assert.Equal(t, "first name", err.ParamName)
		assert.Equal(t, "value is invalid: first name", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("first name", errors.New("digits are not allowed"))

		assert.Equal(t, "value is invalid: first name (cause: digits are not allowed)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -1, 0, 100)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -1, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: -1 is quantity, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("price", -5, 0, 100, errors.New("negative"))

		assert.Equal(t,
			"value is invalid: -5 is price, min value is 0, max value is 100 (cause: negative)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("brand", "flour\nmill", 1, 20)
		assert.Contains(t, err.Error(), "flour mill")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("description")

	assert.Equal(t, "value is required: description", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("description", errors.New("blank"))
	assert.Equal(t, "value is required: description (cause: blank)", withCause.Error())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	assert.Equal(t, "object is referenced", errs.ErrObjectIsReferenced.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	joined := errors.Join(
		errs.NewValueIsRequiredError("name"),
		errs.NewValueIsOutOfRangeError("quantity", -1, 0, 10),
	)

	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsOutOfRange)
	require.NotErrorIs(t, joined, errs.ErrObjectNotFound)

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, joined, &required)
	assert.Equal(t, "name", required.ParamName)
}
