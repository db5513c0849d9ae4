package employee_test

import (
	"strings"
	"testing"
	"time"

	"bakery/internal/core/domain/model/employee"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPerson(t *testing.T) kernel.Person {
	t.Helper()
	name, err := kernel.NewPersonName("Carlos", "Jiménez", "Soto")
	require.NoError(t, err)
	addr, err := kernel.NewAddress(2, "Barrio San José, casa 14")
	require.NoError(t, err)
	p, err := kernel.NewPerson(204440555, name, addr, time.Date(1985, time.July, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func TestNewEmployee(t *testing.T) {
	person := newPerson(t)

	t.Run("valid", func(t *testing.T) {
		e, err := employee.NewEmployee(person, "Repostería", "Técnico en panadería")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, int64(204440555), e.ID())
		assert.Equal(t, person, e.Person())
		assert.Equal(t, "Repostería", e.Specialty())
		assert.Equal(t, "Técnico en panadería", e.Degree())
	})

	t.Run("specialty too long", func(t *testing.T) {
		_, err := employee.NewEmployee(person, strings.Repeat("a", employee.MaxSpecialtyLength+1), "Bachiller")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("missing fields", func(t *testing.T) {
		e, err := employee.NewEmployee(kernel.Person{}, "", "")

		assert.Nil(t, e)
		require.ErrorIs(t, err, kernel.ErrPersonIsNotConstructed)
		assert.Contains(t, err.Error(), "specialty")
		assert.Contains(t, err.Error(), "academic degree")
	})
}
