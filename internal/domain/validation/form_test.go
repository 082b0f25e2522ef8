package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCheckoutForm(t *testing.T) {
	t.Parallel()

	t.Run("all fields empty yields four required errors", func(t *testing.T) {
		t.Parallel()

		errs := ValidateCheckoutForm(CheckoutForm{})

		require.Len(t, errs, 4)
		assert.Equal(t, msgEmailRequired, errs[FieldEmail])
		assert.Equal(t, msgPhoneRequired, errs[FieldPhone])
		assert.Equal(t, msgLastNameEmpty, errs[FieldLastName])
		assert.Equal(t, msgFirstNameEmpty, errs[FieldFirstName])
	})

	t.Run("valid form yields no errors", func(t *testing.T) {
		t.Parallel()

		errs := ValidateCheckoutForm(CheckoutForm{
			Email:     "user@example.com",
			Phone:     "+38 050 123 45 67",
			LastName:  "Шевченко",
			FirstName: "Тарас",
		})

		assert.Empty(t, errs)
	})

	t.Run("present but malformed email and phone get format errors", func(t *testing.T) {
		t.Parallel()

		errs := ValidateCheckoutForm(CheckoutForm{
			Email:     "not-an-email",
			Phone:     "12345",
			LastName:  "Шевченко",
			FirstName: "Тарас",
		})

		require.Len(t, errs, 2)
		assert.Equal(t, msgEmailInvalid, errs[FieldEmail])
		assert.Equal(t, msgPhoneInvalid, errs[FieldPhone])
	})

	t.Run("whitespace-only name counts as empty", func(t *testing.T) {
		t.Parallel()

		errs := ValidateCheckoutForm(CheckoutForm{
			Email:     "user@example.com",
			Phone:     "+38 050 123 45 67",
			LastName:  "   ",
			FirstName: "Тарас",
		})

		require.Len(t, errs, 1)
		assert.Equal(t, msgLastNameEmpty, errs[FieldLastName])
	})
}
