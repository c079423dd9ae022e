package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskNumber(t *testing.T) {
	t.Run("Success_SixteenDigits", func(t *testing.T) {
		masked, err := MaskNumber("4000123412349876")
		require.NoError(t, err)
		assert.Equal(t, "**** **** **** 9876", masked)
	})

	t.Run("Success_ExactlyFour", func(t *testing.T) {
		masked, err := MaskNumber("1234")
		require.NoError(t, err)
		assert.Equal(t, "**** **** **** 1234", masked)
	})

	t.Run("Error_TooShort", func(t *testing.T) {
		_, err := MaskNumber("123")
		assert.ErrorIs(t, err, ErrInvalidCardNumber)
	})
}
