package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		wantErr  bool
	}{
		{"USER", RoleUser, false},
		{"admin", RoleAdmin, false},
		{"  Admin ", RoleAdmin, false},
		{"root", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
		})
	}
}

func TestPrincipal_IsAdmin(t *testing.T) {
	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.IsAdmin())
	assert.False(t, (&Principal{UserID: uuid.New(), Role: RoleUser}).IsAdmin())
	assert.True(t, (&Principal{UserID: uuid.New(), Role: RoleAdmin}).IsAdmin())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "owner@example.com", NormalizeEmail("  Owner@Example.COM "))
}
