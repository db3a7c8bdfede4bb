package userservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/mediumclone/internal/common"
)

func TestValidateName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "valid name",
			input:    "testuser",
			expected: map[string]string{},
		},
		{
			name:     "empty name",
			input:    "",
			expected: map[string]string{"name": "must be provided"},
		},
		{
			name:     "too short",
			input:    "a",
			expected: map[string]string{"name": "must be between 2 and 20 characters long"},
		},
		{
			name:     "too long",
			input:    strings.Repeat("a", 21),
			expected: map[string]string{"name": "must be between 2 and 20 characters long"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateName(v, tc.input)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "valid email",
			input:    "testuser@example.com",
			expected: map[string]string{},
		},
		{
			name:     "empty email",
			input:    "",
			expected: map[string]string{"email": "must be provided"},
		},
		{
			name:     "malformed email",
			input:    "invalid-email",
			expected: map[string]string{"email": "must be a valid email address"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.input)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "valid password",
			input:    "pass123",
			expected: map[string]string{},
		},
		{
			name:     "minimum length",
			input:    "12345",
			expected: map[string]string{},
		},
		{
			name:     "empty password",
			input:    "",
			expected: map[string]string{"password": "must be provided"},
		},
		{
			name:     "too short",
			input:    "123",
			expected: map[string]string{"password": "must be between 5 and 72 characters long"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.input)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}
