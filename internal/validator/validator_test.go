package validator_test

import (
	"fmt"
	"testing"

	"github.com/GoldeNerd2/Aicord/internal/validator"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		expectedError error
	}{
		{
			name:          "Valid: Standard email",
			email:         "user@gmail.com",
			expectedError: nil,
		},
		{
			name:          "Valid: Email with plus sign in local part",
			email:         "user+tag@yahoo.co.uk",
			expectedError: nil,
		},
		{
			name:          "Error: Too long (67 characters)",
			email:         "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa@web.de",
			expectedError: fmt.Errorf("long_email"),
		},
		{
			name:          "Error: Missing @ sign",
			email:         "userexample.com",
			expectedError: fmt.Errorf("bad_format"),
		},
		{
			name:          "Error: Missing TLD",
			email:         "user@domain",
			expectedError: fmt.Errorf("bad_format"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validator.Email(test.email)
			if (err == nil) != (test.expectedError == nil) {
				t.Errorf("Expected error [%v], got [%v]", test.expectedError, err)
				return
			}
			if err != nil && err.Error() != test.expectedError.Error() {
				t.Errorf("Expected error [%v], got [%v]", test.expectedError, err)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{
			name:          "Valid: Mixed case with number",
			password:      "Secret1pw",
			expectedError: nil,
		},
		{
			name:          "Error: Too short",
			password:      "Ab1",
			expectedError: fmt.Errorf("short_password"),
		},
		{
			name:          "Error: No uppercase",
			password:      "secret1pw",
			expectedError: fmt.Errorf("no_uppercase"),
		},
		{
			name:          "Error: No number",
			password:      "Secretpw",
			expectedError: fmt.Errorf("no_number"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validator.Password(test.password)
			if (err == nil) != (test.expectedError == nil) {
				t.Errorf("Expected error [%v], got [%v]", test.expectedError, err)
				return
			}
			if err != nil && err.Error() != test.expectedError.Error() {
				t.Errorf("Expected error [%v], got [%v]", test.expectedError, err)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		expectedError error
	}{
		{
			name:          "Valid: Plain name",
			username:      "Alice",
			expectedError: nil,
		},
		{
			name:          "Error: Hash breaks tag parsing",
			username:      "Ali#ce",
			expectedError: fmt.Errorf("bad_character"),
		},
		{
			name:          "Error: Whitespace breaks mention tokens",
			username:      "Ali ce",
			expectedError: fmt.Errorf("has_whitespace"),
		},
		{
			name:          "Error: Too short",
			username:      "A",
			expectedError: fmt.Errorf("short_username"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validator.Username(test.username)
			if (err == nil) != (test.expectedError == nil) {
				t.Errorf("Expected error [%v], got [%v]", test.expectedError, err)
				return
			}
			if err != nil && err.Error() != test.expectedError.Error() {
				t.Errorf("Expected error [%v], got [%v]", test.expectedError, err)
			}
		})
	}
}
