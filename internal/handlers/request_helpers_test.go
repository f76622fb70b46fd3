package handlers

import (
	"errors"
	"testing"

	"mamanmange/internal/lifecycle"
)

func TestLowerCamel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"CustomerName", "customerName"},
		{"URL", "uRL"},
		{"", ""},
		{"name", "name"},
	}

	for _, tc := range cases {
		if got := lowerCamel(tc.in); got != tc.want {
			t.Errorf("lowerCamel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsDraftError(t *testing.T) {
	draftErrors := []error{
		lifecycle.ErrCustomerNameRequired,
		lifecycle.ErrCustomerPhoneRequired,
		lifecycle.ErrAddressRequired,
		lifecycle.ErrInvalidQuantity,
		lifecycle.ErrInvalidPrice,
		lifecycle.ErrInvalidDeliveryMode,
	}

	for _, err := range draftErrors {
		if !isDraftError(err) {
			t.Errorf("isDraftError(%v) = false, want true", err)
		}
	}

	if isDraftError(errors.New("store down")) {
		t.Error("isDraftError should reject unrelated errors")
	}
	if isDraftError(lifecycle.ErrInvalidStatus) {
		t.Error("status errors are not draft errors")
	}
}
