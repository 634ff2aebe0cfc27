package util

import (
	"strings"
	"testing"
)

func TestValidateName_Valid(t *testing.T) {
	testCases := []string{"Ahmed", "Sara Ahmed", "أحمد علي"}

	for _, name := range testCases {
		err := ValidateName(name)
		if err != nil {
			t.Errorf("ValidateName(%q) error = %v, want nil", name, err)
		}
	}
}

func TestValidateName_Empty(t *testing.T) {
	err := ValidateName("")

	if err == nil {
		t.Error("ValidateName(\"\") error = nil, want error")
	}
}

func TestValidateName_TooLong(t *testing.T) {
	err := ValidateName(strings.Repeat("a", 101))

	if err == nil {
		t.Error("ValidateName() with long string error = nil, want error")
	}
}

func TestValidatePhone_Valid(t *testing.T) {
	testCases := []string{"0501234567", "+9647701234567"}

	for _, phone := range testCases {
		err := ValidatePhone(phone)
		if err != nil {
			t.Errorf("ValidatePhone(%q) error = %v, want nil", phone, err)
		}
	}
}

func TestValidatePhone_Empty(t *testing.T) {
	err := ValidatePhone("")

	if err == nil {
		t.Error("ValidatePhone(\"\") error = nil, want error")
	}
}

func TestValidatePhone_TooLong(t *testing.T) {
	err := ValidatePhone(strings.Repeat("1", 21))

	if err == nil {
		t.Error("ValidatePhone() with long string error = nil, want error")
	}
}
