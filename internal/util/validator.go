package util

import "fmt"

// ValidateName checks a customer name (non-empty, bounded length).
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("name too long, max 100 characters")
	}
	return nil
}

// ValidatePhone checks a phone number (non-empty, bounded length).
func ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("phone is empty")
	}
	if len(phone) > 20 {
		return fmt.Errorf("phone too long, max 20 characters")
	}
	return nil
}
