// Package services contains stateless domain services for the ledger bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateProductFields enforces the catalog field rules shared by product
// creation and update:
//   - name, category, and unit must be non-empty after trimming
//   - no control characters (Unicode category Cc) in text fields
//   - price must be non-negative
//   - minStock must be non-negative
func ValidateProductFields(name, category, unit string, price float64, minStock int) error {
	if err := validateText("name", name); err != nil {
		return err
	}
	if err := validateText("category", category); err != nil {
		return err
	}
	if err := validateText("unit", unit); err != nil {
		return err
	}

	if price < 0 {
		return fmt.Errorf("price must not be negative, got %v", price)
	}

	if minStock < 0 {
		return fmt.Errorf("min_stock must not be negative, got %d", minStock)
	}

	return nil
}

// ValidateCounterparty enforces the rules for the free-text parties on a
// transaction record (supplier/customer and operator).
func ValidateCounterparty(field, value string) error {
	return validateText(field, value)
}

func validateText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", field)
		}
	}
	return nil
}
