package models

import "fmt"

// Quantity is a value object representing a valid transaction quantity.
// Encapsulates the single rule: quantities are positive integers.
type Quantity int

// NewQuantity constructs a valid Quantity or returns an error if n is not positive.
func NewQuantity(n int) (Quantity, error) {
	if n <= 0 {
		return 0, fmt.Errorf("quantity must be a positive integer, got %d", n)
	}
	return Quantity(n), nil
}

// Int returns the underlying integer value.
func (q Quantity) Int() int {
	return int(q)
}
