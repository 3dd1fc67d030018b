package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	for name, err := range map[string]error{
		"ErrValidation":        ErrValidation,
		"ErrProductNotFound":   ErrProductNotFound,
		"ErrInsufficientStock": ErrInsufficientStock,
		"ErrPersistence":       ErrPersistence,
	} {
		if err == nil {
			t.Fatalf("%s must not be nil", name)
		}
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrProductNotFound.Error() != "product not found" {
		t.Fatalf("unexpected message: %q", ErrProductNotFound.Error())
	}
	if ErrInsufficientStock.Error() != "insufficient stock" {
		t.Fatalf("unexpected message: %q", ErrInsufficientStock.Error())
	}
	if ErrValidation.Error() != "validation failed" {
		t.Fatalf("unexpected message: %q", ErrValidation.Error())
	}
	if ErrPersistence.Error() != "snapshot write failed" {
		t.Fatalf("unexpected message: %q", ErrPersistence.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("resolve product: %w", ErrProductNotFound)
	if !errors.Is(wrapped, ErrProductNotFound) {
		t.Fatal("errors.Is must match wrapped ErrProductNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrValidation, errors.New("quantity must be positive"))
	if !errors.Is(wrapped2, ErrValidation) {
		t.Fatal("errors.Is must match double-wrapped ErrValidation")
	}

	wrapped3 := fmt.Errorf("%w: requested 70, available 50", ErrInsufficientStock)
	if !errors.Is(wrapped3, ErrInsufficientStock) {
		t.Fatal("errors.Is must match wrapped ErrInsufficientStock")
	}
}
