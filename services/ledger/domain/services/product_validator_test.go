package services

import "testing"

func TestValidateProductFields(t *testing.T) {
	tests := []struct {
		name     string
		pName    string
		category string
		unit     string
		price    float64
		minStock int
		wantErr  bool
	}{
		{"valid", "Widget", "Hardware", "pcs", 9.5, 10, false},
		{"valid zero price", "Sample", "Promo", "pcs", 0, 10, false},
		{"valid zero min stock", "Widget", "Hardware", "pcs", 9.5, 0, false},
		{"empty name", "", "Hardware", "pcs", 9.5, 10, true},
		{"whitespace-only name", "   ", "Hardware", "pcs", 9.5, 10, true},
		{"empty category", "Widget", "", "pcs", 9.5, 10, true},
		{"empty unit", "Widget", "Hardware", "", 9.5, 10, true},
		{"negative price", "Widget", "Hardware", "pcs", -1, 10, true},
		{"negative min stock", "Widget", "Hardware", "pcs", 9.5, -1, true},
		{"control character in name", "Wid\x00get", "Hardware", "pcs", 9.5, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProductFields(tt.pName, tt.category, tt.unit, tt.price, tt.minStock)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCounterparty(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := ValidateCounterparty("supplier", "Acme Corp"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if err := ValidateCounterparty("operator", ""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("whitespace only", func(t *testing.T) {
		if err := ValidateCounterparty("customer", "  \t"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
