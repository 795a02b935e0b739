package money_test

import (
	"math"
	"testing"

	"github.com/vivendahub/Property-Sales-Backend/internal/money"
)

func TestCentsToDisplay(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "0,00"},
		{"cents only", 7, "0,07"},
		{"whole reais", 150000, "1.500,00"},
		{"typical sale value", 45000000, "450.000,00"},
		{"millions", 123456789, "1.234.567,89"},
		{"negative", -987654, "-9.876,54"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := money.CentsToDisplay(tt.cents); got != tt.want {
				t.Errorf("CentsToDisplay(%d) = %q, want %q", tt.cents, got, tt.want)
			}
		})
	}
}

func TestFormatAmount_NonFinite(t *testing.T) {
	if got := money.FormatAmount(math.NaN()); got != "0,00" {
		t.Errorf("FormatAmount(NaN) = %q, want 0,00", got)
	}
	if got := money.FormatAmount(math.Inf(1)); got != "0,00" {
		t.Errorf("FormatAmount(+Inf) = %q, want 0,00", got)
	}
}

func TestDisplayToCents(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int64
		wantOK bool
	}{
		{"plain", "1500,00", 150000, true},
		{"with prefix", "R$ 450.000,00", 45000000, true},
		{"grouped", "1.234.567,89", 123456789, true},
		{"explicit zero", "0,00", 0, true},
		{"integer input", "1500", 150000, true},
		{"empty", "", 0, false},
		{"prefix only", "R$ ", 0, false},
		{"garbage", "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := money.DisplayToCents(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("DisplayToCents(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("DisplayToCents(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

// Round trip: an amount formatted for display must parse back to the same cents.
func TestDisplayRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 55000, 45000000, 999999999} {
		got, ok := money.DisplayToCents(money.CentsToDisplay(cents))
		if !ok {
			t.Fatalf("round trip of %d failed to parse", cents)
		}
		if got != cents {
			t.Errorf("round trip of %d returned %d", cents, got)
		}
	}
}
