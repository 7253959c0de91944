package scale

import (
	"testing"

	"github.com/govalues/decimal"
)

func TestFormatter_FormatDecimal(t *testing.T) {
	tests := []struct {
		d    string
		want string
	}{
		{"456789", "456,8 k"},
		{"0.1", "100,0 m"},
		{"1", "1,000"},
		{"0", "0,000"},
		{"-1", "-1,000"},
		{"999.97", "1,000 k"},
	}
	for _, tt := range tests {
		d := decimal.MustParse(tt.d)
		if got := New().FormatDecimal(d); got != tt.want {
			t.Errorf("FormatDecimal(%q) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
