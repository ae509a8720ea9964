package pricing

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Money
	}{
		{"20", 2000},
		{"20.5", 2050},
		{"20.50", 2050},
		{"0", 0},
		{".75", 75},
		{"15.00", 1500},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "-5", "1.234", "1.2.3"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
	}
}

func TestLineAmount(t *testing.T) {
	if got := LineAmount(2000, 3); got != 6000 {
		t.Fatalf("expected 6000, got %d", got)
	}
	if got := LineAmount(2000, 0); got != 0 {
		t.Fatalf("expected 0 for zero quantity, got %d", got)
	}
	if got := LineAmount(2000, -4); got != 0 {
		t.Fatalf("expected 0 for negative quantity, got %d", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format("₹", 6000); got != "₹60.00" {
		t.Fatalf("expected ₹60.00, got %s", got)
	}
	if got := Format("₹", 0); got != "₹0.00" {
		t.Fatalf("expected ₹0.00, got %s", got)
	}
	if got := Format("₹", 2055); got != "₹20.55" {
		t.Fatalf("expected ₹20.55, got %s", got)
	}
}
