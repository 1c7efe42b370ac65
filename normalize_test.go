package bubbleboard

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"  hello ", "hello"},
		{"", ""},
		{"   ", ""},
		{"nan", ""},
		{"NaN", ""},
		{"#N/A", ""},
		{"null", ""},
		{"Renovate kitchen", "Renovate kitchen"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseNullDecimal(t *testing.T) {
	tests := []struct {
		raw   string
		want  string
		valid bool
	}{
		{"1200", "1200", true},
		{"$1,200.50", "1200.5", true},
		{"-42.5", "-42.5", true},
		{"", "", false},
		{"TBD", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := parseNullDecimal(tt.raw)
			if got.Valid != tt.valid {
				t.Fatalf("parseNullDecimal(%q).Valid = %v, want %v", tt.raw, got.Valid, tt.valid)
			}
			if tt.valid && got.Decimal.String() != tt.want {
				t.Errorf("parseNullDecimal(%q) = %s, want %s", tt.raw, got.Decimal, tt.want)
			}
		})
	}
}
