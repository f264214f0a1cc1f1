package numeric

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "plain decimal", input: "12.99", want: 12.99, ok: true},
		{name: "integer", input: "5", want: 5, ok: true},
		{name: "leading whitespace", input: "  3.50", want: 3.5, ok: true},
		{name: "zero", input: "0", want: 0, ok: true},
		{name: "negative", input: "-2.5", want: -2.5, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "whitespace only", input: "   ", ok: false},
		{name: "letters", input: "abc", ok: false},
		{name: "trailing garbage", input: "12.99x", ok: false},
		{name: "nan", input: "NaN", ok: false},
		{name: "infinity", input: "Inf", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got.OK != tt.ok {
				t.Fatalf("ParseAmount(%q).OK = %v, want %v", tt.input, got.OK, tt.ok)
			}
			if tt.ok && got.Value != tt.want {
				t.Errorf("ParseAmount(%q).Value = %v, want %v", tt.input, got.Value, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "plain integer", input: "3", want: 3, ok: true},
		{name: "with whitespace", input: " 2 ", want: 2, ok: true},
		{name: "negative", input: "-1", want: -1, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "decimal", input: "2.5", ok: false},
		{name: "letters", input: "two", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCount(tt.input)
			if got.OK != tt.ok {
				t.Fatalf("ParseCount(%q).OK = %v, want %v", tt.input, got.OK, tt.ok)
			}
			if tt.ok && got.Value != tt.want {
				t.Errorf("ParseCount(%q).Value = %v, want %v", tt.input, got.Value, tt.want)
			}
		})
	}
}

func TestOrFallbacks(t *testing.T) {
	if got := ParseAmount("bad").Or(0); got != 0 {
		t.Errorf("invalid amount Or(0) = %v, want 0", got)
	}
	if got := ParseAmount("1.5").Or(0); got != 1.5 {
		t.Errorf("valid amount Or(0) = %v, want 1.5", got)
	}
	if got := ParseCount("").Or(2); got != 2 {
		t.Errorf("invalid count Or(2) = %v, want 2", got)
	}
	if got := ParseCount("4").Or(2); got != 4 {
		t.Errorf("valid count Or(2) = %v, want 4", got)
	}
}
