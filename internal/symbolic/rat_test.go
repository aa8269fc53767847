package symbolic

import "testing"

func TestRatArithmetic(t *testing.T) {
	half := NewRat(1, 2)
	third := NewRat(1, 3)

	if got := half.Add(third); got != NewRat(5, 6) {
		t.Fatalf("1/2 + 1/3 = %s", got)
	}
	if got := half.Sub(third); got != NewRat(1, 6) {
		t.Fatalf("1/2 - 1/3 = %s", got)
	}
	if got := half.Mul(third); got != NewRat(1, 6) {
		t.Fatalf("1/2 * 1/3 = %s", got)
	}
	if got := half.Div(third); got != NewRat(3, 2) {
		t.Fatalf("1/2 / 1/3 = %s", got)
	}
}

func TestRatReduces(t *testing.T) {
	if got := NewRat(4, 8); got != NewRat(1, 2) {
		t.Fatalf("4/8 not reduced: %s", got)
	}
	if got := NewRat(3, -6); got != NewRat(-1, 2) {
		t.Fatalf("3/-6 = %s, want -1/2", got)
	}
	if got := NewRat(3, -6); got.Den <= 0 {
		t.Fatalf("denominator must stay positive, got %d", got.Den)
	}
}

func TestRatZeroValue(t *testing.T) {
	var zero Rat
	if got := zero.Add(RatFromInt(3)); got != RatFromInt(3) {
		t.Fatalf("zero value + 3 = %s", got)
	}
	if got := zero.String(); got != "0" {
		t.Fatalf("zero value renders %q", got)
	}
}

func TestParseRat(t *testing.T) {
	cases := []struct {
		in   string
		want Rat
	}{
		{"3", RatFromInt(3)},
		{"-5", RatFromInt(-5)},
		{"2.75", NewRat(11, 4)},
		{"3/4", NewRat(3, 4)},
		{" -1/2 ", NewRat(-1, 2)},
	}
	for _, c := range cases {
		got, err := ParseRat(c.in)
		if err != nil {
			t.Fatalf("ParseRat(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseRat(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "x", "1/0", "1..2"} {
		if _, err := ParseRat(bad); err == nil {
			t.Fatalf("ParseRat(%q) should fail", bad)
		}
	}
}

func TestRatSqrt(t *testing.T) {
	if got, ok := NewRat(9, 4).Sqrt(); !ok || got != NewRat(3, 2) {
		t.Fatalf("sqrt(9/4) = %s, %v", got, ok)
	}
	if _, ok := RatFromInt(2).Sqrt(); ok {
		t.Fatal("sqrt(2) should not be exact")
	}
	if _, ok := RatFromInt(-4).Sqrt(); ok {
		t.Fatal("sqrt(-4) should not be real")
	}
}

func TestRatString(t *testing.T) {
	if got := NewRat(3, 4).String(); got != "3/4" {
		t.Fatalf("got %q", got)
	}
	if got := RatFromInt(-5).String(); got != "-5" {
		t.Fatalf("got %q", got)
	}
}
