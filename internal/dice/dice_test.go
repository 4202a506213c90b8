package dice

import (
	"math/rand"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr  string
		count int
		sides int
	}{
		{"d20", 1, 20},
		{"2d6", 2, 6},
		{"20", 1, 20},
		{" D12 ", 1, 12},
		{"10d10", 10, 10},
	}

	for _, test := range tests {
		roll, err := Parse(test.expr)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", test.expr, err)
			continue
		}
		if roll.Count != test.count || roll.Sides != test.sides {
			t.Errorf("Parse(%q) = %+v, expected count=%d sides=%d", test.expr, roll, test.count, test.sides)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{"", "d", "0d6", "21d6", "d1", "d1001", "xdy", "2d", "-1d6"}

	for _, expr := range invalid {
		if _, err := Parse(expr); err == nil {
			t.Errorf("Parse(%q) accepted an invalid expression", expr)
		}
	}
}

func TestRollBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	roll := Roll{Count: 20, Sides: 6}

	for i := 0; i < 100; i++ {
		results := roll.Roll(rng)
		if len(results) != 20 {
			t.Fatalf("got %d results, expected 20", len(results))
		}
		for _, r := range results {
			if r < 1 || r > 6 {
				t.Fatalf("result %d out of range [1,6]", r)
			}
		}
	}
}

func TestTotal(t *testing.T) {
	if got := Total([]int{3, 4, 5}); got != 12 {
		t.Errorf("Total = %d, expected 12", got)
	}
	if got := Total(nil); got != 0 {
		t.Errorf("Total(nil) = %d, expected 0", got)
	}
}
