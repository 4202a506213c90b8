package dice

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Validation limits for a single roll expression.
const (
	MaxCount = 20
	MinSides = 2
	MaxSides = 1000
)

// Roll is a parsed dice expression such as "2d20".
type Roll struct {
	Count int
	Sides int
}

// Parse accepts "NdS", "dS" (count 1) or a bare "S" (one die with S sides)
// and validates it against the limits above.
func Parse(expr string) (Roll, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Roll{}, fmt.Errorf("expressão vazia")
	}

	count := 1
	sidesPart := s
	if idx := strings.Index(s, "d"); idx >= 0 {
		if idx > 0 {
			n, err := strconv.Atoi(s[:idx])
			if err != nil {
				return Roll{}, fmt.Errorf("quantidade inválida em %q", expr)
			}
			count = n
		}
		sidesPart = s[idx+1:]
	}

	sides, err := strconv.Atoi(sidesPart)
	if err != nil {
		return Roll{}, fmt.Errorf("número de lados inválido em %q", expr)
	}

	if count < 1 || count > MaxCount {
		return Roll{}, fmt.Errorf("quantidade de dados deve estar entre 1 e %d", MaxCount)
	}
	if sides < MinSides || sides > MaxSides {
		return Roll{}, fmt.Errorf("lados devem estar entre %d e %d", MinSides, MaxSides)
	}
	return Roll{Count: count, Sides: sides}, nil
}

// Roll produces one result per die.
func (r Roll) Roll(rng *rand.Rand) []int {
	results := make([]int, r.Count)
	for i := range results {
		results[i] = rng.Intn(r.Sides) + 1
	}
	return results
}

// Total sums a batch of results.
func Total(results []int) int {
	total := 0
	for _, v := range results {
		total += v
	}
	return total
}
