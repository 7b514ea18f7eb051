package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDepartment(t *testing.T) {
	cases := map[string]string{
		"Computer Science":       "computer_science",
		" computer  science ":    "computer_science",
		"COMPUTER\tSCIENCE":      "computer_science",
		"math":                   "math",
		"  Math ":                "math",
		"Information Technology": "information_technology",
		"":                       "",
		"   ":                    "",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeDepartment(input), "input %q", input)
	}
}

func TestNormalizeDepartmentIdempotent(t *testing.T) {
	for _, input := range []string{"Computer Science", " a  b c ", "x"} {
		once := NormalizeDepartment(input)
		assert.Equal(t, once, NormalizeDepartment(once))
	}
}
