package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	cases := map[string]string{
		" 34 abc 12 ": "34ABC12",
		"34-ABC-12":   "34ABC12",
		"34ABC12":     "34ABC12",
		"  ":          "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizePlate(raw), "plate %q", raw)
	}
}
