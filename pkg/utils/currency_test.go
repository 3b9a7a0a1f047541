package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "$ 0"},
		{999, "$ 999"},
		{1000, "$ 1.000"},
		{20000, "$ 20.000"},
		{40000, "$ 40.000"},
		{1502, "$ 1.502"},
		{1250000, "$ 1.250.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCOP(tt.amount))
	}
}
