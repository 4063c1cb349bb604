package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.23, Round2(-1.234))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 53.85, Round2(53.846153))
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{52134400, "52,134,400"},
		{1234567890, "1,234,567,890"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVolume(tt.in))
	}
}
