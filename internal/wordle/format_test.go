package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatGameNumber(t *testing.T) {
	assert.Equal(t, "0", FormatGameNumber(0))
	assert.Equal(t, "942", FormatGameNumber(942))
	assert.Equal(t, "1,234", FormatGameNumber(1234))
	assert.Equal(t, "12,345", FormatGameNumber(12345))
	assert.Equal(t, "1,234,567", FormatGameNumber(1234567))
}
