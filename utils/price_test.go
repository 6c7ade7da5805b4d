package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp0", FormatRupiah(0))
	assert.Equal(t, "Rp850", FormatRupiah(850))
	assert.Equal(t, "Rp85.000", FormatRupiah(85000))
	assert.Equal(t, "Rp850.000", FormatRupiah(850000))
	assert.Equal(t, "Rp1.250.000", FormatRupiah(1250000))
	assert.Equal(t, "-Rp85.000", FormatRupiah(-85000))
}

func TestFormatDailyRupiah(t *testing.T) {
	assert.Equal(t, "Rp300.000 / hari", FormatDailyRupiah(300000))
}
