package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("budi@sewaku.id"))
	assert.True(t, isValidEmail("budi.santoso+test@gmail.com"))
	assert.False(t, isValidEmail("budi@"))
	assert.False(t, isValidEmail("budi sewaku.id"))
	assert.False(t, isValidEmail(""))
}

func TestIsValidPhoneID(t *testing.T) {
	assert.True(t, isValidPhoneID("081234567890"))
	assert.True(t, isValidPhoneID("0812-3456-7890"))
	assert.True(t, isValidPhoneID("+62 812 3456 7890"))

	assert.False(t, isValidPhoneID("0812345"))       // terlalu pendek
	assert.False(t, isValidPhoneID("08123456789012")) // terlalu panjang
	assert.False(t, isValidPhoneID("021234567890"))   // bukan 08 / +62
	assert.False(t, isValidPhoneID("08abcdefghij"))
	assert.False(t, isValidPhoneID(""))
}
