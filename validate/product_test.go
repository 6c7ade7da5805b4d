package validate

import (
	"testing"

	"sewaku_api/constants"
	"sewaku_api/utils"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategoryKey(t *testing.T) {
	assert.True(t, isValidCategoryKey(constants.CATEGORY_MOBIL))
	assert.True(t, isValidCategoryKey(constants.CATEGORY_ALAT_KONSTRUKSI))
	assert.False(t, isValidCategoryKey("pesawat"))
	assert.False(t, isValidCategoryKey(""))
}

func TestIsValidSubCategory(t *testing.T) {
	// kosong berarti tanpa sub-kategori
	assert.True(t, isValidSubCategory(constants.CATEGORY_MOBIL, nil))
	assert.True(t, isValidSubCategory(constants.CATEGORY_MOBIL, utils.Ptr("")))

	assert.True(t, isValidSubCategory(constants.CATEGORY_MOBIL, utils.Ptr("SUV")))
	assert.True(t, isValidSubCategory(constants.CATEGORY_MOTOR, utils.Ptr("matic"))) // case-insensitive

	assert.False(t, isValidSubCategory(constants.CATEGORY_MOBIL, utils.Ptr("Sport")))
	assert.False(t, isValidSubCategory("pesawat", utils.Ptr("SUV")))
}
