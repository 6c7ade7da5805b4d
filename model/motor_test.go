package model

import (
	"encoding/json"
	"testing"
	"time"

	"sewaku_api/constants"
	"sewaku_api/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotorWireRoundTrip(t *testing.T) {
	p := Product{
		Name:         "Vario 160",
		PricePerDay:  85000,
		Lokasi:       "Bandung",
		Image:        utils.Ptr("https://example.com/vario.jpg"),
		Transmission: utils.Ptr("Automatic"),
		Seats:        utils.Ptr(2),
		SubCategory:  utils.Ptr("Matic"),
		PlateNumber:  utils.Ptr("D 1234 ABC"),
		CategoryKey:  constants.CATEGORY_MOTOR,
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()

	wire := MotorWireFromProduct(p)
	assert.Equal(t, p.ID.String(), wire.ID)
	assert.Equal(t, p.CreatedAt.UnixMilli(), wire.CreatedAt)
	require.NotNil(t, wire.TypeMotor)
	assert.Equal(t, "Matic", *wire.TypeMotor)

	back := wire.ToProduct()
	assert.Equal(t, p.ID, back.ID)
	assert.Equal(t, p.Name, back.Name)
	assert.Equal(t, p.PricePerDay, back.PricePerDay)
	assert.Equal(t, p.SubCategory, back.SubCategory)
	assert.Equal(t, constants.CATEGORY_MOTOR, back.CategoryKey)
}

func TestMotorWireJSONUsesTypeMotor(t *testing.T) {
	p := Product{
		Name:        "CBR 250",
		PricePerDay: 200000,
		Lokasi:      "Jakarta",
		SubCategory: utils.Ptr("Sport"),
		CategoryKey: constants.CATEGORY_MOTOR,
	}
	p.ID = uuid.New()

	raw, err := json.Marshal(MotorWireFromProduct(p))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Sport", decoded["type_motor"])
	assert.NotContains(t, decoded, "sub_category")
	assert.NotContains(t, decoded, "category_key")
}
