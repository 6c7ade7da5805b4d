package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	// dd/mm/yyyy
	got, ok := ParseFlexibleDate("01/03/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	// yyyy-mm-dd
	got, ok = ParseFlexibleDate("2024-03-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseFlexibleDate("")
	assert.False(t, ok)
	_, ok = ParseFlexibleDate("31/02/bad")
	assert.False(t, ok)
	_, ok = ParseFlexibleDate("2024-13-99")
	assert.False(t, ok)
}

func TestTotalHari(t *testing.T) {
	// sewa 01/03 sampai 03/03 dihitung 3 hari
	assert.Equal(t, 3, TotalHari("01/03/2024", "03/03/2024"))

	// satu hari penuh
	assert.Equal(t, 1, TotalHari("01/03/2024", "01/03/2024"))

	// kedua format tanggal boleh dicampur
	assert.Equal(t, 3, TotalHari("2024-03-01", "03/03/2024"))

	// tanggal kembali sebelum tanggal sewa
	assert.Equal(t, 0, TotalHari("03/03/2024", "01/03/2024"))

	// input rusak
	assert.Equal(t, 0, TotalHari("", "03/03/2024"))
	assert.Equal(t, 0, TotalHari("01/03/2024", "bukan tanggal"))
}

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	require.NoError(t, json.Unmarshal([]byte(`"15/08/2024"`), &d))
	assert.Equal(t, "2024-08-15", d.String())

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-08-15"`, string(raw))

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
	raw, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(raw))

	assert.Error(t, json.Unmarshal([]byte(`"15-08-2024"`), &d))
}
