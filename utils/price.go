package utils

import "strconv"

// FormatRupiah menghasilkan "Rp850.000" dengan pemisah ribuan titik
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, ch := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, ch)
	}

	prefix := "Rp"
	if negative {
		prefix = "-Rp"
	}
	return prefix + string(out)
}

// FormatDailyRupiah untuk harga sewa per hari, misal "Rp850.000 / hari"
func FormatDailyRupiah(pricePerDay int64) string {
	return FormatRupiah(pricePerDay) + " / hari"
}
