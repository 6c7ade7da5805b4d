package utils

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// CustomDate hanya menyimpan tanggal (tanpa jam)
type CustomDate struct {
	time.Time
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	t, ok := ParseFlexibleDate(str)
	if !ok {
		return fmt.Errorf("invalid date format: %s", str)
	}
	*d = CustomDate{t}
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil // NULL
	}
	return d.Time.Format("2006-01-02"), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	if value == nil {
		*d = CustomDate{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = CustomDate{v}
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fmt.Errorf("cannot parse date string: %v", err)
		}
		*d = CustomDate{t}
		return nil
	case []byte:
		t, err := time.Parse("2006-01-02", string(v))
		if err != nil {
			return fmt.Errorf("cannot parse date bytes: %v", err)
		}
		*d = CustomDate{t}
		return nil
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
}

func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// ParseFlexibleDate menerima dd/mm/yyyy atau yyyy-mm-dd, sisanya dicoba parse umum
func ParseFlexibleDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("02/01/2006", trimmed); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", trimmed); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// TotalHari = selisih hari + 1; 0 kalau tanggal tidak valid atau kembali < sewa
func TotalHari(startDate, endDate string) int {
	start, okStart := ParseFlexibleDate(startDate)
	end, okEnd := ParseFlexibleDate(endDate)
	if !okStart || !okEnd {
		return 0
	}
	return TotalHariFromTimes(start, end)
}

func TotalHariFromTimes(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		return 0
	}
	return int(diff/(24*time.Hour)) + 1
}
