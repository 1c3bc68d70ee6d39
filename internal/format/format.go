// Package format renders backend values for terminal output.
package format

import (
	"fmt"
	"time"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Date renders an ISO timestamp (or bare date) as local date and time.
// Absent or unparseable values render as "-".
func Date(iso string) string {
	if iso == "" {
		return "-"
	}

	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		if t, err = time.Parse("2006-01-02", iso); err != nil {
			return "-"
		}
		return t.Format("02 Jan 2006")
	}
	return t.Local().Format("02 Jan 2006 15:04")
}

// Amount renders a rupee amount without trailing zeros for whole values.
func Amount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("₹%d", int64(v))
	}
	return fmt.Sprintf("₹%.2f", v)
}

// MonthName returns the English month name, or the number itself when out
// of range.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("%d", m)
	}
	return monthNames[m-1]
}
