package templates

import (
	"strconv"
	"time"
)

// displayDate turns an ISO date ("1990-01-31") into "31/01/1990". Anything
// that does not parse is shown as stored.
func displayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// itoa converts an int to a string, used for building URL paths.
func itoa(n int) string {
	return strconv.Itoa(n)
}
