package models

import "time"

// Today returns the local calendar date of now as yyyy-mm-dd
func Today(now time.Time) string {
	return now.Local().Format(DateLayout)
}

// ValidDate reports whether s is a real calendar date in yyyy-mm-dd form
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
