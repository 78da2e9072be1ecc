package problemgen

import "time"

// DateLayout is the daily challenge key format.
const DateLayout = "2006-01-02"

// Today returns the local calendar date key.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidDate reports whether key is a real YYYY-MM-DD date.
func ValidDate(key string) bool {
	_, err := time.Parse(DateLayout, key)
	return err == nil
}
