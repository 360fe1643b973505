package report

import "time"

// Greeting buckets the hour of day into four bands.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "Good morning"
	case h >= 12 && h < 18:
		return "Good afternoon"
	case h >= 18 && h < 23:
		return "Good evening"
	default:
		return "Good night"
	}
}
