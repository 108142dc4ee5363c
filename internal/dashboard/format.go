package dashboard

import "time"

// Layouts accepted by WithTimeLayout
const (
	// Ex: 02:05 PM
	TimeLayout12h = "03:04 PM"
	// Ex: 14:05
	TimeLayout24h = "15:04"
)

// FormatTime returns the hour and minutes of an instant (ex: "02:05 PM").
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout12h)
}
