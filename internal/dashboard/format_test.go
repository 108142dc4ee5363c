package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		hour     int
		min      int
		expected string
	}{
		{14, 5, "02:05 PM"},
		{9, 30, "09:30 AM"},
		{0, 7, "12:07 AM"},
		{12, 0, "12:00 PM"},
		{23, 59, "11:59 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			instant := time.Date(2023, 1, 1, tt.hour, tt.min, 42, 0, time.UTC)
			assert.Equal(t, tt.expected, FormatTime(instant))
		})
	}
}

func TestTimeLayout24h(t *testing.T) {
	instant := time.Date(2023, 1, 1, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "14:05", instant.Format(TimeLayout24h))
}
