package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, e := range All() {
		t.Run(e.String(), func(t *testing.T) {
			record := Lookup(e)
			assert.Equal(t, e, record.ID)
			assert.NotEmpty(t, record.Emoji)
			assert.NotEmpty(t, record.Name)
			assert.NotEmpty(t, record.Color)
			assert.NotEmpty(t, record.GlowColor)
			assert.NotEmpty(t, record.Message)
			assert.NotEmpty(t, record.Suggestion)
			assert.NotEmpty(t, record.ActionLabel)
			assert.NotEmpty(t, record.Gradient[0])
			assert.NotEmpty(t, record.Gradient[1])
		})
	}
	assert.Len(t, All(), int(count))
}

func TestRecords(t *testing.T) {
	tests := []struct {
		emotion     Emotion
		emoji       string
		name        string
		message     string
		actionLabel string
	}{
		{Happy, "😄", "Happy", "You seem in great spirits today!", "Share Mood"},
		{Calm, "😌", "Calm", "Your stress level is stable. Keep it up 💜", "Start Meditation"},
		{Sad, "😢", "Sad", "I sense you're feeling low. Let's take a short break.", "Connect with Crew"},
		{Stressed, "😫", "Stressed", "High stress detected — let's try deep breathing.", "Start Breathing Exercise"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := tt.emotion.Record()
			assert.Equal(t, tt.emoji, record.Emoji)
			assert.Equal(t, tt.name, record.Name)
			assert.Equal(t, tt.message, record.Message)
			assert.Equal(t, tt.actionLabel, record.ActionLabel)
		})
	}
}

func TestRecordIsACopy(t *testing.T) {
	record := Lookup(Sad)
	record.Name = "Joyful"
	assert.Equal(t, "Sad", Lookup(Sad).Name)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Emotion
	}{
		{"happy", Happy},
		{"Calm", Calm},
		{"SAD", Sad},
		{"sTrEsSeD", Stressed},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}

	_, err := Parse("angry")
	assert.EqualError(t, err, `unknown emotion "angry"`)
}

func TestString(t *testing.T) {
	assert.Equal(t, "happy", Happy.String())
	assert.Equal(t, "stressed", Stressed.String())
	assert.Equal(t, "Emotion(42)", Emotion(42).String())
	for _, e := range All() {
		parsed, err := Parse(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, parsed)
	}
}
