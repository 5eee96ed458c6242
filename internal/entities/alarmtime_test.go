package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/errors"
)

func TestParseAlarmTime(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{"early morning", "06:00", 6, 0, false},
		{"single digit hour", "6:30", 6, 30, false},
		{"evening", "21:45", 21, 45, false},
		{"midnight", "00:00", 0, 0, false},
		{"last minute of day", "23:59", 23, 59, false},
		{"hour out of range", "24:00", 0, 0, true},
		{"minute out of range", "12:60", 0, 0, true},
		{"missing minutes", "12", 0, 0, true},
		{"single digit minutes", "12:5", 0, 0, true},
		{"empty", "", 0, 0, true},
		{"garbage", "morning", 0, 0, true},
		{"trailing text", "06:00pm", 0, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hour, minute, err := entities.ParseAlarmTime(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantHour, hour)
			assert.Equal(t, tc.wantMinute, minute)
		})
	}
}

func TestCategory(t *testing.T) {
	for _, c := range entities.Categories() {
		assert.True(t, c.IsValid())
		assert.NotEmpty(t, c.String())
	}

	assert.False(t, entities.Category("charisma").IsValid())
	assert.False(t, entities.Category("").IsValid())
	assert.Len(t, entities.Categories(), 3)
}
