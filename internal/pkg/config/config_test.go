//go:build unit

package config_test

import (
	"testing"
	"time"

	"secret-santa/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: 9 * time.Hour},
		{name: "evening with minutes", input: "18:30", want: 18*time.Hour + 30*time.Minute},
		{name: "midnight", input: "00:00", want: 0},
		{name: "garbage", input: "25:99", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := config.ParseTimeOfDay(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExchangeConfig(t *testing.T) {
	t.Run("deadlines parse in local time", func(t *testing.T) {
		cfg := config.ExchangeConfig{
			AssignmentDeadline: "2026-12-10 20:00",
			GiftDeadline:       "2026-12-24 18:00",
		}
		at, err := cfg.AssignmentDeadlineAt()
		require.NoError(t, err)
		assert.Equal(t, 20, at.Hour())

		gt, err := cfg.GiftDeadlineAt()
		require.NoError(t, err)
		assert.Equal(t, time.December, gt.Month())
		assert.Equal(t, 24, gt.Day())
	})

	t.Run("absent reminder times yield empty list", func(t *testing.T) {
		cfg := config.ExchangeConfig{ReminderTimes: []string{""}}
		times, err := cfg.ParsedReminderTimes()
		require.NoError(t, err)
		assert.Empty(t, times)
	})

	t.Run("custom messages decode from JSON", func(t *testing.T) {
		cfg := config.ExchangeConfig{
			CustomMessages: `[{"time":"12:00","title":"Lunch call","message":"Gather at noon"}]`,
		}
		messages, err := cfg.ParsedCustomMessages()
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "Lunch call", messages[0].Title)
	})

	t.Run("absent custom messages are not an error", func(t *testing.T) {
		cfg := config.ExchangeConfig{}
		messages, err := cfg.ParsedCustomMessages()
		require.NoError(t, err)
		assert.Nil(t, messages)
	})
}
