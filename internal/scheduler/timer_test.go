//go:build unit

package scheduler

import (
	"testing"
	"time"

	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exchangeConfig(assignmentDeadline, giftDeadline string) config.ExchangeConfig {
	return config.ExchangeConfig{
		TeamName:           "Test Team",
		AssignmentDeadline: assignmentDeadline,
		GiftDeadline:       giftDeadline,
	}
}

func mustState(t *testing.T, cfg config.ExchangeConfig) *exchange.State {
	t.Helper()
	state, err := exchange.NewState(cfg)
	require.NoError(t, err)
	return state
}

func timersOfKind(timers []Timer, kind TimerKind) []Timer {
	var out []Timer
	for _, timer := range timers {
		if timer.Kind == kind {
			out = append(out, timer)
		}
	}
	return out
}

func TestBuildTimers(t *testing.T) {
	t.Run("full set is sorted ascending by time of day", func(t *testing.T) {
		cfg := exchangeConfig("2026-12-10 20:00", "2026-12-24 18:00")
		cfg.ReminderTimes = []string{"09:00", "21:30"}
		cfg.CustomMessages = `[{"time":"12:15","title":"t","message":"m"}]`

		timers, err := BuildTimers(cfg, mustState(t, cfg))
		require.NoError(t, err)

		// 2 everyday + 1 custom + 4 deadline-relative + 1 start.
		require.Len(t, timers, 8)
		for i := 1; i < len(timers); i++ {
			assert.LessOrEqual(t, timers[i-1].At, timers[i].At)
		}
	})

	t.Run("minimal config builds exactly the deadline timers", func(t *testing.T) {
		cfg := exchangeConfig("2026-12-10 20:00", "2026-12-24 18:00")
		timers, err := BuildTimers(cfg, mustState(t, cfg))
		require.NoError(t, err)

		want := []Timer{
			{At: 17 * time.Hour, Kind: KindGiftDeadlineOneHour},
			{At: 17*time.Hour + 55*time.Minute, Kind: KindGiftDeadlineFiveMinutes},
			{At: 18 * time.Hour, Kind: KindExchangeStart},
			{At: 19 * time.Hour, Kind: KindAssignmentDeadlineOneHour},
			{At: 19*time.Hour + 55*time.Minute, Kind: KindAssignmentDeadlineFiveMinutes},
		}
		if diff := cmp.Diff(want, timers); diff != "" {
			t.Errorf("timer list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("deadline relative timers", func(t *testing.T) {
		cfg := exchangeConfig("2026-12-10 20:00", "2026-12-24 18:30")
		timers, err := BuildTimers(cfg, mustState(t, cfg))
		require.NoError(t, err)

		oneHour := timersOfKind(timers, KindAssignmentDeadlineOneHour)
		require.Len(t, oneHour, 1)
		assert.Equal(t, 19*time.Hour, oneHour[0].At)

		fiveMinutes := timersOfKind(timers, KindGiftDeadlineFiveMinutes)
		require.Len(t, fiveMinutes, 1)
		assert.Equal(t, 18*time.Hour+25*time.Minute, fiveMinutes[0].At)

		start := timersOfKind(timers, KindExchangeStart)
		require.Len(t, start, 1)
		assert.Equal(t, 18*time.Hour+30*time.Minute, start[0].At)
	})

	t.Run("one hour timer wraps past midnight", func(t *testing.T) {
		cfg := exchangeConfig("2026-12-10 00:30", "2026-12-24 18:00")
		timers, err := BuildTimers(cfg, mustState(t, cfg))
		require.NoError(t, err)

		oneHour := timersOfKind(timers, KindAssignmentDeadlineOneHour)
		require.Len(t, oneHour, 1)
		assert.Equal(t, 23*time.Hour+30*time.Minute, oneHour[0].At)
	})

	t.Run("five minute timer wraps only below five past midnight", func(t *testing.T) {
		cfg := exchangeConfig("2026-12-10 00:03", "2026-12-24 00:10")
		timers, err := BuildTimers(cfg, mustState(t, cfg))
		require.NoError(t, err)

		wrapped := timersOfKind(timers, KindAssignmentDeadlineFiveMinutes)
		require.Len(t, wrapped, 1)
		assert.Equal(t, 23*time.Hour+58*time.Minute, wrapped[0].At)

		plain := timersOfKind(timers, KindGiftDeadlineFiveMinutes)
		require.Len(t, plain, 1)
		assert.Equal(t, 5*time.Minute, plain[0].At)
	})

	t.Run("custom timers carry their payload", func(t *testing.T) {
		cfg := exchangeConfig("2026-12-10 20:00", "2026-12-24 18:00")
		cfg.CustomMessages = `[{"time":"10:00","title":"Morning","message":"Hello"},{"time":"15:00","title":"Afternoon","message":"Hi"}]`

		timers, err := BuildTimers(cfg, mustState(t, cfg))
		require.NoError(t, err)

		custom := timersOfKind(timers, KindCustomInLastDay)
		require.Len(t, custom, 2)
		assert.Equal(t, "Morning", custom[0].Custom.Title)
		assert.Equal(t, "Afternoon", custom[1].Custom.Title)
	})

	t.Run("malformed reminder time is an error", func(t *testing.T) {
		cfg := exchangeConfig("2026-12-10 20:00", "2026-12-24 18:00")
		cfg.ReminderTimes = []string{"24:61"}
		_, err := BuildTimers(cfg, mustState(t, cfg))
		assert.Error(t, err)
	})
}
