package scheduler

import (
	"sort"
	"time"

	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/config"
)

type TimerKind int

const (
	KindEveryday TimerKind = iota
	KindAssignmentDeadlineOneHour
	KindAssignmentDeadlineFiveMinutes
	KindGiftDeadlineOneHour
	KindGiftDeadlineFiveMinutes
	KindExchangeStart
	KindCustomInLastDay
)

func (k TimerKind) String() string {
	switch k {
	case KindEveryday:
		return "everyday"
	case KindAssignmentDeadlineOneHour:
		return "assignment_deadline_one_hour"
	case KindAssignmentDeadlineFiveMinutes:
		return "assignment_deadline_five_minutes"
	case KindGiftDeadlineOneHour:
		return "gift_deadline_one_hour"
	case KindGiftDeadlineFiveMinutes:
		return "gift_deadline_five_minutes"
	case KindExchangeStart:
		return "exchange_start"
	case KindCustomInLastDay:
		return "custom_in_last_day"
	default:
		return "unknown"
	}
}

// Timer is one firing slot in the daily cycle: a time of day plus the
// dispatch semantics to run when it is reached. Immutable once built.
type Timer struct {
	At     time.Duration
	Kind   TimerKind
	Custom *config.CustomMessage
}

// BuildTimers derives the full sorted timer list for one process run:
// the configured daily reminders, the custom one-off messages, the four
// deadline-relative timers and the exchange start timer.
func BuildTimers(cfg config.ExchangeConfig, state *exchange.State) ([]Timer, error) {
	var timers []Timer

	reminderTimes, err := cfg.ParsedReminderTimes()
	if err != nil {
		return nil, err
	}
	for _, at := range reminderTimes {
		timers = append(timers, Timer{At: at, Kind: KindEveryday})
	}

	customMessages, err := cfg.ParsedCustomMessages()
	if err != nil {
		return nil, err
	}
	for i := range customMessages {
		custom := customMessages[i]
		at, err := config.ParseTimeOfDay(custom.Time)
		if err != nil {
			return nil, err
		}
		timers = append(timers, Timer{At: at, Kind: KindCustomInLastDay, Custom: &custom})
	}

	assignmentDeadline := state.AssignmentDeadline()
	giftDeadline := state.GiftDeadline()
	timers = append(timers,
		oneHourBefore(KindAssignmentDeadlineOneHour, assignmentDeadline),
		fiveMinutesBefore(KindAssignmentDeadlineFiveMinutes, assignmentDeadline),
		oneHourBefore(KindGiftDeadlineOneHour, giftDeadline),
		fiveMinutesBefore(KindGiftDeadlineFiveMinutes, giftDeadline),
		Timer{At: timeOfDay(giftDeadline), Kind: KindExchangeStart},
	)

	sort.SliceStable(timers, func(i, j int) bool {
		return timers[i].At < timers[j].At
	})
	return timers, nil
}

// oneHourBefore wraps forward past midnight when the subtraction would
// go negative, so the value stays a valid same-day time of day.
func oneHourBefore(kind TimerKind, deadline time.Time) Timer {
	at := timeOfDay(deadline) - time.Hour
	if deadline.Hour() < 1 {
		at += 24 * time.Hour
	}
	return Timer{At: at, Kind: kind}
}

func fiveMinutesBefore(kind TimerKind, deadline time.Time) Timer {
	at := timeOfDay(deadline) - 5*time.Minute
	if deadline.Hour() < 1 && deadline.Minute() < 5 {
		at += 24 * time.Hour
	}
	return Timer{At: at, Kind: kind}
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}
