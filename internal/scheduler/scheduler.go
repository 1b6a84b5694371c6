// Package scheduler runs the perpetual reminder loop: once per
// calendar day it walks the sorted timer list, sleeps until each time
// of day is reached and dispatches phase-appropriate notifications to
// every participant.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/clock"
	"secret-santa/internal/usecase/shared"
)

type Scheduler struct {
	timers []Timer
	store  shared.ParticipantRepository
	sink   shared.NotificationRepository
	state  *exchange.State
	clk    clock.Clock
	logger *slog.Logger

	// The exchange start message goes out at most once per event cycle.
	startMessageSent bool
}

func New(
	timers []Timer,
	store shared.ParticipantRepository,
	sink shared.NotificationRepository,
	state *exchange.State,
	clk clock.Clock,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		timers: timers,
		store:  store,
		sink:   sink,
		state:  state,
		clk:    clk,
		logger: logger,
	}
}

// Run blocks until ctx is cancelled. Each day it fires the timers that
// are still ahead of the wall clock; a timer whose time of day already
// passed is skipped until tomorrow. Dispatch failures are logged and
// never stop the loop.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		for _, timer := range s.timers {
			fired, ok := s.waitForTimer(ctx, timer)
			if !ok {
				return
			}
			if !fired {
				continue
			}

			s.logger.Info("reminder timer fired", "kind", timer.Kind.String(), "at", timer.At.String())
			if err := s.execute(ctx, timer); err != nil {
				s.logger.Error("reminder dispatch failed", "kind", timer.Kind.String(), "error", err.Error())
			}
			s.logger.Info("reminder dispatch finished", "kind", timer.Kind.String())
		}
		if !s.sleepUntilMidnight(ctx) {
			return
		}
	}
}

// waitForTimer sleeps until the timer's time of day. The second return
// is false when ctx was cancelled; the first is false when the time of
// day already passed today.
func (s *Scheduler) waitForTimer(ctx context.Context, timer Timer) (fired bool, ok bool) {
	wait := timer.At - timeOfDay(s.clk.Now())
	if wait < 0 {
		return false, true
	}
	select {
	case <-ctx.Done():
		return false, false
	case <-time.After(wait):
		return true, true
	}
}

func (s *Scheduler) sleepUntilMidnight(ctx context.Context) bool {
	wait := 24*time.Hour - timeOfDay(s.clk.Now())
	select {
	case <-ctx.Done():
		return false
	case <-time.After(wait):
		return true
	}
}

// execute dispatches one firing. The assignment flag is read fresh here
// so a re-toss mid-cycle immediately switches which branch fires next.
func (s *Scheduler) execute(ctx context.Context, timer Timer) error {
	assignmentMade := s.state.AssignmentMade()
	remaining := s.state.CurrentDeadline().Sub(s.clk.Now())
	if remaining < 0 && (timer.Kind != KindExchangeStart || s.startMessageSent) {
		return nil
	}

	dc := dispatchContext{
		assignmentMade: assignmentMade,
		isLastDay:      remaining < 24*time.Hour,
		phrase:         timePhrase(assignmentMade, int(remaining/(24*time.Hour))),
		locationText:   s.state.LocationText(),
	}

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range all {
		infos := buildNotifications(timer, all, p, dc)
		if len(infos) == 0 {
			continue
		}
		// One sink call per participant; a failed write must not starve
		// the remaining participants.
		if err := s.sink.EnqueueMany(ctx, p.ID(), infos); err != nil {
			s.logger.Error("failed to enqueue notifications",
				"participant_id", p.ID().String(), "error", err.Error())
		}
	}

	if timer.Kind == KindExchangeStart {
		s.startMessageSent = true
	}
	return nil
}
