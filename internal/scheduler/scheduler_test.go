//go:build unit

package scheduler

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"secret-santa/internal/domain/notification"
	"secret-santa/internal/domain/participant"
	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/clock"
	"secret-santa/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	participants []*participant.Participant
	listErr      error
}

func (f *fakeStore) ListAll(context.Context) ([]*participant.Participant, error) {
	return f.participants, f.listErr
}

func (f *fakeStore) FindByID(context.Context, uuid.UUID) (*participant.Participant, error) {
	return nil, errs.New("not implemented")
}

func (f *fakeStore) FindByAccessKeyHash(context.Context, string) (*participant.Participant, error) {
	return nil, errs.New("not implemented")
}

func (f *fakeStore) Create(context.Context, *participant.Participant) error  { return nil }
func (f *fakeStore) Save(context.Context, *participant.Participant) error   { return nil }
func (f *fakeStore) SaveAll(context.Context, []*participant.Participant) error { return nil }
func (f *fakeStore) CountInvolved(context.Context) (int, error)             { return 0, nil }

type recordingSink struct {
	enqueued map[uuid.UUID][]notification.Info
	failFor  map[uuid.UUID]bool
	cleared  int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		enqueued: make(map[uuid.UUID][]notification.Info),
		failFor:  make(map[uuid.UUID]bool),
	}
}

func (r *recordingSink) Enqueue(_ context.Context, ids []uuid.UUID, info notification.Info) error {
	for _, id := range ids {
		r.enqueued[id] = append(r.enqueued[id], info)
	}
	return nil
}

func (r *recordingSink) EnqueueMany(_ context.Context, id uuid.UUID, infos []notification.Info) error {
	if r.failFor[id] {
		return errs.New("sink write failed")
	}
	r.enqueued[id] = append(r.enqueued[id], infos...)
	return nil
}

func (r *recordingSink) EnqueueForAll(context.Context, notification.Info) error { return nil }

func (r *recordingSink) ClearAll(context.Context) error {
	r.cleared++
	r.enqueued = make(map[uuid.UUID][]notification.Info)
	return nil
}

func (r *recordingSink) ListUnsent(context.Context, int) ([]*notification.Notification, error) {
	return nil, nil
}

func (r *recordingSink) MarkSent(context.Context, []uuid.UUID) error { return nil }

const deadlineLayout = "2006-01-02 15:04"

func stateAt(t *testing.T, now time.Time, untilAssignment, untilGift time.Duration) *exchange.State {
	t.Helper()
	state, err := exchange.NewState(exchangeConfig(
		now.Add(untilAssignment).Format(deadlineLayout),
		now.Add(untilGift).Format(deadlineLayout),
	))
	require.NoError(t, err)
	return state
}

func newTestScheduler(store *fakeStore, sink *recordingSink, state *exchange.State, clk clock.Clock) *Scheduler {
	return New(nil, store, sink, state, clk, slog.Default())
}

func TestExecute(t *testing.T) {
	now := time.Date(2026, 12, 20, 9, 0, 0, 0, time.Local)

	t.Run("everyday before toss reaches undecided participants only", func(t *testing.T) {
		undecided := newParticipant(t, participant.StatusExpectedToChoose)
		involved := newParticipant(t, participant.StatusInvolved)
		store := &fakeStore{participants: []*participant.Participant{undecided, involved}}
		sink := newRecordingSink()
		state := stateAt(t, now, 48*time.Hour, 96*time.Hour)

		s := newTestScheduler(store, sink, state, clock.NewMockClock(now))
		require.NoError(t, s.execute(context.Background(), Timer{Kind: KindEveryday}))

		assert.Len(t, sink.enqueued[undecided.ID()], 1)
		assert.Empty(t, sink.enqueued[involved.ID()])
	})

	t.Run("one hour reminder fires inside the last day", func(t *testing.T) {
		undecided := newParticipant(t, participant.StatusExpectedToChoose)
		involved := newParticipant(t, participant.StatusInvolved)
		store := &fakeStore{participants: []*participant.Participant{undecided, involved}}
		sink := newRecordingSink()
		// 45 minutes before the assignment deadline.
		state := stateAt(t, now, 45*time.Minute, 96*time.Hour)

		s := newTestScheduler(store, sink, state, clock.NewMockClock(now))
		require.NoError(t, s.execute(context.Background(), Timer{Kind: KindAssignmentDeadlineOneHour}))

		require.Len(t, sink.enqueued[involved.ID()], 1)
		assert.Equal(t, titleAssignmentDeadlineOneHour, sink.enqueued[involved.ID()][0].Title)
		assert.Empty(t, sink.enqueued[undecided.ID()])
	})

	t.Run("past the deadline all timers but exchange start are silent", func(t *testing.T) {
		involved := newParticipant(t, participant.StatusInvolved)
		store := &fakeStore{participants: []*participant.Participant{involved}}
		sink := newRecordingSink()
		state := stateAt(t, now, -2*time.Hour, 96*time.Hour)

		s := newTestScheduler(store, sink, state, clock.NewMockClock(now))
		require.NoError(t, s.execute(context.Background(), Timer{Kind: KindEveryday}))
		require.NoError(t, s.execute(context.Background(), Timer{Kind: KindAssignmentDeadlineFiveMinutes}))

		assert.Empty(t, sink.enqueued)
	})

	t.Run("exchange start fires at most once per cycle", func(t *testing.T) {
		involved := newParticipant(t, participant.StatusInvolved)
		store := &fakeStore{participants: []*participant.Participant{involved}}
		sink := newRecordingSink()
		state := stateAt(t, now, -96*time.Hour, -10*time.Minute)
		state.SetAssignmentMade(true)

		s := newTestScheduler(store, sink, state, clock.NewMockClock(now))
		timer := Timer{Kind: KindExchangeStart}

		require.NoError(t, s.execute(context.Background(), timer))
		require.Len(t, sink.enqueued[involved.ID()], 1)

		// Second firing in the same cycle is a no-op.
		require.NoError(t, s.execute(context.Background(), timer))
		assert.Len(t, sink.enqueued[involved.ID()], 1)
	})

	t.Run("a failed enqueue does not starve other participants", func(t *testing.T) {
		first := newParticipant(t, participant.StatusExpectedToChoose)
		second := newParticipant(t, participant.StatusExpectedToChoose)
		store := &fakeStore{participants: []*participant.Participant{first, second}}
		sink := newRecordingSink()
		sink.failFor[first.ID()] = true
		state := stateAt(t, now, 48*time.Hour, 96*time.Hour)

		s := newTestScheduler(store, sink, state, clock.NewMockClock(now))
		require.NoError(t, s.execute(context.Background(), Timer{Kind: KindEveryday}))

		assert.Empty(t, sink.enqueued[first.ID()])
		assert.Len(t, sink.enqueued[second.ID()], 1)
	})

	t.Run("store failure is returned and the firing abandoned", func(t *testing.T) {
		store := &fakeStore{listErr: errs.New("db down")}
		sink := newRecordingSink()
		state := stateAt(t, now, 48*time.Hour, 96*time.Hour)

		s := newTestScheduler(store, sink, state, clock.NewMockClock(now))
		assert.Error(t, s.execute(context.Background(), Timer{Kind: KindEveryday}))
		assert.Empty(t, sink.enqueued)
	})

	t.Run("assignment flag is read fresh on every firing", func(t *testing.T) {
		undecided := newParticipant(t, participant.StatusExpectedToChoose)
		involved := newParticipant(t, participant.StatusInvolved)
		involved.AssignTarget(uuid.New())
		store := &fakeStore{participants: []*participant.Participant{undecided, involved}}
		sink := newRecordingSink()
		state := stateAt(t, now, 48*time.Hour, 96*time.Hour)

		s := newTestScheduler(store, sink, state, clock.NewMockClock(now))
		require.NoError(t, s.execute(context.Background(), Timer{Kind: KindEveryday}))
		assert.Len(t, sink.enqueued[undecided.ID()], 1)
		assert.Empty(t, sink.enqueued[involved.ID()])

		// A toss between firings flips the everyday branch immediately.
		state.SetAssignmentMade(true)
		require.NoError(t, s.execute(context.Background(), Timer{Kind: KindEveryday}))
		assert.Len(t, sink.enqueued[undecided.ID()], 1)
		assert.Len(t, sink.enqueued[involved.ID()], 1)
	})
}

func TestRun(t *testing.T) {
	t.Run("stops at the sleep boundary when cancelled", func(t *testing.T) {
		now := time.Date(2026, 12, 20, 9, 0, 0, 0, time.Local)
		store := &fakeStore{}
		sink := newRecordingSink()
		state := stateAt(t, now, 48*time.Hour, 96*time.Hour)

		s := newTestScheduler(store, sink, state, clock.NewMockClock(now))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan struct{})
		go func() {
			s.Run(ctx)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("scheduler did not stop on cancellation")
		}
	})
}
