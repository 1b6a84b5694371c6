//go:build unit

package exchange_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"secret-santa/internal/domain/participant"
	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	mu    sync.Mutex
	calls int
	list  []*participant.Participant
}

func (s *stubLister) ListAll(context.Context) ([]*participant.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.list, nil
}

func rehydrated(status participant.Status, targetID *uuid.UUID) *participant.Participant {
	targetStatus := participant.TargetStatusUndefined
	if targetID != nil {
		targetStatus = participant.TargetStatusGiftInfoNotViewed
	}
	return participant.Rehydrate(
		uuid.New(), "name", "mail@example.com", "hash",
		status, targetID, targetStatus, "", "", false,
		time.Now(), time.Now(),
	)
}

func pairedInvolved() []*participant.Participant {
	a := rehydrated(participant.StatusInvolved, nil)
	b := rehydrated(participant.StatusInvolved, nil)
	aID, bID := a.ID(), b.ID()
	a.AssignTarget(bID)
	b.AssignTarget(aID)
	return []*participant.Participant{a, b}
}

func TestNewState(t *testing.T) {
	t.Run("parses deadlines from config", func(t *testing.T) {
		st, err := exchange.NewState(config.NewTestConfig().Exchange)
		require.NoError(t, err)
		assert.Equal(t, 20, st.AssignmentDeadline().Hour())
		assert.Equal(t, 18, st.GiftDeadline().Hour())
		assert.False(t, st.AssignmentMade())
	})

	t.Run("rejects malformed deadline", func(t *testing.T) {
		cfg := config.NewTestConfig().Exchange
		cfg.GiftDeadline = "not a date"
		_, err := exchange.NewState(cfg)
		assert.Error(t, err)
	})
}

func TestStateInit(t *testing.T) {
	t.Run("probe runs once even under concurrent access", func(t *testing.T) {
		st, err := exchange.NewState(config.NewTestConfig().Exchange)
		require.NoError(t, err)

		lister := &stubLister{list: pairedInvolved()}
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, st.Init(context.Background(), lister))
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, lister.calls)
		assert.True(t, st.AssignmentMade())
	})
}

func TestCurrentDeadline(t *testing.T) {
	st, err := exchange.NewState(config.NewTestConfig().Exchange)
	require.NoError(t, err)

	assert.Equal(t, st.AssignmentDeadline(), st.CurrentDeadline())
	st.SetAssignmentMade(true)
	assert.Equal(t, st.GiftDeadline(), st.CurrentDeadline())
}

func TestCheckTossStatus(t *testing.T) {
	t.Run("made when every involved participant targets into the involved set", func(t *testing.T) {
		assert.True(t, exchange.CheckTossStatus(pairedInvolved()))
	})

	t.Run("not made with fewer than two involved", func(t *testing.T) {
		assert.False(t, exchange.CheckTossStatus(nil))
		assert.False(t, exchange.CheckTossStatus([]*participant.Participant{
			rehydrated(participant.StatusInvolved, nil),
		}))
	})

	t.Run("not made when a target is missing", func(t *testing.T) {
		pair := pairedInvolved()
		pair[0].ClearTarget()
		assert.False(t, exchange.CheckTossStatus(pair))
	})

	t.Run("not made when a target points outside the involved set", func(t *testing.T) {
		outsider := uuid.New()
		a := rehydrated(participant.StatusInvolved, nil)
		b := rehydrated(participant.StatusInvolved, nil)
		a.AssignTarget(b.ID())
		b.AssignTarget(outsider)
		assert.False(t, exchange.CheckTossStatus([]*participant.Participant{a, b}))
	})

	t.Run("refused participants are ignored by the probe", func(t *testing.T) {
		pair := pairedInvolved()
		all := append(pair, rehydrated(participant.StatusRefused, nil))
		assert.True(t, exchange.CheckTossStatus(all))
	})
}
