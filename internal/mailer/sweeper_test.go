//go:build unit

package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"secret-santa/internal/domain/notification"
	"secret-santa/internal/domain/participant"
	"secret-santa/internal/pkg/clock"
	"secret-santa/internal/pkg/config"
	"secret-santa/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	unsent     []*notification.Notification
	listErr    error
	markedSent []uuid.UUID
}

func (f *fakeQueue) Enqueue(context.Context, []uuid.UUID, notification.Info) error { return nil }
func (f *fakeQueue) EnqueueMany(context.Context, uuid.UUID, []notification.Info) error {
	return nil
}
func (f *fakeQueue) EnqueueForAll(context.Context, notification.Info) error { return nil }
func (f *fakeQueue) ClearAll(context.Context) error                        { return nil }

func (f *fakeQueue) ListUnsent(_ context.Context, limit int) ([]*notification.Notification, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.unsent) > limit {
		return f.unsent[:limit], nil
	}
	return f.unsent, nil
}

func (f *fakeQueue) MarkSent(_ context.Context, ids []uuid.UUID) error {
	f.markedSent = append(f.markedSent, ids...)
	return nil
}

type fakeDirectory struct {
	byID map[uuid.UUID]*participant.Participant
}

func (f *fakeDirectory) ListAll(context.Context) ([]*participant.Participant, error) {
	return nil, nil
}

func (f *fakeDirectory) FindByID(_ context.Context, id uuid.UUID) (*participant.Participant, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, errs.New("not found")
	}
	return p, nil
}

func (f *fakeDirectory) FindByAccessKeyHash(context.Context, string) (*participant.Participant, error) {
	return nil, errs.New("not found")
}
func (f *fakeDirectory) Create(context.Context, *participant.Participant) error  { return nil }
func (f *fakeDirectory) Save(context.Context, *participant.Participant) error    { return nil }
func (f *fakeDirectory) SaveAll(context.Context, []*participant.Participant) error {
	return nil
}
func (f *fakeDirectory) CountInvolved(context.Context) (int, error) { return 0, nil }

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	sent    []sentMail
	failFor map[string]bool
}

func (f *fakeSender) Send(_ context.Context, to, subject, htmlBody string) error {
	if f.failFor[to] {
		return errs.New("smtp refused")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func queuedFor(t *testing.T, dir *fakeDirectory, name, email string) *notification.Notification {
	t.Helper()
	p, err := participant.New(name, email, uuid.NewString(), false)
	require.NoError(t, err)
	dir.byID[p.ID()] = p
	return &notification.Notification{
		ID:            uuid.New(),
		ParticipantID: p.ID(),
		Title:         "Reminder",
		Message:       "The exchange is coming up.",
	}
}

func newSweeper(queue *fakeQueue, dir *fakeDirectory, sender *fakeSender, batchSize int) *Sweeper {
	tmpl, _ := NewTemplate("", "North Pole")
	cfg := config.MailConfig{CheckInterval: time.Minute, BatchSize: batchSize}
	clk := clock.NewMockClock(time.Date(2026, 12, 20, 12, 0, 0, 0, time.UTC))
	return NewSweeper(queue, dir, sender, tmpl, clk, cfg, slog.Default())
}

func TestSweepOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers a batch and marks it sent", func(t *testing.T) {
		dir := &fakeDirectory{byID: make(map[uuid.UUID]*participant.Participant)}
		queue := &fakeQueue{}
		first := queuedFor(t, dir, "Alice", "alice@example.com")
		second := queuedFor(t, dir, "Bob", "bob@example.com")
		queue.unsent = []*notification.Notification{first, second}
		sender := &fakeSender{}

		require.NoError(t, newSweeper(queue, dir, sender, 5).SweepOnce(ctx))

		require.Len(t, sender.sent, 2)
		assert.Equal(t, "alice@example.com", sender.sent[0].to)
		assert.Equal(t, "Reminder", sender.sent[0].subject)
		assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, queue.markedSent)
	})

	t.Run("respects the batch size", func(t *testing.T) {
		dir := &fakeDirectory{byID: make(map[uuid.UUID]*participant.Participant)}
		queue := &fakeQueue{}
		for i := range 4 {
			queue.unsent = append(queue.unsent, queuedFor(t, dir, "P", fmt.Sprintf("p%d@example.com", i)))
		}
		sender := &fakeSender{}

		require.NoError(t, newSweeper(queue, dir, sender, 2).SweepOnce(ctx))
		assert.Len(t, sender.sent, 2)
	})

	t.Run("a failed delivery stays queued", func(t *testing.T) {
		dir := &fakeDirectory{byID: make(map[uuid.UUID]*participant.Participant)}
		queue := &fakeQueue{}
		failing := queuedFor(t, dir, "Alice", "alice@example.com")
		ok := queuedFor(t, dir, "Bob", "bob@example.com")
		queue.unsent = []*notification.Notification{failing, ok}
		sender := &fakeSender{failFor: map[string]bool{"alice@example.com": true}}

		require.NoError(t, newSweeper(queue, dir, sender, 5).SweepOnce(ctx))

		assert.Equal(t, []uuid.UUID{ok.ID}, queue.markedSent)
	})
}

func TestTemplateRender(t *testing.T) {
	tmpl, err := NewTemplate("", "North Pole")
	require.NoError(t, err)

	body := tmpl.Render("The toss is done!", "Check your recipient.", "Alice",
		time.Date(2026, 12, 20, 12, 0, 0, 0, time.UTC))

	assert.Contains(t, body, "The toss is done!")
	assert.Contains(t, body, "Check your recipient.")
	assert.Contains(t, body, "Hello, Alice!")
	assert.Contains(t, body, "2026")
	assert.Contains(t, body, "North Pole")
	assert.NotContains(t, body, "{Title}")
}
