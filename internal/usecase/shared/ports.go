// Package shared declares the persistence contracts consumed by the
// commands, the reminder scheduler and the mail sweep. Implementations
// live under internal/infra.
package shared

import (
	"context"

	"secret-santa/internal/domain/notification"
	"secret-santa/internal/domain/participant"

	"github.com/google/uuid"
)

// ParticipantRepository is the participant store. SaveAll persists a
// batch of mutated participants as a single atomic unit.
type ParticipantRepository interface {
	ListAll(ctx context.Context) ([]*participant.Participant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*participant.Participant, error)
	FindByAccessKeyHash(ctx context.Context, hash string) (*participant.Participant, error)
	Create(ctx context.Context, p *participant.Participant) error
	Save(ctx context.Context, p *participant.Participant) error
	SaveAll(ctx context.Context, ps []*participant.Participant) error
	CountInvolved(ctx context.Context) (int, error)
}

// NotificationRepository is the write-only notification sink plus the
// read side the mail sweep drains.
type NotificationRepository interface {
	Enqueue(ctx context.Context, participantIDs []uuid.UUID, info notification.Info) error
	EnqueueMany(ctx context.Context, participantID uuid.UUID, infos []notification.Info) error
	EnqueueForAll(ctx context.Context, info notification.Info) error
	ClearAll(ctx context.Context) error
	ListUnsent(ctx context.Context, limit int) ([]*notification.Notification, error)
	MarkSent(ctx context.Context, ids []uuid.UUID) error
}
