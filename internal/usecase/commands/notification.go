package commands

import (
	"context"

	"secret-santa/internal/pkg/errs"

	"github.com/google/uuid"
)

// NotificationInboxStore is the write side of the in-app inbox.
type NotificationInboxStore interface {
	MarkAllViewed(ctx context.Context, participantID uuid.UUID) error
}

type NotificationCommands interface {
	MarkAllViewed(ctx context.Context, participantID uuid.UUID) error
}

type notificationUseCaseImpl struct {
	inbox NotificationInboxStore
}

func NewNotificationUseCase(inbox NotificationInboxStore) NotificationCommands {
	return &notificationUseCaseImpl{inbox: inbox}
}

func (u *notificationUseCaseImpl) MarkAllViewed(ctx context.Context, participantID uuid.UUID) error {
	if err := u.inbox.MarkAllViewed(ctx, participantID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
