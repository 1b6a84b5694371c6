package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	ListForParticipant(ctx context.Context, participantID uuid.UUID) ([]*NotificationView, error)
}

// NotificationReadStore is the read side of the notification inbox.
type NotificationReadStore interface {
	FindByParticipantID(ctx context.Context, participantID uuid.UUID) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListForParticipant(ctx context.Context, participantID uuid.UUID) ([]*NotificationView, error) {
	return q.readStore.FindByParticipantID(ctx, participantID)
}
