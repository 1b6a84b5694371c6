package repo_impl

import (
	"context"
	"log/slog"
	"time"

	"secret-santa/internal/domain/notification"
	"secret-santa/internal/infra"
	"secret-santa/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository backs both the write-side sink and the read
// side of the inbox with one table.
type NotificationRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepository(pool *pgxpool.Pool, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{pool: pool, logger: logger}
}

const insertNotificationSQL = `
	INSERT INTO notifications (id, participant_id, title, message)
	VALUES ($1, $2, $3, $4)`

func (r *NotificationRepository) Enqueue(ctx context.Context, ids []uuid.UUID, info notification.Info) error {
	if len(ids) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(insertNotificationSQL, uuid.New(), id, info.Title, info.Message)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to enqueue notifications", err)
	}
	return nil
}

func (r *NotificationRepository) EnqueueMany(ctx context.Context, participantID uuid.UUID, infos []notification.Info) error {
	if len(infos) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, info := range infos {
		batch.Queue(insertNotificationSQL, uuid.New(), participantID, info.Title, info.Message)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to enqueue notifications", err)
	}
	return nil
}

func (r *NotificationRepository) EnqueueForAll(ctx context.Context, info notification.Info) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (id, participant_id, title, message)
		SELECT gen_random_uuid(), id, $1, $2 FROM participants`,
		info.Title, info.Message,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to enqueue broadcast", err)
	}
	return nil
}

func (r *NotificationRepository) ClearAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM notifications`); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to clear notifications", err)
	}
	return nil
}

func (r *NotificationRepository) ListUnsent(ctx context.Context, limit int) ([]*notification.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, participant_id, title, message, viewed, sent, created_at
		FROM notifications
		WHERE NOT sent
		ORDER BY created_at
		LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list unsent notifications", err)
	}
	defer rows.Close()

	var result []*notification.Notification
	for rows.Next() {
		var (
			n         notification.Notification
			createdAt time.Time
		)
		if err := rows.Scan(&n.ID, &n.ParticipantID, &n.Title, &n.Message, &n.Viewed, &n.Sent, &createdAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan notification", err)
		}
		n.CreatedAt = createdAt
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read notifications", err)
	}
	return result, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.pool.Exec(ctx, `UPDATE notifications SET sent = true WHERE id = ANY($1)`, ids); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to mark notifications sent", err)
	}
	return nil
}

func (r *NotificationRepository) FindByParticipantID(ctx context.Context, participantID uuid.UUID) ([]*queries.NotificationView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, message, viewed, created_at
		FROM notifications
		WHERE participant_id = $1
		ORDER BY created_at DESC`, participantID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Title, &v.Message, &v.Viewed, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan notification", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read notifications", err)
	}
	return result, nil
}

func (r *NotificationRepository) MarkAllViewed(ctx context.Context, participantID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications SET viewed = true WHERE participant_id = $1 AND NOT viewed`,
		participantID,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to mark notifications viewed", err)
	}
	return nil
}
