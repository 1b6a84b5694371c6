package repo_impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"secret-santa/internal/domain/participant"
	"secret-santa/internal/infra"
	"secret-santa/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const participantColumns = `id, name, email, access_key_hash, status, target_id, target_status, wishes, anti_wishes, is_admin, created_at, updated_at`

type participantRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewParticipantRepository(pool *pgxpool.Pool, logger *slog.Logger) shared.ParticipantRepository {
	return &participantRepository{pool: pool, logger: logger}
}

func (r *participantRepository) ListAll(ctx context.Context) ([]*participant.Participant, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+participantColumns+` FROM participants ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list participants", err)
	}
	defer rows.Close()

	var result []*participant.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan participant", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read participants", err)
	}
	return result, nil
}

func (r *participantRepository) FindByID(ctx context.Context, id uuid.UUID) (*participant.Participant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+participantColumns+` FROM participants WHERE id = $1`, id)
	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "participant not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find participant by id", err)
	}
	return p, nil
}

func (r *participantRepository) FindByAccessKeyHash(ctx context.Context, hash string) (*participant.Participant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+participantColumns+` FROM participants WHERE access_key_hash = $1`, hash)
	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "participant not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find participant by access key", err)
	}
	return p, nil
}

func (r *participantRepository) Create(ctx context.Context, p *participant.Participant) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO participants (id, name, email, access_key_hash, status, target_status, wishes, anti_wishes, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID(), p.Name(), p.Email(), p.AccessKeyHash(),
		p.Status().String(), p.TargetStatus().String(),
		p.Wishes(), p.AntiWishes(), p.IsAdmin(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "participant already exists", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create participant", err)
	}
	return nil
}

func (r *participantRepository) Save(ctx context.Context, p *participant.Participant) error {
	tag, err := r.pool.Exec(ctx, updateParticipantSQL, updateParticipantArgs(p)...)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save participant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "participant not found", nil)
	}
	return nil
}

// SaveAll persists the batch in one transaction so a toss either lands
// for everyone or for no one.
func (r *participantRepository) SaveAll(ctx context.Context, batch []*participant.Participant) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, p := range batch {
		if _, err := tx.Exec(ctx, updateParticipantSQL, updateParticipantArgs(p)...); err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save participant batch", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to commit participant batch", err)
	}
	return nil
}

func (r *participantRepository) CountInvolved(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM participants WHERE status = $1`,
		participant.StatusInvolved.String(),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to count involved participants", err)
	}
	return count, nil
}

const updateParticipantSQL = `
	UPDATE participants
	SET name = $2, email = $3, access_key_hash = $4, status = $5,
	    target_id = $6, target_status = $7, wishes = $8, anti_wishes = $9,
	    is_admin = $10, updated_at = now()
	WHERE id = $1`

func updateParticipantArgs(p *participant.Participant) []any {
	return []any{
		p.ID(), p.Name(), p.Email(), p.AccessKeyHash(),
		p.Status().String(), p.TargetID(), p.TargetStatus().String(),
		p.Wishes(), p.AntiWishes(), p.IsAdmin(),
	}
}

func scanParticipant(row pgx.Row) (*participant.Participant, error) {
	var (
		id            uuid.UUID
		name          string
		email         string
		accessKeyHash string
		status        string
		targetID      *uuid.UUID
		targetStatus  string
		wishes        string
		antiWishes    string
		isAdmin       bool
		createdAt     time.Time
		updatedAt     time.Time
	)
	if err := row.Scan(&id, &name, &email, &accessKeyHash, &status, &targetID, &targetStatus,
		&wishes, &antiWishes, &isAdmin, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return participant.Rehydrate(
		id, name, email, accessKeyHash,
		participant.Status(status), targetID, participant.TargetStatus(targetStatus),
		wishes, antiWishes, isAdmin,
		createdAt, updatedAt,
	), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
