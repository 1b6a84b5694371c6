package commands

import (
	"context"
	"log/slog"

	"secret-santa/internal/domain/participant"
	"secret-santa/internal/pkg/config"
	"secret-santa/internal/pkg/errs"
	"secret-santa/internal/usecase/shared"
)

// SetupCommands seeds the store on first start so the event admin can
// log in before anyone else has been registered.
type SetupCommands interface {
	EnsureAdmin(ctx context.Context) error
}

type setupUseCaseImpl struct {
	participants shared.ParticipantRepository
	cfg          config.ExchangeConfig
	logger       *slog.Logger
}

func NewSetupUseCase(participants shared.ParticipantRepository, cfg config.ExchangeConfig, logger *slog.Logger) SetupCommands {
	return &setupUseCaseImpl{participants: participants, cfg: cfg, logger: logger}
}

func (u *setupUseCaseImpl) EnsureAdmin(ctx context.Context) error {
	if u.cfg.AdminAccessKey == "" {
		return nil
	}
	hash := HashAccessKey(u.cfg.AdminAccessKey)
	if _, err := u.participants.FindByAccessKeyHash(ctx, hash); err == nil {
		return nil
	}

	admin, err := participant.New(u.cfg.AdminName, u.cfg.AdminEmail, hash, true)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := u.participants.Create(ctx, admin); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	u.logger.Info("seeded admin participant", "participant_id", admin.ID().String())
	return nil
}
