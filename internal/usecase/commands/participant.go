package commands

import (
	"context"
	"log/slog"

	"secret-santa/internal/domain/notification"
	"secret-santa/internal/domain/participant"
	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/errs"
	"secret-santa/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrParticipantNotFound = errs.New("participant not found")
	ErrWishesLocked        = errs.New("wishes can no longer be changed")
	ErrStatusLocked        = errs.New("status can no longer be changed")
	ErrInvalidStatus       = errs.New("invalid status value")
	ErrDomainValidation    = errs.New("domain validation error")
)

// Confirmation texts keyed by the value the participant just chose.
var statusChangeMessages = map[participant.Status]notification.Info{
	participant.StatusInvolved: {
		Title:   "You are in!",
		Message: "You joined the exchange. Update your wishes so your Santa knows what to bring.",
	},
	participant.StatusRefused: {
		Title:   "You are out",
		Message: "You refused to take part this time. You can change your mind until the toss.",
	},
}

var targetStatusMessages = map[participant.TargetStatus]notification.Info{
	participant.TargetStatusGiftInfoViewed: {
		Title:   "Recipient noted",
		Message: "You have seen your recipient's wishes. Time to start preparing the gift.",
	},
	participant.TargetStatusGiftReady: {
		Title:   "Gift is ready",
		Message: "Great, your gift is marked as ready. See you at the exchange!",
	},
}

type ParticipantCommands interface {
	UpdateWishes(ctx context.Context, id uuid.UUID, wishes, antiWishes string) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	MarkGiftInfoViewed(ctx context.Context, id uuid.UUID) error
	MarkGiftReady(ctx context.Context, id uuid.UUID) error
}

type participantUseCaseImpl struct {
	participants  shared.ParticipantRepository
	notifications shared.NotificationRepository
	state         *exchange.State
	logger        *slog.Logger
}

func NewParticipantUseCase(
	participants shared.ParticipantRepository,
	notifications shared.NotificationRepository,
	state *exchange.State,
	logger *slog.Logger,
) ParticipantCommands {
	return &participantUseCaseImpl{
		participants:  participants,
		notifications: notifications,
		state:         state,
		logger:        logger,
	}
}

// UpdateWishes edits the wish lists. Locked once the toss is made: the
// assigned Santa already planned around them.
func (u *participantUseCaseImpl) UpdateWishes(ctx context.Context, id uuid.UUID, wishes, antiWishes string) error {
	p, err := u.findParticipant(ctx, id)
	if err != nil {
		return err
	}
	if u.state.AssignmentMade() && (wishes != p.Wishes() || antiWishes != p.AntiWishes()) {
		return ErrWishesLocked
	}
	if err := p.UpdateWishes(wishes, antiWishes); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	return u.save(ctx, p)
}

func (u *participantUseCaseImpl) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	p, err := u.findParticipant(ctx, id)
	if err != nil {
		return err
	}
	newStatus, err := participant.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}
	if err := p.SetStatus(newStatus, u.state.AssignmentMade()); err != nil {
		return errs.Mark(err, ErrStatusLocked)
	}
	if err := u.save(ctx, p); err != nil {
		return err
	}
	u.confirm(ctx, p.ID(), statusChangeMessages[newStatus])
	return nil
}

func (u *participantUseCaseImpl) MarkGiftInfoViewed(ctx context.Context, id uuid.UUID) error {
	p, err := u.findParticipant(ctx, id)
	if err != nil {
		return err
	}
	previous := p.TargetStatus()
	if err := p.MarkGiftInfoViewed(); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := u.save(ctx, p); err != nil {
		return err
	}
	if previous != p.TargetStatus() {
		u.confirm(ctx, p.ID(), targetStatusMessages[p.TargetStatus()])
	}
	return nil
}

func (u *participantUseCaseImpl) MarkGiftReady(ctx context.Context, id uuid.UUID) error {
	p, err := u.findParticipant(ctx, id)
	if err != nil {
		return err
	}
	if err := p.MarkGiftReady(); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := u.save(ctx, p); err != nil {
		return err
	}
	u.confirm(ctx, p.ID(), targetStatusMessages[participant.TargetStatusGiftReady])
	return nil
}

func (u *participantUseCaseImpl) findParticipant(ctx context.Context, id uuid.UUID) (*participant.Participant, error) {
	p, err := u.participants.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrParticipantNotFound)
	}
	return p, nil
}

func (u *participantUseCaseImpl) save(ctx context.Context, p *participant.Participant) error {
	if err := u.participants.Save(ctx, p); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *participantUseCaseImpl) confirm(ctx context.Context, id uuid.UUID, info notification.Info) {
	if info.Title == "" {
		return
	}
	if err := u.notifications.Enqueue(ctx, []uuid.UUID{id}, info); err != nil {
		u.logger.Error("failed to enqueue confirmation", "participant_id", id.String(), "error", err.Error())
	}
}
