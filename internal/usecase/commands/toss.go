package commands

import (
	"context"
	"log/slog"

	"secret-santa/internal/domain/notification"
	"secret-santa/internal/domain/participant"
	"secret-santa/internal/domain/toss"
	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/errs"
	"secret-santa/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotEnoughParticipants   = errs.New("not enough involved participants for a toss")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	titleTossMade            = "The toss is done!"
	msgTossMadeInvolved      = "Recipients have been assigned. Log in and see who you are making a gift for."
	msgTossMadeNotInvolved   = "The toss has happened without you this time. See you next year!"
	titleReTossMade          = "The toss was redone"
	msgReTossMadeInvolved    = "Recipients were reassigned. Check who you are making a gift for now; the previous assignment no longer counts."
	msgReTossMadeNotInvolved = "The toss was redone, still without you. See you next year!"
	titleTossNullified       = "The toss was cancelled"
	msgTossNullified         = "The assignment has been reset. Wait for the announcement of a new toss."
)

// TossCommands drives the assignment state machine: a toss assigns a
// recipient to every involved participant, a re-toss replaces the
// mapping wholesale, nullify reverts everyone to the pre-toss state.
type TossCommands interface {
	MakeToss(ctx context.Context) error
	NullifyToss(ctx context.Context) error
}

type tossUseCaseImpl struct {
	participants  shared.ParticipantRepository
	notifications shared.NotificationRepository
	engine        *toss.Engine
	state         *exchange.State
	logger        *slog.Logger
}

func NewTossUseCase(
	participants shared.ParticipantRepository,
	notifications shared.NotificationRepository,
	engine *toss.Engine,
	state *exchange.State,
	logger *slog.Logger,
) TossCommands {
	return &tossUseCaseImpl{
		participants:  participants,
		notifications: notifications,
		engine:        engine,
		state:         state,
		logger:        logger,
	}
}

// MakeToss draws a fresh derangement over the involved participants,
// flips everyone still undecided to refused and persists the whole
// batch atomically. Safe to call again: a re-toss overwrites every
// previous target and only the announcement wording changes.
func (u *tossUseCaseImpl) MakeToss(ctx context.Context) error {
	isReToss := u.state.AssignmentMade()

	all, err := u.participants.ListAll(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var involved []*participant.Participant
	for _, p := range all {
		if p.Status() == participant.StatusInvolved {
			involved = append(involved, p)
		}
	}
	if len(involved) < 2 {
		return ErrNotEnoughParticipants
	}

	ids := make([]uuid.UUID, len(involved))
	for i, p := range involved {
		ids[i] = p.ID()
	}
	assignment := u.engine.Draw(ids)
	for _, p := range involved {
		p.AssignTarget(assignment[p.ID()])
	}
	for _, p := range all {
		if p.Status() == participant.StatusExpectedToChoose {
			p.Refuse()
		}
	}

	if err := u.participants.SaveAll(ctx, all); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	u.state.SetAssignmentMade(true)
	u.logger.Info("toss made", "involved", len(involved), "re_toss", isReToss)

	u.announceToss(ctx, all, isReToss)
	return nil
}

// NullifyToss clears every target, purges all pending notifications and
// announces the reset. Calling it twice is harmless.
func (u *tossUseCaseImpl) NullifyToss(ctx context.Context) error {
	all, err := u.participants.ListAll(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, p := range all {
		p.ClearTarget()
	}
	if err := u.participants.SaveAll(ctx, all); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	u.state.SetAssignmentMade(false)
	u.logger.Info("toss nullified")

	if err := u.notifications.ClearAll(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	info := notification.Info{Title: titleTossNullified, Message: msgTossNullified}
	if err := u.notifications.EnqueueForAll(ctx, info); err != nil {
		u.logger.Error("failed to announce nullified toss", "error", err.Error())
	}
	return nil
}

// announceToss sends one batch to the freshly assigned participants and
// one to everybody else. Announcement failures are logged only; the
// assignment itself is already persisted.
func (u *tossUseCaseImpl) announceToss(ctx context.Context, all []*participant.Participant, isReToss bool) {
	var involvedIDs, otherIDs []uuid.UUID
	for _, p := range all {
		if p.Status() == participant.StatusInvolved {
			involvedIDs = append(involvedIDs, p.ID())
		} else {
			otherIDs = append(otherIDs, p.ID())
		}
	}

	involvedInfo := notification.Info{Title: titleTossMade, Message: msgTossMadeInvolved}
	otherInfo := notification.Info{Title: titleTossMade, Message: msgTossMadeNotInvolved}
	if isReToss {
		involvedInfo = notification.Info{Title: titleReTossMade, Message: msgReTossMadeInvolved}
		otherInfo = notification.Info{Title: titleReTossMade, Message: msgReTossMadeNotInvolved}
	}

	if err := u.notifications.Enqueue(ctx, involvedIDs, involvedInfo); err != nil {
		u.logger.Error("failed to announce toss to involved participants", "error", err.Error())
	}
	if len(otherIDs) > 0 {
		if err := u.notifications.Enqueue(ctx, otherIDs, otherInfo); err != nil {
			u.logger.Error("failed to announce toss to other participants", "error", err.Error())
		}
	}
}
