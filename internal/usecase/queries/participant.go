package queries

import (
	"context"

	"secret-santa/internal/domain/participant"
	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/errs"
	"secret-santa/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrParticipantNotFound = errs.New("participant not found")
	ErrTargetNotAssigned   = errs.New("no recipient assigned yet")
)

type ParticipantQueries interface {
	GetMe(ctx context.Context, id uuid.UUID) (*ParticipantView, error)
	GetMyTarget(ctx context.Context, id uuid.UUID) (*TargetView, error)
	ListAll(ctx context.Context) ([]*ParticipantListItem, error)
}

type participantQueriesImpl struct {
	participants shared.ParticipantRepository
	state        *exchange.State
}

func NewParticipantQueries(participants shared.ParticipantRepository, state *exchange.State) ParticipantQueries {
	return &participantQueriesImpl{participants: participants, state: state}
}

func (q *participantQueriesImpl) GetMe(ctx context.Context, id uuid.UUID) (*ParticipantView, error) {
	p, err := q.participants.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrParticipantNotFound)
	}
	return newParticipantView(p), nil
}

// GetMyTarget reveals the recipient's wish lists. Only available once
// the toss is made; target status progression happens through commands.
func (q *participantQueriesImpl) GetMyTarget(ctx context.Context, id uuid.UUID) (*TargetView, error) {
	if !q.state.AssignmentMade() {
		return nil, ErrTargetNotAssigned
	}
	p, err := q.participants.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrParticipantNotFound)
	}
	if p.TargetID() == nil {
		return nil, ErrTargetNotAssigned
	}
	target, err := q.participants.FindByID(ctx, *p.TargetID())
	if err != nil {
		return nil, errs.Mark(err, ErrParticipantNotFound)
	}
	return &TargetView{
		Name:       target.Name(),
		Wishes:     target.Wishes(),
		AntiWishes: target.AntiWishes(),
	}, nil
}

func (q *participantQueriesImpl) ListAll(ctx context.Context) ([]*ParticipantListItem, error) {
	all, err := q.participants.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*ParticipantListItem, 0, len(all))
	for _, p := range all {
		items = append(items, &ParticipantListItem{
			ID:           p.ID(),
			Name:         p.Name(),
			Email:        p.Email(),
			Status:       p.Status().String(),
			TargetStatus: p.TargetStatus().String(),
			IsAdmin:      p.IsAdmin(),
		})
	}
	return items, nil
}

func newParticipantView(p *participant.Participant) *ParticipantView {
	return &ParticipantView{
		ID:           p.ID(),
		Name:         p.Name(),
		Email:        p.Email(),
		Status:       p.Status().String(),
		TargetStatus: p.TargetStatus().String(),
		Wishes:       p.Wishes(),
		AntiWishes:   p.AntiWishes(),
		IsAdmin:      p.IsAdmin(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}
