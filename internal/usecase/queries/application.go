package queries

import (
	"context"

	"secret-santa/internal/exchange"
	"secret-santa/internal/pkg/config"
	"secret-santa/internal/usecase/shared"
)

type ApplicationQueries interface {
	GetApplicationData(ctx context.Context) (*ApplicationView, error)
}

type applicationQueriesImpl struct {
	participants shared.ParticipantRepository
	state        *exchange.State
	cfg          config.ExchangeConfig
}

func NewApplicationQueries(participants shared.ParticipantRepository, state *exchange.State, cfg config.ExchangeConfig) ApplicationQueries {
	return &applicationQueriesImpl{participants: participants, state: state, cfg: cfg}
}

func (q *applicationQueriesImpl) GetApplicationData(ctx context.Context) (*ApplicationView, error) {
	count, err := q.participants.CountInvolved(ctx)
	if err != nil {
		return nil, err
	}
	assignmentAt, err := q.cfg.AssignmentDeadlineAt()
	if err != nil {
		return nil, err
	}
	giftAt, err := q.cfg.GiftDeadlineAt()
	if err != nil {
		return nil, err
	}
	return &ApplicationView{
		TeamName:           q.cfg.TeamName,
		InvolvedCount:      count,
		AssignmentDeadline: assignmentAt,
		GiftDeadline:       giftAt,
		AssignmentMade:     q.state.AssignmentMade(),
		RecommendedPrice:   q.cfg.RecommendedPrice,
		LocationText:       q.cfg.LocationText,
		SupportEmail:       q.cfg.SupportEmail,
	}, nil
}
