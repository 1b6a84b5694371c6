// Package exchange holds the process-wide event state shared by the
// toss commands and the reminder scheduler: whether the assignment has
// been made and the two deadlines. The state is built explicitly at
// startup and passed by reference; the store probe that recovers the
// assignment flag runs exactly once.
package exchange

import (
	"context"
	"sync"
	"time"

	"secret-santa/internal/domain/participant"
	"secret-santa/internal/pkg/config"
	"secret-santa/internal/pkg/errs"
)

type ParticipantLister interface {
	ListAll(ctx context.Context) ([]*participant.Participant, error)
}

type State struct {
	assignmentDeadline time.Time
	giftDeadline       time.Time
	teamName           string
	locationText       string

	initOnce sync.Once
	initErr  error

	mu   sync.RWMutex
	made bool
}

func NewState(cfg config.ExchangeConfig) (*State, error) {
	assignmentDeadline, err := cfg.AssignmentDeadlineAt()
	if err != nil {
		return nil, errs.Wrap(err, "invalid assignment deadline")
	}
	giftDeadline, err := cfg.GiftDeadlineAt()
	if err != nil {
		return nil, errs.Wrap(err, "invalid gift deadline")
	}
	return &State{
		assignmentDeadline: assignmentDeadline,
		giftDeadline:       giftDeadline,
		teamName:           cfg.TeamName,
		locationText:       cfg.LocationText,
	}, nil
}

// Init recovers the assignment flag from persisted data. Safe to call
// from multiple goroutines; only the first call performs the probe.
func (s *State) Init(ctx context.Context, store ParticipantLister) error {
	s.initOnce.Do(func() {
		all, err := store.ListAll(ctx)
		if err != nil {
			s.initErr = errs.Wrap(err, "failed to probe toss status")
			return
		}
		s.SetAssignmentMade(CheckTossStatus(all))
	})
	return s.initErr
}

func (s *State) AssignmentMade() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.made
}

func (s *State) SetAssignmentMade(made bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.made = made
}

func (s *State) AssignmentDeadline() time.Time { return s.assignmentDeadline }
func (s *State) GiftDeadline() time.Time       { return s.giftDeadline }
func (s *State) TeamName() string              { return s.teamName }
func (s *State) LocationText() string          { return s.locationText }

// CurrentDeadline is the deadline the group is counting down to in the
// current phase.
func (s *State) CurrentDeadline() time.Time {
	if s.AssignmentMade() {
		return s.giftDeadline
	}
	return s.assignmentDeadline
}

// CheckTossStatus reports whether persisted data already encodes a made
// assignment: at least two involved participants, each with a target id
// pointing back into the involved set. A structural probe only; it does
// not re-verify that the mapping is a derangement.
func CheckTossStatus(all []*participant.Participant) bool {
	involved := make(map[string]bool)
	var involvedList []*participant.Participant
	for _, p := range all {
		if p.Status() == participant.StatusInvolved {
			involved[p.ID().String()] = true
			involvedList = append(involvedList, p)
		}
	}
	if len(involvedList) < 2 {
		return false
	}
	for _, p := range involvedList {
		target := p.TargetID()
		if target == nil || !involved[target.String()] {
			return false
		}
	}
	return true
}
