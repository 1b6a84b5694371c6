package participant

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid participant status")
	ErrInvalidTargetStatus = errors.New("invalid target status")
	ErrInvalidName         = errors.New("participant name is required")
	ErrWishesTooLong       = errors.New("wishes text exceeds the allowed length")
	ErrNoTargetAssigned    = errors.New("no target assigned")
	ErrStatusLocked        = errors.New("status can no longer be changed")
)

const maxWishesLength = 200

// Participant is a member of the gift exchange. The target fields are
// set only by the toss: TargetID is non-nil iff the participant is
// involved and the assignment has been made, and TargetStatus is
// undefined exactly when TargetID is nil.
type Participant struct {
	id           uuid.UUID
	name         string
	email        string
	accessKeyHash string
	status       Status
	targetID     *uuid.UUID
	targetStatus TargetStatus
	wishes       string
	antiWishes   string
	isAdmin      bool
	createdAt    time.Time
	updatedAt    time.Time
}

// New registers a participant who has not yet opted in.
func New(name, email, accessKeyHash string, isAdmin bool) (*Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Participant{
		id:            uuid.New(),
		name:          name,
		email:         email,
		accessKeyHash: accessKeyHash,
		status:        StatusExpectedToChoose,
		targetStatus:  TargetStatusUndefined,
		isAdmin:       isAdmin,
	}, nil
}

// Rehydrate restores a participant from storage without validation.
func Rehydrate(
	id uuid.UUID,
	name, email, accessKeyHash string,
	status Status,
	targetID *uuid.UUID,
	targetStatus TargetStatus,
	wishes, antiWishes string,
	isAdmin bool,
	createdAt, updatedAt time.Time,
) *Participant {
	return &Participant{
		id:            id,
		name:          name,
		email:         email,
		accessKeyHash: accessKeyHash,
		status:        status,
		targetID:      targetID,
		targetStatus:  targetStatus,
		wishes:        wishes,
		antiWishes:    antiWishes,
		isAdmin:       isAdmin,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Participant) ID() uuid.UUID              { return p.id }
func (p *Participant) Name() string               { return p.name }
func (p *Participant) Email() string              { return p.email }
func (p *Participant) AccessKeyHash() string      { return p.accessKeyHash }
func (p *Participant) Status() Status             { return p.status }
func (p *Participant) TargetID() *uuid.UUID       { return p.targetID }
func (p *Participant) TargetStatus() TargetStatus { return p.targetStatus }
func (p *Participant) Wishes() string             { return p.wishes }
func (p *Participant) AntiWishes() string         { return p.antiWishes }
func (p *Participant) IsAdmin() bool              { return p.isAdmin }
func (p *Participant) CreatedAt() time.Time       { return p.createdAt }
func (p *Participant) UpdatedAt() time.Time       { return p.updatedAt }

// SetStatus records the participant's own choice. Only allowed while
// the choice is still open; the toss later flips every remaining
// ExpectedToChoose participant to Refused.
func (p *Participant) SetStatus(status Status, assignmentMade bool) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if assignmentMade {
		return ErrStatusLocked
	}
	p.status = status
	return nil
}

// Refuse is the deadline transition applied by the toss.
func (p *Participant) Refuse() {
	p.status = StatusRefused
}

// AssignTarget writes the toss result.
func (p *Participant) AssignTarget(targetID uuid.UUID) {
	id := targetID
	p.targetID = &id
	p.targetStatus = TargetStatusGiftInfoNotViewed
}

// ClearTarget reverts the participant to the pre-toss state.
func (p *Participant) ClearTarget() {
	p.targetID = nil
	p.targetStatus = TargetStatusUndefined
}

func (p *Participant) MarkGiftInfoViewed() error {
	if p.targetID == nil {
		return ErrNoTargetAssigned
	}
	if p.targetStatus == TargetStatusGiftInfoNotViewed {
		p.targetStatus = TargetStatusGiftInfoViewed
	}
	return nil
}

func (p *Participant) MarkGiftReady() error {
	if p.targetID == nil {
		return ErrNoTargetAssigned
	}
	p.targetStatus = TargetStatusGiftReady
	return nil
}

func (p *Participant) UpdateWishes(wishes, antiWishes string) error {
	if len(wishes) > maxWishesLength || len(antiWishes) > maxWishesLength {
		return ErrWishesTooLong
	}
	p.wishes = wishes
	p.antiWishes = antiWishes
	return nil
}
