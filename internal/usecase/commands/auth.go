package commands

import (
	"context"
	"encoding/hex"

	"secret-santa/internal/domain/participant"
	"secret-santa/internal/pkg/errs"
	"secret-santa/internal/usecase/shared"

	"golang.org/x/crypto/sha3"
)

var ErrInvalidAccessKey = errs.New("invalid access key")

// AuthCommands resolves a personal access key to a participant. Keys
// are stored as SHA3-256 digests so the raw key never touches the
// database.
type AuthCommands interface {
	Login(ctx context.Context, accessKey string) (*participant.Participant, error)
}

type authUseCaseImpl struct {
	participants shared.ParticipantRepository
}

func NewAuthUseCase(participants shared.ParticipantRepository) AuthCommands {
	return &authUseCaseImpl{participants: participants}
}

func (u *authUseCaseImpl) Login(ctx context.Context, accessKey string) (*participant.Participant, error) {
	if accessKey == "" {
		return nil, ErrInvalidAccessKey
	}
	p, err := u.participants.FindByAccessKeyHash(ctx, HashAccessKey(accessKey))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAccessKey)
	}
	return p, nil
}

// HashAccessKey derives the stored lookup digest for a raw access key.
func HashAccessKey(accessKey string) string {
	sum := sha3.Sum256([]byte(accessKey))
	return hex.EncodeToString(sum[:])
}
