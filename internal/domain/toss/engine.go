package toss

import (
	"bytes"
	"math/rand/v2"
	"sort"

	"github.com/google/uuid"
)

// Assignment maps each giver to the recipient they drew.
type Assignment map[uuid.UUID]uuid.UUID

// Engine draws a derangement over a set of participant ids: every id
// appears exactly once as giver and once as recipient, and nobody
// draws themselves. A single pass resolves each giver in random order;
// a "booked" candidate is withheld three steps from the end and the
// second-to-last step is forced, which rules out the dead end where
// the final giver is left with only themselves.
type Engine struct {
	rng *rand.Rand
}

func NewEngine() *Engine {
	return &Engine{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewEngineWithRand fixes the random source for deterministic tests.
func NewEngineWithRand(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Draw returns the recipient mapping. Fewer than two ids cannot form a
// derangement; callers are expected to check before invoking, Draw
// returns nil in that case.
func (e *Engine) Draw(ids []uuid.UUID) Assignment {
	if len(ids) < 2 {
		return nil
	}
	state := newDrawState(ids)
	result := make(Assignment, len(ids))
	for _, giver := range state.slots {
		result[giver.id] = state.step(giver, e.rng)
	}
	return result
}

// slot pairs a participant id with its ephemeral sort key for one draw.
type slot struct {
	key  uuid.UUID
	id   uuid.UUID
	used bool
}

type drawState struct {
	slots     []*slot
	booked    *uuid.UUID
	remaining int
}

func newDrawState(ids []uuid.UUID) *drawState {
	slots := make([]*slot, len(ids))
	for i, id := range ids {
		slots[i] = &slot{key: uuid.New(), id: id}
	}
	sort.Slice(slots, func(i, j int) bool {
		return bytes.Compare(slots[i].key[:], slots[j].key[:]) < 0
	})
	return &drawState{slots: slots, remaining: len(slots)}
}

func (s *drawState) last() *slot {
	return s.slots[len(s.slots)-1]
}

// step resolves one giver and returns the drawn recipient id.
func (s *drawState) step(giver *slot, rng *rand.Rand) uuid.UUID {
	if s.remaining == 3 {
		// Withhold the current giver's key from the next draw so a free
		// candidate survives to the forced second-to-last step.
		key := giver.key
		s.booked = &key
	}
	if s.remaining == 1 {
		s.booked = nil
	}

	free := s.candidates(giver)
	pick := free[rng.IntN(len(free))]
	if s.remaining == 2 && !s.last().used {
		// The key-last slot must be taken now or the final giver could be
		// left drawing themselves.
		pick = s.last()
		s.booked = nil
	}
	pick.used = true

	if s.remaining == 3 && s.last().used {
		s.booked = nil
	}
	s.remaining--
	return pick.id
}

func (s *drawState) candidates(giver *slot) []*slot {
	free := make([]*slot, 0, s.remaining)
	for _, c := range s.slots {
		if c.used || c.key == giver.key {
			continue
		}
		if s.booked != nil && *s.booked == c.key {
			continue
		}
		free = append(free, c)
	}
	return free
}
