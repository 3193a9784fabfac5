// SPDX-License-Identifier: MPL-2.0

// Package drill implements the Learn-mode session: an explicit state
// machine over a snapshot of a collection's cards. The session is driven by
// one external event at a time (Reveal, Judge), so it can be exercised from
// tests or from any UI without a terminal.
package drill

import (
	"errors"
	"fmt"
	"math/rand"

	"cardbox/internal/deck"
)

var (
	// ErrNothingToLearn is returned when a session is started on an empty collection.
	ErrNothingToLearn = errors.New("no cards to learn")
	// ErrInvalidJudgment is returned for input that is not a recognized judgment.
	ErrInvalidJudgment = errors.New("invalid judgment")
	// ErrNotRevealed is returned when judging a card whose back is still hidden.
	ErrNotRevealed = errors.New("card not revealed yet")
	// ErrAlreadyRevealed is returned when revealing a card a second time.
	ErrAlreadyRevealed = errors.New("card already revealed")
	// ErrSessionOver is returned when stepping a finished session.
	ErrSessionOver = errors.New("session is over")
	// ErrInvalidMode is returned for an unrecognized ordering mode.
	ErrInvalidMode = errors.New("invalid ordering mode")
)

// Mode selects the card ordering for a session.
type Mode int

const (
	// ModeSequential visits cards in stored order.
	ModeSequential Mode = iota
	// ModeRandom visits cards in a uniform random permutation, fixed at
	// session start.
	ModeRandom
)

// String returns the name of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "in order"
	case ModeRandom:
		return "random"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Tally is the outcome of a session, available in both terminal states.
type Tally struct {
	Correct    int
	Wrong      int
	Skipped    int
	TotalCards int
	CardsSeen  int
}

// Session is one Learn-mode run. Each card passes through two phases:
// presented (front shown, waiting for Reveal) and revealed (back shown,
// waiting for Judge). A Quit judgment ends the session immediately.
//
// The card slice is a snapshot taken at construction; edits to the stored
// collection never affect a session in progress.
type Session struct {
	cards      []deck.Card
	idx        int
	revealed   bool
	tally      Tally
	terminated bool
}

// New starts a session over a copy of cards. ModeRandom shuffles the copy
// once, up front; the caller's slice is never reordered. An empty slice is
// rejected with ErrNothingToLearn before the state machine starts. The rng
// may be nil, in which case the global source is used.
func New(cards []deck.Card, mode Mode, rng *rand.Rand) (*Session, error) {
	if len(cards) == 0 {
		return nil, ErrNothingToLearn
	}

	snapshot := make([]deck.Card, len(cards))
	copy(snapshot, cards)

	switch mode {
	case ModeSequential:
	case ModeRandom:
		shuffle := rand.Shuffle
		if rng != nil {
			shuffle = rng.Shuffle
		}
		shuffle(len(snapshot), func(i, j int) {
			snapshot[i], snapshot[j] = snapshot[j], snapshot[i]
		})
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	return &Session{
		cards: snapshot,
		tally: Tally{TotalCards: len(snapshot)},
	}, nil
}

// Current returns the card being drilled and its 1-based position.
func (s *Session) Current() (deck.Card, int, error) {
	if s.Done() {
		return deck.Card{}, 0, ErrSessionOver
	}
	return s.cards[s.idx], s.idx + 1, nil
}

// Revealed reports whether the current card's back is showing.
func (s *Session) Revealed() bool { return s.revealed }

// Reveal turns the current card over. Only valid in the presented phase.
func (s *Session) Reveal() error {
	if s.Done() {
		return ErrSessionOver
	}
	if s.revealed {
		return ErrAlreadyRevealed
	}
	s.revealed = true
	return nil
}

// Judge records the outcome for the current card and advances. Only valid
// after Reveal. JudgmentQuit terminates the session on the spot: the tally
// keeps only the cards judged so far, and no further cards are visited.
func (s *Session) Judge(j Judgment) error {
	if s.Done() {
		return ErrSessionOver
	}
	if !s.revealed {
		return ErrNotRevealed
	}
	if err := j.Validate(); err != nil {
		return err
	}

	s.tally.CardsSeen++
	switch j {
	case JudgmentCorrect:
		s.tally.Correct++
	case JudgmentWrong:
		s.tally.Wrong++
	case JudgmentSkipped:
		s.tally.Skipped++
	case JudgmentQuit:
		s.terminated = true
		return nil
	}

	s.idx++
	s.revealed = false
	return nil
}

// Done reports whether the session reached a terminal state, either by
// judging every card or by an early Quit.
func (s *Session) Done() bool {
	return s.terminated || s.idx >= len(s.cards)
}

// Terminated reports whether the session ended early with a Quit judgment.
func (s *Session) Terminated() bool { return s.terminated }

// Tally returns the current counts. After Done it is the final result.
func (s *Session) Tally() Tally { return s.tally }
