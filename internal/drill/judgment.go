// SPDX-License-Identifier: MPL-2.0

package drill

import (
	"fmt"
	"strings"
)

// Judgment is the user's per-card outcome at the judgment prompt.
type Judgment int

const (
	// JudgmentCorrect records the card as answered correctly.
	JudgmentCorrect Judgment = iota
	// JudgmentWrong records the card as answered incorrectly.
	JudgmentWrong
	// JudgmentSkipped records the card as skipped.
	JudgmentSkipped
	// JudgmentQuit ends the session without visiting the remaining cards.
	JudgmentQuit
)

// String returns the name of the Judgment (e.g., "correct", "quit").
// Unknown values return "unknown(<N>)" for diagnostic safety.
func (j Judgment) String() string {
	switch j {
	case JudgmentCorrect:
		return "correct"
	case JudgmentWrong:
		return "wrong"
	case JudgmentSkipped:
		return "skipped"
	case JudgmentQuit:
		return "quit"
	default:
		return fmt.Sprintf("unknown(%d)", int(j))
	}
}

// Validate returns nil if the Judgment is one of the defined values.
func (j Judgment) Validate() error {
	switch j {
	case JudgmentCorrect, JudgmentWrong, JudgmentSkipped, JudgmentQuit:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidJudgment, int(j))
	}
}

// ParseJudgment parses answer-prompt input into a Judgment. Input is
// trimmed and lowercased first. Anything unrecognized is an error; the
// caller re-prompts and nothing is counted.
func ParseJudgment(s string) (Judgment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return JudgmentCorrect, nil
	case "n", "no":
		return JudgmentWrong, nil
	case "s", "skip":
		return JudgmentSkipped, nil
	case "q", "quit":
		return JudgmentQuit, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: y, n, skip, q)", ErrInvalidJudgment, s)
	}
}
