package domain

import "errors"

// Outcome is one resolved baccarat hand result.
type Outcome string

// Outcome constants. The single-letter forms double as the textual
// encoding used by history import/export.
const (
	OutcomeBanker Outcome = "B"
	OutcomePlayer Outcome = "P"
	OutcomeTie    Outcome = "T"
)

// Outcomes lists all valid outcomes in canonical order.
var Outcomes = []Outcome{OutcomeBanker, OutcomePlayer, OutcomeTie}

// ErrUnknownOutcome is returned when parsing an unrecognized outcome letter.
var ErrUnknownOutcome = errors.New("unknown outcome")

// Valid reports whether o is one of the three defined outcomes.
func (o Outcome) Valid() bool {
	return o == OutcomeBanker || o == OutcomePlayer || o == OutcomeTie
}

// ParseOutcome converts a single outcome letter (case-sensitive) to an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.Valid() {
		return "", ErrUnknownOutcome
	}
	return o, nil
}

// CloneOutcomes returns a defensive copy of seq. Callers own their history;
// results handed back to them must never alias internal state.
func CloneOutcomes(seq []Outcome) []Outcome {
	if seq == nil {
		return nil
	}
	out := make([]Outcome, len(seq))
	copy(out, seq)
	return out
}
