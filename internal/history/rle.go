package history

import (
	"errors"
	"strconv"
	"strings"

	"baccarat-lab/internal/domain"
)

// ErrBadEncoding is returned when a run-length string cannot be decoded.
var ErrBadEncoding = errors.New("malformed run-length encoding")

// EncodeRLE renders a sequence as run-length text: "B3P2T1" means three
// Banker, two Player, one Tie. A single-outcome run still carries an
// explicit count, so the format stays trivially parseable.
func EncodeRLE(seq []domain.Outcome) string {
	if len(seq) == 0 {
		return ""
	}

	var sb strings.Builder
	current := seq[0]
	count := 1
	flush := func() {
		sb.WriteString(string(current))
		sb.WriteString(strconv.Itoa(count))
	}
	for _, o := range seq[1:] {
		if o == current {
			count++
			continue
		}
		flush()
		current = o
		count = 1
	}
	flush()
	return sb.String()
}

// DecodeRLE parses run-length text back into a sequence. The empty
// string decodes to an empty sequence.
func DecodeRLE(encoded string) ([]domain.Outcome, error) {
	var seq []domain.Outcome

	i := 0
	for i < len(encoded) {
		outcome, err := domain.ParseOutcome(encoded[i : i+1])
		if err != nil {
			return nil, ErrBadEncoding
		}
		i++

		start := i
		for i < len(encoded) && encoded[i] >= '0' && encoded[i] <= '9' {
			i++
		}
		if start == i {
			return nil, ErrBadEncoding
		}
		count, err := strconv.Atoi(encoded[start:i])
		if err != nil || count <= 0 {
			return nil, ErrBadEncoding
		}

		for n := 0; n < count; n++ {
			seq = append(seq, outcome)
		}
	}
	return seq, nil
}
