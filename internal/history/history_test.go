package history

import (
	"errors"
	"testing"

	"baccarat-lab/internal/domain"
)

func TestEncodeDecodeRLE_RoundTrip(t *testing.T) {
	cases := []struct {
		letters string
		encoded string
	}{
		{"", ""},
		{"B", "B1"},
		{"BBB", "B3"},
		{"BBBPPT", "B3P2T1"},
		{"BPBP", "B1P1B1P1"},
		{"TTTTTTTTTTTT", "T12"},
	}

	for _, tc := range cases {
		seq := make([]domain.Outcome, 0, len(tc.letters))
		for _, r := range tc.letters {
			seq = append(seq, domain.Outcome(string(r)))
		}

		encoded := EncodeRLE(seq)
		if encoded != tc.encoded {
			t.Errorf("EncodeRLE(%q) = %q, want %q", tc.letters, encoded, tc.encoded)
		}

		decoded, err := DecodeRLE(encoded)
		if err != nil {
			t.Fatalf("DecodeRLE(%q) failed: %v", encoded, err)
		}
		if len(decoded) != len(seq) {
			t.Fatalf("round trip length %d, want %d", len(decoded), len(seq))
		}
		for i := range seq {
			if decoded[i] != seq[i] {
				t.Errorf("round trip %q: position %d = %s, want %s",
					tc.letters, i, decoded[i], seq[i])
			}
		}
	}
}

func TestDecodeRLE_Malformed(t *testing.T) {
	for _, encoded := range []string{"B", "X3", "3B", "B0", "B-1", "B3P", "b3"} {
		if _, err := DecodeRLE(encoded); !errors.Is(err, ErrBadEncoding) {
			t.Errorf("DecodeRLE(%q) err = %v, want ErrBadEncoding", encoded, err)
		}
	}
}

func TestStore_AppendAndSnapshot(t *testing.T) {
	s := NewStore()

	if err := s.Append(domain.OutcomeBanker); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append(domain.OutcomePlayer); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append("X"); !errors.Is(err, domain.ErrUnknownOutcome) {
		t.Errorf("invalid append err = %v, want ErrUnknownOutcome", err)
	}

	snap := s.Outcomes()
	if len(snap) != 2 {
		t.Fatalf("snapshot length = %d, want 2", len(snap))
	}

	// A snapshot must not observe later appends.
	if err := s.Append(domain.OutcomeTie); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if len(snap) != 2 {
		t.Error("snapshot grew after append")
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	_ = s.Append(domain.OutcomeBanker)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after clear = %d, want 0", s.Len())
	}
}

func TestStore_ImportExportRLE(t *testing.T) {
	s := NewStore()
	if err := s.ImportRLE("B3P2T1"); err != nil {
		t.Fatalf("ImportRLE failed: %v", err)
	}
	if s.Len() != 6 {
		t.Fatalf("Len = %d, want 6", s.Len())
	}
	if got := s.ExportRLE(); got != "B3P2T1" {
		t.Errorf("ExportRLE = %q, want B3P2T1", got)
	}

	// A failed import leaves existing history untouched.
	if err := s.ImportRLE("garbage"); err == nil {
		t.Fatal("ImportRLE accepted garbage")
	}
	if s.Len() != 6 {
		t.Errorf("failed import mutated history: Len = %d, want 6", s.Len())
	}
}
