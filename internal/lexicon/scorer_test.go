package lexicon

import (
	"math"
	"testing"
)

func TestScoreEmptyText(t *testing.T) {
	t.Parallel()

	s := NewScorer()
	if _, err := s.Score("   "); err == nil {
		t.Fatalf("expected error for blank text")
	}
}

func TestScoreNeutralText(t *testing.T) {
	t.Parallel()

	s := NewScorer()
	got, err := s.Score("the train leaves at noon")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if got.Compound != 0 {
		t.Fatalf("compound=%v, want 0", got.Compound)
	}
	if got.Neutral != 1 {
		t.Fatalf("neutral=%v, want 1", got.Neutral)
	}
}

func TestScorePolarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		sign float64
	}{
		{"this is great", 1},
		{"this is terrible", -1},
		{"Your service disappoints me", -1},
		{"Last experience was better", 1},
		{"not good", -1},
		{"not bad at all", 1},
	}

	s := NewScorer()
	for _, tt := range tests {
		got, err := s.Score(tt.text)
		if err != nil {
			t.Fatalf("Score(%q) failed: %v", tt.text, err)
		}
		if math.Signbit(got.Compound) != math.Signbit(tt.sign) || got.Compound == 0 {
			t.Errorf("Score(%q) compound=%v, want sign %v", tt.text, got.Compound, tt.sign)
		}
	}
}

func TestScoreProportionsSumToOne(t *testing.T) {
	t.Parallel()

	s := NewScorer()
	got, err := s.Score("the service was great but the wait was terrible")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	sum := got.Positive + got.Negative + got.Neutral
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("pos+neg+neu=%v, want 1", sum)
	}
	if got.Positive == 0 || got.Negative == 0 {
		t.Fatalf("expected both polarities scored, got %+v", got)
	}
}

func TestScoreEmphasis(t *testing.T) {
	t.Parallel()

	s := NewScorer()

	plain, err := s.Score("this is good")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	boosted, err := s.Score("this is very good")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	exclaimed, err := s.Score("this is good!!")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	diminished, err := s.Score("this is slightly good")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if boosted.Compound <= plain.Compound {
		t.Errorf("booster did not amplify: %v <= %v", boosted.Compound, plain.Compound)
	}
	if exclaimed.Compound <= plain.Compound {
		t.Errorf("exclamation did not amplify: %v <= %v", exclaimed.Compound, plain.Compound)
	}
	if diminished.Compound >= plain.Compound {
		t.Errorf("diminisher did not dampen: %v >= %v", diminished.Compound, plain.Compound)
	}
}

func TestScoreDeterministic(t *testing.T) {
	t.Parallel()

	s := NewScorer()
	first, err := s.Score("I really love this, thank you!")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	second, err := s.Score("I really love this, thank you!")
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if first != second {
		t.Fatalf("scoring not deterministic: %+v vs %+v", first, second)
	}
}
