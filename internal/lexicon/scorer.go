package lexicon

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Scores holds the raw output of the sentiment scorer. Compound is in
// [-1, 1]; Positive, Negative and Neutral are proportions of the scored
// text and sum to ~1.
type Scores struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

const (
	// normalization constant for the compound score
	alpha = 15.0

	// boost applied by degree modifiers ("very good" vs "good")
	boosterIncrement = 0.293

	// emphasis added per trailing exclamation mark (capped at 4)
	exclamationIncrement = 0.292

	// emphasis added to an all-caps word when the text mixes case
	capsIncrement = 0.733

	// multiplier applied to a valence preceded by a negation
	negationFactor = -0.74

	// how many tokens back a negation is allowed to reach
	negationWindow = 3
)

// Scorer is a rule-based sentiment scorer over a fixed word valence
// table, with heuristics for negation, degree modifiers, punctuation
// emphasis and capitalization. Scoring is deterministic for a given
// input text.
type Scorer struct {
	valences  map[string]float64
	boosters  map[string]float64
	negations map[string]struct{}
}

// NewScorer creates a scorer with the built-in lexicon.
func NewScorer() *Scorer {
	return &Scorer{
		valences:  defaultValences(),
		boosters:  defaultBoosters(),
		negations: defaultNegations(),
	}
}

// Score analyzes text and returns its sentiment scores. It returns an
// error only for empty input; text without any lexicon word scores as
// fully neutral.
func (s *Scorer) Score(text string) (Scores, error) {
	if strings.TrimSpace(text) == "" {
		return Scores{}, fmt.Errorf("empty text")
	}

	raw := strings.Fields(text)
	mixedCase := hasMixedCase(raw)

	tokens := make([]string, len(raw))
	for i, w := range raw {
		tokens[i] = strings.ToLower(strings.Trim(w, ".,!?;:'\"()"))
	}

	var sum float64
	var posSum, negSum, neuCount float64

	for i, tok := range tokens {
		valence, ok := s.valences[tok]
		if !ok {
			if _, isBooster := s.boosters[tok]; !isBooster && tok != "" {
				neuCount++
			}
			continue
		}

		// ALL-CAPS emphasis only matters when the rest of the
		// text is not shouting too.
		if mixedCase && isUpper(raw[i]) {
			valence += math.Copysign(capsIncrement, valence)
		}

		if i > 0 {
			if boost, ok := s.boosters[tokens[i-1]]; ok {
				// boosters push away from zero, diminishers pull toward it
				if valence > 0 {
					valence += boost
				} else if valence < 0 {
					valence -= boost
				}
			}
		}

		if s.negatedAt(tokens, i) {
			valence *= negationFactor
		}

		sum += valence
		if valence > 0 {
			posSum += valence + 1
		} else if valence < 0 {
			negSum += math.Abs(valence) + 1
		} else {
			neuCount++
		}
	}

	sum += exclamationEmphasis(text, sum)

	scores := Scores{Compound: normalize(sum)}
	total := posSum + negSum + neuCount
	if total > 0 {
		scores.Positive = posSum / total
		scores.Negative = negSum / total
		scores.Neutral = neuCount / total
	} else {
		scores.Neutral = 1
	}
	return scores, nil
}

func (s *Scorer) negatedAt(tokens []string, i int) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for _, tok := range tokens[start:i] {
		if _, ok := s.negations[tok]; ok {
			return true
		}
	}
	return false
}

// normalize maps an unbounded valence sum into [-1, 1].
func normalize(sum float64) float64 {
	norm := sum / math.Sqrt(sum*sum+alpha)
	if norm > 1 {
		return 1
	}
	if norm < -1 {
		return -1
	}
	return norm
}

// exclamationEmphasis amplifies the valence sum for trailing
// exclamation marks, in the direction the text already leans.
func exclamationEmphasis(text string, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	count := strings.Count(text, "!")
	if count > 4 {
		count = 4
	}
	return math.Copysign(float64(count)*exclamationIncrement, sum)
}

func isUpper(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// hasMixedCase reports whether the text contains both all-caps words
// and non-caps words, meaning capitalization carries emphasis.
func hasMixedCase(words []string) bool {
	upper, lower := false, false
	for _, w := range words {
		if isUpper(w) {
			upper = true
		} else {
			lower = true
		}
	}
	return upper && lower
}
