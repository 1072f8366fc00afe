package classifier

import "github.com/avolkov/sentibot/internal/models"

const (
	intensifierFactor = 1.5
	diminisherFactor  = 0.5

	// how many tokens back a negation may precede a keyword
	emotionNegationWindow = 3
)

// emotionPriority is the fixed tie-break order when two emotions end up
// with the same score.
var emotionPriority = []models.Emotion{
	models.EmotionJoy,
	models.EmotionSadness,
	models.EmotionAnger,
	models.EmotionFear,
	models.EmotionSurprise,
	models.EmotionDisgust,
	models.EmotionTrust,
	models.EmotionAnticipation,
}

// negationMap defines how a negated keyword hit is reinterpreted:
// joy and sadness invert into each other, trust and disgust likewise,
// and every other emotion is simply dropped.
var negationMap = map[models.Emotion]models.Emotion{
	models.EmotionJoy:     models.EmotionSadness,
	models.EmotionSadness: models.EmotionJoy,
	models.EmotionTrust:   models.EmotionDisgust,
	models.EmotionDisgust: models.EmotionTrust,
}

// EmotionDetector identifies emotions in text by keyword lookup, with
// intensity modifiers and negation handling.
type EmotionDetector struct {
	wordEmotions map[string]models.Emotion
	intensifiers map[string]struct{}
	diminishers  map[string]struct{}
	negations    map[string]struct{}
}

func NewEmotionDetector() *EmotionDetector {
	d := &EmotionDetector{
		wordEmotions: make(map[string]models.Emotion),
		intensifiers: toSet(emotionIntensifiers),
		diminishers:  toSet(emotionDiminishers),
		negations:    toSet(emotionNegations),
	}
	for emotion, words := range emotionLexicons {
		for _, w := range words {
			d.wordEmotions[w] = emotion
		}
	}
	return d
}

// Detect scores the eight emotions over the text's tokens. Each keyword
// hit contributes a base intensity of 1, scaled by an intensifier (1.5)
// or diminisher (0.5) in the immediately preceding token. A negation up
// to three tokens before a hit remaps the emotion per negationMap.
// Confidence is the primary emotion's share of the total score; with no
// hits the result is EmotionNone at confidence 0.
func (d *EmotionDetector) Detect(text string) models.EmotionResult {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return models.EmotionResult{Primary: models.EmotionNone}
	}

	scores := make(map[models.Emotion]float64)
	for i, tok := range tokens {
		emotion, ok := d.wordEmotions[tok]
		if !ok {
			continue
		}

		hit := 1.0
		if i > 0 {
			if _, ok := d.intensifiers[tokens[i-1]]; ok {
				hit *= intensifierFactor
			} else if _, ok := d.diminishers[tokens[i-1]]; ok {
				hit *= diminisherFactor
			}
		}

		if d.negatedAt(tokens, i) {
			mapped, ok := negationMap[emotion]
			if !ok {
				continue
			}
			emotion = mapped
		}
		scores[emotion] += hit
	}

	if len(scores) == 0 {
		return models.EmotionResult{Primary: models.EmotionNone}
	}

	var total float64
	for _, s := range scores {
		total += s
	}

	primary := models.EmotionNone
	best := 0.0
	for _, emotion := range emotionPriority {
		if s := scores[emotion]; s > best {
			primary = emotion
			best = s
		}
	}

	return models.EmotionResult{
		Primary:    primary,
		Confidence: best / total,
		Scores:     scores,
	}
}

func (d *EmotionDetector) negatedAt(tokens []string, i int) bool {
	start := i - emotionNegationWindow
	if start < 0 {
		start = 0
	}
	for _, tok := range tokens[start:i] {
		if _, ok := d.negations[tok]; ok {
			return true
		}
	}
	return false
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
