package classifier

import (
	"strings"
	"unicode"

	"github.com/avolkov/sentibot/internal/lexicon"
)

// Scorer produces raw sentiment scores for a text. It must be
// deterministic for identical input within a session.
type Scorer interface {
	Score(text string) (lexicon.Scores, error)
}

// Tokenize splits text into lowercase word tokens. Apostrophes are kept
// so contractions like "don't" survive as single tokens.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
