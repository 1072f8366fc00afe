package lexicon

// defaultValences is the built-in word valence table. Values follow the
// usual lexicon convention of roughly [-4, 4], normalized later.
func defaultValences() map[string]float64 {
	return map[string]float64{
		// positive
		"good": 1.9, "better": 1.9, "best": 3.2,
		"great": 3.1, "greater": 2.3, "greatest": 3.4,
		"happy": 2.7, "happier": 2.5, "happiness": 2.6,
		"glad": 2.0, "joy": 2.8, "joyful": 2.9,
		"love": 3.2, "loved": 2.9, "lovely": 2.8, "loves": 2.7,
		"like": 1.5, "liked": 1.6, "likes": 1.5,
		"wonderful": 2.7, "amazing": 2.8, "awesome": 3.1,
		"fantastic": 2.6, "excellent": 2.7, "perfect": 2.7,
		"nice": 1.8, "fine": 0.8, "okay": 0.9, "ok": 0.9,
		"thanks": 1.9, "thank": 1.5, "thankful": 2.3, "grateful": 2.2,
		"pleased": 2.2, "delighted": 2.9, "excited": 2.2,
		"fun": 2.3, "enjoy": 2.2, "enjoyed": 2.3, "enjoying": 2.1,
		"hope": 1.9, "hopeful": 2.2, "optimistic": 2.0,
		"helpful": 1.8, "helped": 1.5, "helps": 1.4,
		"impressive": 2.3, "impressed": 2.1, "beautiful": 2.9,
		"satisfied": 1.9, "satisfying": 2.0, "smooth": 1.2,
		"improved": 1.7, "improvement": 1.6, "improving": 1.5,
		"recommend": 1.6, "recommended": 1.7, "reliable": 1.9,
		"friendly": 2.2, "smile": 1.8, "calm": 1.3, "relaxed": 1.6,
		"win": 2.4, "won": 2.5, "success": 2.5, "successful": 2.4,
		"yes": 1.1, "sure": 1.3, "certainly": 1.5, "easy": 1.4,

		// negative
		"bad": -2.5, "worse": -2.1, "worst": -3.1,
		"terrible": -2.1, "awful": -2.0, "horrible": -2.5,
		"sad": -2.1, "unhappy": -1.8, "upset": -1.6,
		"angry": -2.3, "mad": -2.2, "furious": -2.7,
		"hate": -2.7, "hated": -2.9, "hates": -2.6,
		"disappoint": -3.5, "disappointed": -3.5, "disappointing": -3.5,
		"disappoints": -3.5, "disappointment": -3.5,
		"annoying": -1.8, "annoyed": -1.7, "irritating": -2.0,
		"frustrated": -2.1, "frustrating": -2.1, "frustration": -2.0,
		"broken": -1.6, "broke": -1.4, "breaks": -1.3,
		"fail": -2.3, "failed": -2.3, "failure": -2.4, "fails": -2.2,
		"problem": -1.7, "problems": -1.7, "issue": -1.2, "issues": -1.3,
		"slow": -1.1, "useless": -1.8, "worthless": -2.4,
		"wrong": -2.1, "error": -1.6, "errors": -1.7, "bug": -1.4,
		"poor": -1.9, "poorly": -1.8, "mediocre": -0.7,
		"afraid": -2.2, "scared": -2.2, "fear": -2.2, "worried": -1.4,
		"anxious": -1.9, "nervous": -1.4, "stressed": -1.8,
		"miserable": -2.7, "depressed": -2.3, "hopeless": -2.6,
		"lonely": -1.5, "alone": -1.0, "crying": -2.0, "cry": -1.9,
		"disgusting": -2.4, "gross": -1.9, "nasty": -2.3,
		"complaint": -1.4, "complain": -1.4, "cancel": -1.1,
		"refund": -0.6, "scam": -2.7, "lie": -2.4, "lies": -2.2,
		"no": -1.2, "never": -1.3, "unacceptable": -2.6,
		"regret": -2.0, "sorry": -0.3, "pain": -2.2, "painful": -2.3,
	}
}

// defaultBoosters maps degree modifiers to the boost they add toward
// the sign of the word they modify. Negative values diminish.
func defaultBoosters() map[string]float64 {
	return map[string]float64{
		"very":       boosterIncrement,
		"really":     boosterIncrement,
		"extremely":  boosterIncrement,
		"incredibly": boosterIncrement,
		"absolutely": boosterIncrement,
		"completely": boosterIncrement,
		"totally":    boosterIncrement,
		"so":         boosterIncrement,
		"super":      boosterIncrement,
		"highly":     boosterIncrement,
		"slightly":   -boosterIncrement,
		"somewhat":   -boosterIncrement,
		"barely":     -boosterIncrement,
		"hardly":     -boosterIncrement,
		"kinda":      -boosterIncrement,
		"marginally": -boosterIncrement,
	}
}

func defaultNegations() map[string]struct{} {
	words := []string{
		"not", "no", "never", "neither", "nobody", "nothing",
		"nowhere", "none", "nor", "cannot",
		"can't", "won't", "don't", "doesn't", "didn't", "isn't",
		"aren't", "wasn't", "weren't", "couldn't", "shouldn't",
		"wouldn't", "ain't",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
