package classifier

import "github.com/avolkov/sentibot/internal/models"

// emotionLexicons holds the keyword set for each emotion. The sets are
// disjoint so a word always maps to exactly one emotion.
var emotionLexicons = map[models.Emotion][]string{
	models.EmotionJoy: {
		"happy", "joy", "joyful", "delighted", "pleased", "glad",
		"cheerful", "thrilled", "excited", "ecstatic", "elated",
		"wonderful", "amazing", "fantastic", "great", "awesome",
		"love", "loving", "loved", "enjoy", "enjoying", "fun",
		"laugh", "laughing", "smile", "smiling", "celebrate",
		"blessed", "grateful", "thankful", "content", "satisfied",
		"yay", "hurray", "woohoo", "excellent", "perfect",
	},
	models.EmotionSadness: {
		"sad", "unhappy", "depressed", "miserable", "sorrowful",
		"heartbroken", "grief", "grieving", "mourning", "crying",
		"tears", "weeping", "disappointed", "upset", "down",
		"lonely", "alone", "isolated", "hopeless", "despair",
		"melancholy", "gloomy", "tragic", "unfortunate",
		"regret", "regretful", "miss", "missing", "lost",
	},
	models.EmotionAnger: {
		"angry", "mad", "furious", "rage", "raging", "outraged",
		"annoyed", "irritated", "frustrated", "infuriated",
		"livid", "hostile", "aggressive", "hate", "hating",
		"resent", "resentful", "bitter", "spite", "spiteful",
		"pissed", "fuming", "seething", "enraged",
	},
	models.EmotionFear: {
		"afraid", "scared", "frightened", "terrified", "fearful",
		"anxious", "worried", "nervous", "panicked", "panic",
		"dread", "dreading", "horror", "horrified", "terror",
		"phobia", "alarmed", "uneasy", "tense", "stressed",
		"concern", "concerned", "apprehensive", "paranoid",
	},
	models.EmotionSurprise: {
		"surprised", "shocking", "shocked", "astonished", "amazed",
		"stunned", "startled", "unexpected", "unbelievable",
		"incredible", "wow", "whoa", "omg", "speechless",
	},
	models.EmotionDisgust: {
		"disgusted", "disgusting", "gross", "revolting", "repulsive",
		"sickening", "nauseating", "vile", "awful", "terrible",
		"horrible", "dreadful", "appalling", "offensive", "yuck",
		"ugh", "eww", "nasty", "foul", "repugnant",
	},
	models.EmotionTrust: {
		"trust", "trusting", "believe", "believing", "faith",
		"reliable", "dependable", "honest", "sincere", "loyal",
		"confident", "certain", "sure", "secure", "safe",
		"assured", "comfortable", "calm", "peaceful", "relaxed",
	},
	models.EmotionAnticipation: {
		"eager", "anticipate", "anticipating", "expect", "expecting",
		"hope", "hoping", "hopeful", "optimistic", "curious",
		"interested", "intrigued", "wonder", "wondering", "await",
		"awaiting", "forward",
	},
}

var emotionIntensifiers = []string{
	"very", "really", "extremely", "absolutely", "totally",
	"completely", "incredibly", "so", "too", "super", "highly",
}

var emotionDiminishers = []string{
	"slightly", "somewhat", "barely", "hardly", "mildly", "kinda",
}

var emotionNegations = []string{
	"not", "no", "never", "neither", "nobody", "nothing",
	"nowhere", "none", "don't", "doesn't", "didn't", "won't",
	"wouldn't", "couldn't", "shouldn't", "can't", "cannot", "isn't",
	"aren't", "wasn't", "weren't",
}
