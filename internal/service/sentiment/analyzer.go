package sentiment

import (
	"strings"

	"wekeza-crm/internal/models"
)

// Result is the outcome of analyzing one piece of text.
type Result struct {
	Type       models.SentimentType
	Score      float64
	KeyPhrases string
}

// Analyzer scores a piece of customer text. The default implementation
// is a keyword counter standing in for a real NLP service.
type Analyzer interface {
	Analyze(text string) Result
}

var positiveWords = []string{"happy", "great", "excellent", "thank", "satisfied", "good", "appreciate"}

var negativeWords = []string{"unhappy", "bad", "terrible", "angry", "frustrated", "poor", "disappointed"}

// KeywordAnalyzer classifies text by checking which sentiment-bearing
// words appear in it and reports the first few tokens as key phrases.
// Each list word counts at most once however often it repeats.
type KeywordAnalyzer struct{}

func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

func (KeywordAnalyzer) Analyze(text string) Result {
	lowered := strings.ToLower(text)

	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(lowered, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lowered, w) {
			negative++
		}
	}

	var sentimentType models.SentimentType
	var score float64
	switch {
	case negative > positive+1:
		sentimentType, score = models.SentimentVeryNegative, 0.2
	case negative > positive:
		sentimentType, score = models.SentimentNegative, 0.4
	case positive > negative:
		sentimentType, score = models.SentimentPositive, 0.8
	default:
		sentimentType, score = models.SentimentNeutral, 0.5
	}

	return Result{
		Type:       sentimentType,
		Score:      score,
		KeyPhrases: keyPhrases(text),
	}
}

// keyPhrases takes the first five whitespace tokens of the original text.
func keyPhrases(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) > 5 {
		tokens = tokens[:5]
	}
	return strings.Join(tokens, ", ")
}
