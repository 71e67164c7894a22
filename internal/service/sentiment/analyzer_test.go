package sentiment

import (
	"testing"

	"wekeza-crm/internal/models"
)

func TestKeywordAnalyzerClassification(t *testing.T) {
	analyzer := NewKeywordAnalyzer()

	tests := []struct {
		name      string
		text      string
		wantType  models.SentimentType
		wantScore float64
	}{
		{
			name:      "positive",
			text:      "Thank you for the excellent service, very happy",
			wantType:  models.SentimentPositive,
			wantScore: 0.8,
		},
		{
			name:      "very negative",
			text:      "This is terrible, I am angry and frustrated",
			wantType:  models.SentimentVeryNegative,
			wantScore: 0.2,
		},
		{
			name:      "negative by one",
			text:      "The service was bad",
			wantType:  models.SentimentNegative,
			wantScore: 0.4,
		},
		{
			name:      "repeated word counts once",
			text:      "bad bad service",
			wantType:  models.SentimentNegative,
			wantScore: 0.4,
		},
		{
			name:      "neutral",
			text:      "I would like to check my account balance",
			wantType:  models.SentimentNeutral,
			wantScore: 0.5,
		},
		{
			name:      "tie is neutral",
			text:      "good but bad",
			wantType:  models.SentimentNeutral,
			wantScore: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Analyze(tt.text)
			if got.Type != tt.wantType {
				t.Fatalf("type = %s, want %s", got.Type, tt.wantType)
			}
			if got.Score != tt.wantScore {
				t.Fatalf("score = %v, want %v", got.Score, tt.wantScore)
			}
		})
	}
}

func TestKeywordAnalyzerKeyPhrases(t *testing.T) {
	analyzer := NewKeywordAnalyzer()

	got := analyzer.Analyze("one two three four five six seven")
	if got.KeyPhrases != "one, two, three, four, five" {
		t.Fatalf("key phrases = %q", got.KeyPhrases)
	}

	got = analyzer.Analyze("just three words")
	if got.KeyPhrases != "just, three, words" {
		t.Fatalf("key phrases = %q", got.KeyPhrases)
	}
}
