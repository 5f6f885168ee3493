package triage

import "strings"

// Keyword tables for classification. Each category score is the fraction
// of its table matched by the text, capped at 1.0, so tables of different
// sizes stay comparable.
var (
	bugKeywords = []string{
		"crash", "bug", "error", "broken", "not working", "issue", "problem",
		"fail", "freeze", "slow", "lag", "glitch", "stuck", "won't", "can't",
		"doesn't work", "stopped working", "data loss", "deleted", "missing",
	}

	featureKeywords = []string{
		"feature", "request", "add", "would love", "please add", "suggestion",
		"improve", "enhancement", "would be nice", "missing", "need", "want",
		"integration", "support for", "ability to",
	}

	praiseKeywords = []string{
		"love", "amazing", "great", "excellent", "perfect", "best", "awesome",
		"fantastic", "wonderful", "thank you", "appreciate", "outstanding",
		"brilliant", "superb", "incredible",
	}

	complaintKeywords = []string{
		"expensive", "price", "cost", "poor", "bad", "terrible", "worst",
		"disappointed", "frustrating", "annoying", "unacceptable", "no response",
		"customer service", "support",
	}

	spamKeywords = []string{
		"buy", "cheap", "www.", "http", "click here", "limited time",
		"guaranteed", "free money", "winner",
	}
)

const (
	spamThreshold        = 0.3
	gibberishMinTokens   = 3
	meaningfulRatioFloor = 0.3
)

// tieBreakOrder is the evaluation order used when adjusted scores tie.
// The first category in this order with the highest score wins. The
// order is an observable policy: changing it changes classification
// outcomes on tied inputs, so it is a tested constant.
var tieBreakOrder = []Category{CategoryBug, CategoryFeature, CategoryPraise, CategoryComplaint}

// Classifier assigns a category and confidence to raw feedback text.
type Classifier struct{}

// NewClassifier creates a Classifier.
func NewClassifier() *Classifier { return &Classifier{} }

// Classify scores the text against the keyword tables. Spam is evaluated
// first and short-circuits: a spam score above the threshold or a
// gibberish hit classifies as Spam without scoring the other categories.
// A rating of 0 means the record carries no rating.
//
// Known edge case: empty text scores 0 everywhere and degenerates to the
// tie-break winner (Bug) with confidence 0.
func (c *Classifier) Classify(text string, rating int) ClassificationResult {
	lower := strings.ToLower(text)

	spamScore := keywordScore(lower, spamKeywords)
	if spamScore > spamThreshold || isGibberish(text) {
		return ClassificationResult{Category: CategorySpam, Confidence: spamScore}
	}

	scores := map[Category]float64{
		CategoryBug:       keywordScore(lower, bugKeywords),
		CategoryFeature:   keywordScore(lower, featureKeywords),
		CategoryPraise:    keywordScore(lower, praiseKeywords),
		CategoryComplaint: keywordScore(lower, complaintKeywords),
	}

	switch {
	case rating >= 1 && rating <= 2:
		scores[CategoryBug] *= 1.5
		scores[CategoryComplaint] *= 1.3
	case rating >= 4:
		scores[CategoryPraise] *= 1.5
	}

	winner := tieBreakOrder[0]
	for _, cat := range tieBreakOrder[1:] {
		if scores[cat] > scores[winner] {
			winner = cat
		}
	}

	return ClassificationResult{Category: winner, Confidence: scores[winner]}
}

func keywordScore(lower string, keywords []string) float64 {
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	score := float64(matches) / float64(len(keywords))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// isGibberish flags text whose meaningful-token ratio is below 30%. A
// token is meaningful when longer than 3 characters and containing at
// least one vowel. Texts shorter than 3 tokens are never flagged.
func isGibberish(text string) bool {
	words := strings.Fields(text)
	if len(words) < gibberishMinTokens {
		return false
	}

	meaningful := 0
	for _, w := range words {
		if len(w) > 3 && hasVowel(w) {
			meaningful++
		}
	}
	return float64(meaningful)/float64(len(words)) < meaningfulRatioFloor
}

func hasVowel(word string) bool {
	return strings.ContainsAny(word, "aeiouAEIOU")
}
