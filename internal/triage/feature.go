package triage

import (
	"regexp"
	"strings"
)

// featureGroup maps a canonical feature name to the keywords that
// identify it. Groups are probed in order; the first hit wins.
type featureGroup struct {
	name     string
	keywords []string
}

var featureGroups = []featureGroup{
	{"calendar integration", []string{"calendar", "google calendar", "outlook", "scheduling"}},
	{"offline mode", []string{"offline", "without internet", "no connectivity"}},
	{"dark mode", []string{"dark mode", "dark theme", "night mode", "oled"}},
	{"export functionality", []string{"export", "pdf", "csv", "download"}},
	{"widget support", []string{"widget", "home screen", "quick access"}},
	{"biometric auth", []string{"biometric", "face id", "fingerprint", "touch id"}},
	{"cloud integration", []string{"google drive", "dropbox", "cloud storage", "onedrive"}},
	{"search improvements", []string{"search", "find", "filter", "advanced search"}},
	{"collaboration", []string{"share", "collaborate", "team", "multi-user"}},
	{"templates", []string{"template", "recurring", "preset"}},
}

var (
	featureRequestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:add|implement|include)\s+([^.!?]+)`),
		regexp.MustCompile(`(?:would love|would like|want|need)\s+(?:to see|to have)?\s*([^.!?]+)`),
		regexp.MustCompile(`(?:please|could you)\s+add\s+([^.!?]+)`),
	}

	benefitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:would|will)\s+(?:make|be|help)([^.!?]+)`),
		regexp.MustCompile(`(?:so that|because|since)([^.!?]+)`),
		regexp.MustCompile(`(?:useful|helpful|great|perfect)\s+for\s+([^.!?]+)`),
	}

	highDemandKeywords = []string{
		"really need", "must have", "essential", "critical",
		"many users", "everyone", "all users",
	}

	complexFeatureKeywords = []string{
		"integration", "sync", "real-time", "collaboration",
		"multi-user", "cloud", "api",
	}

	simpleFeatureKeywords = []string{
		"button", "color", "theme", "font", "icon",
		"notification", "reminder",
	}
)

const (
	genericFeature = "Feature request (details in description)"
	genericBenefit = "Improved user experience"

	capturedFeatureMaxLen = 50
)

// FeatureExtractor mines the requested capability, rationale, demand,
// and implementation complexity from Feature Request records.
type FeatureExtractor struct{}

// NewFeatureExtractor creates a FeatureExtractor.
func NewFeatureExtractor() *FeatureExtractor { return &FeatureExtractor{} }

// Extract identifies the requested feature and its surrounding signals.
func (e *FeatureExtractor) Extract(rec FeedbackRecord) FeatureAnalysis {
	return FeatureAnalysis{
		RequestedFeature:         identifyFeature(rec.Text),
		UserBenefit:              extractBenefit(rec.Text),
		EstimatedDemand:          estimateDemand(rec),
		ImplementationComplexity: estimateComplexity(rec.Text),
		SimilarRequests:          0,
	}
}

// identifyFeature checks the fixed feature groups first, then falls back
// to free-text request patterns with the captured phrase capped at 50
// characters.
func identifyFeature(text string) string {
	lower := strings.ToLower(text)

	for _, group := range featureGroups {
		if containsAny(lower, group.keywords) {
			return group.name
		}
	}

	for _, re := range featureRequestPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			captured := strings.TrimSpace(m[1])
			if len(captured) > capturedFeatureMaxLen {
				captured = captured[:capturedFeatureMaxLen]
			}
			return captured
		}
	}

	return genericFeature
}

func extractBenefit(text string) string {
	lower := strings.ToLower(text)
	for _, re := range benefitPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return genericBenefit
}

func estimateDemand(rec FeedbackRecord) string {
	if containsAny(strings.ToLower(rec.Text), highDemandKeywords) {
		return DemandHigh
	}
	if rec.Rating >= 4 {
		return DemandMediumHigh
	}
	return DemandMedium
}

// estimateComplexity is independent of demand: integration-class
// keywords mean High, cosmetic ones Low, everything else Medium.
func estimateComplexity(text string) string {
	lower := strings.ToLower(text)
	if containsAny(lower, complexFeatureKeywords) {
		return ComplexityHigh
	}
	if containsAny(lower, simpleFeatureKeywords) {
		return ComplexityLow
	}
	return ComplexityMedium
}
