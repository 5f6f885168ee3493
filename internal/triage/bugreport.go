package triage

import (
	"regexp"
	"strings"
)

// Ordered pattern tables for the bug extractor. Every probe is
// best-effort and first-match-wins; table order is load-bearing.
var (
	devicePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(iPhone \d+\s*Pro\s*Max|iPhone \d+\s*Pro|iPhone \d+)`),
		regexp.MustCompile(`(?i)(iPad Pro|iPad Air|iPad Mini|iPad)`),
		regexp.MustCompile(`(?i)(Samsung Galaxy [A-Z]\d+)`),
		regexp.MustCompile(`(?i)(Pixel \d+\s*Pro|Pixel \d+)`),
		regexp.MustCompile(`(?i)(OnePlus \d+)`),
		regexp.MustCompile(`(?i)(Xiaomi [A-Za-z0-9\s]+)`),
	}

	androidVersionRe = regexp.MustCompile(`(?i)Android\s+(\d+(?:\.\d+)?)`)
	iosVersionRe     = regexp.MustCompile(`(?i)iOS\s+(\d+(?:\.\d+)?)`)
	ipadosVersionRe  = regexp.MustCompile(`(?i)iPadOS\s+(\d+(?:\.\d+)?)`)

	criticalSeverityKeywords = []string{
		"data loss", "deleted", "lost", "crash", "won't open",
		"can't login", "urgent", "critical", "all my data",
	}

	highSeverityKeywords = []string{
		"not working", "broken", "fail", "error", "constant",
		"every time", "always", "unusable",
	}

	stepsLabelRe = regexp.MustCompile(`(?is)(?:steps?|reproduce|how to)[\s:]+(.+?)(?:\.|$)`)

	actionWords = []string{"open", "click", "select", "try", "upload", "download"}

	errorMessagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)["']([^"']*error[^"']*)["']`),
		regexp.MustCompile(`(?i)error[:\s]+([^.]+)`),
		regexp.MustCompile(`(?i)message[:\s]+([^.]+)`),
	}

	highImpactKeywords = []string{
		"unusable", "can't use", "lost data", "months of work",
		"critical", "urgent", "important",
	}
)

const (
	impactHigh   = "High - Blocking user workflow"
	impactMedium = "Medium - Degraded user experience"
)

// BugExtractor mines technical details from Bug-classified records.
// Every probe degrades to a sentinel rather than failing.
type BugExtractor struct{}

// NewBugExtractor creates a BugExtractor.
func NewBugExtractor() *BugExtractor { return &BugExtractor{} }

// Extract runs the ordered probe sequence over the record's text.
func (e *BugExtractor) Extract(rec FeedbackRecord) TechnicalAnalysis {
	appVersion := rec.AppVersion
	if appVersion == "" {
		appVersion = SentinelUnknown
	}

	return TechnicalAnalysis{
		Platform:         extractPlatform(rec),
		Device:           extractDevice(rec.Text),
		OSVersion:        extractOSVersion(rec.Text),
		AppVersion:       appVersion,
		Severity:         assessSeverity(rec.Text, rec.Rating),
		StepsToReproduce: extractSteps(rec.Text),
		ErrorMessage:     extractErrorMessage(rec.Text),
		Impact:           assessImpact(rec.Text),
	}
}

// extractPlatform prefers the explicit record field over text sniffing.
func extractPlatform(rec FeedbackRecord) string {
	if rec.Platform != "" {
		return rec.Platform
	}

	lower := strings.ToLower(rec.Text)
	switch {
	case strings.Contains(lower, "android"):
		return "Android"
	case strings.Contains(lower, "ios"),
		strings.Contains(lower, "iphone"),
		strings.Contains(lower, "ipad"):
		return "iOS"
	}
	return SentinelUnknown
}

func extractDevice(text string) string {
	for _, re := range devicePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return SentinelUnknown
}

func extractOSVersion(text string) string {
	if m := androidVersionRe.FindStringSubmatch(text); m != nil {
		return "Android " + m[1]
	}
	if m := iosVersionRe.FindStringSubmatch(text); m != nil {
		return "iOS " + m[1]
	}
	if m := ipadosVersionRe.FindStringSubmatch(text); m != nil {
		return "iPadOS " + m[1]
	}
	return SentinelUnknown
}

// assessSeverity checks critical keywords, then a 1-star rating, then
// high-severity keywords, in that order.
func assessSeverity(text string, rating int) string {
	lower := strings.ToLower(text)

	if containsAny(lower, criticalSeverityKeywords) {
		return SeverityCritical
	}
	if rating == 1 {
		return SeverityHigh
	}
	if containsAny(lower, highSeverityKeywords) {
		return SeverityHigh
	}
	return SeverityMedium
}

// extractSteps tries the labeled "steps/reproduce/how to" pattern first,
// then falls back to joining up to three action-verb sentences.
func extractSteps(text string) string {
	if m := stepsLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	var steps []string
	for _, sentence := range strings.Split(text, ".") {
		if containsAny(strings.ToLower(sentence), actionWords) {
			steps = append(steps, strings.TrimSpace(sentence))
		}
		if len(steps) == 3 {
			break
		}
	}
	if len(steps) > 0 {
		return strings.Join(steps, " -> ")
	}
	return SentinelNotSpecified
}

func extractErrorMessage(text string) string {
	for _, re := range errorMessagePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return SentinelNone
}

func assessImpact(text string) string {
	if containsAny(strings.ToLower(text), highImpactKeywords) {
		return impactHigh
	}
	return impactMedium
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
