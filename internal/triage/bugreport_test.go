package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlatform(t *testing.T) {
	cases := []struct {
		name string
		rec  FeedbackRecord
		want string
	}{
		{"explicit field wins", FeedbackRecord{Platform: "Android", Text: "my iphone broke"}, "Android"},
		{"android in text", FeedbackRecord{Text: "crashes on my android phone"}, "Android"},
		{"iphone in text", FeedbackRecord{Text: "my iPhone keeps freezing"}, "iOS"},
		{"ipad in text", FeedbackRecord{Text: "iPad screen goes blank"}, "iOS"},
		{"nothing", FeedbackRecord{Text: "the app is broken"}, SentinelUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractPlatform(tc.rec))
		})
	}
}

func TestExtractDevice(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"iphone pro max", "Crashes on my iPhone 14 Pro Max constantly", "iPhone 14 Pro Max"},
		{"plain iphone", "Using iPhone 12 here", "iPhone 12"},
		{"ipad air", "Happens on my iPad Air", "iPad Air"},
		{"samsung", "Samsung Galaxy S23 shows a black screen", "Samsung Galaxy S23"},
		{"pixel", "Pixel 8 Pro battery drains fast", "Pixel 8 Pro"},
		{"oneplus", "broken on OnePlus 11", "OnePlus 11"},
		{"no device", "the app keeps crashing", SentinelUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractDevice(tc.text))
		})
	}
}

func TestExtractOSVersion(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"android", "running Android 14 on my phone", "Android 14"},
		{"android point release", "since Android 13.1 update", "Android 13.1"},
		{"ios", "broke after iOS 17.2 update", "iOS 17.2"},
		{"none", "just crashes", SentinelUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractOSVersion(tc.text))
		})
	}
}

func TestAssessSeverity(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		rating int
		want   string
	}{
		{"data loss is critical", "all my data is gone, deleted everything", 3, SeverityCritical},
		{"crash is critical", "App crashes when uploading photos", 1, SeverityCritical},
		{"one-star rating is high", "very disappointing behaviour", 1, SeverityHigh},
		{"high keyword", "sync is broken every time", 3, SeverityHigh},
		{"default medium", "screen flickers sometimes", 4, SeverityMedium},
		{"no rating default", "screen flickers sometimes", 0, SeverityMedium},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, assessSeverity(tc.text, tc.rating))
		})
	}
}

func TestExtractSteps(t *testing.T) {
	t.Run("labeled steps", func(t *testing.T) {
		got := extractSteps("Steps to reproduce: tap settings then toggle sync. It fails.")
		assert.Equal(t, "to reproduce: tap settings then toggle sync", got)
	})

	t.Run("action-verb sentences joined with arrows", func(t *testing.T) {
		got := extractSteps("I open the app. I click the export button. Then I select PDF. Nothing happens after that.")
		assert.Equal(t, "I open the app -> I click the export button -> Then I select PDF", got)
	})

	t.Run("caps at three steps", func(t *testing.T) {
		got := extractSteps("Open one. Open two. Open three. Open four.")
		assert.Equal(t, "Open one -> Open two -> Open three", got)
	})

	t.Run("no actionable content", func(t *testing.T) {
		assert.Equal(t, SentinelNotSpecified, extractSteps("it just broke"))
	})
}

func TestExtractErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"quoted error", `it shows "error 500 internal" and stops`, "error 500 internal"},
		{"error label", "I get error: connection refused. Then nothing", "connection refused"},
		{"message label", "popup says message: sync failed, try again", "sync failed, try again"},
		{"no error text", "it simply closes itself", SentinelNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractErrorMessage(tc.text))
		})
	}
}

func TestAssessImpact(t *testing.T) {
	assert.Equal(t, impactHigh, assessImpact("the app is completely unusable now"))
	assert.Equal(t, impactHigh, assessImpact("I lost data, months of work gone"))
	assert.Equal(t, impactMedium, assessImpact("minor glitch in the settings page"))
}

func TestBugExtractorSentinels(t *testing.T) {
	e := NewBugExtractor()

	got := e.Extract(FeedbackRecord{SourceID: "R1", SourceType: SourceReview, Text: "it misbehaves"})

	assert.Equal(t, TechnicalAnalysis{
		Platform:         SentinelUnknown,
		Device:           SentinelUnknown,
		OSVersion:        SentinelUnknown,
		AppVersion:       SentinelUnknown,
		Severity:         SeverityMedium,
		StepsToReproduce: SentinelNotSpecified,
		ErrorMessage:     SentinelNone,
		Impact:           impactMedium,
	}, got)
}

func TestBugExtractorFullReport(t *testing.T) {
	e := NewBugExtractor()

	rec := FeedbackRecord{
		SourceID:   "R2",
		SourceType: SourceReview,
		Rating:     1,
		AppVersion: "2.4.1",
		Text:       `App crashes on my iPhone 14 Pro since iOS 17.2. I open the camera. I click upload. It shows "error uploading file" and all my data is gone.`,
	}

	got := e.Extract(rec)

	assert.Equal(t, "iOS", got.Platform)
	assert.Equal(t, "iPhone 14 Pro", got.Device)
	assert.Equal(t, "iOS 17.2", got.OSVersion)
	assert.Equal(t, "2.4.1", got.AppVersion)
	assert.Equal(t, SeverityCritical, got.Severity)
	assert.Equal(t, "error uploading file", got.ErrorMessage)
	assert.Contains(t, got.StepsToReproduce, "I open the camera")
}
