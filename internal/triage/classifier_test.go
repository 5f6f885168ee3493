package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySpamShortCircuit(t *testing.T) {
	c := NewClassifier()

	t.Run("spam keyword density above threshold", func(t *testing.T) {
		// 4 of 9 spam keywords: buy, cheap, www., click here.
		got := c.Classify("Buy cheap watches at www.fakewatches.com! Click here!", 0)

		assert.Equal(t, CategorySpam, got.Category)
		assert.Greater(t, got.Confidence, 0.3)
	})

	t.Run("spam wins even with bug keywords present", func(t *testing.T) {
		got := c.Classify("Buy cheap fix for your crash error bug at www.scam.example, click here, guaranteed winner", 1)

		assert.Equal(t, CategorySpam, got.Category)
	})

	t.Run("gibberish with no spam keywords", func(t *testing.T) {
		got := c.Classify("xkcd qwrty zzzz bcdfg", 0)

		assert.Equal(t, CategorySpam, got.Category)
		assert.Equal(t, 0.0, got.Confidence)
	})

	// "app", "has", and "the" all fail the len>3 meaningful-token test,
	// so ordinary-looking stopword-heavy text still trips the check.
	t.Run("stopword-heavy text is flagged as gibberish", func(t *testing.T) {
		got := c.Classify("the app has a problem", 0)

		assert.Equal(t, CategorySpam, got.Category)
		assert.Equal(t, 0.0, got.Confidence)
	})

	t.Run("short texts are never flagged as gibberish", func(t *testing.T) {
		got := c.Classify("zzzz bcdfg", 0)

		assert.NotEqual(t, CategorySpam, got.Category)
	})
}

func TestIsGibberish(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"vowel-less tokens", "xkcd qwrty zzzz bcdfg", true},
		{"mostly short stopwords", "the app has a problem", true},
		{"long tokens lift the ratio", "the application has a problem", false},
		{"fewer than three tokens", "zzzz bcdfg", false},
		{"ordinary sentence", "the application works fine for me", false},
		{"short tokens only", "ab cd ef gh", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isGibberish(tc.text))
		})
	}
}

func TestClassifyCategories(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		name   string
		text   string
		rating int
		want   Category
	}{
		{"crash report", "App crashes when uploading photos", 1, CategoryBug},
		{"feature ask", "Please add dark mode", 4, CategoryFeature},
		{"praise", "Amazing app, love it, works perfectly", 5, CategoryPraise},
		{"complaint", "Terrible customer service, very disappointed, no response for weeks", 2, CategoryComplaint},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.text, tc.rating)
			assert.Equal(t, tc.want, got.Category)
		})
	}
}

func TestClassifyRatingMultipliers(t *testing.T) {
	c := NewClassifier()

	t.Run("low rating boosts bug score", func(t *testing.T) {
		text := "the application has a problem"
		unadjusted := c.Classify(text, 0)
		adjusted := c.Classify(text, 1)

		assert.Equal(t, CategoryBug, unadjusted.Category)
		assert.Equal(t, CategoryBug, adjusted.Category)
		assert.Greater(t, adjusted.Confidence, unadjusted.Confidence)
		assert.InDelta(t, unadjusted.Confidence*1.5, adjusted.Confidence, 1e-9)
	})

	t.Run("low rating boosts complaint score", func(t *testing.T) {
		text := "way too expensive"
		unadjusted := c.Classify(text, 0)
		adjusted := c.Classify(text, 2)

		assert.InDelta(t, unadjusted.Confidence*1.3, adjusted.Confidence, 1e-9)
	})

	t.Run("high rating boosts praise score", func(t *testing.T) {
		text := "this is wonderful"
		unadjusted := c.Classify(text, 0)
		adjusted := c.Classify(text, 5)

		assert.Equal(t, CategoryPraise, adjusted.Category)
		assert.InDelta(t, unadjusted.Confidence*1.5, adjusted.Confidence, 1e-9)
	})

	t.Run("mid rating leaves scores alone", func(t *testing.T) {
		text := "the application has a problem"
		assert.Equal(t, c.Classify(text, 0), c.Classify(text, 3))
	})
}

func TestClassifyTieBreak(t *testing.T) {
	c := NewClassifier()

	t.Run("all-zero scores resolve to Bug", func(t *testing.T) {
		got := c.Classify("nothing remarkable about this one", 0)

		assert.Equal(t, CategoryBug, got.Category)
		assert.Equal(t, 0.0, got.Confidence)
	})

	// Empty text is the documented degenerate case: every score is 0 and
	// the tie-break favors Bug.
	t.Run("empty text degenerates to Bug", func(t *testing.T) {
		got := c.Classify("", 0)

		assert.Equal(t, CategoryBug, got.Category)
		assert.Equal(t, 0.0, got.Confidence)
	})
}

func TestKeywordScoreIsNormalizedByListLength(t *testing.T) {
	list := []string{"alpha", "beta", "gamma", "delta"}

	assert.Equal(t, 0.5, keywordScore("alpha and beta walked in", list))
	assert.Equal(t, 1.0, keywordScore("alpha beta gamma delta", list))
	assert.Equal(t, 0.0, keywordScore("nothing here", list))
}
