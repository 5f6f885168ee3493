package triage

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Sequencer hands out strictly increasing ticket numbers. Safe for
// concurrent use; the counter is the only shared mutable state in the
// pipeline.
type Sequencer struct {
	counter atomic.Int64
}

// ticketSeqStart is the value the counter starts above; the first issued
// ID is TICK-1001.
const ticketSeqStart = 1000

// NewSequencer creates a Sequencer starting above 1000.
func NewSequencer() *Sequencer {
	s := &Sequencer{}
	s.counter.Store(ticketSeqStart)
	return s
}

// NextID returns the next ticket identifier.
func (s *Sequencer) NextID() string {
	return fmt.Sprintf("TICK-%d", s.counter.Add(1))
}

// issueSignature maps a text cue to the short issue phrase used in bug
// ticket titles. Signatures are scanned in priority order.
type issueSignature struct {
	cue   func(lower string) bool
	issue string
}

var issueSignatures = []issueSignature{
	{func(s string) bool { return strings.Contains(s, "crash") }, "App crashes"},
	{func(s string) bool { return strings.Contains(s, "login") }, "Login issue"},
	{func(s string) bool { return strings.Contains(s, "slow") || strings.Contains(s, "performance") }, "Performance issue"},
	{func(s string) bool {
		return strings.Contains(s, "data") && (strings.Contains(s, "loss") || strings.Contains(s, "deleted"))
	}, "Data loss"},
	{func(s string) bool { return strings.Contains(s, "sync") }, "Sync failure"},
	{func(s string) bool { return strings.Contains(s, "battery") }, "Battery drain"},
	{func(s string) bool { return strings.Contains(s, "notification") }, "Notification issue"},
	{func(s string) bool { return strings.Contains(s, "attach") || strings.Contains(s, "upload") }, "File attachment issue"},
}

const defaultIssue = "Application error"

// teamByCategory is the fixed category → owning team table.
var teamByCategory = map[Category]string{
	CategoryBug:       "Engineering Team",
	CategoryFeature:   "Product Team",
	CategoryComplaint: "Customer Success Team",
	CategoryPraise:    "Marketing Team",
	CategorySpam:      "Moderation Team",
}

const defaultTeam = "Triage Team"

// Synthesizer builds tickets from a record, its classification, and its
// optional extraction result. Pure except for the injected sequencer and
// clock.
type Synthesizer struct {
	seq *Sequencer
	now func() time.Time
}

// NewSynthesizer creates a Synthesizer around the shared sequencer.
func NewSynthesizer(seq *Sequencer) *Synthesizer {
	if seq == nil {
		panic("nil Sequencer provided to NewSynthesizer")
	}
	return &Synthesizer{seq: seq, now: time.Now}
}

// Synthesize creates a ticket. Spam classifications never reach this
// stage; receiving one, or an unrecognized category, indicates a broken
// upstream contract and fails fast. The analysis payload must match the
// category (TechnicalAnalysis for Bug, FeatureAnalysis for Feature
// Request, nil otherwise); nil analysis for Bug/Feature falls back to
// sentinel values.
func (s *Synthesizer) Synthesize(rec FeedbackRecord, cls ClassificationResult, analysis Analysis) (Ticket, error) {
	var (
		tech TechnicalAnalysis
		feat FeatureAnalysis
	)

	switch cls.Category {
	case CategoryBug:
		switch a := analysis.(type) {
		case TechnicalAnalysis:
			tech = a
		case nil:
			tech = sentinelTechnicalAnalysis()
		default:
			return Ticket{}, fmt.Errorf("synthesize %s: analysis payload %T does not match category Bug", rec.SourceID, analysis)
		}
	case CategoryFeature:
		switch a := analysis.(type) {
		case FeatureAnalysis:
			feat = a
		case nil:
			feat = sentinelFeatureAnalysis()
		default:
			return Ticket{}, fmt.Errorf("synthesize %s: analysis payload %T does not match category Feature Request", rec.SourceID, analysis)
		}
	case CategoryPraise, CategoryComplaint:
		if analysis != nil {
			return Ticket{}, fmt.Errorf("synthesize %s: unexpected analysis payload %T for category %s", rec.SourceID, analysis, cls.Category)
		}
	case CategorySpam:
		return Ticket{}, fmt.Errorf("synthesize %s: spam records must not reach the synthesizer", rec.SourceID)
	default:
		return Ticket{}, fmt.Errorf("synthesize %s: unrecognized category %q", rec.SourceID, cls.Category)
	}

	return Ticket{
		TicketID:    s.seq.NextID(),
		SourceID:    rec.SourceID,
		SourceType:  rec.SourceType,
		Category:    cls.Category,
		Title:       buildTitle(rec, cls.Category, tech, feat),
		Description: buildDescription(rec, cls.Category, tech, feat),
		Priority:    determinePriority(rec, cls.Category, tech, feat),
		Status:      StatusOpen,
		AssignedTo:  assignTeam(cls.Category),
		Tags:        buildTags(cls.Category, tech),
		CreatedAt:   s.now(),
		Confidence:  cls.Confidence,
	}, nil
}

func sentinelTechnicalAnalysis() TechnicalAnalysis {
	return TechnicalAnalysis{
		Platform:         SentinelUnknown,
		Device:           SentinelUnknown,
		OSVersion:        SentinelUnknown,
		AppVersion:       SentinelUnknown,
		Severity:         SeverityMedium,
		StepsToReproduce: SentinelNotSpecified,
		ErrorMessage:     SentinelNone,
		Impact:           impactMedium,
	}
}

func sentinelFeatureAnalysis() FeatureAnalysis {
	return FeatureAnalysis{
		RequestedFeature:         genericFeature,
		UserBenefit:              genericBenefit,
		EstimatedDemand:          DemandMedium,
		ImplementationComplexity: ComplexityMedium,
	}
}

func buildTitle(rec FeedbackRecord, cat Category, tech TechnicalAnalysis, feat FeatureAnalysis) string {
	switch cat {
	case CategoryBug:
		return fmt.Sprintf("[BUG] %s on %s", extractKeyIssue(rec.Text), tech.Platform)
	case CategoryFeature:
		return fmt.Sprintf("[FEATURE] %s", feat.RequestedFeature)
	case CategoryComplaint:
		excerpt := rec.Text
		if rec.SourceType == SourceEmail {
			excerpt = rec.Subject
		}
		if excerpt == "" {
			excerpt = "User complaint"
		}
		if len(excerpt) > 50 {
			excerpt = excerpt[:50]
		}
		return fmt.Sprintf("[FEEDBACK] %s", excerpt)
	case CategoryPraise:
		return "[PRAISE] Positive user feedback"
	}
	return fmt.Sprintf("[%s] User feedback", strings.ToUpper(string(cat)))
}

func extractKeyIssue(text string) string {
	lower := strings.ToLower(text)
	for _, sig := range issueSignatures {
		if sig.cue(lower) {
			return sig.issue
		}
	}
	return defaultIssue
}

func buildDescription(rec FeedbackRecord, cat Category, tech TechnicalAnalysis, feat FeatureAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Original Feedback:**\n%s\n\n", rec.Text)

	switch cat {
	case CategoryBug:
		b.WriteString("**Technical Details:**\n")
		fmt.Fprintf(&b, "- Platform: %s\n", tech.Platform)
		fmt.Fprintf(&b, "- Device: %s\n", tech.Device)
		fmt.Fprintf(&b, "- OS Version: %s\n", tech.OSVersion)
		fmt.Fprintf(&b, "- App Version: %s\n", tech.AppVersion)
		fmt.Fprintf(&b, "- Severity: %s\n", tech.Severity)
		fmt.Fprintf(&b, "- Impact: %s\n", tech.Impact)

		if tech.ErrorMessage != SentinelNone {
			fmt.Fprintf(&b, "- Error Message: %s\n", tech.ErrorMessage)
		}
		if tech.StepsToReproduce != SentinelNotSpecified {
			fmt.Fprintf(&b, "\n**Steps to Reproduce:**\n%s\n", tech.StepsToReproduce)
		}

	case CategoryFeature:
		b.WriteString("**Feature Details:**\n")
		fmt.Fprintf(&b, "- Requested Feature: %s\n", feat.RequestedFeature)
		fmt.Fprintf(&b, "- User Benefit: %s\n", feat.UserBenefit)
		fmt.Fprintf(&b, "- Estimated Demand: %s\n", feat.EstimatedDemand)
		fmt.Fprintf(&b, "- Implementation Complexity: %s\n", feat.ImplementationComplexity)
	}

	if rec.SourceType == SourceReview {
		rating := "N/A"
		if rec.HasRating() {
			rating = fmt.Sprintf("%d", rec.Rating)
		}
		user := rec.UserName
		if user == "" {
			user = "Anonymous"
		}
		date := rec.Date
		if date == "" {
			date = SentinelUnknown
		}
		fmt.Fprintf(&b, "\n**Source:** App Store Review (Rating: %s)\n", rating)
		fmt.Fprintf(&b, "**User:** %s\n", user)
		fmt.Fprintf(&b, "**Date:** %s\n", date)
	} else {
		sender := rec.Sender
		if sender == "" {
			sender = SentinelUnknown
		}
		subject := rec.Subject
		if subject == "" {
			subject = "N/A"
		}
		b.WriteString("\n**Source:** Support Email\n")
		fmt.Fprintf(&b, "**From:** %s\n", sender)
		fmt.Fprintf(&b, "**Subject:** %s\n", subject)
	}

	return b.String()
}

func determinePriority(rec FeedbackRecord, cat Category, tech TechnicalAnalysis, feat FeatureAnalysis) string {
	switch cat {
	case CategoryBug:
		switch tech.Severity {
		case SeverityCritical:
			return PriorityCritical
		case SeverityHigh:
			return PriorityHigh
		}
		return PriorityMedium

	case CategoryFeature:
		switch feat.EstimatedDemand {
		case DemandHigh:
			return PriorityHigh
		case DemandMediumHigh:
			return PriorityMedium
		}
		return PriorityLow

	case CategoryComplaint:
		lower := strings.ToLower(rec.Text)
		if strings.Contains(lower, "no response") || strings.Contains(lower, "customer service") {
			return PriorityHigh
		}
		return PriorityMedium
	}

	return PriorityLow
}

func assignTeam(cat Category) string {
	if team, ok := teamByCategory[cat]; ok {
		return team
	}
	return defaultTeam
}

// buildTags joins the ordered tag list: category slug first, then
// platform and severity for bugs, or "enhancement" for feature requests.
func buildTags(cat Category, tech TechnicalAnalysis) string {
	tags := []string{cat.Slug()}

	switch cat {
	case CategoryBug:
		if tech.Platform != "" {
			tags = append(tags, strings.ToLower(tech.Platform))
		}
		if tech.Severity != "" {
			tags = append(tags, strings.ToLower(tech.Severity))
		}
	case CategoryFeature:
		tags = append(tags, "enhancement")
	}

	return strings.Join(tags, ", ")
}
