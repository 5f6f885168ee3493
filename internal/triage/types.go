package triage

import "time"

// SourceType identifies where a feedback record came from.
type SourceType string

const (
	SourceReview SourceType = "review"
	SourceEmail  SourceType = "email"
)

// Category is one of the five mutually exclusive classification outcomes.
type Category string

const (
	CategoryBug       Category = "Bug"
	CategoryFeature   Category = "Feature Request"
	CategoryPraise    Category = "Praise"
	CategoryComplaint Category = "Complaint"
	CategorySpam      Category = "Spam"
)

// Slug returns the lower-cased, hyphenated tag form of the category.
func (c Category) Slug() string {
	switch c {
	case CategoryFeature:
		return "feature-request"
	case CategoryBug:
		return "bug"
	case CategoryPraise:
		return "praise"
	case CategoryComplaint:
		return "complaint"
	case CategorySpam:
		return "spam"
	}
	return string(c)
}

// FeedbackRecord is one raw unit of user feedback. Immutable once read.
// Rating is 0 when the source carries no rating (emails).
type FeedbackRecord struct {
	SourceID   string
	SourceType SourceType
	Text       string
	Rating     int
	Platform   string

	// Passthrough metadata, carried into ticket provenance blocks.
	UserName   string
	Date       string
	AppVersion string
	Sender     string
	Subject    string
}

// HasRating reports whether the record carries a star rating.
func (r FeedbackRecord) HasRating() bool { return r.Rating >= 1 && r.Rating <= 5 }

// ClassificationResult is produced once per record and never mutated.
// Confidence is a relative keyword-density score in [0,1], not a
// calibrated probability.
type ClassificationResult struct {
	Category   Category
	Confidence float64
}

// Sentinel values for fields that could not be extracted from free text.
// Absence of structured information is expected, never a failure.
const (
	SentinelUnknown      = "Unknown"
	SentinelNotSpecified = "Not specified"
	SentinelNone         = "None"
)

// Analysis is the category-specific extraction payload. It is a sealed
// sum type: only TechnicalAnalysis and FeatureAnalysis implement it, so
// the synthesizer's dispatch is exhaustive.
type Analysis interface {
	analysisCategory() Category
}

// TechnicalAnalysis holds details mined from a Bug-classified record.
type TechnicalAnalysis struct {
	Platform         string
	Device           string
	OSVersion        string
	AppVersion       string
	Severity         string
	StepsToReproduce string
	ErrorMessage     string
	Impact           string
}

func (TechnicalAnalysis) analysisCategory() Category { return CategoryBug }

// FeatureAnalysis holds details mined from a Feature Request record.
// SimilarRequests is reserved for future cross-record correlation and is
// always 0.
type FeatureAnalysis struct {
	RequestedFeature         string
	UserBenefit              string
	EstimatedDemand          string
	ImplementationComplexity string
	SimilarRequests          int
}

func (FeatureAnalysis) analysisCategory() Category { return CategoryFeature }

// Severity levels assigned by the bug extractor.
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
)

// Demand levels assigned by the feature extractor.
const (
	DemandHigh       = "High"
	DemandMediumHigh = "Medium-High"
	DemandMedium     = "Medium"
)

// Implementation complexity levels.
const (
	ComplexityHigh   = "High"
	ComplexityMedium = "Medium"
	ComplexityLow    = "Low"
)

// Priority values a ticket can carry.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// StatusOpen is the status every ticket is created with.
const StatusOpen = "Open"

// Ticket is the terminal artifact of the pipeline. Created once by the
// synthesizer and never mutated downstream; the critic only reads it.
type Ticket struct {
	TicketID    string
	SourceID    string
	SourceType  SourceType
	Category    Category
	Title       string
	Description string
	Priority    string
	Status      string
	AssignedTo  string
	Tags        string
	CreatedAt   time.Time
	Confidence  float64
}

// QualityVerdict is the critic's judgment of a single ticket. Derived,
// never stored on the ticket itself.
type QualityVerdict struct {
	IsApproved   bool
	Issues       []string
	QualityScore int
}

// TicketIssues pairs a rejected ticket with its recorded problems.
type TicketIssues struct {
	TicketID     string
	Issues       []string
	QualityScore int
}

// QualityReport aggregates verdicts over a reviewed batch.
type QualityReport struct {
	TotalTickets        int
	Approved            int
	Rejected            int
	TicketsWithIssues   []TicketIssues
	AverageQualityScore float64
}

// BatchMetrics summarizes one processed feedback batch.
type BatchMetrics struct {
	TotalFeedback  int
	Bugs           int
	Features       int
	Praise         int
	Complaints     int
	Spam           int
	TicketsCreated int
	ProcessingTime time.Duration
}
