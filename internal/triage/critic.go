package triage

import (
	"fmt"
	"strings"
)

// Markers the critic looks for in ticket descriptions.
const (
	originalFeedbackMarker = "**Original Feedback:**"
	technicalDetailsMarker = "**Technical Details:**"
	featureDetailsMarker   = "**Feature Details:**"
	platformMarker         = "Platform:"
)

var validPriorities = []string{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// Critic independently re-validates synthesized tickets against a
// completeness and format checklist. It never fails: an incomplete
// ticket just accumulates issues and a low score.
type Critic struct{}

// NewCritic creates a Critic.
func NewCritic() *Critic { return &Critic{} }

// Review scores a ticket starting from 100 and subtracting a fixed
// penalty per violated rule, flooring at 0. Approval requires a score of
// at least 70 AND zero recorded issues; the conjunction is deliberate
// and stricter than the threshold alone.
func (c *Critic) Review(t Ticket) QualityVerdict {
	var issues []string
	score := 100

	type requiredField struct {
		name  string
		value string
	}
	required := []requiredField{
		{"ticket_id", t.TicketID},
		{"title", t.Title},
		{"description", t.Description},
		{"priority", t.Priority},
		{"category", string(t.Category)},
	}
	for _, f := range required {
		if f.value == "" {
			issues = append(issues, fmt.Sprintf("Missing required field: %s", f.name))
			score -= 20
		}
	}

	if len(t.Title) < 10 {
		issues = append(issues, "Title too short (minimum 10 characters)")
		score -= 10
	} else if len(t.Title) > 100 {
		issues = append(issues, "Title too long (maximum 100 characters)")
		score -= 5
	}
	if !strings.HasPrefix(t.Title, "[") {
		issues = append(issues, "Title should start with category tag (e.g., [BUG])")
		score -= 5
	}

	if len(t.Description) < 50 {
		issues = append(issues, "Description too short (minimum 50 characters)")
		score -= 15
	}
	if !strings.Contains(t.Description, originalFeedbackMarker) {
		issues = append(issues, "Description missing original feedback section")
		score -= 10
	}

	if !isValidPriority(t.Priority) {
		issues = append(issues, fmt.Sprintf("Invalid priority. Must be one of: %s", strings.Join(validPriorities, ", ")))
		score -= 10
	}

	switch t.Category {
	case CategoryBug:
		if !strings.Contains(t.Description, technicalDetailsMarker) {
			issues = append(issues, "Bug ticket missing technical details section")
			score -= 15
		}
		if !strings.Contains(t.Description, platformMarker) {
			issues = append(issues, "Bug ticket missing platform information")
			score -= 10
		}
	case CategoryFeature:
		if !strings.Contains(t.Description, featureDetailsMarker) {
			issues = append(issues, "Feature request missing feature details section")
			score -= 15
		}
	}

	if t.AssignedTo == "" {
		issues = append(issues, "Ticket not assigned to any team")
		score -= 10
	}
	if t.Tags == "" {
		issues = append(issues, "Ticket missing tags")
		score -= 5
	}

	approved := score >= 70 && len(issues) == 0
	if score < 0 {
		score = 0
	}

	return QualityVerdict{
		IsApproved:   approved,
		Issues:       issues,
		QualityScore: score,
	}
}

func isValidPriority(p string) bool {
	for _, v := range validPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// ReviewBatch reviews every ticket and aggregates the verdicts.
func (c *Critic) ReviewBatch(tickets []Ticket) QualityReport {
	report := QualityReport{TotalTickets: len(tickets)}

	totalScore := 0
	for _, t := range tickets {
		verdict := c.Review(t)
		totalScore += verdict.QualityScore

		if verdict.IsApproved {
			report.Approved++
			continue
		}
		report.Rejected++
		report.TicketsWithIssues = append(report.TicketsWithIssues, TicketIssues{
			TicketID:     t.TicketID,
			Issues:       verdict.Issues,
			QualityScore: verdict.QualityScore,
		})
	}

	if len(tickets) > 0 {
		report.AverageQualityScore = float64(totalScore) / float64(len(tickets))
	}
	return report
}

// RenderReport produces the human-readable text form of a quality report.
func RenderReport(r QualityReport) string {
	var b strings.Builder

	b.WriteString("=== QUALITY REVIEW REPORT ===\n\n")
	fmt.Fprintf(&b, "Total Tickets Reviewed: %d\n", r.TotalTickets)
	fmt.Fprintf(&b, "Approved: %d\n", r.Approved)
	fmt.Fprintf(&b, "Rejected: %d\n", r.Rejected)
	fmt.Fprintf(&b, "Average Quality Score: %.2f/100\n\n", r.AverageQualityScore)

	if len(r.TicketsWithIssues) > 0 {
		b.WriteString("=== TICKETS WITH ISSUES ===\n\n")
		for _, ti := range r.TicketsWithIssues {
			fmt.Fprintf(&b, "Ticket ID: %s\n", ti.TicketID)
			fmt.Fprintf(&b, "Quality Score: %d/100\n", ti.QualityScore)
			b.WriteString("Issues:\n")
			for _, issue := range ti.Issues {
				fmt.Fprintf(&b, "  - %s\n", issue)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
