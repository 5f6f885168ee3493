// Package ingest parses already-materialized feedback files into
// records the pipeline consumes. Malformed input surfaces as an
// ingestion error, never as a pipeline failure.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/godilite/triage-server/internal/triage"
)

// ReadFeedbackFiles reads the reviews and emails CSVs and returns the
// combined record batch, reviews first.
func ReadFeedbackFiles(reviewsPath, emailsPath string) ([]triage.FeedbackRecord, error) {
	reviews, err := readFile(reviewsPath, ReadReviews)
	if err != nil {
		return nil, fmt.Errorf("reviews file %s: %w", reviewsPath, err)
	}
	emails, err := readFile(emailsPath, ReadEmails)
	if err != nil {
		return nil, fmt.Errorf("emails file %s: %w", emailsPath, err)
	}
	return append(reviews, emails...), nil
}

func readFile(path string, parse func(io.Reader) ([]triage.FeedbackRecord, error)) ([]triage.FeedbackRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f)
}

// ReadReviews parses app-store reviews. Expected columns: review_id,
// review_text, rating, plus optional user_name, date, app_version,
// platform. Column order does not matter; unknown columns are ignored.
func ReadReviews(r io.Reader) ([]triage.FeedbackRecord, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if err := header.require("review_id", "review_text"); err != nil {
		return nil, err
	}

	records := make([]triage.FeedbackRecord, 0, len(rows))
	for i, row := range rows {
		rating := 0
		if raw := header.get(row, "rating"); raw != "" {
			rating, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid rating %q", i+2, raw)
			}
		}

		records = append(records, triage.FeedbackRecord{
			SourceID:   header.get(row, "review_id"),
			SourceType: triage.SourceReview,
			Text:       header.get(row, "review_text"),
			Rating:     rating,
			Platform:   header.get(row, "platform"),
			UserName:   header.get(row, "user_name"),
			Date:       header.get(row, "date"),
			AppVersion: header.get(row, "app_version"),
		})
	}
	return records, nil
}

// ReadEmails parses support emails. Expected columns: email_id, body,
// plus optional sender_email, subject, date, app_version.
func ReadEmails(r io.Reader) ([]triage.FeedbackRecord, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if err := header.require("email_id", "body"); err != nil {
		return nil, err
	}

	records := make([]triage.FeedbackRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, triage.FeedbackRecord{
			SourceID:   header.get(row, "email_id"),
			SourceType: triage.SourceEmail,
			Text:       header.get(row, "body"),
			Sender:     header.get(row, "sender_email"),
			Subject:    header.get(row, "subject"),
			Date:       header.get(row, "date"),
			AppVersion: header.get(row, "app_version"),
		})
	}
	return records, nil
}

// headerIndex maps normalized column names to their positions.
type headerIndex map[string]int

func readAll(r io.Reader) ([][]string, headerIndex, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty file: missing header row")
	}

	header := make(headerIndex, len(all[0]))
	for i, name := range all[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return all[1:], header, nil
}

func (h headerIndex) require(names ...string) error {
	for _, name := range names {
		if _, ok := h[name]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
	}
	return nil
}

func (h headerIndex) get(row []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
