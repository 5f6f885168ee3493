// Package export writes finished tickets to a flat tabular file for
// handoff to an external tracker. The file is write-once: each call
// produces a complete snapshot, never an append.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/godilite/triage-server/internal/triage"
)

// createdAtLayout matches the timestamp format of the handoff contract.
const createdAtLayout = "2006-01-02 15:04:05"

var ticketColumns = []string{
	"ticket_id", "source_id", "source_type", "category", "title",
	"description", "priority", "status", "assigned_to", "tags",
	"created_at", "confidence",
}

// WriteTickets writes one row per ticket, columns matching the ticket
// fields.
func WriteTickets(w io.Writer, tickets []triage.Ticket) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ticketColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, t := range tickets {
		row := []string{
			t.TicketID,
			t.SourceID,
			string(t.SourceType),
			string(t.Category),
			t.Title,
			t.Description,
			t.Priority,
			t.Status,
			t.AssignedTo,
			t.Tags,
			t.CreatedAt.Format(createdAtLayout),
			strconv.FormatFloat(t.Confidence, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write ticket %s: %w", t.TicketID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTicketsFile writes the ticket snapshot to path.
func WriteTicketsFile(path string, tickets []triage.Ticket) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteTickets(f, tickets); err != nil {
		return err
	}
	return f.Close()
}
