package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/triage"
)

const createdAtLayout = "2006-01-02 15:04:05"

// TicketRepository archives finished tickets in sqlite. The archive is
// append-only: tickets are inserted once and never updated.
type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Migrate creates the tickets table if it does not exist.
func (r *TicketRepository) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS tickets (
			ticket_id   TEXT PRIMARY KEY,
			source_id   TEXT NOT NULL,
			source_type TEXT NOT NULL,
			category    TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			priority    TEXT NOT NULL,
			status      TEXT NOT NULL,
			assigned_to TEXT NOT NULL,
			tags        TEXT NOT NULL,
			created_at  TEXT NOT NULL,
			confidence  REAL NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate tickets table: %w", err)
	}
	return nil
}

// SaveTickets inserts a batch inside one transaction. A duplicate
// ticket_id fails the whole batch: IDs are unique per process lifetime,
// so a collision means the archive already holds this batch.
func (r *TicketRepository) SaveTickets(ctx context.Context, tickets []triage.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin SaveTickets tx: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO tickets (
			ticket_id, source_id, source_type, category, title, description,
			priority, status, assigned_to, tags, created_at, confidence
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare SaveTickets: %w", err)
	}
	defer stmt.Close()

	for _, t := range tickets {
		_, err := stmt.ExecContext(ctx,
			t.TicketID, t.SourceID, string(t.SourceType), string(t.Category),
			t.Title, t.Description, t.Priority, t.Status, t.AssignedTo,
			t.Tags, t.CreatedAt.UTC().Format(createdAtLayout), t.Confidence,
		)
		if err != nil {
			return fmt.Errorf("insert ticket %s: %w", t.TicketID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit SaveTickets: %w", err)
	}
	return nil
}

// ListTickets returns archived tickets, optionally filtered by category
// and priority, ordered by ticket_id.
func (r *TicketRepository) ListTickets(ctx context.Context, filter models.TicketFilter) ([]triage.Ticket, error) {
	query := `
		SELECT ticket_id, source_id, source_type, category, title, description,
		       priority, status, assigned_to, tags, created_at, confidence
		FROM tickets
		WHERE (? = '' OR category = ?)
		  AND (? = '' OR priority = ?)
		ORDER BY ticket_id
	`

	rows, err := r.db.QueryContext(ctx, query,
		filter.Category, filter.Category, filter.Priority, filter.Priority)
	if err != nil {
		return nil, fmt.Errorf("query ListTickets: %w", err)
	}
	defer rows.Close()

	var tickets []triage.Ticket
	for rows.Next() {
		var (
			t          triage.Ticket
			sourceType string
			category   string
			createdAt  string
		)
		err := rows.Scan(&t.TicketID, &t.SourceID, &sourceType, &category,
			&t.Title, &t.Description, &t.Priority, &t.Status, &t.AssignedTo,
			&t.Tags, &createdAt, &t.Confidence)
		if err != nil {
			return nil, fmt.Errorf("scan ListTickets row: %w", err)
		}

		t.SourceType = triage.SourceType(sourceType)
		t.Category = triage.Category(category)
		if ts, err := time.Parse(createdAtLayout, createdAt); err == nil {
			t.CreatedAt = ts.UTC()
		}
		tickets = append(tickets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListTickets: %w", err)
	}
	return tickets, nil
}

// PriorityBreakdown counts archived tickets per priority in SQL.
func (r *TicketRepository) PriorityBreakdown(ctx context.Context) ([]models.PriorityCount, error) {
	const query = `
		SELECT priority, COUNT(*) AS ticket_count
		FROM tickets
		GROUP BY priority
		ORDER BY ticket_count DESC, priority
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query PriorityBreakdown: %w", err)
	}
	defer rows.Close()

	var results []models.PriorityCount
	for rows.Next() {
		var pc models.PriorityCount
		if err := rows.Scan(&pc.Priority, &pc.Count); err != nil {
			return nil, fmt.Errorf("scan PriorityBreakdown row: %w", err)
		}
		results = append(results, pc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate PriorityBreakdown: %w", err)
	}
	return results, nil
}
