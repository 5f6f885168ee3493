package models

// TicketFilter narrows a ticket listing. Empty fields match everything.
type TicketFilter struct {
	Category string
	Priority string
}

// PriorityCount is one row of the SQL-side priority breakdown.
type PriorityCount struct {
	Priority string
	Count    int64
}
