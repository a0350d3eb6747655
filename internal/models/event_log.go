package models

import "time"

// EventHistoryLog is an append-only audit entry for a committed mutation.
type EventHistoryLog struct {
	ID          int64     `db:"id" json:"id"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
	WhoDid      string    `db:"who_did" json:"who_did"`
	Action      string    `db:"action" json:"action"`
	Description string    `db:"description" json:"description"`
}

// EventLogFilter narrows event listings.
type EventLogFilter struct {
	ListFilter
	Action string
	WhoDid string
}
