package models

import "time"

// ScanRecord is the durable proof that a ticket was checked in. At most
// one exists per ticket; it is created by scan verification and never
// updated or deleted. UserID is nil for unauthenticated scans.
type ScanRecord struct {
	ID          int64     `json:"id"`
	TicketID    int64     `json:"ticket_id"`
	UserID      *int64    `json:"user_id,omitempty"`
	CheckInTime time.Time `json:"check_in_time"`
}
