package storage

import (
	"errors"

	"ticketGate/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already exists")
	ErrEventNotFound  = errors.New("event not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

// ScanResult is the outcome of a check-in attempt. When AlreadyScanned
// is false the caller won the scanned transition and Record is the
// freshly created one; when true, Record is the original check-in and
// no state was mutated.
type ScanResult struct {
	Ticket         models.Ticket
	Record         models.ScanRecord
	Event          models.Event
	AlreadyScanned bool
}
