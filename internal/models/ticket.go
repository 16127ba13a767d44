package models

import "time"

// Ticket is a single admission unit bound to one event. ScanCode is
// generated once at issuance and never reassigned; it is the value
// embedded in the QR artifact.
type Ticket struct {
	ID            int64             `json:"id"`
	EventID       int64             `json:"event_id"`
	OwnerID       int64             `json:"owner_id,omitempty"`
	Name          string            `json:"name,omitempty"`
	ScanCode      string            `json:"scan_code"`
	DisplayFields map[string]string `json:"fields,omitempty"`
	Scanned       bool              `json:"scanned"`
	QRDataURI     string            `json:"qr_data_uri,omitempty"`
	QRImageURL    string            `json:"qr_image_url,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
