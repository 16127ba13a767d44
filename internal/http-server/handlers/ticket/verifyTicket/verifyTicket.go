package verifyTicket

import (
	"errors"
	"log/slog"
	"net/http"

	"ticketGate/internal/http-server/middleware/auth"
	"ticketGate/internal/lib/logger/sl"
	"ticketGate/internal/models"
	"ticketGate/internal/storage"

	"github.com/go-chi/render"
)

// VerifyRequest carries the scan code read from the QR artifact.
type VerifyRequest struct {
	Code string `json:"code"`
}

// VerifyResponse is the lenient contract for the unauthenticated
// scanning client: the endpoint always answers 200 and discriminates
// via Success.
type VerifyResponse struct {
	Success        bool               `json:"success"`
	AlreadyScanned bool               `json:"already_scanned,omitempty"`
	Ticket         *models.Ticket     `json:"ticket,omitempty"`
	Scan           *models.ScanRecord `json:"scan,omitempty"`
	Error          string             `json:"error,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketScanner
type TicketScanner interface {
	ScanTicket(code string, userID *int64) (*storage.ScanResult, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Dispatch(url string, payload any)
}

// New checks a scanned code in. The transition is at-most-once: the
// first scan flips the ticket and records the check-in, every later
// scan of the same code is an idempotent read answering with the
// original record. The webhook fires only for the first scan.
func New(log *slog.Logger, tickets TicketScanner, notifier Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.verifyTicket.New"

		log := log.With(slog.String("op", op))

		var req VerifyRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, VerifyResponse{Success: false, Error: "failed to decode request"})
			return
		}

		if req.Code == "" {
			render.JSON(w, r, VerifyResponse{Success: false, Error: "code is required"})
			return
		}

		// Scanning is open to unauthenticated entry devices; record the
		// actor only when one is present.
		var scannerID *int64
		if id, ok := auth.UserID(r.Context()); ok {
			scannerID = &id
		}

		result, err := tickets.ScanTicket(req.Code, scannerID)
		if err != nil {
			if errors.Is(err, storage.ErrTicketNotFound) {
				log.Info("unknown scan code")
				render.JSON(w, r, VerifyResponse{Success: false, Error: "ticket not found"})
				return
			}

			log.Error("failed to scan ticket", sl.Err(err))
			render.JSON(w, r, VerifyResponse{Success: false, Error: "failed to scan ticket"})
			return
		}

		if !result.AlreadyScanned {
			log.Info("ticket checked in",
				slog.Int64("ticket_id", result.Ticket.ID),
				slog.Time("check_in_time", result.Record.CheckInTime),
			)

			if notifier != nil && result.Event.WebhookURL != "" {
				notifier.Dispatch(result.Event.WebhookURL, map[string]any{
					"type":          "ticket.scanned",
					"ticket_id":     result.Ticket.ID,
					"check_in_time": result.Record.CheckInTime,
					"user":          result.Record.UserID,
					"ticket":        result.Ticket,
				})
			}
		} else {
			log.Info("repeat scan", slog.Int64("ticket_id", result.Ticket.ID))
		}

		render.JSON(w, r, VerifyResponse{
			Success:        true,
			AlreadyScanned: result.AlreadyScanned,
			Ticket:         &result.Ticket,
			Scan:           &result.Record,
		})
	}
}
