package createTicket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"ticketGate/internal/http-server/middleware/auth"
	"ticketGate/internal/lib/api/response"
	"ticketGate/internal/lib/logger/sl"
	"ticketGate/internal/lib/qr"
	"ticketGate/internal/models"
	"ticketGate/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TicketRequest struct {
	EventID int64             `json:"event_id" validate:"required"`
	Name    string            `json:"name"`
	Fields  map[string]string `json:"fields"`
}

type TicketResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketCreator
type TicketCreator interface {
	GetEvent(id int64) (*models.Event, error)
	CreateTicket(t models.Ticket) (*models.Ticket, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Uploader
type Uploader interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Dispatch(url string, payload any)
}

// New issues a ticket against an existing event: fresh scan code, QR
// artifact, then the ticket row. Nothing is persisted if QR encoding or
// the artifact upload fails. requireOwner distinguishes the
// authenticated endpoint from the public verify-flow variant.
func New(log *slog.Logger, tickets TicketCreator, uploader Uploader, notifier Notifier, requireOwner bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.createTicket.New"

		log := log.With(slog.String("op", op))

		var userID int64
		if requireOwner {
			var ok bool
			userID, ok = auth.UserID(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}
		}

		var req TicketRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(slog.Int64("event_id", req.EventID))

		event, err := tickets.GetEvent(req.EventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create ticket"))
			return
		}

		if requireOwner && event.OwnerID != userID {
			log.Warn("non-owner ticket creation attempt", slog.Int64("user_id", userID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("you are not the owner of this event"))
			return
		}

		scanCode := uuid.NewString()

		png, dataURI, err := qr.Encode(scanCode)
		if err != nil {
			log.Error("failed to generate qr code", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to generate qr code"))
			return
		}

		var imageURL string
		if uploader != nil {
			imageURL, err = uploader.Upload(r.Context(), png)
			if err != nil {
				// No ticket may reference a failed artifact; abort
				// before anything is written.
				log.Error("failed to upload qr image", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to store qr image"))
				return
			}
		}

		ticket, err := tickets.CreateTicket(models.Ticket{
			EventID:       req.EventID,
			OwnerID:       userID,
			Name:          req.Name,
			ScanCode:      scanCode,
			DisplayFields: req.Fields,
			QRDataURI:     dataURI,
			QRImageURL:    imageURL,
		})
		if err != nil {
			log.Error("failed to create ticket", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create ticket"))
			return
		}

		log.Info("ticket created", slog.Int64("ticket_id", ticket.ID))

		if notifier != nil && event.WebhookURL != "" {
			notifier.Dispatch(event.WebhookURL, map[string]any{
				"type":   "ticket.created",
				"ticket": ticket,
			})
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, TicketResponse{
			Response: response.OK(),
			Ticket:   ticket,
		})
	}
}
