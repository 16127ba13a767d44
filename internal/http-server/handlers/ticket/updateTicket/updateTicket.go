package updateTicket

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ticketGate/internal/lib/api/response"
	"ticketGate/internal/lib/logger/sl"
	"ticketGate/internal/models"
	"ticketGate/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// UpdateRequest patches the organizer-facing ticket attributes. The
// scan code, scanned flag and event binding are immutable.
type UpdateRequest struct {
	Name   *string           `json:"name"`
	Fields map[string]string `json:"fields"`
}

type UpdateResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketUpdater
type TicketUpdater interface {
	UpdateTicket(id int64, name *string, fields map[string]string) (*models.Ticket, error)
}

func New(log *slog.Logger, tickets TicketUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.updateTicket.New"

		log := log.With(slog.String("op", op))

		ticketID, err := strconv.ParseInt(chi.URLParam(r, "ticketId"), 10, 64)
		if err != nil {
			log.Error("invalid ticket id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid ticket id format"))
			return
		}

		log = log.With(slog.Int64("ticket_id", ticketID))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		ticket, err := tickets.UpdateTicket(ticketID, req.Name, req.Fields)
		if err != nil {
			if errors.Is(err, storage.ErrTicketNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
				return
			}

			log.Error("failed to update ticket", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update ticket"))
			return
		}

		log.Info("ticket updated")

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
			Ticket:   ticket,
		})
	}
}
