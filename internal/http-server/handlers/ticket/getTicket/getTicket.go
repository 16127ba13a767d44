package getTicket

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

type TicketResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketProvider
type TicketProvider interface {
	GetTicket(id int64) (*models.Ticket, error)
}

func New(log *slog.Logger, tickets TicketProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getTicket.New"

		log := log.With(slog.String("op", op))

		ticketID, err := strconv.ParseInt(chi.URLParam(r, "ticketId"), 10, 64)
		if err != nil {
			log.Error("invalid ticket id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid ticket id format"))
			return
		}

		ticket, err := tickets.GetTicket(ticketID)
		if err != nil {
			if errors.Is(err, storage.ErrTicketNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
				return
			}

			log.Error("failed to get ticket", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get ticket"))
			return
		}

		render.JSON(w, r, TicketResponse{
			Response: response.OK(),
			Ticket:   ticket,
		})
	}
}
