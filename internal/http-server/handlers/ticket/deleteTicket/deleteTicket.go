package deleteTicket

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ticketGate/internal/lib/api/response"
	"ticketGate/internal/lib/logger/sl"
	"ticketGate/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketDeleter
type TicketDeleter interface {
	DeleteTicket(id int64) error
}

func New(log *slog.Logger, tickets TicketDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.deleteTicket.New"

		log := log.With(slog.String("op", op))

		ticketID, err := strconv.ParseInt(chi.URLParam(r, "ticketId"), 10, 64)
		if err != nil {
			log.Error("invalid ticket id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid ticket id format"))
			return
		}

		if err = tickets.DeleteTicket(ticketID); err != nil {
			if errors.Is(err, storage.ErrTicketNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
				return
			}

			log.Error("failed to delete ticket", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete ticket"))
			return
		}

		log.Info("ticket deleted", slog.Int64("ticket_id", ticketID))

		render.JSON(w, r, response.OK())
	}
}
