package getEventTickets

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ticketGate/internal/http-server/middleware/auth"
	"ticketGate/internal/lib/api/response"
	"ticketGate/internal/lib/logger/sl"
	"ticketGate/internal/models"
	"ticketGate/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type TicketsResponse struct {
	response.Response
	Tickets []models.Ticket `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventTicketsProvider
type EventTicketsProvider interface {
	GetEvent(id int64) (*models.Event, error)
	ListEventTickets(eventID int64) ([]models.Ticket, error)
}

func New(log *slog.Logger, events EventTicketsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventTickets.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		eventID, err := strconv.ParseInt(chi.URLParam(r, "eventId"), 10, 64)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		event, err := events.GetEvent(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tickets"))
			return
		}

		if event.OwnerID != userID {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("you are not the owner of this event"))
			return
		}

		tickets, err := events.ListEventTickets(eventID)
		if err != nil {
			log.Error("failed to get tickets", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tickets"))
			return
		}

		log.Info("tickets listed", slog.Int("count", len(tickets)))

		render.JSON(w, r, TicketsResponse{
			Response: response.OK(),
			Tickets:  tickets,
		})
	}
}
