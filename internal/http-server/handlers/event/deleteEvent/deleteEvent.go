package deleteEvent

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	GetEvent(id int64) (*models.Event, error)
	DeleteEvent(id int64) error
}

// New deletes an owner's event. Tickets and scan records cascade away
// with it.
func New(log *slog.Logger, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

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
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		if event.OwnerID != userID {
			log.Warn("non-owner delete attempt", slog.Int64("user_id", userID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("you are not the owner of this event"))
			return
		}

		if err = events.DeleteEvent(eventID); err != nil {
			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted")

		render.JSON(w, r, response.OK())
	}
}
