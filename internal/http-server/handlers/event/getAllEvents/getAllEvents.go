package getAllEvents

import (
	"log/slog"
	"net/http"
	"strconv"

	"ticketGate/internal/http-server/middleware/auth"
	"ticketGate/internal/lib/api/response"
	"ticketGate/internal/lib/logger/sl"
	"ticketGate/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events      []models.Event `json:"events"`
	TotalEvents int            `json:"total_events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(ownerID int64, page, limit int) ([]models.Event, int, error)
}

func New(log *slog.Logger, events EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		page, limit := pagination(r)

		list, total, err := events.ListEvents(userID, page, limit)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events listed", slog.Int("count", len(list)), slog.Int("total", total))

		render.JSON(w, r, EventsResponse{
			Response:    response.OK(),
			Events:      list,
			TotalEvents: total,
		})
	}
}

func pagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}

	return page, limit
}
