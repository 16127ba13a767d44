package getAllTickets

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

type TicketsResponse struct {
	response.Response
	Tickets      []models.Ticket `json:"tickets"`
	TotalTickets int             `json:"total_tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketLister
type TicketLister interface {
	ListTickets(ownerID, eventID int64, page, limit int) ([]models.Ticket, int, error)
}

func New(log *slog.Logger, tickets TicketLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getAllTickets.New"

		log := log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		query := r.URL.Query()

		// Zero means no event filter.
		eventID, _ := strconv.ParseInt(query.Get("eventId"), 10, 64)

		page, _ := strconv.Atoi(query.Get("page"))
		if page < 1 {
			page = 1
		}

		limit, _ := strconv.Atoi(query.Get("limit"))
		if limit < 1 {
			limit = 10
		}

		list, total, err := tickets.ListTickets(userID, eventID, page, limit)
		if err != nil {
			log.Error("failed to get tickets", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tickets"))
			return
		}

		log.Info("tickets listed", slog.Int("count", len(list)), slog.Int("total", total))

		render.JSON(w, r, TicketsResponse{
			Response:     response.OK(),
			Tickets:      list,
			TotalTickets: total,
		})
	}
}
