package getAllEvents

import (
	"context"
	"log/slog"
	"net/http"

	"miniEvents/internal/lib/api/response"
	"miniEvents/internal/lib/logger/sl"
	"miniEvents/internal/models"
	"miniEvents/internal/service"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	ListEvents(ctx context.Context, filter service.ListFilter) ([]models.Event, error)
}

func New(log *slog.Logger, lister EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		filter := service.ListFilter{
			Upcoming: r.URL.Query().Get("filter") == "upcoming",
			Category: r.URL.Query().Get("category"),
		}

		events, err := lister.ListEvents(r.Context(), filter)
		if err != nil {
			log.Error("failed to list events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch events"))
			return
		}

		log.Info("events listed", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
