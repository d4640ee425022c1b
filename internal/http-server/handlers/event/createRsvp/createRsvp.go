package createRsvp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"miniEvents/internal/lib/api/response"
	"miniEvents/internal/lib/logger/sl"
	"miniEvents/internal/models"
	"miniEvents/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RsvpRequest struct {
	UserFid int64 `json:"userFid" validate:"required"`
}

type RsvpResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventJoiner
type EventJoiner interface {
	Join(ctx context.Context, eventID string, userFid int64) (*models.Event, error)
}

func New(log *slog.Logger, joiner EventJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createRsvp.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req RsvpRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Missing userFid"))
			return
		}

		event, err := joiner.Join(r.Context(), eventID, req.UserFid)
		if err != nil {
			log.Error("failed to rsvp to event", sl.Err(err))

			switch {
			case errors.Is(err, service.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Event not found"))
			case errors.Is(err, service.ErrAlreadyRegistered):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Already RSVP'd to this event"))
			case errors.Is(err, service.ErrEventFull):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Event is full"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("Failed to RSVP to event"))
			}

			return
		}

		log.Info("user rsvp'd to event", slog.Int64("user_fid", req.UserFid))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.JSON(w, r, RsvpResponse{
		Response: response.OKMessage("Successfully RSVP'd to event"),
		Event:    event,
	})
}
