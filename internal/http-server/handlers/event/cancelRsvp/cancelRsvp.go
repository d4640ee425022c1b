package cancelRsvp

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

type CancelRequest struct {
	UserFid int64 `json:"userFid" validate:"required"`
}

type CancelResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLeaver
type EventLeaver interface {
	Leave(ctx context.Context, eventID string, userFid int64) (*models.Event, error)
}

func New(log *slog.Logger, leaver EventLeaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.cancelRsvp.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req CancelRequest

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

		event, err := leaver.Leave(r.Context(), eventID, req.UserFid)
		if err != nil {
			log.Error("failed to cancel rsvp", sl.Err(err))

			if errors.Is(err, service.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to cancel RSVP"))
			return
		}

		log.Info("user canceled rsvp", slog.Int64("user_fid", req.UserFid))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.JSON(w, r, CancelResponse{
		Response: response.OKMessage("Successfully canceled RSVP"),
		Event:    event,
	})
}
