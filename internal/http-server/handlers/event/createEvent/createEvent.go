package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"miniEvents/internal/lib/api/response"
	"miniEvents/internal/lib/logger/sl"
	"miniEvents/internal/models"
	"miniEvents/internal/service"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	ImageURL     string    `json:"imageUrl"`
	Category     string    `json:"category"`
	MaxAttendees int       `json:"maxAttendees" validate:"omitempty,gt=0"`
	Price        float64   `json:"price" validate:"omitempty,gte=0"`
	CreatorFid   int64     `json:"creatorFid" validate:"required"`
	CreatorName  string    `json:"creatorName"`
}

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, input models.CreateEventInput, creatorFid int64, creatorName string) (*models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		input := models.CreateEventInput{
			Title:        req.Title,
			Description:  req.Description,
			Date:         req.Date,
			Location:     req.Location,
			ImageURL:     req.ImageURL,
			Category:     req.Category,
			MaxAttendees: req.MaxAttendees,
			Price:        req.Price,
		}

		event, err := creator.CreateEvent(r.Context(), input, req.CreatorFid, req.CreatorName)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))

			if errors.Is(err, service.ErrValidation) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.String("id", event.ID))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
