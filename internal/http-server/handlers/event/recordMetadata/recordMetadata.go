package recordMetadata

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"miniEvents/internal/lib/api/response"
	"miniEvents/internal/lib/logger/sl"
	"miniEvents/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type MetadataRequest struct {
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

type MetadataResponse struct {
	response.Response
	Event *models.Event `json:"event,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MetadataRecorder
type MetadataRecorder interface {
	RecordMetadata(ctx context.Context, input models.CreateEventInput, creatorFid int64, creatorName string) *models.Event
}

// New handles the off-chain half of a contract-created event. The ledger
// write already succeeded on the client side, so a failed metadata write is
// reported as success with a warning message rather than an error status.
func New(log *slog.Logger, recorder MetadataRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.recordMetadata.New"

		log = log.With(slog.String("op", op))

		var req MetadataRequest

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

		event := recorder.RecordMetadata(r.Context(), input, req.CreatorFid, req.CreatorName)
		if event == nil {
			log.Warn("event metadata was not persisted")
			render.JSON(w, r, MetadataResponse{
				Response: response.OKMessage("Event created on chain, metadata not persisted"),
			})

			return
		}

		log.Info("event metadata recorded", slog.String("id", event.ID))

		render.JSON(w, r, MetadataResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
