package service

import (
	"context"
	"log/slog"

	"miniEvents/internal/lib/logger/sl"
	"miniEvents/internal/models"
)

// Reconciler persists the off-chain metadata of events whose authoritative
// record was already created on the ledger. The ledger write is committed
// before this path runs, so a metadata failure is never propagated: the
// off-chain store may lag behind the ledger.
type Reconciler struct {
	log  *slog.Logger
	repo *Repository
}

func NewReconciler(log *slog.Logger, repo *Repository) *Reconciler {
	return &Reconciler{
		log:  log,
		repo: repo,
	}
}

// RecordMetadata writes the off-chain record for an on-chain event.
// Best-effort: on failure it logs a warning and returns nil.
func (r *Reconciler) RecordMetadata(ctx context.Context, input models.CreateEventInput, creatorFid int64, creatorName string) *models.Event {
	event, err := r.repo.CreateEvent(ctx, input, creatorFid, creatorName)
	if err != nil {
		r.log.Warn("failed to persist event metadata, ledger record unaffected",
			sl.Err(err),
			slog.Int64("creator_fid", creatorFid),
		)

		return nil
	}

	r.log.Info("event metadata persisted",
		slog.String("event_id", event.ID),
		slog.Int64("creator_fid", creatorFid),
	)

	return event
}
