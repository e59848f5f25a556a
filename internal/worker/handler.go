package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type RaffleSweeper interface {
	CompleteExpiredRaffles(ctx context.Context) (int, error)
}

type Handler struct {
	sweeper RaffleSweeper
}

func NewHandler(sweeper RaffleSweeper) *Handler {
	return &Handler{
		sweeper: sweeper,
	}
}

// HandleSweepExpired completes every raffle whose end date has passed.
func (h *Handler) HandleSweepExpired(ctx context.Context, t *asynq.Task) error {
	var payload SweepExpiredPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal -> %v: %w", err, asynq.SkipRetry)
	}

	completed, err := h.sweeper.CompleteExpiredRaffles(ctx)
	if completed > 0 {
		zap.L().Info("expired raffles completed", zap.String("runID", payload.RunID), zap.Int("count", completed))
	}
	if err != nil {
		return fmt.Errorf("h.sweeper.CompleteExpiredRaffles -> %w", err)
	}

	return nil
}

func (h *Handler) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSweepExpiredRaffles, h.HandleSweepExpired)

	return mux
}
