package worker

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeSweepExpiredRaffles = "raffle:sweep_expired"
)

const queueDefault = "default"

type SweepExpiredPayload struct {
	RunID string `json:"run_id"`
}

// NewSweepExpiredTask builds a sweep task tagged with a fresh run id.
func NewSweepExpiredTask() (*asynq.Task, error) {
	payload, err := json.Marshal(SweepExpiredPayload{RunID: uuid.NewString()})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	return asynq.NewTask(TypeSweepExpiredRaffles, payload, asynq.Queue(queueDefault), asynq.MaxRetry(3)), nil
}
