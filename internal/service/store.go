package service

import (
	"context"
	"time"

	"github.com/vietanh2810/raffle-api/internal/repository"
)

// Store opens the transactional boundary every core operation runs in.
type Store interface {
	Transaction(ctx context.Context, fn func(tx repository.Tx) error) error
}

type Clock func() time.Time
