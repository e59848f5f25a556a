package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

// completeIfSoldOut completes raffle with ALL_TICKETS_SOLD once every ticket is SOLD.
func completeIfSoldOut(ctx context.Context, tx repository.Tx, raffle domain.Raffle, now time.Time) (domain.Raffle, error) {
	counts, err := tx.CountTickets(ctx, raffle.ID)
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("tx.CountTickets -> %w", err)
	}

	if !raffle.CompleteIfSoldOut(counts, now) {
		return raffle, nil
	}

	updated, err := tx.UpdateRaffle(ctx, raffle)
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("tx.UpdateRaffle -> %w", err)
	}
	logTransition(updated, "all tickets sold")

	return updated, nil
}

func logTransition(raffle domain.Raffle, cause string) {
	fields := []zap.Field{
		zap.Uint("raffleID", raffle.ID),
		zap.String("status", string(raffle.Status)),
		zap.String("cause", cause),
	}
	if raffle.CompletionReason != nil {
		fields = append(fields, zap.String("completionReason", string(*raffle.CompletionReason)))
	}

	zap.L().Info("raffle status changed", fields...)
}
