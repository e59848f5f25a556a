package response

import (
	"time"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      domain.User `json:"user"`
}
