package response

import "github.com/vietanh2810/raffle-api/internal/domain"

type EndDateResponse struct {
	Raffle       domain.Raffle              `json:"raffle"`
	Reactivation domain.ReactivationOutcome `json:"reactivation"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}
