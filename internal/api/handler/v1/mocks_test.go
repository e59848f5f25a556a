package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/raffle-api/internal/api/middleware"
	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/service"
)

type mockCartService struct {
	mock.Mock
}

func (m *mockCartService) CreateCart(ctx context.Context, callerID, associationID uint) (domain.Cart, error) {
	args := m.Called(ctx, callerID, associationID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *mockCartService) GetActive(ctx context.Context, callerID uint) (domain.Cart, error) {
	args := m.Called(ctx, callerID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *mockCartService) Reserve(ctx context.Context, callerID, cartID uint, ticketIDs []uint) (domain.Cart, error) {
	args := m.Called(ctx, callerID, cartID, ticketIDs)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *mockCartService) Release(ctx context.Context, callerID, cartID uint, ticketIDs []uint) (domain.Cart, error) {
	args := m.Called(ctx, callerID, cartID, ticketIDs)
	return args.Get(0).(domain.Cart), args.Error(1)
}

type mockRaffleService struct {
	mock.Mock
}

func (m *mockRaffleService) Create(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	args := m.Called(ctx, raffle)
	return args.Get(0).(domain.Raffle), args.Error(1)
}

func (m *mockRaffleService) Get(ctx context.Context, id uint) (domain.Raffle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Raffle), args.Error(1)
}

func (m *mockRaffleService) Statistics(ctx context.Context, raffleID uint) (domain.RaffleStatistics, error) {
	args := m.Called(ctx, raffleID)
	return args.Get(0).(domain.RaffleStatistics), args.Error(1)
}

func (m *mockRaffleService) Tickets(ctx context.Context, raffleID uint, status domain.TicketStatus) ([]domain.Ticket, error) {
	args := m.Called(ctx, raffleID, status)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *mockRaffleService) ChangeStatus(ctx context.Context, id uint, target domain.RaffleStatus) (domain.Raffle, error) {
	args := m.Called(ctx, id, target)
	return args.Get(0).(domain.Raffle), args.Error(1)
}

func (m *mockRaffleService) UpdateEndDate(ctx context.Context, id uint, endDate time.Time) (domain.Raffle, domain.ReactivationOutcome, error) {
	args := m.Called(ctx, id, endDate)
	return args.Get(0).(domain.Raffle), args.Get(1).(domain.ReactivationOutcome), args.Error(2)
}

func (m *mockRaffleService) IncreaseTicketCount(ctx context.Context, id uint, totalTickets int) (domain.Raffle, error) {
	args := m.Called(ctx, id, totalTickets)
	return args.Get(0).(domain.Raffle), args.Error(1)
}

func (m *mockRaffleService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRaffleService) DrawWinner(ctx context.Context, id uint) (domain.Raffle, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Raffle), args.Error(1)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) Apply(ctx context.Context, raffleID uint, event service.OrderEvent, cartID *uint, ticketIDs []uint) (domain.RaffleStatistics, error) {
	args := m.Called(ctx, raffleID, event, cartID, ticketIDs)
	return args.Get(0).(domain.RaffleStatistics), args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetProfile(ctx context.Context, callerID, id uint) (domain.UserProfile, error) {
	args := m.Called(ctx, callerID, id)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

// newTestRouter returns an engine whose requests are authenticated as userID
// when it is not zero.
func newTestRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != 0 {
		r.Use(func(ctx *gin.Context) {
			middleware.SetUserID(ctx, userID)
			ctx.Next()
		})
	}

	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

type errBody struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	Reason    string `json:"reason"`
	TicketIDs []uint `json:"ticket_ids"`
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) errBody {
	t.Helper()

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}
