package repository_test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/raffle-api/internal/db"
	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
	"github.com/vietanh2810/raffle-api/internal/repository/dao"
	"github.com/vietanh2810/raffle-api/internal/service"
)

// testDB is nil when Postgres could not be started; every test then skips.
var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil || pool.Client.Ping() != nil {
		log.Printf("docker is not available, skipping repository tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=raffles_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres: %v", err)
	}
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s/raffles_test?sslmode=disable", resource.GetHostPort("5432/tcp"))
	pool.MaxWait = time.Minute
	if err = pool.Retry(func() error {
		var openErr error
		testDB, openErr = db.OpenPostgresWithURL(dsn)
		return openErr
	}); err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres: %v", err)
	}
	os.Exit(code)
}

func setupStore(t *testing.T) *repository.Store {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres is not available")
	}

	require.NoError(t, dao.DropTables(testDB))
	require.NoError(t, dao.InitTables(testDB))

	return repository.NewStore(testDB)
}

func createUser(t *testing.T, email string) domain.User {
	t.Helper()

	user, err := repository.NewUserRepository(dao.NewUserDAO(testDB)).Create(context.Background(), domain.User{
		Email:    email,
		Password: "hash",
		Name:     "Test",
	})
	require.NoError(t, err)

	return user
}

func activeRaffle(t *testing.T, store *repository.Store, total int) (domain.Raffle, []uint) {
	t.Helper()
	ctx := context.Background()
	raffles := service.NewRaffleService(store, time.Now)

	created, err := raffles.Create(ctx, domain.Raffle{
		AssociationID: 1,
		Title:         "Integration raffle",
		TotalTickets:  total,
		TicketPrice:   decimal.RequireFromString("3.00"),
		EndDate:       time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	raffle, err := raffles.ChangeStatus(ctx, created.ID, domain.RaffleActive)
	require.NoError(t, err)

	tickets, err := raffles.Tickets(ctx, raffle.ID, "")
	require.NoError(t, err)

	ids := make([]uint, len(tickets))
	for i, ticket := range tickets {
		ids[i] = ticket.ID
	}

	return raffle, ids
}

func TestStore_RaffleRoundTrip(t *testing.T) {
	store := setupStore(t)
	raffle, ids := activeRaffle(t, store, 5)

	require.Len(t, ids, 5)
	assert.Equal(t, domain.RaffleActive, raffle.Status)
	assert.NotNil(t, raffle.StartDate)

	err := store.Transaction(context.Background(), func(tx repository.Tx) error {
		counts, err := tx.CountTickets(context.Background(), raffle.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TicketCounts{Available: 5}, counts)

		stats, err := tx.FindStatistics(context.Background(), raffle.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, stats.AvailableTickets)
		assert.True(t, stats.TicketsPerParticipant.IsZero())

		return nil
	})
	require.NoError(t, err)
}

func TestStore_TransactionRollsBack(t *testing.T) {
	store := setupStore(t)
	raffle, ids := activeRaffle(t, store, 3)
	errAbort := errors.New("abort")

	err := store.Transaction(context.Background(), func(tx repository.Tx) error {
		found, err := tx.FindTicketsForUpdate(context.Background(), ids[:1])
		require.NoError(t, err)
		found[0].Status = domain.TicketSold
		require.NoError(t, tx.UpdateTickets(context.Background(), found))

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	tickets, err := service.NewRaffleService(store, time.Now).Tickets(context.Background(), raffle.ID, domain.TicketSold)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestStore_SingleActiveCartIndex(t *testing.T) {
	store := setupStore(t)
	user := createUser(t, "cart@example.com")

	err := store.Transaction(context.Background(), func(tx repository.Tx) error {
		_, err := tx.CreateCart(context.Background(), domain.NewCart(user.ID, 1))
		require.NoError(t, err)

		_, err = tx.CreateCart(context.Background(), domain.NewCart(user.ID, 1))
		return err
	})

	assert.ErrorIs(t, err, repository.ErrActiveCartExists)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestStore_ConcurrentReserve(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	raffle, ids := activeRaffle(t, store, 10)
	carts := service.NewCartService(store, time.Now)

	users := []domain.User{createUser(t, "a@example.com"), createUser(t, "b@example.com")}
	cartIDs := make([]uint, len(users))
	for i, user := range users {
		cart, err := carts.CreateCart(ctx, user.ID, 1)
		require.NoError(t, err)
		cartIDs[i] = cart.ID
	}

	var (
		wg   sync.WaitGroup
		errs = make([]error, len(users))
	)
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = carts.Reserve(ctx, users[i].ID, cartIDs[i], ids[:4])
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	assert.Equal(t, 1, succeeded)

	stats, err := service.NewRaffleService(store, time.Now).Statistics(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.AvailableTickets)
	assert.Equal(t, 1, stats.Participants)
}

func TestStore_ConcurrentCreateCart(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	user := createUser(t, "race@example.com")
	carts := service.NewCartService(store, time.Now)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := carts.CreateCart(ctx, user.ID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var active int64
	require.NoError(t, testDB.Model(&dao.Cart{}).
		Where("user_id = ? AND status = ?", user.ID, string(domain.CartActive)).
		Count(&active).Error)
	assert.Equal(t, int64(1), active)
}

func TestUserRepository_ActiveCartSummary(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	_, ids := activeRaffle(t, store, 5)
	user := createUser(t, "  Profile@Example.com ")
	users := repository.NewUserRepository(dao.NewUserDAO(testDB))

	found, err := users.FindByEmail(ctx, "profile@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	summary, err := users.FindActiveCartSummary(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, summary)

	carts := service.NewCartService(store, time.Now)
	cart, err := carts.CreateCart(ctx, user.ID, 1)
	require.NoError(t, err)
	_, err = carts.Reserve(ctx, user.ID, cart.ID, ids[:2])
	require.NoError(t, err)

	summary, err = users.FindActiveCartSummary(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, cart.ID, summary.CartID)
	assert.Equal(t, uint(1), summary.AssociationID)
	assert.Equal(t, 2, summary.TicketCount)
}
