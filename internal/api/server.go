package api

import (
	"context"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/raffle-api/docs"
	v1 "github.com/vietanh2810/raffle-api/internal/api/handler/v1"
	"github.com/vietanh2810/raffle-api/internal/api/middleware"
	"github.com/vietanh2810/raffle-api/internal/config"
	"github.com/vietanh2810/raffle-api/internal/repository"
	"github.com/vietanh2810/raffle-api/internal/repository/dao"
	"github.com/vietanh2810/raffle-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth   *v1.AuthHandler
	user   *v1.UserHandler
	cart   *v1.CartHandler
	raffle *v1.RaffleHandler
	order  *v1.OrderHandler
	health *v1.HealthHandler
}

// NewServer wires every handler on db. rdb may be nil when Redis is not configured.
func NewServer(conf *config.AppConfig, db *gorm.DB, raffles *service.RaffleService, rdb *redis.Client) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	store := repository.NewStore(db)
	s.MountHandlers(handlers{
		auth:   s.initAuthHandler(db),
		user:   s.initUserHandler(db),
		cart:   v1.NewCartHandler(service.NewCartService(store, time.Now)),
		raffle: v1.NewRaffleHandler(raffles),
		order:  v1.NewOrderHandler(service.NewOrderService(store, time.Now)),
		health: initHealthHandler(db, rdb),
	})

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func initHealthHandler(db *gorm.DB, rdb *redis.Client) *v1.HealthHandler {
	postgres := func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}

	var redisPing v1.Pinger
	if rdb != nil {
		redisPing = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	return v1.NewHealthHandler(postgres, redisPing)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", h.auth.HandleSignup)
		auth.POST("/auth/login", h.auth.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/users/:userID", h.user.HandleGetUser)

		authenticated.POST("/carts", h.cart.HandleCreateCart)
		authenticated.GET("/carts/active", h.cart.HandleGetActiveCart)
		authenticated.POST("/carts/:cartID/reserve", h.cart.HandleReserve)
		authenticated.POST("/carts/:cartID/release", h.cart.HandleRelease)

		authenticated.POST("/raffles", h.raffle.HandleCreateRaffle)
		authenticated.GET("/raffles/:raffleID", h.raffle.HandleGetRaffle)
		authenticated.DELETE("/raffles/:raffleID", h.raffle.HandleDeleteRaffle)
		authenticated.GET("/raffles/:raffleID/statistics", h.raffle.HandleGetStatistics)
		authenticated.GET("/raffles/:raffleID/tickets", h.raffle.HandleGetTickets)
		authenticated.PATCH("/raffles/:raffleID/status", h.raffle.HandleChangeStatus)
		authenticated.PATCH("/raffles/:raffleID/end-date", h.raffle.HandleUpdateEndDate)
		authenticated.PATCH("/raffles/:raffleID/ticket-count", h.raffle.HandleIncreaseTicketCount)
		authenticated.POST("/raffles/:raffleID/draw", h.raffle.HandleDrawWinner)

		// Called by the internal orders service to report order lifecycle
		// events. Any valid token is accepted; there is no caller role check yet.
		authenticated.POST("/raffles/:raffleID/order-events", h.order.HandleOrderEvent)
	}

	s.Router.GET("/", h.health.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Raffle API"
	docs.SwaggerInfo.Description = "Raffle ticket carts, inventory, statistics and raffle lifecycle."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
