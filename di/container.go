package di

import (
	"context"
	"fmt"

	"menu-bot/api"
	"menu-bot/api/dining"
	"menu-bot/api/groupme"
	"menu-bot/api/spinitron"
	"menu-bot/config"
	"menu-bot/dao/state"
	"menu-bot/db"
	"menu-bot/schedule"
	"menu-bot/server"
	"menu-bot/server/handlers"
	"menu-bot/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Resolver        *schedule.Resolver
	DiningAPI       dining.DiningAPI
	SpinitronAPI    spinitron.SpinitronAPI
	GroupMeAPI      groupme.GroupMeAPI
	ClosedState     state.ClosedStateDAO
	MenuService     *service.MenuService
	NotifierService *service.NotifierService
	MuxRouter       *mux.Router
	Router          *server.Router
	StatusServer    *server.StatusServer
}

// NewContainer initializes and wires up all dependencies. Outside the prod
// env the API clients are replaced with mocks.
func NewContainer(env string, cfg *config.Config, logger *zap.Logger) *Container {
	logger.Info("initializing container", zap.String("env", env))

	resolver := schedule.NewResolver(logger)

	var diningAPI dining.DiningAPI
	var spinitronAPI spinitron.SpinitronAPI
	var groupmeAPI groupme.GroupMeAPI
	if env != "prod" {
		logger.Info("using mock API clients")
		diningAPI = dining.NewDiningApiClientMock()
		spinitronAPI = spinitron.NewSpinitronApiClientMock()
		groupmeAPI = groupme.NewGroupMeApiClientMock()
	} else {
		diningAPI = dining.NewDiningApiClient(api.NewHTTPClient(cfg.Menu.BaseURL, logger), logger)
		spinitronAPI = spinitron.NewSpinitronApiClient(api.NewHTTPClient(cfg.Spinitron.BaseURL, logger), logger)
		groupmeAPI = groupme.NewGroupMeApiClient(api.NewHTTPClient(cfg.GroupMe.BaseURL, logger), cfg.GroupMe, logger)
	}

	closedState := newClosedStateDAO(cfg, logger)

	menuService := service.NewMenuService(diningAPI, resolver, logger)
	notifierService := service.NewNotifierService(menuService, spinitronAPI, groupmeAPI, closedState, logger)

	statusHandler := handlers.NewStatusHandler(notifierService, resolver, logger)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(statusHandler, muxRouter)
	statusServer := server.NewStatusServer(router, muxRouter, cfg.Server.Addr, logger)

	return &Container{
		Resolver:        resolver,
		DiningAPI:       diningAPI,
		SpinitronAPI:    spinitronAPI,
		GroupMeAPI:      groupmeAPI,
		ClosedState:     closedState,
		MenuService:     menuService,
		NotifierService: notifierService,
		MuxRouter:       muxRouter,
		Router:          router,
		StatusServer:    statusServer,
	}
}

func newClosedStateDAO(cfg *config.Config, logger *zap.Logger) state.ClosedStateDAO {
	if cfg.State.RedisAddr == "" {
		return state.NewFileClosedStateDAO(cfg.State.FilePath, logger)
	}

	ctx := context.Background()
	redisClient := db.NewPlainRedisClient(ctx, goredis.NewClient(&goredis.Options{
		Addr: cfg.State.RedisAddr,
		DB:   cfg.State.RedisDB,
	}))
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	logger.Info("using Redis-backed closed state", zap.String("addr", cfg.State.RedisAddr))
	return state.NewRedisClosedStateDAO(redisClient, logger)
}
