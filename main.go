package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	leaderboardapi "github.com/beka-birhanu/vinom-maze/api/leaderboard"
	sessionapi "github.com/beka-birhanu/vinom-maze/api/session"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sweepInterval = time.Minute

// Global variables for dependencies
var (
	mongoClient           *mongo.Client
	redisClient           *redis.Client
	runRepo               i.RunRepo
	leaderboard           i.Leaderboard
	jwtTokenizer          i.Tokenizer
	sessionManager        *service.SessionManager
	sessionController     api.Controller
	leaderboardController api.Controller
	router                *api.Router
	appLogger             *logger.Logger
)

func fatal(msg string, err error) {
	appLogger.Error(fmt.Sprintf("%s: %v", msg, err))
	os.Exit(1)
}

// initMongo connects to MongoDB when DB_HOST is set. Without it solve history
// is disabled.
func initMongo(ctx context.Context) {
	if config.Envs.DBHost == "" {
		appLogger.Warning("DB_HOST not set, run history disabled")
		return
	}
	config.MustDB()

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		fatal("Failed to connect to MongoDB", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed", err)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRunRepo(ctx context.Context) {
	if mongoClient == nil {
		return
	}
	r := repo.NewRunRepo(mongoClient, config.Envs.DBName, "runs")
	if err := r.EnsureIndexes(ctx); err != nil {
		fatal("Creating run indexes", err)
	}
	runRepo = r
	appLogger.Info("Run repository initialized")
}

// initRedis connects to Redis. An unreachable server disables the
// leaderboard instead of stopping the process.
func initRedis(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		appLogger.Warning(fmt.Sprintf("Redis at %s unreachable, leaderboard disabled: %v", config.Envs.RedisAddr, err))
		_ = client.Close()
		return
	}
	redisClient = client
	appLogger.Info("Connected to Redis")
}

func initLeaderboard() {
	if redisClient == nil {
		return
	}
	board, err := sortedstorage.NewRedisLeaderboard(sortedstorage.Config{
		Client: redisClient,
		TTL:    config.Envs.LeaderboardTTL,
	})
	if err != nil {
		fatal("Creating leaderboard", err)
	}
	leaderboard = board
	appLogger.Info("Leaderboard initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.MustJWTSecret(), config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		fatal("Creating session manager logger", err)
	}

	fill, err := maze.ParseFill(config.Envs.InitialFill)
	if err != nil {
		fatal("Reading INITIAL_FILL", err)
	}
	lattice, err := maze.ParseLattice(config.Envs.Lattice)
	if err != nil {
		fatal("Reading LATTICE", err)
	}

	c := &service.Config{
		Rows:        config.Envs.GridRows,
		Cols:        config.Envs.GridCols,
		RaceRows:    config.Envs.RaceHeight,
		RaceCols:    config.Envs.RaceWidth,
		Fill:        fill,
		Lattice:     lattice,
		Seed:        config.Envs.MazeSeed,
		CellSize:    config.Envs.CellSize,
		TokenTTL:    config.Envs.SessionTokenTTL,
		IdleTimeout: config.Envs.SessionIdleTimeout,
		RunRepo:     runRepo,
		Leaderboard: leaderboard,
		Tokenizer:   jwtTokenizer,
		Logger:      sessionLogger,
	}

	sessionManager, err = service.NewSessionManager(c)
	if err != nil {
		fatal("Creating session manager", err)
	}
	appLogger.Info("Session manager initialized")
}

func initControllers() {
	var err error
	sessionController, err = sessionapi.NewController(sessionManager)
	if err != nil {
		fatal("Creating session controller", err)
	}
	leaderboardController, err = leaderboardapi.NewController(sessionManager)
	if err != nil {
		fatal("Creating leaderboard controller", err)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api.Controller{sessionController, leaderboardController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	setupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	initMongo(setupCtx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
	}()
	initRunRepo(setupCtx)

	initRedis(setupCtx)
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()
	initLeaderboard()

	initJWTTokenizer()
	initSessionManager()
	defer sessionManager.StopAll()
	go sessionManager.Start(ctx, sweepInterval)

	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server until interrupted
	if err := router.Run(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Server stopped")
}
