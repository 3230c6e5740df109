package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-solver-api/api"
	api_i "github.com/beka-birhanu/maze-solver-api/api/i"
	"github.com/beka-birhanu/maze-solver-api/api/identity"
	solveapi "github.com/beka-birhanu/maze-solver-api/api/solve"
	"github.com/beka-birhanu/maze-solver-api/config"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/log"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/sortedstorage"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/token"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	agentRepo       i.AgentRepo
	mazeRepo        i.MazeRepo
	solutionRepo    i.SolutionRepo
	sortedQueue     i.SortedQueue
	dispatcher      i.Dispatcher
	solveService    i.MazeSolver
	solveController api_i.Controller
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	authController  api_i.Controller
	router          *api.Router
	appLogger       i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	agentRepo = repo.NewAgentRepo(client, config.Envs.DBName, "agents")
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	solutionRepo = repo.NewSolutionRepo(client, config.Envs.DBName, "solutions")
	appLogger.Info("Repositories initialized")
}

func initSortedQueue() {
	var err error
	sortedQueue, err = sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.QueueTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating sorted queue: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Sorted queue initialized")
}

func initDispatcher() {
	dispatchLogger, err := log.New("DISPATCH", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating dispatcher logger: %v", err))
		os.Exit(1)
	}

	dispatcher, err = service.NewDispatcher(sortedQueue, dispatchLogger, &service.Options{
		BatchSize: int64(config.Envs.SolveBatchSize),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating dispatcher: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Dispatcher initialized")
}

func initSolveService() {
	solveLogger, err := log.New("SOLVER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver logger: %v", err))
		os.Exit(1)
	}

	solveService, err = service.NewSolveService(mazeRepo, solutionRepo, agentRepo, solveLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve service: %v", err))
		os.Exit(1)
	}

	dispatcher.SetSolveHandler(solveService.SolveBatch)
	appLogger.Info("Solve service initialized")
}

func initSolveController() {
	var err error
	solveController, err = solveapi.NewSolveController(solveService, dispatcher)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solve controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solve controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(agentRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, solveController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func importMazeFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Opening maze file %s: %v", path, err))
		os.Exit(1)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := solveService.Import(f)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Importing maze file %s: %v", path, err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Imported %d mazes from %s", len(records), path))
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = log.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initSortedQueue()
	initDispatcher()
	initSolveService()
	initSolveController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	if config.Envs.MazeFile != "" {
		importMazeFile(config.Envs.MazeFile)
	}

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}

	// Allow time for cleanup operations (TODO: use WaitGroups instead)
	time.Sleep(2 * time.Second)
}
