package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	GridRows           int           // Rows of the editor grid
	GridCols           int           // Columns of the editor grid
	CellSize           int           // Pixel size of one cell
	RaceWidth          int           // Columns of a race maze
	RaceHeight         int           // Rows of a race maze
	InitialFill        string        // Blank state of the editor grid: empty or wall
	ConsoleFill        string        // Blank state of the console editor grid
	Lattice            string        // Maze generation scheme: half or single
	MazeSeed           int64         // Seed for maze generation, 0 seeds from the clock
	HostIP             string        // Host IP for the server
	RESTPort           int           // Port for the REST API
	GinMode            string        // Mode for the Gin framework (e.g., release, debug, test)
	DBHost             string        // Hostname or IP address for the database
	DBPort             int           // Port number for the database
	DBUser             string        // Username for the database
	DBPassword         string        // Password for the database
	DBName             string        // Name of the database
	RedisAddr          string        // Address of the Redis server
	RedisPassword      string        // Password for Redis
	RedisDB            int           // Redis logical database
	LeaderboardTTL     time.Duration // Expiry of the race leaderboard
	JWTIssuer          string        // Issuer claim for JWTs
	SessionTokenTTL    time.Duration // Lifetime of session access tokens
	SessionIdleTimeout time.Duration // Idle time after which a session is dropped
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Load()
}

// Load reads the configuration from the process environment, applying
// defaults for every unset key. Keys that only the server needs are read by
// MustJWTSecret and MustDB.
func Load() Config {
	return Config{
		GridRows:           getEnvAsIntWithDefault("GRID_ROWS", 15),
		GridCols:           getEnvAsIntWithDefault("GRID_COLS", 15),
		CellSize:           getEnvAsIntWithDefault("CELL_SIZE", 40),
		RaceWidth:          getEnvAsIntWithDefault("RACE_WIDTH", 21),
		RaceHeight:         getEnvAsIntWithDefault("RACE_HEIGHT", 11),
		InitialFill:        getEnvWithDefault("INITIAL_FILL", "empty"),
		ConsoleFill:        getEnvWithDefault("CONSOLE_FILL", "wall"),
		Lattice:            getEnvWithDefault("LATTICE", "half"),
		MazeSeed:           int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		HostIP:             getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:           getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
		DBHost:             getEnvWithDefault("DB_HOST", ""),
		DBPort:             getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:             getEnvWithDefault("DB_USER", ""),
		DBPassword:         getEnvWithDefault("DB_PASS", ""),
		DBName:             getEnvWithDefault("DB_NAME", "vinom_maze"),
		RedisAddr:          getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsIntWithDefault("REDIS_DB", 0),
		LeaderboardTTL:     getEnvAsDurationWithDefault("LEADERBOARD_TTL", 168*time.Hour),
		JWTIssuer:          getEnvWithDefault("JWT_ISSUER", "vinom-maze"),
		SessionTokenTTL:    getEnvAsDurationWithDefault("SESSION_TOKEN_TTL", 2*time.Hour),
		SessionIdleTimeout: getEnvAsDurationWithDefault("SESSION_IDLE_TIMEOUT", 30*time.Minute),
	}
}

// MustJWTSecret returns JWT_SECRET or logs a fatal error if it is not set.
func MustJWTSecret() string {
	return mustGetEnv("JWT_SECRET")
}

// MustDB checks that every MongoDB setting is present.
func MustDB() {
	for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASS"} {
		mustGetEnv(key)
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
// A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsDurationWithDefault retrieves a duration environment variable (e.g. 30m) or returns a default value if not set.
// A value that cannot be parsed is fatal.
func getEnvAsDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a duration: %v", key, err)
	}
	return value
}
