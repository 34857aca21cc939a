package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/logging"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                         string
	ServiceName                    string
	ServiceVersion                 string
	HTTPAddr                       string
	ReadTimeout                    time.Duration
	WriteTimeout                   time.Duration
	LogLevel                       logging.Level
	CORSAllowedOrigins             []string
	SwaggerEnabled                 bool
	SessionTTL                     time.Duration
	SessionSweepInterval           time.Duration
	SessionStore                   string
	RedisAddr                      string
	RedisPassword                  string
	RedisDB                        int
	CatalogCacheTTL                time.Duration
	DBEnabled                      bool
	DBURL                          string
	DBDisablePreparedBinary        bool
	DirectoryWorkers               int
	DirectoryQueueSize             int
	DirectoryCircuitEnabled        bool
	DirectoryCircuitFailureCount   int
	DirectoryCircuitOpenTimeout    time.Duration
	DirectoryCircuitHalfOpenMaxReq int
	MetricsEnabled                 bool
	PprofEnabled                   bool
	PprofAddr                      string
	UptraceEnabled                 bool
	UptraceDSN                     string
	UptraceLogsEnabled             bool
	PyroscopeEnabled               bool
	PyroscopeServerAddress         string
	PyroscopeAppName               string
	PyroscopeAuthToken             string
	PyroscopeBasicAuthUser         string
	PyroscopeBasicAuthPassword     string
	PyroscopeUploadRate            time.Duration
	InternalJobToken               string
}

// LoadDotEnv reads the given files (".env" when none) into the process
// environment. Missing files are ignored and existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := getEnvAsPositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}

	sessionTTL, err := getEnvAsPositiveDuration("SESSION_TTL", "30m")
	if err != nil {
		return Config{}, err
	}
	sessionSweepInterval, err := getEnvAsPositiveDuration("SESSION_SWEEP_INTERVAL", "1m")
	if err != nil {
		return Config{}, err
	}
	sessionStore := strings.ToLower(strings.TrimSpace(getEnv("SESSION_STORE", SessionStoreMemory)))
	switch sessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return Config{}, fmt.Errorf("invalid SESSION_STORE %q: valid values are %s, %s", sessionStore, SessionStoreMemory, SessionStoreRedis)
	}
	redisAddr := strings.TrimSpace(getEnv("REDIS_ADDR", "localhost:6379"))
	if sessionStore == SessionStoreRedis && redisAddr == "" {
		return Config{}, fmt.Errorf("REDIS_ADDR is required when SESSION_STORE=redis")
	}
	redisDB, err := getEnvAsInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse REDIS_DB: %w", err)
	}
	if redisDB < 0 {
		return Config{}, fmt.Errorf("REDIS_DB must be >= 0")
	}

	catalogCacheTTL, err := getEnvAsPositiveDuration("CATALOG_CACHE_TTL", "10m")
	if err != nil {
		return Config{}, err
	}

	dbEnabled, err := strconv.ParseBool(getEnv("DB_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_ENABLED: %w", err)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if dbEnabled && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when DB_ENABLED=true")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	directoryWorkers, err := getEnvAsInt("DIRECTORY_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse DIRECTORY_WORKERS: %w", err)
	}
	if directoryWorkers <= 0 {
		return Config{}, fmt.Errorf("DIRECTORY_WORKERS must be > 0")
	}

	directoryQueueSize, err := getEnvAsInt("DIRECTORY_QUEUE_SIZE", 256)
	if err != nil {
		return Config{}, fmt.Errorf("parse DIRECTORY_QUEUE_SIZE: %w", err)
	}
	if directoryQueueSize <= 0 {
		return Config{}, fmt.Errorf("DIRECTORY_QUEUE_SIZE must be > 0")
	}
	directoryCircuitEnabled, err := strconv.ParseBool(getEnv("DIRECTORY_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DIRECTORY_CIRCUIT_ENABLED: %w", err)
	}
	directoryCircuitFailureCount, err := getEnvAsInt("DIRECTORY_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DIRECTORY_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if directoryCircuitFailureCount <= 0 {
		return Config{}, fmt.Errorf("DIRECTORY_CIRCUIT_FAILURE_COUNT must be > 0")
	}
	directoryCircuitOpenTimeout, err := getEnvAsPositiveDuration("DIRECTORY_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	directoryCircuitHalfOpenMaxReq, err := getEnvAsInt("DIRECTORY_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DIRECTORY_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if directoryCircuitHalfOpenMaxReq <= 0 {
		return Config{}, fmt.Errorf("DIRECTORY_CIRCUIT_HALF_OPEN_MAX_REQ must be > 0")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	serviceName := getEnv("APP_SERVICE_NAME", "ubuntu-explorer-api")

	return Config{
		AppEnv:                         appEnv,
		ServiceName:                    serviceName,
		ServiceVersion:                 getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                    readTimeout,
		WriteTimeout:                   writeTimeout,
		LogLevel:                       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:             splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:                 swaggerEnabled,
		SessionTTL:                     sessionTTL,
		SessionSweepInterval:           sessionSweepInterval,
		SessionStore:                   sessionStore,
		RedisAddr:                      redisAddr,
		RedisPassword:                  getEnv("REDIS_PASSWORD", ""),
		RedisDB:                        redisDB,
		CatalogCacheTTL:                catalogCacheTTL,
		DBEnabled:                      dbEnabled,
		DBURL:                          dbURL,
		DBDisablePreparedBinary:        dbDisablePreparedBinary,
		DirectoryWorkers:               directoryWorkers,
		DirectoryQueueSize:             directoryQueueSize,
		DirectoryCircuitEnabled:        directoryCircuitEnabled,
		DirectoryCircuitFailureCount:   directoryCircuitFailureCount,
		DirectoryCircuitOpenTimeout:    directoryCircuitOpenTimeout,
		DirectoryCircuitHalfOpenMaxReq: directoryCircuitHalfOpenMaxReq,
		MetricsEnabled:                 metricsEnabled,
		PprofEnabled:                   pprofEnabled,
		PprofAddr:                      pprofAddr,
		UptraceEnabled:                 uptraceEnabled,
		UptraceDSN:                     uptraceDSN,
		UptraceLogsEnabled:             uptraceLogsEnabled,
		PyroscopeEnabled:               pyroscopeEnabled,
		PyroscopeServerAddress:         pyroscopeServerAddress,
		PyroscopeAppName:               getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:             getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:         getEnv("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword:     getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:            pyroscopeUploadRate,
		InternalJobToken:               strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	level, err := logging.ParseLevel(v)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
