package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-site/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the site server and builder.
type Config struct {
	AppEnv                  string `validate:"oneof=dev stage prod"`
	ServiceName             string `validate:"required"`
	ServiceVersion          string
	HTTPAddr                string        `validate:"required"`
	ReadTimeout             time.Duration `validate:"gt=0"`
	WriteTimeout            time.Duration `validate:"gt=0"`
	CORSAllowedOrigins      []string
	DataBaseURL             string        `validate:"omitempty,url"`
	DataDir                 string        `validate:"required_without=DataBaseURL"`
	DataFetchTimeout        time.Duration `validate:"gte=0"`
	SiteTimezone            *time.Location
	StandaloneNoticeEnabled bool
	StandaloneNoticeMessage string
	SiteOutputDir           string `validate:"required"`
	SiteBuildWorkers        int    `validate:"min=1,max=64"`
	UptraceEnabled          bool
	UptraceDSN              string `validate:"required_if=UptraceEnabled true"`
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string `validate:"required_if=PyroscopeEnabled true"`
	PyroscopeAppName        string
	PyroscopeUploadRate     time.Duration
	LogLevel                logging.Level
}

var validate = validator.New()

// Load reads the environment, applies defaults and validates the result.
func Load() (Config, error) {
	appEnv := strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", EnvDev)))

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, crerr.Wrap(err, "parse HTTP_READ_TIMEOUT")
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, crerr.Wrap(err, "parse HTTP_WRITE_TIMEOUT")
	}
	fetchTimeout, err := time.ParseDuration(getEnv("DATA_FETCH_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, crerr.Wrap(err, "parse DATA_FETCH_TIMEOUT")
	}

	tzName := strings.TrimSpace(getEnv("SITE_TIMEZONE", "Europe/Madrid"))
	location, err := time.LoadLocation(tzName)
	if err != nil {
		return Config{}, crerr.Wrapf(err, "load SITE_TIMEZONE %q", tzName)
	}

	noticeEnabled, err := strconv.ParseBool(getEnv("STANDALONE_NOTICE_ENABLED", "false"))
	if err != nil {
		return Config{}, crerr.Wrap(err, "parse STANDALONE_NOTICE_ENABLED")
	}

	buildWorkers, err := getEnvAsInt("SITE_BUILD_WORKERS", 4)
	if err != nil {
		return Config{}, crerr.Wrap(err, "parse SITE_BUILD_WORKERS")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, crerr.Wrap(err, "parse UPTRACE_ENABLED")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, crerr.Wrap(err, "parse PYROSCOPE_ENABLED")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, crerr.Wrap(err, "parse PYROSCOPE_UPLOAD_RATE")
	}

	dataBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("DATA_BASE_URL", "")), "/")
	dataDir := strings.TrimSpace(getEnv("DATA_DIR", ""))
	if dataBaseURL == "" && dataDir == "" {
		dataDir = "./public"
	}

	serviceName := getEnv("SERVICE_NAME", "league-site")

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             serviceName,
		ServiceVersion:          getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:             readTimeout,
		WriteTimeout:            writeTimeout,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DataBaseURL:             dataBaseURL,
		DataDir:                 dataDir,
		DataFetchTimeout:        fetchTimeout,
		SiteTimezone:            location,
		StandaloneNoticeEnabled: noticeEnabled,
		StandaloneNoticeMessage: strings.TrimSpace(getEnv("STANDALONE_NOTICE_MESSAGE", "")),
		SiteOutputDir:           getEnv("SITE_OUTPUT_DIR", "./dist"),
		SiteBuildWorkers:        buildWorkers,
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PyroscopeEnabled:        pyroscopeEnabled,
		PyroscopeServerAddress:  strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAppName:        getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeUploadRate:     pyroscopeUploadRate,
		LogLevel:                logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, crerr.Wrap(err, "invalid config")
	}
	return cfg, nil
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
