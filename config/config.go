package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/yaoapp/kun/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/codifire/designpatterns/observer/types"
)

// Config is the process-wide configuration, read from the environment.
type Config struct {
	Mode     string    `env:"PATTERNS_ENV" envDefault:"production"` // production | development
	CatchAll string    `env:"PATTERNS_CATCH_ALL" envDefault:"always"`
	Metrics  bool      `env:"PATTERNS_METRICS" envDefault:"false"`
	Log      LogConfig // PATTERNS_LOG_*
}

// LogConfig configures kun/log output.
type LogConfig struct {
	Level      string `env:"PATTERNS_LOG_LEVEL" envDefault:"info"`
	Format     string `env:"PATTERNS_LOG_FORMAT" envDefault:"TEXT"` // TEXT | JSON
	File       string `env:"PATTERNS_LOG_FILE"`                     // empty = stderr
	MaxSize    int    `env:"PATTERNS_LOG_MAX_SIZE" envDefault:"100"` // megabytes
	MaxBackups int    `env:"PATTERNS_LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAge     int    `env:"PATTERNS_LOG_MAX_AGE" envDefault:"28"` // days
}

// Conf holds the configuration from the last successful Load.
var Conf = Config{Mode: "production", CatchAll: "always"}

// Load reads the given .env files (existing variables win), parses the
// environment into a Config, validates it and stores it in Conf.
func Load(envFiles ...string) (Config, error) {
	var files []string
	for _, f := range envFiles {
		if f != "" {
			files = append(files, f)
		}
	}
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, fmt.Errorf("config: load env files %v: %w", files, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	Conf = cfg
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Mode {
	case "production", "development":
	default:
		return fmt.Errorf("config: PATTERNS_ENV must be production or development, got %q", c.Mode)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("config: PATTERNS_CATCH_ALL: %w", err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := parseFormat(c.Log.Format); err != nil {
		return err
	}
	return nil
}

// Policy returns the configured catch-all policy.
func (c Config) Policy() (types.CatchAllPolicy, error) {
	return types.ParsePolicy(c.CatchAll)
}

// IsDevelopment reports whether the last loaded configuration runs in development mode.
func IsDevelopment() bool {
	return Conf.Mode == "development"
}

var levelRank = map[string]int{"trace": 0, "debug": 1, "info": 2, "warn": 3, "warning": 3, "error": 4}

// LevelEnabled reports whether lines at level pass the configured
// PATTERNS_LOG_LEVEL (info when unset).
func LevelEnabled(level string) bool {
	floor, ok := levelRank[strings.ToLower(strings.TrimSpace(Conf.Log.Level))]
	if !ok {
		floor = levelRank["info"]
	}
	rank, ok := levelRank[strings.ToLower(level)]
	return ok && rank >= floor
}

// InitLog applies cfg to kun/log. When cfg.File is set, output is rotated by
// lumberjack and the returned Closer must be closed on exit; otherwise it is a no-op.
func InitLog(cfg LogConfig) (io.Closer, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	log.SetLevel(level)
	log.SetFormatter(format)

	if cfg.File == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	rotate := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}
	log.SetOutput(rotate)
	return rotate, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return log.TraceLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("config: unknown log level %q", s)
	}
}

func parseFormat(s string) (log.Format, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "TEXT":
		return log.TEXT, nil
	case "JSON":
		return log.JSON, nil
	default:
		return log.TEXT, fmt.Errorf("config: unknown log format %q", s)
	}
}
