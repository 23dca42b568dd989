package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultRunLogCapacity = 50
)

type Config struct {
	HTTPAddr         string
	MetricsAddr      string
	ResultsPath      string
	DefaultBenchmark string
	RunLogCapacity   int
}

// Load reads configuration from the environment, honoring a .env file when
// one exists. A missing .env file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, err
		}
	}

	cfg := Config{
		HTTPAddr:         getenvDefault("HTTP_ADDR", defaultHTTPAddr),
		MetricsAddr:      strings.TrimSpace(os.Getenv("METRICS_ADDR")),
		ResultsPath:      strings.TrimSpace(os.Getenv("RESULTS_PATH")),
		DefaultBenchmark: strings.ToLower(strings.TrimSpace(os.Getenv("DEFAULT_BENCHMARK"))),
		RunLogCapacity:   getenvIntDefault("RUNLOG_CAPACITY", defaultRunLogCapacity),
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
