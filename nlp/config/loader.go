package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Extractor selects the keyword extraction strategies by name.
type Extractor struct {
	Pipeline                 string `yaml:"pipeline" validate:"oneof=en_core en_basic"`
	Phraser                  string `yaml:"phraser" validate:"oneof=contiguous entity_noun_chunk"`
	Mapper                   string `yaml:"mapper" validate:"oneof=text lemma lemma_lower fold stem"`
	Scorer                   string `yaml:"scorer" validate:"oneof=frequency degree degree_to_frequency location_penalized_frequency"`
	Aggregator               string `yaml:"aggregator" validate:"oneof=sum mean penalized_norm"`
	MaxLenBeforePenalization int    `yaml:"max_len_before_penalization" validate:"gte=1"`
	MinLength                int    `yaml:"min_length" validate:"gte=1"`
	MaxLength                int    `yaml:"max_length" validate:"gtefield=MinLength"`
}

type Server struct {
	Addr      string `yaml:"addr" validate:"required"`
	BodyLimit int    `yaml:"body_limit" validate:"gte=0"`
}

type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

type Config struct {
	Extractor Extractor `yaml:"extractor"`
	Server    Server    `yaml:"server"`
	Log       Log       `yaml:"log"`
}

var validate = validator.New()

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Extractor: Extractor{
			Pipeline:                 "en_core",
			Phraser:                  "contiguous",
			Mapper:                   "text",
			Scorer:                   "frequency",
			Aggregator:               "sum",
			MaxLenBeforePenalization: 5,
			MinLength:                1,
			MaxLength:                100_000,
		},
		Server: Server{Addr: ":8080", BodyLimit: 4 * 1024 * 1024},
		Log:    Log{Level: "info"},
	}
}

// Load reads baseDir/config.yaml over the defaults, applies baseDir/.env and
// RAKE_* environment overrides, and validates the result. Both files are
// optional.
func Load(baseDir string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(filepath.Join(baseDir, "config.yaml"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: read: %w", err)
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config: parse config.yaml: %w", err)
		}
	}

	if err := godotenv.Load(filepath.Join(baseDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	e := &c.Extractor
	e.Pipeline = getEnv("RAKE_PIPELINE", e.Pipeline)
	e.Phraser = getEnv("RAKE_PHRASER", e.Phraser)
	e.Mapper = getEnv("RAKE_MAPPER", e.Mapper)
	e.Scorer = getEnv("RAKE_SCORER", e.Scorer)
	e.Aggregator = getEnv("RAKE_AGGREGATOR", e.Aggregator)
	e.MaxLenBeforePenalization = getEnvInt("RAKE_MAX_LEN_BEFORE_PENALIZATION", e.MaxLenBeforePenalization)
	e.MinLength = getEnvInt("RAKE_MIN_LENGTH", e.MinLength)
	e.MaxLength = getEnvInt("RAKE_MAX_LENGTH", e.MaxLength)
	c.Server.Addr = getEnv("RAKE_ADDR", c.Server.Addr)
	c.Server.BodyLimit = getEnvInt("RAKE_BODY_LIMIT", c.Server.BodyLimit)
	c.Log.Level = getEnv("RAKE_LOG_LEVEL", c.Log.Level)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
