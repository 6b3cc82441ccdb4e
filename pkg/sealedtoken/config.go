package sealedtoken

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/tokenkit/pkg/aead"
	"github.com/dmitrymomot/tokenkit/pkg/keysource"
	"github.com/dmitrymomot/tokenkit/pkg/payload"
	"github.com/dmitrymomot/tokenkit/pkg/secret"
)

// Config is the environment configuration of a token service.
type Config struct {
	SecretKey    string `env:"TOKEN_SECRET_KEY,required,notEmpty"` // 64 hex characters
	Algorithm    string `env:"TOKEN_ALGORITHM" envDefault:"aes-256-gcm"`
	PayloadCodec string `env:"TOKEN_PAYLOAD_CODEC" envDefault:"json"`
	Purpose      string `env:"TOKEN_PURPOSE"`
}

var (
	cfg     Config
	cfgErr  error
	cfgOnce sync.Once
)

// LoadConfig loads the configuration once per process. A .env file in the
// working directory is applied first if it exists.
func LoadConfig() (Config, error) {
	cfgOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
		cfg, cfgErr = ParseConfig()
	})
	return cfg, cfgErr
}

// ParseConfig reads the configuration from the current environment without
// caching.
func ParseConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return c, nil
}

// Options converts the configuration into service options.
func (c Config) Options() ([]Option, error) {
	algorithm, err := aead.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	codec, err := payload.ByName(c.PayloadCodec)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return []Option{
		WithAlgorithm(algorithm),
		WithPayloadCodec(codec),
		WithPurpose(c.Purpose),
	}, nil
}

// Key decodes the secret key into a locked buffer. The caller must Close it.
func (c Config) Key() (*secret.Buffer, error) {
	return keysource.FromHex(c.SecretKey)
}

// LogValue keeps the secret out of logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("algorithm", c.Algorithm),
		slog.String("payload_codec", c.PayloadCodec),
		slog.String("purpose", c.Purpose),
		slog.Bool("secret_key_set", c.SecretKey != ""),
	)
}
