package sealedtoken_test

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokenkit/pkg/aead"
	"github.com/dmitrymomot/tokenkit/pkg/keysource"
	"github.com/dmitrymomot/tokenkit/pkg/payload"
	"github.com/dmitrymomot/tokenkit/pkg/sealedtoken"
)

const testSecret = "b2e32f9dd1a8c4e9ef6b339c8c373eab85a9cda934f3dfc2b88d7c5c4bb1e8f0"

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET_KEY", testSecret)
	unsetenv(t, "TOKEN_ALGORITHM", "TOKEN_PAYLOAD_CODEC", "TOKEN_PURPOSE")

	cfg, err := sealedtoken.ParseConfig()
	require.NoError(t, err)

	assert.Equal(t, testSecret, cfg.SecretKey)
	assert.Equal(t, string(aead.AES256GCM), cfg.Algorithm)
	assert.Equal(t, "json", cfg.PayloadCodec)
	assert.Empty(t, cfg.Purpose)
}

func TestParseConfig_MissingSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET_KEY", "")

	_, err := sealedtoken.ParseConfig()
	require.ErrorIs(t, err, sealedtoken.ErrInvalidConfig)
}

func TestConfig_RoundTrip(t *testing.T) {
	t.Setenv("TOKEN_SECRET_KEY", testSecret)
	t.Setenv("TOKEN_ALGORITHM", "chacha20-poly1305")
	t.Setenv("TOKEN_PAYLOAD_CODEC", "cbor")
	t.Setenv("TOKEN_PURPOSE", "inventory")

	cfg, err := sealedtoken.ParseConfig()
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)

	key, err := cfg.Key()
	require.NoError(t, err)
	t.Cleanup(func() { _ = key.Close() })

	s, err := sealedtoken.New[payload.Inventory](opts...)
	require.NoError(t, err)

	tok, err := s.Issue(sample, key.Bytes())
	require.NoError(t, err)

	got, err := s.Redeem(tok, key.Bytes())
	require.NoError(t, err)
	assert.Equal(t, sample, got)

	// Each configured setting must take effect.
	_, err = sealedtoken.Redeem[payload.Inventory](tok, key.Bytes(),
		sealedtoken.WithAlgorithm(aead.ChaCha20Poly1305),
		sealedtoken.WithPayloadCodec(payload.CBOR),
	)
	require.ErrorIs(t, err, sealedtoken.ErrAuthenticationFailed)

	_, err = sealedtoken.Redeem[payload.Inventory](tok, key.Bytes(),
		sealedtoken.WithPayloadCodec(payload.CBOR),
		sealedtoken.WithPurpose("inventory"),
	)
	require.ErrorIs(t, err, sealedtoken.ErrAuthenticationFailed)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     sealedtoken.Config
		wantErr error
	}{
		{
			name: "defaults",
			cfg:  sealedtoken.Config{Algorithm: "aes-256-gcm", PayloadCodec: "json"},
		},
		{
			name: "codec name is case-insensitive",
			cfg:  sealedtoken.Config{Algorithm: "aes-256-gcm", PayloadCodec: " CBOR "},
		},
		{
			name:    "unknown algorithm",
			cfg:     sealedtoken.Config{Algorithm: "aes-128-cbc", PayloadCodec: "json"},
			wantErr: aead.ErrUnknownAlgorithm,
		},
		{
			name:    "unknown codec",
			cfg:     sealedtoken.Config{Algorithm: "aes-256-gcm", PayloadCodec: "msgpack"},
			wantErr: payload.ErrUnknownCodec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts, err := tt.cfg.Options()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, sealedtoken.ErrInvalidConfig)
				assert.Nil(t, opts)
				return
			}
			require.NoError(t, err)
			assert.Len(t, opts, 3)
		})
	}
}

func TestConfig_Key(t *testing.T) {
	t.Parallel()

	key, err := sealedtoken.Config{SecretKey: testSecret}.Key()
	require.NoError(t, err)
	defer key.Close()

	assert.Equal(t, aead.KeySize, key.Len())

	_, err = sealedtoken.Config{SecretKey: testSecret + "00"}.Key()
	require.ErrorIs(t, err, keysource.ErrInvalidSecretLength)

	_, err = sealedtoken.Config{SecretKey: "zz"}.Key()
	require.ErrorIs(t, err, keysource.ErrInvalidSecret)
}

func TestConfig_LogValue(t *testing.T) {
	t.Parallel()

	cfg := sealedtoken.Config{SecretKey: testSecret, Algorithm: "aes-256-gcm", PayloadCodec: "json"}

	out := fmt.Sprint(slog.Any("config", cfg).Value.Resolve())
	assert.NotContains(t, out, testSecret)
	assert.Contains(t, out, "secret_key_set=true")
}
