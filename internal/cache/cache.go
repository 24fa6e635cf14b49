// Package cache holds an optional Valkey-backed cache of raw completion
// replies. Identical facet requests (same model, language, temperature and
// text) hit the endpoint once per TTL window. Cache trouble is never allowed
// to fail an analysis; every error path degrades to a miss.
package cache

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/valkey-io/valkey-go"
)

const (
	keyPrefix  = "analysis:response:"
	defaultTTL = 24 * time.Hour
)

// ResponseCache stores raw gateway replies keyed by request identity.
type ResponseCache struct {
	client valkey.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewFromEnv connects using VALKEY_INIT_ADDRESS / VALKEY_PASSWORD /
// VALKEY_TLS. Returns (nil, nil) when no address is configured; the cache is
// strictly opt-in.
func NewFromEnv(logger *slog.Logger) (*ResponseCache, error) {
	addr := os.Getenv("VALKEY_INIT_ADDRESS")
	if addr == "" {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := valkey.ClientOption{
		InitAddress:      []string{addr},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ResponseCache] create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ResponseCache] ping: %w", err)
	}

	logger.Info("[ResponseCache] Connected to valkey", slog.String("address", addr))
	return &ResponseCache{client: client, logger: logger, ttl: defaultTTL}, nil
}

// Close releases the underlying connection.
func (c *ResponseCache) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}

// Key derives the cache key for one facet request.
func Key(facet, model, language string, temperature float64, text string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%.4f\x00%s", facet, model, language, temperature, text)
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached reply and whether it was present. A nil receiver is
// a permanent miss, so callers never branch on cache availability.
func (c *ResponseCache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}

	res := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if err := res.Error(); err != nil {
		if !valkey.IsValkeyNil(err) {
			c.logger.Warn("[ResponseCache] Get failed",
				slog.String("error", err.Error()))
		}
		return "", false
	}

	value, err := res.ToString()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores a reply with the configured TTL. Failures are logged and
// swallowed.
func (c *ResponseCache) Set(ctx context.Context, key, value string) {
	if c == nil {
		return
	}

	cmd := c.client.B().Set().Key(key).Value(value).
		Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Warn("[ResponseCache] Set failed",
			slog.String("error", err.Error()))
	}
}
