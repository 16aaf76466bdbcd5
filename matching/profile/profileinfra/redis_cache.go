package profileinfra

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/pkg/logx"
)

// DefaultEmbeddingTTL bounds how long cached vectors survive. Encoders are
// deterministic, so the TTL only limits cache growth, not staleness.
const DefaultEmbeddingTTL = 7 * 24 * time.Hour

// CachedEncoder is a read-through Redis cache in front of an Encoder. The
// embedding backend is the slowest and most expensive call of the pipeline,
// and batch scoring re-encodes identical prototype and responsibility texts
// constantly.
type CachedEncoder struct {
	client  *redis.Client
	encoder profile.Encoder
	prefix  string
	ttl     time.Duration
}

// NewCachedEncoder wraps an encoder with a Redis cache. A non-positive ttl
// falls back to the default.
func NewCachedEncoder(client *redis.Client, encoder profile.Encoder, prefix string, ttl time.Duration) profile.Encoder {
	if ttl <= 0 {
		ttl = DefaultEmbeddingTTL
	}

	return &CachedEncoder{
		client:  client,
		encoder: encoder,
		prefix:  prefix,
		ttl:     ttl,
	}
}

// Encode returns the cached vector for the text, or encodes and caches it.
// Cache failures degrade to a direct encoder call, never to an error.
func (c *CachedEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	key := c.key(text)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var vec []float32
		if err := json.Unmarshal(data, &vec); err == nil {
			return vec, nil
		}
		// Corrupted entry: drop it and re-encode
		c.client.Del(ctx, key)
	} else if err != redis.Nil {
		logx.Warnf("Embedding cache read failed, falling through to encoder: %v", err)
	}

	vec, err := c.encoder.Encode(ctx, text)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(vec); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			logx.Warnf("Embedding cache write failed: %v", err)
		}
	}

	return vec, nil
}

// Dimension returns the wrapped encoder's vector length
func (c *CachedEncoder) Dimension() int {
	return c.encoder.Dimension()
}

func (c *CachedEncoder) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s:embedding:%s", c.prefix, hex.EncodeToString(sum[:]))
}
