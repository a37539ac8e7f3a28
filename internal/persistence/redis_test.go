package persistence

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// counterClient implements the Cmdable calls AttemptCounter makes; any other
// call panics through the nil embedded interface.
type counterClient struct {
	redis.Cmdable
	values    map[string]int64
	expires   map[string]time.Duration
	expireErr error
}

func newCounterClient() *counterClient {
	return &counterClient{values: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (c *counterClient) Incr(ctx context.Context, key string) *redis.IntCmd {
	c.values[key]++
	cmd := redis.NewIntCmd(ctx, "incr", key)
	cmd.SetVal(c.values[key])
	return cmd
}

func (c *counterClient) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx, "expire", key, expiration)
	if c.expireErr != nil {
		cmd.SetErr(c.expireErr)
		return cmd
	}
	c.expires[key] = expiration
	cmd.SetVal(true)
	return cmd
}

func (c *counterClient) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	n, ok := c.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(strconv.FormatInt(n, 10))
	return cmd
}

func (c *counterClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "del")
	for _, key := range keys {
		delete(c.values, key)
		delete(c.expires, key)
	}
	cmd.SetVal(int64(len(keys)))
	return cmd
}

func TestAttemptCounter_ExpiresOnFirstHitOnly(t *testing.T) {
	t.Parallel()

	client := newCounterClient()
	counter := NewAttemptCounter(client)
	ctx := context.Background()

	n, err := counter.Increment(ctx, "login:ada", time.Minute)
	if err != nil || n != 1 {
		t.Fatalf("first Increment = %d, %v", n, err)
	}
	if client.expires["login:ada"] != time.Minute {
		t.Fatalf("expected window to start on first hit, got %v", client.expires)
	}

	client.expires["login:ada"] = 0
	if n, err = counter.Increment(ctx, "login:ada", time.Minute); err != nil || n != 2 {
		t.Fatalf("second Increment = %d, %v", n, err)
	}
	if client.expires["login:ada"] != 0 {
		t.Fatalf("window must not be extended by later hits")
	}

	if err := counter.Reset(ctx, "login:ada"); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if n, err := counter.Count(ctx, "login:ada"); err != nil || n != 0 {
		t.Fatalf("Count after reset = %d, %v", n, err)
	}
}

func TestAttemptCounter_ExpireFailureIsReported(t *testing.T) {
	t.Parallel()

	client := newCounterClient()
	client.expireErr = errors.New("ERR unknown command")
	counter := NewAttemptCounter(client)

	if _, err := counter.Increment(context.Background(), "login:ada", time.Minute); err == nil {
		t.Fatalf("expected expire error to surface")
	}
}
