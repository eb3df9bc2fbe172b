package query

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const isolatedQueryTestRedisDB = 13

func newTestStore(t *testing.T) *Store {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   isolatedQueryTestRedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		t.Skipf("Skipping Redis-dependent test: no reachable Redis endpoint (%v)", err)
	}

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	require.NoError(t, client.FlushDB(context.Background()).Err())

	return NewStore(client)
}

func TestFetch_CachesAndReuses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := NewKey("reports", map[string]string{"type": "flood"})

	calls := 0
	fn := func(ctx context.Context) (any, error) {
		calls++
		return []string{"r1", "r2"}, nil
	}

	first, err := store.Fetch(ctx, key, time.Minute, fn)
	require.NoError(t, err)
	second, err := store.Fetch(ctx, key, time.Minute, fn)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "fresh slot must be served without refetching")
	assert.JSONEq(t, `["r1","r2"]`, string(first))
	assert.Equal(t, string(first), string(second))
}

func TestFetch_StaleSlotRefetches(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := NewKey("reports", nil)

	calls := 0
	fn := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	_, err := store.Fetch(ctx, key, 10*time.Millisecond, fn)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	data, err := store.Fetch(ctx, key, 10*time.Millisecond, fn)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, "2", string(data))
}

func TestFetch_FailureLeavesSlotUntouched(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := NewKey("users", map[string]string{"role": "free"})

	_, err := store.Fetch(ctx, key, 0, func(ctx context.Context) (any, error) {
		return "good", nil
	})
	require.NoError(t, err)

	wantErr := errors.New("backend down")
	_, err = store.Fetch(ctx, key, 0, func(ctx context.Context) (any, error) {
		return nil, wantErr
	})
	require.ErrorIs(t, err, wantErr)

	slot, ok := store.Peek(ctx, key)
	require.True(t, ok, "slot must survive a failed refresh")
	assert.JSONEq(t, `"good"`, string(slot.Data))
}

func TestInvalidateNamespace_LeavesOtherNamespaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		key := NewKey("reports", map[string]string{"type": fmt.Sprintf("t%d", i)})
		_, err := store.Fetch(ctx, key, time.Minute, func(ctx context.Context) (any, error) {
			return i, nil
		})
		require.NoError(t, err)
	}
	userKey := NewKey("users", nil)
	_, err := store.Fetch(ctx, userKey, time.Minute, func(ctx context.Context) (any, error) {
		return "users", nil
	})
	require.NoError(t, err)

	deleted, err := store.InvalidateNamespace(ctx, "reports")
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	_, ok := store.Peek(ctx, NewKey("reports", map[string]string{"type": "t0"}))
	assert.False(t, ok)
	_, ok = store.Peek(ctx, userKey)
	assert.True(t, ok, "users namespace must be untouched")
}

func TestComplete_OlderIssueNeverOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := NewKey("reports", map[string]string{"type": "accident"})

	older, err := store.nextSeq(ctx, key)
	require.NoError(t, err)
	newer, err := store.nextSeq(ctx, key)
	require.NoError(t, err)
	require.Greater(t, newer, older)

	got := store.complete(ctx, key, newer, []byte(`"newer"`))
	assert.JSONEq(t, `"newer"`, string(got))

	// The older fetch lands late; the newer slot must win.
	got = store.complete(ctx, key, older, []byte(`"older"`))
	assert.JSONEq(t, `"newer"`, string(got), "late completion must return the surviving data")

	slot, ok := store.Peek(ctx, key)
	require.True(t, ok)
	assert.JSONEq(t, `"newer"`, string(slot.Data))
	assert.Equal(t, newer, slot.Seq)
}

func TestInvalidateNamespace_KeepsIssueOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := NewKey("reports", nil)

	older, err := store.nextSeq(ctx, key)
	require.NoError(t, err)

	_, err = store.InvalidateNamespace(ctx, "reports")
	require.NoError(t, err)

	newer, err := store.nextSeq(ctx, key)
	require.NoError(t, err)
	assert.Greater(t, newer, older, "invalidation must not reset sequence counters")
}

func TestIsInFlight(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := NewKey("reports", map[string]string{"type": "checkpoint"})

	assert.False(t, store.IsInFlight(key))

	var sawInFlight bool
	_, err := store.Fetch(ctx, key, time.Minute, func(ctx context.Context) (any, error) {
		sawInFlight = store.IsInFlight(key)
		return "data", nil
	})
	require.NoError(t, err)

	assert.True(t, sawInFlight, "the marker must be up while the fetch runs")
	assert.False(t, store.IsInFlight(key), "the marker must clear after completion")
}

func TestDecode(t *testing.T) {
	var out []string
	require.NoError(t, Decode([]byte(`["a"]`), &out))
	assert.Equal(t, []string{"a"}, out)

	err := Decode(nil, &out)
	assert.ErrorIs(t, err, ErrNoData)
}
