package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// slotTTL is garbage collection only; freshness is decided by FetchedAt.
	// A stale slot must outlive its freshness window so views can keep
	// showing pre-failure data when a refresh errors out.
	slotTTL = 6 * time.Hour
	seqTTL  = 24 * time.Hour

	scanCount       = 500
	deleteBatchSize = 500
)

// Slot is one cached fetch result.
type Slot struct {
	Data      json.RawMessage `json:"data"`
	FetchedAt time.Time       `json:"fetched_at"`
	Seq       uint64          `json:"seq"`
}

// Fresh reports whether the slot is within its freshness window.
func (s *Slot) Fresh(ttl time.Duration) bool {
	return time.Since(s.FetchedAt) < ttl
}

// FetchFunc produces the value for a slot. The result is JSON-marshaled into
// the slot and returned to the caller as canonical bytes.
type FetchFunc func(ctx context.Context) (any, error)

// Store coordinates cached fetches. Slots live in Redis; the per-key refresh
// gates and in-flight markers are process-local, so concurrent identical
// fetches inside one process collapse onto a single upstream call.
//
// Stale responses are handled by issue order: every issued fetch takes a
// monotonically increasing per-key sequence (Redis INCR), and a completion
// never overwrites a slot written by a later-issued fetch.
type Store struct {
	client *redis.Client

	mu       sync.Mutex
	gates    map[string]*sync.Mutex
	inflight map[string]bool
}

func NewStore(client *redis.Client) *Store {
	return &Store{
		client:   client,
		gates:    make(map[string]*sync.Mutex),
		inflight: make(map[string]bool),
	}
}

// Fetch returns the cached bytes for key when fresh, otherwise runs fn and
// caches its result. A failed fn leaves the slot untouched and returns the
// error; callers keep whatever they were showing.
func (s *Store) Fetch(ctx context.Context, key Key, ttl time.Duration, fn FetchFunc) ([]byte, error) {
	if slot, ok := s.getSlot(ctx, key); ok && slot.Fresh(ttl) {
		return slot.Data, nil
	}

	gate := s.gate(key)
	gate.Lock()
	defer gate.Unlock()

	// Another caller may have refreshed while we waited on the gate.
	if slot, ok := s.getSlot(ctx, key); ok && slot.Fresh(ttl) {
		return slot.Data, nil
	}

	seq, err := s.nextSeq(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("query %s: allocating sequence failed: %w", key.String(), err)
	}

	s.setInflight(key, true)
	defer s.setInflight(key, false)

	value, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("query %s: encoding result failed: %w", key.String(), err)
	}

	return s.complete(ctx, key, seq, data), nil
}

// Peek returns the slot regardless of freshness, for views that prefer stale
// data over nothing.
func (s *Store) Peek(ctx context.Context, key Key) (*Slot, bool) {
	slot, ok := s.getSlot(ctx, key)
	if !ok {
		return nil, false
	}
	return &slot, true
}

// IsInFlight reports whether this process is currently fetching the key.
func (s *Store) IsInFlight(key Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[key.String()]
}

// Invalidate drops one exact slot.
func (s *Store) Invalidate(ctx context.Context, key Key) error {
	return s.client.Del(ctx, key.String()).Err()
}

// InvalidateNamespace drops every slot in a namespace. Sequence counters are
// deliberately left alone so an in-flight older fetch cannot outrank the
// fetches issued after invalidation.
func (s *Store) InvalidateNamespace(ctx context.Context, namespace string) (int64, error) {
	keys, err := s.scanKeys(ctx, NamespacePattern(namespace))
	if err != nil {
		return 0, err
	}
	return s.deleteKeys(ctx, keys)
}

func (s *Store) getSlot(ctx context.Context, key Key) (Slot, bool) {
	raw, err := s.client.Get(ctx, key.String()).Bytes()
	if err != nil {
		return Slot{}, false
	}
	var slot Slot
	if err := json.Unmarshal(raw, &slot); err != nil {
		return Slot{}, false
	}
	return slot, true
}

func (s *Store) nextSeq(ctx context.Context, key Key) (uint64, error) {
	seq, err := s.client.Incr(ctx, key.seqKey()).Result()
	if err != nil {
		return 0, err
	}
	s.client.Expire(ctx, key.seqKey(), seqTTL)
	return uint64(seq), nil
}

// complete writes the slot unless a later-issued fetch already landed, in
// which case the newer data wins and our result is discarded.
func (s *Store) complete(ctx context.Context, key Key, seq uint64, data []byte) []byte {
	if current, ok := s.getSlot(ctx, key); ok && current.Seq > seq {
		return current.Data
	}

	slot := Slot{Data: data, FetchedAt: time.Now(), Seq: seq}
	encoded, err := json.Marshal(slot)
	if err != nil {
		return data
	}
	if err := s.client.Set(ctx, key.String(), encoded, slotTTL).Err(); err != nil {
		return data
	}
	return data
}

func (s *Store) gate(key Key) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := key.String()
	if _, ok := s.gates[id]; !ok {
		s.gates[id] = &sync.Mutex{}
	}
	return s.gates[id]
}

func (s *Store) setInflight(key Key, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v {
		s.inflight[key.String()] = true
	} else {
		delete(s.inflight, key.String())
	}
}

func (s *Store) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

func (s *Store) deleteKeys(ctx context.Context, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	var total int64
	for i := 0; i < len(keys); i += deleteBatchSize {
		end := i + deleteBatchSize
		if end > len(keys) {
			end = len(keys)
		}
		deleted, err := s.client.Del(ctx, keys[i:end]...).Result()
		if err != nil {
			return total, err
		}
		total += deleted
	}
	return total, nil
}

// ErrNoData is returned by Unmarshal helpers when a slot holds nothing.
var ErrNoData = errors.New("query: slot has no data")

// Decode unmarshals cached bytes into out.
func Decode(data []byte, out any) error {
	if len(data) == 0 {
		return ErrNoData
	}
	return json.Unmarshal(data, out)
}
