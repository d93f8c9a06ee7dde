package token_bucket

import (
	"sync"
	"time"
)

type Clock func() time.Time

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, time.Now)
}

func NewTokenBucketWithClock(capacity int, refillRate float64, now Clock) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// дробные токены копятся между вызовами
func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

// KeyedBuckets держит отдельное ведро на ключ (адрес клиента).
// Ведра, не использовавшиеся дольше idleTTL, удаляются при очередном обращении.
type KeyedBuckets struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	now        Clock

	mu       sync.Mutex
	buckets  map[string]*keyedBucket
	lastSwep time.Time
}

type keyedBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyedBuckets(capacity int, refillRate float64, idleTTL time.Duration, now Clock) *KeyedBuckets {
	if now == nil {
		now = time.Now
	}
	return &KeyedBuckets{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		now:        now,
		buckets:    make(map[string]*keyedBucket),
		lastSwep:   now(),
	}
}

func (k *KeyedBuckets) Allow(key string) bool {
	k.mu.Lock()
	now := k.now()
	k.sweep(now)

	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedBucket{bucket: NewTokenBucketWithClock(k.capacity, k.refillRate, k.now)}
		k.buckets[key] = entry
	}
	entry.lastSeen = now
	k.mu.Unlock()

	return entry.bucket.Allow()
}

func (k *KeyedBuckets) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *KeyedBuckets) sweep(now time.Time) {
	if k.idleTTL <= 0 || now.Sub(k.lastSwep) < k.idleTTL {
		return
	}
	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) >= k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastSwep = now
}
