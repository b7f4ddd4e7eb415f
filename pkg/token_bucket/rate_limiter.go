package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket пропускает не больше capacity запросов залпом и пополняется
// со скоростью refillRate токенов в секунду.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
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

func (t *TokenBucket) idleSince() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastRefill
}

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

// KeyedBuckets держит отдельный TokenBucket на ключ (пользователь, адрес клиента).
// Бакеты, простаивающие дольше idleTTL, выбрасываются при следующем обращении.
type KeyedBuckets struct {
	mu         sync.Mutex
	buckets    map[string]*TokenBucket
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

func NewKeyedBuckets(capacity int, refillRate float64, idleTTL time.Duration) *KeyedBuckets {
	return &KeyedBuckets{
		buckets:    make(map[string]*TokenBucket),
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		lastSweep:  time.Now(),
		now:        time.Now,
	}
}

func (k *KeyedBuckets) Allow(key string) bool {
	return k.bucket(key).Allow()
}

func (k *KeyedBuckets) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *KeyedBuckets) bucket(key string) *TokenBucket {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if k.idleTTL > 0 && now.Sub(k.lastSweep) >= k.idleTTL {
		for bucketKey, b := range k.buckets {
			if now.Sub(b.idleSince()) >= k.idleTTL {
				delete(k.buckets, bucketKey)
			}
		}
		k.lastSweep = now
	}

	b, ok := k.buckets[key]
	if !ok {
		b = newTokenBucket(k.capacity, k.refillRate, k.now)
		k.buckets[key] = b
	}
	return b
}
