package token_bucket

import "time"

func NewTokenBucketWithClock(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return newTokenBucket(capacity, refillRate, now)
}

func (k *KeyedBuckets) SetClock(now func() time.Time) {
	k.now = now
	k.lastSweep = now()
}
