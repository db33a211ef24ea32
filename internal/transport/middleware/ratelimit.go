package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// fullRefill is how long an empty bucket takes to refill. An idle bucket is
// full again after it, so dropping it changes nothing.
const fullRefill = time.Minute

// RateLimiter is a token-bucket limiter keyed by the authenticated user, or
// by client IP for anonymous requests. Place it after Auth.
type RateLimiter struct {
	buckets  sync.Map // key -> *bucket
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter starts a sweeper that drops idle buckets every
// cleanupInterval. A non-positive interval disables the sweeper.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	if cleanupInterval > 0 {
		go rl.sweep(cleanupInterval)
	}
	return rl
}

// Stop ends the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per key with bursts up to the same
// number. A non-positive perMinute disables limiting.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		limit := float64(perMinute)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, remaining, wait := rl.take(limiterKey(r), limit)

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(perMinute))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				h.Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeProblem(w, http.StatusTooManyRequests, "ratelimited")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) take(key string, limit float64) (ok bool, remaining int, wait time.Duration) {
	now := rl.now()
	v, _ := rl.buckets.LoadOrStore(key, &bucket{tokens: limit, lastRefill: now})
	b := v.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	window := fullRefill.Seconds()
	b.tokens = math.Min(limit, b.tokens+now.Sub(b.lastRefill).Seconds()*limit/window)
	b.lastRefill = now

	if b.tokens < 1 {
		wait = time.Duration((1 - b.tokens) * window / limit * float64(time.Second))
		return false, 0, wait
	}
	b.tokens--
	return true, int(b.tokens), 0
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.dropIdle()
		}
	}
}

func (rl *RateLimiter) dropIdle() {
	now := rl.now()
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle >= fullRefill {
			rl.buckets.Delete(key)
		}
		return true
	})
}

func limiterKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
