package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/LittleLemon-Booking/internal/api/handlers"
)

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	rps    rate.Limit
	burst  int
	clock  Clock
	logger Logger

	mu       sync.Mutex
	limiters map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает ограничитель: rps запросов в секунду, всплеск burst
func NewRateLimiter(rps float64, burst int, logger Logger) *RateLimiter {
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		clock:    realClock{},
		logger:   logger,
		limiters: make(map[string]*visitor),
	}
}

// WithClock подменяет источник времени (для тестирования)
func (l *RateLimiter) WithClock(clock Clock) *RateLimiter {
	l.clock = clock
	return l
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.limiters[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[ip] = v
	}
	v.lastSeen = l.clock.Now()
	return v.limiter
}

// Len количество отслеживаемых адресов
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Sweep удаляет адреса без запросов дольше idle и возвращает их число
func (l *RateLimiter) Sweep(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.clock.Now().Add(-idle)
	removed := 0
	for ip, v := range l.limiters {
		if v.lastSeen.Before(cutoff) {
			delete(l.limiters, ip)
			removed++
		}
	}
	return removed
}

// RunJanitor периодически вызывает Sweep до отмены контекста
func (l *RateLimiter) RunJanitor(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("RateLimit: janitor stopped")
			return
		case <-ticker.C:
			if n := l.Sweep(idle); n > 0 {
				l.logger.Info("RateLimit: evicted %d idle addresses", n)
			}
		}
	}
}

// Middleware отклоняет запросы сверх лимита с 429
func (l *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !l.limiter(ip).Allow() {
				l.logger.Warn("RateLimit: limit exceeded: ip=%s, path=%s", ip, r.URL.Path)
				handlers.RespondTooManyRequests(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
