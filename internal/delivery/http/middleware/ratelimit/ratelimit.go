package http_ratelimit_middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Middleware keeps one token bucket per client IP. Buckets idle for
// longer than staleAfter are dropped by a background sweep.
type Middleware struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*client
}

const (
	staleAfter    = 3 * time.Minute
	sweepInterval = time.Minute
)

func New(rps float64, burst int) *Middleware {
	m := &Middleware{
		rps:     rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*client),
	}

	go m.sweep()

	return m
}

func (m *Middleware) Limit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !m.allow(ctx.ClientIP()) {
			ctx.JSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func (m *Middleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(m.rps, m.burst)}
		m.clients[ip] = c
	}
	c.lastSeen = time.Now()

	return c.limiter.Allow()
}

func (m *Middleware) sweep() {
	for {
		time.Sleep(sweepInterval)

		m.mu.Lock()
		for ip, c := range m.clients {
			if time.Since(c.lastSeen) > staleAfter {
				delete(m.clients, ip)
			}
		}
		m.mu.Unlock()
	}
}
