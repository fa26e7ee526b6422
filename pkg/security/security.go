package security

import (
	"net/http"
	"peer_edu_backend/internal/util"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS 中间件 仅允许白名单中的Origin，支持Credentials
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originSet[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && originSet[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}

// KeyFunc 限流维度
type KeyFunc func(c *gin.Context) string

func ClientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// UserKey 已登录用户按 sid 限流，否则退回 IP
func UserKey(c *gin.Context) string {
	if user := util.GetUserFromContext(c); user != nil && user.Sid != "" {
		return "user:" + user.Sid
	}
	return c.ClientIP()
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (s *limiterStore) evict(expiry time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.visitors {
		if time.Since(v.lastSeen) > expiry {
			delete(s.visitors, k)
		}
	}
}

// RateLimiter 每个 key 在 window 内最多 maxRequests 次，过期条目定期清理
func RateLimiter(maxRequests int, window time.Duration, keyFn KeyFunc) gin.HandlerFunc {
	if maxRequests <= 0 {
		maxRequests = 1
	}
	store := &limiterStore{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(maxRequests)),
		burst:    maxRequests,
	}

	go func() {
		expiry := window * 3
		if expiry < time.Minute {
			expiry = time.Minute
		}
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			store.evict(expiry)
		}
	}()

	return func(c *gin.Context) {
		if !store.get(keyFn(c)).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, util.Response{
				Code:    http.StatusTooManyRequests,
				Message: "too many requests",
			})
			return
		}
		c.Next()
	}
}
