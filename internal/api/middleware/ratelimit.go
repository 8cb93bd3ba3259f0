package middleware

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

const (
	defaultRateLimitRequests = 10
	defaultRateLimitWindow   = time.Minute
	defaultRateLimitPrefix   = "rl"

	msgLimiterUnavailable = "Serviço temporariamente indisponível."
)

// ErrUnexpectedScriptResult Lua-скрипт вернул значение неожиданного типа
var ErrUnexpectedScriptResult = errors.New("unexpected rate limit script result")

// RateLimit ограничивает частоту запросов по IP клиента
// При ошибке limiter'а и failOpen=true запрос пропускается, иначе 503
// X-Forwarded-For учитывается только при trustProxy (сервис за reverse proxy)
func RateLimit(limiter Limiter, failOpen, trustProxy bool, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r, trustProxy)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("%s %s - Rate limiter error: %v", r.Method, r.URL.Path, err)
				if failOpen {
					next.ServeHTTP(w, r)
					return
				}
				handlers.RespondServiceUnavailable(w, msgLimiterUnavailable)
				return
			}

			if !allowed {
				logger.Warn("%s %s - Rate limit exceeded: client=%s", r.Method, r.URL.Path, key)
				handlers.RespondTooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MemoryLimiter token bucket на каждый ключ в памяти процесса
// Используется, когда Redis не настроен, и как запасной вариант при его недоступности
// Ключи без запросов дольше window удаляются: за это время их bucket снова полный
type MemoryLimiter struct {
	mu           sync.Mutex
	visitors     map[string]*visitor
	limit        rate.Limit
	burst        int
	idleTTL      time.Duration
	lastSweep    time.Time
	timeProvider TimeProvider
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryLimiter создает limiter на requests запросов за window
func NewMemoryLimiter(requests int, window time.Duration) *MemoryLimiter {
	requests, window = normalizeLimit(requests, window)

	return &MemoryLimiter{
		visitors:     make(map[string]*visitor),
		limit:        rate.Every(window / time.Duration(requests)),
		burst:        requests,
		idleTTL:      window,
		timeProvider: RealTimeProvider{},
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.timeProvider.Now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1), nil
}

// sweep удаляет простаивающие ключи; вызывается под l.mu не чаще раза за idleTTL
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter fixed window в Redis, общий для всех экземпляров сервиса
// Если Redis недоступен и задан fallback, решение принимает fallback
type RedisLimiter struct {
	client   redis.Scripter
	requests int
	window   time.Duration
	prefix   string
	fallback Limiter
	logger   Logger
}

// NewRedisLimiter создает limiter; fallback может быть nil
func NewRedisLimiter(client redis.Scripter, requests int, window time.Duration, prefix string, fallback Limiter, logger Logger) *RedisLimiter {
	requests, window = normalizeLimit(requests, window)

	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultRateLimitPrefix
	}

	return &RedisLimiter{
		client:   client,
		requests: requests,
		window:   window,
		prefix:   prefix,
		fallback: fallback,
		logger:   logger,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.incr(ctx, l.prefix+":"+key)
	if err != nil {
		if l.fallback == nil {
			return false, err
		}
		l.logger.Warn("RedisLimiter - Redis unavailable, using local limiter: %v", err)
		return l.fallback.Allow(ctx, key)
	}

	return count <= int64(l.requests), nil
}

func (l *RedisLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}

	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrUnexpectedScriptResult, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnexpectedScriptResult, res)
	}
}

func normalizeLimit(requests int, window time.Duration) (int, time.Duration) {
	if requests <= 0 {
		requests = defaultRateLimitRequests
	}
	if window <= 0 {
		window = defaultRateLimitWindow
	}
	return requests, window
}

// clientKey IP клиента; при trustProxy берется первый адрес из X-Forwarded-For
// Без доверенного прокси заголовок задает сам клиент, поэтому используется RemoteAddr
func clientKey(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			parts := strings.Split(forwarded, ",")
			if first := strings.TrimSpace(parts[0]); first != "" {
				return first
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
