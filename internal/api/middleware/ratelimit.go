package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

const clientTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit ограничивает частоту запросов по IP клиента (token bucket).
// Вешается на публичную форму бронирования, чтобы одна заявка в секунду
// не превращалась в спам журнала.
func RateLimit(rps float64, burst int) mux.MiddlewareFunc {
	var mu sync.Mutex
	clients := make(map[string]*client)

	// Фоновая чистка давно не появлявшихся клиентов
	go func() {
		for range time.Tick(clientTTL) {
			mu.Lock()
			for ip, c := range clients {
				if time.Since(c.lastSeen) > clientTTL {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			mu.Lock()
			c, ok := clients[ip]
			if !ok {
				c = &client{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
				clients[ip] = c
			}
			c.lastSeen = time.Now()
			allowed := c.limiter.Allow()
			mu.Unlock()

			if !allowed {
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP определяет IP клиента с учётом прокси
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
