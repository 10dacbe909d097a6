package api

import (
	"log/slog"
	"net/http"

	"github.com/AlexZinkM/wallet-store/internal/hostenv"
	"github.com/AlexZinkM/wallet-store/internal/model"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiter *rate.Limiter
}

// newRateLimiter returns nil (no limiting) when rps is not positive. The API
// only listens for the local user, so one shared bucket is enough.
func newRateLimiter(rps float64, burst int) *rateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	if rl == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter.Allow() {
			slog.Warn("rate limit exceeded", "path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = jsoniter.NewEncoder(w).Encode(model.ErrorResponse{Error: "too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverHostEnvironment turns a lost config directory into a 500 for the
// request that hit it. Any other panic is left to net/http.
func recoverHostEnvironment(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			hostErr, ok := rec.(*hostenv.HostEnvironmentError)
			if !ok {
				panic(rec)
			}
			slog.Error("host environment unavailable", "path", r.URL.Path, "error", hostErr)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = jsoniter.NewEncoder(w).Encode(model.ErrorResponse{Error: hostErr.Error()})
		}()
		next.ServeHTTP(w, r)
	})
}
