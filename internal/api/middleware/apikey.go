package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/vivendahub/Property-Sales-Backend/internal/api/response"
)

// timeTokenWindow is the granularity of the anti-replay time token. A token
// is accepted for its own window and the previous one.
const timeTokenWindow = time.Minute

// GenerateTimeToken derives the current time token for the given API key.
// Exposed so internal callers and tests can authenticate against the
// protected endpoints.
func GenerateTimeToken(apiKey string) string {
	return timeTokenAt(apiKey, time.Now())
}

func timeTokenAt(apiKey string, at time.Time) string {
	window := at.UTC().Truncate(timeTokenWindow).Format(time.RFC3339)
	mac := hmac.New(sha256.New, []byte(apiKey))
	mac.Write([]byte(window))
	return hex.EncodeToString(mac.Sum(nil))
}

// APIKeyMiddleware guards mutation endpoints with a shared API key plus a
// time-windowed HMAC token. The key comes from INTERNAL_API_KEY; a missing
// key is a server misconfiguration, not a client error.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusInternalServerError, "internal error", "Authentication not loaded")
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}
		if !hmac.Equal([]byte(provided), []byte(expected)) {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		token := r.Header.Get("X-Time-Token")
		if token == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
			return
		}

		now := time.Now()
		current := timeTokenAt(expected, now)
		previous := timeTokenAt(expected, now.Add(-timeTokenWindow))
		if !hmac.Equal([]byte(token), []byte(current)) && !hmac.Equal([]byte(token), []byte(previous)) {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}
