package httphandler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

const bearerTokenKey contextKey = "bearer_token"

// TokenValidator is the slice of the token authority the auth gate needs.
type TokenValidator interface {
	// Validate reports whether the presented token matches the active
	// session. False is an ordinary outcome; an error is a storage fault.
	Validate(ctx context.Context, token string) (bool, error)
}

// requireAuth wraps a handler with the bearer-token gate, the single choke
// point in front of every protected route. The gate holds no state of its
// own: the outcome is purely a function of the Authorization header and the
// current token store, so a superseded token is rejected on the very next
// request. On success the validated token is placed on the request context
// for pass-through use; the wrapped handler performs no identity logic.
func requireAuth(validator TokenValidator, logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			unauthorized(w, "missing or malformed authorization header")
			return
		}

		valid, err := validator.Validate(r.Context(), token)
		if err != nil {
			logger.Error("token validation failed", "error", err, "request_id", requestIDFrom(r.Context()))
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if !valid {
			unauthorized(w, "invalid authentication token")
			return
		}

		ctx := context.WithValue(r.Context(), bearerTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns false for a missing header, a non-Bearer scheme, or an
// empty token.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

// BearerTokenFrom returns the validated token requireAuth placed on the
// context, or an empty string outside a protected route.
func BearerTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenKey).(string)
	return token
}

// unauthorized writes the 401 challenge response. The message stays generic
// so the response never narrows down what exactly was wrong.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, message)
}
