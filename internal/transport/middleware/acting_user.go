package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/pkg/ctxutil"
)

// ActingUserHeader names the user an internal call is made on behalf of.
// Identity is established upstream; this service trusts the header once the
// shared secret has been checked.
const ActingUserHeader = "X-Acting-User"

// ActingUser parses ActingUserHeader into the context. A missing header
// leaves the context untouched; a malformed one answers 400.
func ActingUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(ActingUserHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				writeError(w, http.StatusBadRequest, "invalid "+ActingUserHeader+" header")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithActingUser(r.Context(), id)))
		})
	}
}
