package middlewares

import (
	"context"
	"net/http"
	"vetcare-service/internal/pkg/constvars"
	"vetcare-service/internal/pkg/exceptions"
	"vetcare-service/internal/pkg/utils"
)

// ActorMiddleware lifts the caller identity from the X-User-ID header into
// the request context. Identity is asserted by the gateway in front of this
// service; requests without it cannot be authorized for any operation.
func (m *Middlewares) ActorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID := r.Header.Get(constvars.HeaderXUserID)
		if actorID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingActorID(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACTOR_ID_KEY, actorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
