package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"vetcare-service/internal/app/config"
	"vetcare-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	t.Run("Generates an id when the client sends none", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/appointments", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, recorder.Header().Get(constvars.HeaderXRequestID), "the id is echoed back to the client")
	})

	t.Run("Keeps a client-supplied id", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		request := httptest.NewRequest(http.MethodGet, "/v1/appointments", nil)
		request.Header.Set(constvars.HeaderXRequestID, "client-chosen-id")
		handler.ServeHTTP(httptest.NewRecorder(), request)

		assert.Equal(t, "client-chosen-id", seen)
	})
}

func TestActorMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	t.Run("Lifts X-User-ID into the context", func(t *testing.T) {
		var seen string
		handler := m.ActorMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)
		}))

		request := httptest.NewRequest(http.MethodGet, "/v1/appointments", nil)
		request.Header.Set(constvars.HeaderXUserID, "c1")
		handler.ServeHTTP(httptest.NewRecorder(), request)

		assert.Equal(t, "c1", seen)
	})

	t.Run("Rejects requests without an identity", func(t *testing.T) {
		called := false
		handler := m.ActorMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/appointments", nil))

		assert.False(t, called, "the handler must not run without an actor")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
