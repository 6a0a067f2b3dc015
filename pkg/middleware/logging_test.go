package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-insight-api/pkg/log"
)

func TestLoggingMiddleware_PropagaCorrelationID(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	wrapped := LoggingMiddleware()(next)

	req := httptest.NewRequest(http.MethodGet, "/v1/overview/kpis", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	// O handler enxerga o ID no contexto e o cliente o recebe no cabeçalho
	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rec.Header().Get("X-Correlation-Id"))
}

func TestLogPanicMiddleware_Responde500(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	wrapped := LogPanicMiddleware()(next)

	req := httptest.NewRequest(http.MethodGet, "/v1/overview/kpis", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
