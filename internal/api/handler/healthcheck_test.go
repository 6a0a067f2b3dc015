package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-insight-api/internal/api/handler"
	"github.com/vfg2006/client-insight-api/internal/api/handler/router"
)

func TestHealthcheck(t *testing.T) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
	)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
