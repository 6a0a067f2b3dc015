package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-insight-api/internal/api/handler"
	"github.com/vfg2006/client-insight-api/internal/api/handler/router"
	"github.com/vfg2006/client-insight-api/internal/domain"
	"github.com/vfg2006/client-insight-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newOverviewRouter(t *testing.T) (*mocks.MockReporter, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	rt := router.New(
		router.WithRoutes(handler.Overview(reporter)...),
		router.WithRoutes(handler.Dataset(reporter)...),
	)

	return reporter, rt
}

func TestGetGlobalKPIs(t *testing.T) {
	reporter, rt := newOverviewRouter(t)

	reporter.EXPECT().GlobalKPIs().Return(&domain.GlobalKPIs{
		TotalGMV:        100000,
		TotalNetProfit:  20000,
		TotalInvestment: 40000,
		WeightedROI:     50,
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/overview/kpis", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var kpis domain.GlobalKPIs
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kpis))
	assert.Equal(t, 100000.0, kpis.TotalGMV)
	assert.Equal(t, 50.0, kpis.WeightedROI)
}

func TestGetHealthMatrix(t *testing.T) {
	reporter, rt := newOverviewRouter(t)

	reporter.EXPECT().HealthMatrix().Return([]*domain.ClientAggregate{
		{ClientName: "Loja A", TotalInvestment: 30000, OverallROI: 42.5},
		{ClientName: "Loja B", TotalInvestment: 52000, OverallROI: -3.1},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/overview/health-matrix", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var aggregates []domain.ClientAggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &aggregates))
	require.Len(t, aggregates, 2)
	assert.Equal(t, "Loja A", aggregates[0].ClientName)
}

func TestGetGrowthLeaderboard(t *testing.T) {
	t.Run("Sem top_n - delega ao tamanho padrão do serviço", func(t *testing.T) {
		reporter, rt := newOverviewRouter(t)

		reporter.EXPECT().GrowthLeaderboard(0).Return([]*domain.GrowthEntry{
			{ClientName: "Loja C", ProfitGrowthPct: 200, NetProfitTotal: 1234},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/overview/leaderboard", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var entries []domain.GrowthEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "Loja C", entries[0].ClientName)
	})

	t.Run("top_n numérico repassado ao serviço", func(t *testing.T) {
		reporter, rt := newOverviewRouter(t)

		reporter.EXPECT().GrowthLeaderboard(2).Return([]*domain.GrowthEntry{})

		req := httptest.NewRequest(http.MethodGet, "/v1/overview/leaderboard?top_n=2", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("top_n inválido - 400 com código de validação", func(t *testing.T) {
		_, rt := newOverviewRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/overview/leaderboard?top_n=abc", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_001")
	})
}

func TestGetDatasetMeta(t *testing.T) {
	reporter, rt := newOverviewRouter(t)

	reporter.EXPECT().DatasetMeta().Return(domain.DatasetMeta{
		ID:         "abc12345",
		Seed:       42,
		NumClients: 20,
		NumRecords: 240,
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/dataset", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var meta domain.DatasetMeta
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meta))
	assert.Equal(t, "abc12345", meta.ID)
	assert.Equal(t, 240, meta.NumRecords)
}
