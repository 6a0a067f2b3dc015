package handler

import (
	"net/http"

	"github.com/vfg2006/client-insight-api/internal/api/handler/router"
	"github.com/vfg2006/client-insight-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Overview retorna as rotas da visão geral da agência (aba "Master Overview")
func Overview(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/overview/kpis",
			Method:  http.MethodGet,
			Handler: GetGlobalKPIs(service),
		},
		{
			Path:    "/v1/overview/health-matrix",
			Method:  http.MethodGet,
			Handler: GetHealthMatrix(service),
		},
		{
			Path:    "/v1/overview/leaderboard",
			Method:  http.MethodGet,
			Handler: GetGrowthLeaderboard(service),
		},
	}
}

// Clients retorna as rotas da visão detalhada por cliente (aba "Client Detail")
func Clients(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
		{
			Path:    "/v1/clients/:name/records",
			Method:  http.MethodGet,
			Handler: GetClientRecords(service),
		},
		{
			Path:    "/v1/clients/:name/report",
			Method:  http.MethodGet,
			Handler: GetClientReport(service),
		},
		{
			Path:    "/v1/clients/:name/cost-structure",
			Method:  http.MethodGet,
			Handler: GetClientCostStructure(service),
		},
		{
			Path:    "/v1/clients/:name/export",
			Method:  http.MethodGet,
			Handler: ExportClientCSV(service),
		},
	}
}

// Dataset retorna a rota de metadados da tabela sintetizada
func Dataset(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetMeta(service),
		},
	}
}
