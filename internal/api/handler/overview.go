package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/client-insight-api/internal/usecases/reporting"
	"github.com/vfg2006/client-insight-api/pkg/apiErrors"
	"github.com/vfg2006/client-insight-api/pkg/log"
	"github.com/vfg2006/client-insight-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON codifica o payload como JSON; falha de codificação vira 500
func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}

// GetGlobalKPIs retorna os KPIs agregados da carteira (GMV, lucro e ROI ponderado)
func GetGlobalKPIs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kpis := service.GlobalKPIs()

		log.ForContext(r.Context()).WithFields(log.Fields{
			"total_gmv":    utils.FormatCurrency(kpis.TotalGMV),
			"weighted_roi": utils.FormatPercent(kpis.WeightedROI),
		}).Debug("overview: KPIs calculados")

		writeJSON(w, r, kpis)
	})
}

// GetHealthMatrix retorna os agregados anuais por cliente para o gráfico de
// dispersão investimento x ROI
func GetHealthMatrix(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		aggregates := service.HealthMatrix()

		log.ForContext(r.Context()).WithFields(log.Fields{
			"clients_returned": len(aggregates),
		}).Debug("overview: matriz de saúde calculada")

		writeJSON(w, r, aggregates)
	})
}

// GetGrowthLeaderboard retorna o ranking de crescimento de lucro. O parâmetro
// opcional top_n limita o tamanho; ausente, vale o padrão configurado.
func GetGrowthLeaderboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		topN := 0
		if raw := r.URL.Query().Get("top_n"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				logger.WithFields(log.Fields{"top_n": raw}).Warn("leaderboard: top_n inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro top_n deve ser um inteiro positivo", nil)
				return
			}
			topN = parsed
		}

		leaderboard := service.GrowthLeaderboard(topN)

		logger.WithFields(log.Fields{
			"top_n":            topN,
			"entries_returned": len(leaderboard),
		}).Debug("leaderboard: ranking calculado")

		writeJSON(w, r, leaderboard)
	})
}

// GetDatasetMeta retorna os metadados da tabela sintetizada em memória
func GetDatasetMeta(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.DatasetMeta())
	})
}
