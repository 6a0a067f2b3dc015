package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/client-insight-api/internal/domain"
	"github.com/vfg2006/client-insight-api/internal/usecases/reporting"
	"github.com/vfg2006/client-insight-api/pkg/apiErrors"
	"github.com/vfg2006/client-insight-api/pkg/log"
)

// csvHeader segue exatamente o esquema da tabela exposto pela API
var csvHeader = []string{
	"client_name", "month", "month_index", "gmv", "baseline_gmv", "ad_spend",
	"agency_fee", "cogs", "platform_comm", "total_investment", "net_profit", "roi",
}

// ListClients retorna os nomes de clientes disponíveis para o seletor lateral
func ListClients(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.Clients())
	})
}

// GetClientRecords retorna as 12 linhas de um cliente em ordem cronológica,
// usadas no gráfico de área GMV real x baseline
func GetClientRecords(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		records, err := service.ClientRecords(name)
		if err != nil {
			writeReportError(w, r, name, err)
			return
		}

		writeJSON(w, r, records)
	})
}

// GetClientReport retorna o cabeçalho da visão detalhada de um cliente
func GetClientReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		report, err := service.ClientReport(name)
		if err != nil {
			writeReportError(w, r, name, err)
			return
		}

		writeJSON(w, r, report)
	})
}

// GetClientCostStructure retorna a decomposição anual de custos de um cliente
// para o gráfico de rosca
func GetClientCostStructure(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		costs, err := service.ClientCostStructure(name)
		if err != nil {
			writeReportError(w, r, name, err)
			return
		}

		writeJSON(w, r, costs)
	})
}

// ExportClientCSV baixa as 12 linhas de um cliente como CSV
func ExportClientCSV(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		records, err := service.ClientRecords(name)
		if err != nil {
			writeReportError(w, r, name, err)
			return
		}

		// Monta o arquivo em memória: assim uma falha de geração ainda pode
		// responder um erro de API em vez de um corpo truncado com status 200
		payload, err := renderCSV(records)
		if err != nil {
			logger.WithError(err).WithField("client", name).Error("export: erro ao gerar o CSV")
			apiErrors.WriteError(w, apiErrors.ErrExportFailure, "Erro ao gerar o arquivo de exportação", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+"_report.csv"))

		if _, err := w.Write(payload); err != nil {
			logger.WithError(err).Error("export: erro ao enviar o CSV")
			return
		}

		logger.WithFields(log.Fields{
			"client": name,
			"rows":   len(records),
		}).Info("export: relatório CSV gerado")
	})
}

func renderCSV(records []domain.MonthlyRecord) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, record := range records {
		if err := writer.Write(csvRow(record)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func csvRow(record domain.MonthlyRecord) []string {
	float := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return []string{
		record.ClientName,
		record.Month,
		strconv.Itoa(record.MonthIndex),
		float(record.GMV),
		float(record.BaselineGMV),
		float(record.AdSpend),
		float(record.AgencyFee),
		float(record.COGS),
		float(record.PlatformComm),
		float(record.TotalInvestment),
		float(record.NetProfit),
		float(record.ROI),
	}
}

// writeReportError traduz erros do serviço de relatórios para a resposta HTTP
func writeReportError(w http.ResponseWriter, r *http.Request, name string, err error) {
	logger := log.ForContext(r.Context()).WithError(err).WithField("client", name)

	if errors.Is(err, reporting.ErrClientNotFound) {
		logger.Warn("client: cliente não encontrado")
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", name)
		return
	}

	logger.Error("client: erro ao montar relatório")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório", nil)
}
