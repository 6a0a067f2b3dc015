package reporting

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/client-insight-api/internal/config"
	"github.com/vfg2006/client-insight-api/internal/domain"
	"github.com/vfg2006/client-insight-api/pkg/utils"
)

// ErrClientNotFound indica que o nome de cliente pedido não existe na tabela
var ErrClientNotFound = errors.New("cliente não encontrado")

// Service implementa a interface Reporter sobre um DatasetProvider
type Service struct {
	provider        DatasetProvider
	leaderboardSize int
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(provider DatasetProvider, cfg *config.Config) Reporter {
	return &Service{
		provider:        provider,
		leaderboardSize: cfg.Report.LeaderboardSize,
	}
}

func (s *Service) GlobalKPIs() *domain.GlobalKPIs {
	return GlobalKPIs(s.provider.Dataset())
}

func (s *Service) HealthMatrix() []*domain.ClientAggregate {
	return ClientAggregates(s.provider.Dataset())
}

func (s *Service) GrowthLeaderboard(topN int) []*domain.GrowthEntry {
	if topN <= 0 {
		topN = s.leaderboardSize
	}

	return GrowthLeaderboard(s.provider.Dataset(), topN)
}

func (s *Service) Clients() []string {
	return s.provider.ClientNames()
}

func (s *Service) ClientRecords(clientName string) ([]domain.MonthlyRecord, error) {
	rows, ok := s.provider.ByClient()[clientName]
	if !ok {
		return nil, errors.Wrap(ErrClientNotFound, clientName)
	}

	return sortedByMonth(rows), nil
}

func (s *Service) ClientCostStructure(clientName string) (*domain.CostStructure, error) {
	rows, ok := s.provider.ByClient()[clientName]
	if !ok {
		return nil, errors.Wrap(ErrClientNotFound, clientName)
	}

	return CostStructure(rows), nil
}

// ClientReport monta o cabeçalho da visão detalhada: métricas do último mês,
// o múltiplo de retorno por dólar investido e os totais anuais do cliente
func (s *Service) ClientReport(clientName string) (*domain.ClientReport, error) {
	rows, err := s.ClientRecords(clientName)
	if err != nil {
		return nil, err
	}

	lastMonth := rows[len(rows)-1]
	// O múltiplo é uma métrica de exibição; duas casas bastam para a narrativa
	multiple := utils.RoundWithTwoDecimalPlace(lastMonth.ROIMultiple())

	report := &domain.ClientReport{
		ClientName:         clientName,
		LastMonth:          lastMonth,
		GMVDeltaVsBaseline: lastMonth.GMV - lastMonth.BaselineGMV,
		ROIMultiple:        multiple,
		Insight: fmt.Sprintf(
			"For every $1 invested this month, we generated %s in sales.",
			utils.FormatCurrency(multiple),
		),
	}

	aggregates := ClientAggregates(rows)
	if len(aggregates) == 1 {
		report.Totals = aggregates[0]
	}

	return report, nil
}

func (s *Service) DatasetMeta() domain.DatasetMeta {
	return s.provider.Meta()
}

// GlobalKPIs soma GMV, lucro e investimento de toda a tabela e calcula o ROI
// ponderado da carteira. Tabela com investimento total zero resulta em ROI 0,
// nunca em divisão por zero.
func GlobalKPIs(records []domain.MonthlyRecord) *domain.GlobalKPIs {
	kpis := &domain.GlobalKPIs{}

	for _, record := range records {
		kpis.TotalGMV += record.GMV
		kpis.TotalNetProfit += record.NetProfit
		kpis.TotalInvestment += record.TotalInvestment
	}

	kpis.WeightedROI = domain.CalculateROI(kpis.TotalNetProfit, kpis.TotalInvestment)

	return kpis
}

// ClientAggregates agrupa a tabela por cliente, preservando a ordem de primeira
// aparição, e calcula os agregados anuais. AvgMonthlyROI é a média simples dos
// ROIs mensais; OverallROI é recalculado sobre os totais — os dois divergem
// quando o investimento varia entre os meses e ambos são expostos.
func ClientAggregates(records []domain.MonthlyRecord) []*domain.ClientAggregate {
	var order []string
	byName := make(map[string]*domain.ClientAggregate)
	roiSum := make(map[string]float64)
	months := make(map[string]int)

	for _, record := range records {
		agg, ok := byName[record.ClientName]
		if !ok {
			agg = &domain.ClientAggregate{ClientName: record.ClientName}
			byName[record.ClientName] = agg
			order = append(order, record.ClientName)
		}

		agg.TotalInvestment += record.TotalInvestment
		agg.NetProfit += record.NetProfit
		agg.GMV += record.GMV
		roiSum[record.ClientName] += record.ROI
		months[record.ClientName]++
	}

	aggregates := make([]*domain.ClientAggregate, 0, len(order))
	for _, name := range order {
		agg := byName[name]
		agg.AvgMonthlyROI = roiSum[name] / float64(months[name])
		agg.OverallROI = domain.CalculateROI(agg.NetProfit, agg.TotalInvestment)
		aggregates = append(aggregates, agg)
	}

	return aggregates
}

// GrowthLeaderboard compara o lucro do último mês com o do primeiro (pela
// ordem cronológica de MonthIndex) de cada cliente e devolve os topN maiores
// crescimentos, em ordem decrescente. Empates preservam a ordem de primeira
// aparição do cliente na tabela. Primeiro mês com lucro exatamente zero entra
// com crescimento 0 em vez de dividir por zero.
func GrowthLeaderboard(records []domain.MonthlyRecord, topN int) []*domain.GrowthEntry {
	var order []string
	rowsByClient := make(map[string][]domain.MonthlyRecord)

	for _, record := range records {
		if _, ok := rowsByClient[record.ClientName]; !ok {
			order = append(order, record.ClientName)
		}
		rowsByClient[record.ClientName] = append(rowsByClient[record.ClientName], record)
	}

	entries := make([]*domain.GrowthEntry, 0, len(order))
	for _, name := range order {
		rows := sortedByMonth(rowsByClient[name])

		firstProfit := rows[0].NetProfit
		lastProfit := rows[len(rows)-1].NetProfit

		growthPct := 0.0
		if firstProfit != 0 {
			// O crescimento é relativo à magnitude do lucro inicial, então um
			// cliente que sai de prejuízo para lucro tem crescimento positivo
			growthPct = ((lastProfit - firstProfit) / math.Abs(firstProfit)) * 100
		}

		total := 0.0
		for _, row := range rows {
			total += row.NetProfit
		}

		entries = append(entries, &domain.GrowthEntry{
			ClientName:      name,
			ProfitGrowthPct: growthPct,
			NetProfitTotal:  total,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ProfitGrowthPct > entries[j].ProfitGrowthPct
	})

	if topN >= 0 && topN < len(entries) {
		entries = entries[:topN]
	}

	return entries
}

// CostStructure soma as cinco categorias de custo das linhas de um cliente.
// NetProfit negativo é truncado em 0 apenas nesta saída; os demais cálculos
// continuam usando o lucro sem truncamento.
func CostStructure(rows []domain.MonthlyRecord) *domain.CostStructure {
	cs := &domain.CostStructure{}

	for _, row := range rows {
		cs.COGS += row.COGS
		cs.PlatformComm += row.PlatformComm
		cs.AdSpend += row.AdSpend
		cs.AgencyFee += row.AgencyFee
		cs.NetProfit += row.NetProfit
	}

	if cs.NetProfit < 0 {
		cs.NetProfit = 0
	}

	return cs
}

// sortedByMonth retorna uma cópia das linhas ordenada por MonthIndex crescente,
// sem mutar a tabela compartilhada
func sortedByMonth(rows []domain.MonthlyRecord) []domain.MonthlyRecord {
	sorted := make([]domain.MonthlyRecord, len(rows))
	copy(sorted, rows)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MonthIndex < sorted[j].MonthIndex
	})

	return sorted
}
