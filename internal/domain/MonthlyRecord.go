// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// MonthLabels são os rótulos fixos dos 12 meses do ano sintetizado.
// A ordem cronológica é dada por MonthIndex, não pelo rótulo.
var MonthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyRecord representa uma linha (cliente, mês) da tabela sintetizada
type MonthlyRecord struct {
	ClientName      string  `json:"client_name"`
	Month           string  `json:"month"`
	MonthIndex      int     `json:"month_index"` // 0..11, define a ordem cronológica
	GMV             float64 `json:"gmv"`
	BaselineGMV     float64 `json:"baseline_gmv"`
	AdSpend         float64 `json:"ad_spend"`
	AgencyFee       float64 `json:"agency_fee"`
	COGS            float64 `json:"cogs"`
	PlatformComm    float64 `json:"platform_comm"`
	TotalInvestment float64 `json:"total_investment"`
	NetProfit       float64 `json:"net_profit"`
	ROI             float64 `json:"roi"`
}

// CalculateROI calcula o ROI percentual de um lucro sobre um investimento.
// Retorna 0 quando o investimento é zero para nunca dividir por zero.
func CalculateROI(netProfit, totalInvestment float64) float64 {
	if totalInvestment == 0 {
		return 0
	}

	return (netProfit / totalInvestment) * 100
}

// ROIMultiple retorna quantos dólares de GMV foram gerados por dólar investido
// no mês ("para cada $1 investido, geramos $X em vendas").
// Retorna 0 quando o investimento é zero.
func (r MonthlyRecord) ROIMultiple() float64 {
	if r.TotalInvestment == 0 {
		return 0
	}

	return r.GMV / r.TotalInvestment
}
