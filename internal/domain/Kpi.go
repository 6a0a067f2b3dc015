package domain

// GlobalKPIs representa a linha de KPIs da visão geral da agência
type GlobalKPIs struct {
	TotalGMV        float64 `json:"total_gmv"`
	TotalNetProfit  float64 `json:"total_net_profit"`
	TotalInvestment float64 `json:"total_investment"`
	WeightedROI     float64 `json:"weighted_roi"` // lucro total / investimento total
}
