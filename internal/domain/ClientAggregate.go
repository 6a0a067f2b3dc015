package domain

// ClientAggregate representa os agregados anuais de um cliente usados na matriz
// de saúde (investimento x ROI, bolha dimensionada pelo GMV)
type ClientAggregate struct {
	ClientName      string  `json:"client_name"`
	TotalInvestment float64 `json:"total_investment"`
	NetProfit       float64 `json:"net_profit"`
	GMV             float64 `json:"gmv"`

	// AvgMonthlyROI é a média simples dos ROIs mensais; OverallROI é o ROI
	// recalculado sobre os totais (ponderado pelo investimento). Os dois
	// divergem de propósito e alimentam visualizações diferentes.
	AvgMonthlyROI float64 `json:"avg_monthly_roi"`
	OverallROI    float64 `json:"overall_roi"`
}
