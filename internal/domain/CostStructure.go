package domain

// CostStructure representa a decomposição anual de custos de um cliente para o
// gráfico de rosca. NetProfit aqui é apenas para exibição: quando o lucro somado
// é negativo ele vem truncado em 0; os valores usados nos KPIs e no leaderboard
// não sofrem esse truncamento.
type CostStructure struct {
	COGS         float64 `json:"cogs"`
	PlatformComm float64 `json:"platform_comm"`
	AdSpend      float64 `json:"ad_spend"`
	AgencyFee    float64 `json:"agency_fee"`
	NetProfit    float64 `json:"net_profit"`
}
