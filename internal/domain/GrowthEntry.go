package domain

// GrowthEntry representa uma linha do leaderboard de crescimento de lucro
type GrowthEntry struct {
	ClientName      string  `json:"client_name"`
	ProfitGrowthPct float64 `json:"profit_growth_pct"` // último mês vs primeiro mês
	NetProfitTotal  float64 `json:"net_profit_total"`
}
