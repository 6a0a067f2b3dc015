package domain

// ClientReport representa o cabeçalho da visão detalhada de um cliente: as
// métricas do último mês e a narrativa de retorno por dólar investido
type ClientReport struct {
	ClientName string `json:"client_name"`

	LastMonth          MonthlyRecord `json:"last_month"`
	GMVDeltaVsBaseline float64       `json:"gmv_delta_vs_baseline"`

	ROIMultiple float64 `json:"roi_multiple"`
	Insight     string  `json:"insight"` // texto exibido no card de LTV do dashboard

	Totals *ClientAggregate `json:"totals,omitempty"`
}
