package reporting

import (
	"github.com/vfg2006/client-insight-api/internal/domain"
)

// DatasetProvider define a interface da fonte de dados do dashboard. A
// implementação real é o gerador sintético memoizado; os métodos sempre
// retornam a mesma tabela dentro de um processo.
type DatasetProvider interface {
	// Dataset retorna a tabela completa de registros mensais
	Dataset() []domain.MonthlyRecord

	// ByClient retorna o índice cliente -> registros ordenados por mês
	ByClient() map[string][]domain.MonthlyRecord

	// ClientNames retorna os nomes dos clientes na ordem de geração
	ClientNames() []string

	// Meta retorna os metadados da tabela gerada
	Meta() domain.DatasetMeta
}

// Reporter é a interface consumida pelos handlers HTTP: todas as consultas
// derivadas que o dashboard renderiza
type Reporter interface {
	// GlobalKPIs calcula os KPIs agregados da carteira inteira
	GlobalKPIs() *domain.GlobalKPIs

	// HealthMatrix calcula os agregados anuais por cliente para a matriz de saúde
	HealthMatrix() []*domain.ClientAggregate

	// GrowthLeaderboard calcula o ranking de crescimento de lucro; topN <= 0
	// usa o tamanho padrão configurado
	GrowthLeaderboard(topN int) []*domain.GrowthEntry

	// Clients retorna os nomes de clientes disponíveis para seleção
	Clients() []string

	// ClientRecords retorna as 12 linhas de um cliente ordenadas por mês
	ClientRecords(clientName string) ([]domain.MonthlyRecord, error)

	// ClientCostStructure calcula a decomposição anual de custos de um cliente
	ClientCostStructure(clientName string) (*domain.CostStructure, error)

	// ClientReport monta o cabeçalho da visão detalhada de um cliente
	ClientReport(clientName string) (*domain.ClientReport, error)

	// DatasetMeta retorna os metadados da tabela em memória
	DatasetMeta() domain.DatasetMeta
}
