// Package synthetic gera a tabela de registros mensais que alimenta o dashboard.
// A geração acontece no máximo uma vez por processo; depois disso a tabela é
// imutável e pode ser lida por várias requisições ao mesmo tempo sem lock.
package synthetic

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/client-insight-api/internal/config"
	"github.com/vfg2006/client-insight-api/internal/domain"
	"github.com/vfg2006/client-insight-api/pkg/utils"
)

// DefaultClients é a carteira padrão de clientes O2O da agência
var DefaultClients = []string{
	"Tasty Wok Express", "Burger Kingpin", "Sushi Zen", "Pizza Heaven",
	"Taco Fiesta", "Curry House", "Noodle Bar 99", "Salad Greens",
	"Wings & Things", "Breakfast Club", "Mama's Pasta", "BBQ Smokehouse",
	"Vegan Vibes", "Donut Delights", "Smoothie Station", "Grill Master",
	"Seafood Shack", "Kebab Corner", "Dim Sum Daily", "Falafel Factory",
}

// Faixas de amostragem dos parâmetros por cliente
const (
	baseVolumeMin = 15000.0
	baseVolumeMax = 80000.0

	growthTrendMin = 0.95
	growthTrendMax = 1.20

	cogsRateMin = 0.35
	cogsRateMax = 0.45
)

// clientProfile reúne os parâmetros aleatórios sorteados uma única vez por
// cliente e válidos para o ano inteiro. Descartado após a emissão dos registros.
type clientProfile struct {
	baseVolume  float64 // volume mensal base de GMV
	growthTrend float64 // razão entre a tendência do mês 12 e a do mês 1
	cogsRate    float64 // custo da mercadoria como fração do GMV
}

// Generator sintetiza e memoiza a tabela de registros mensais
type Generator struct {
	dataset config.Dataset
	clients []string
	seed    int64

	once     sync.Once
	records  []domain.MonthlyRecord
	byClient map[string][]domain.MonthlyRecord
	meta     domain.DatasetMeta
}

// NewGenerator cria um gerador ainda sem dados; a tabela é sintetizada no
// primeiro acesso e reaproveitada em todos os seguintes
func NewGenerator(dataset config.Dataset) *Generator {
	clients := dataset.Clients
	if len(clients) == 0 {
		clients = DefaultClients
	}

	seed := dataset.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		dataset: dataset,
		clients: clients,
		seed:    seed,
	}
}

// Dataset retorna a tabela completa, gerando-a na primeira chamada. Chamadas
// seguintes no mesmo processo retornam exatamente a mesma tabela. O slice
// retornado é compartilhado e não deve ser mutado.
func (g *Generator) Dataset() []domain.MonthlyRecord {
	g.once.Do(g.generate)
	return g.records
}

// ByClient retorna o índice cliente -> registros ordenados por MonthIndex,
// construído uma única vez junto com a tabela
func (g *Generator) ByClient() map[string][]domain.MonthlyRecord {
	g.once.Do(g.generate)
	return g.byClient
}

// ClientNames retorna os nomes dos clientes na ordem de geração
func (g *Generator) ClientNames() []string {
	g.once.Do(g.generate)

	names := make([]string, len(g.clients))
	copy(names, g.clients)
	return names
}

// Meta retorna os metadados da tabela gerada
func (g *Generator) Meta() domain.DatasetMeta {
	g.once.Do(g.generate)
	return g.meta
}

func (g *Generator) generate() {
	rng := rand.New(rand.NewSource(g.seed))

	records := make([]domain.MonthlyRecord, 0, len(g.clients)*len(domain.MonthLabels))
	byClient := make(map[string][]domain.MonthlyRecord, len(g.clients))

	for _, client := range g.clients {
		profile := clientProfile{
			baseVolume:  uniform(rng, baseVolumeMin, baseVolumeMax),
			growthTrend: uniform(rng, growthTrendMin, growthTrendMax),
			cogsRate:    uniform(rng, cogsRateMin, cogsRateMax),
		}

		rows := g.generateClientYear(rng, client, profile)
		records = append(records, rows...)
		byClient[client] = rows
	}

	datasetID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível gerar o ID do dataset, usando o ID vazio")
	}

	g.records = records
	g.byClient = byClient
	g.meta = domain.DatasetMeta{
		ID:          datasetID,
		Seed:        g.seed,
		GeneratedAt: time.Now(),
		NumClients:  len(g.clients),
		NumRecords:  len(records),
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id":  g.meta.ID,
		"seed":        g.meta.Seed,
		"num_clients": g.meta.NumClients,
		"num_records": g.meta.NumRecords,
	}).Info("Tabela sintética gerada")
}

// generateClientYear emite os 12 registros mensais de um cliente a partir do
// seu perfil sorteado
func (g *Generator) generateClientYear(rng *rand.Rand, client string, profile clientProfile) []domain.MonthlyRecord {
	rows := make([]domain.MonthlyRecord, 0, len(domain.MonthLabels))

	for i, month := range domain.MonthLabels {
		// Interpolação linear: 1.0 no mês 0 até growthTrend no mês 11
		trendFactor := 1 + (float64(i)/11)*(profile.growthTrend-1)
		noise := uniform(rng, 0.9, 1.1)

		gmv := profile.baseVolume * trendFactor * noise
		// O baseline é amostrado de forma independente, então em meses ruins
		// ele pode pontualmente superar o GMV realizado
		baselineGMV := gmv * uniform(rng, 0.6, 0.8)
		adSpend := gmv * uniform(rng, 0.08, 0.15)

		totalInvestment := adSpend + g.dataset.AgencyFee
		cogs := gmv * profile.cogsRate
		platformComm := gmv * g.dataset.CommissionRate
		netProfit := gmv - cogs - platformComm - totalInvestment

		rows = append(rows, domain.MonthlyRecord{
			ClientName:      client,
			Month:           month,
			MonthIndex:      i,
			GMV:             gmv,
			BaselineGMV:     baselineGMV,
			AdSpend:         adSpend,
			AgencyFee:       g.dataset.AgencyFee,
			COGS:            cogs,
			PlatformComm:    platformComm,
			TotalInvestment: totalInvestment,
			NetProfit:       netProfit,
			ROI:             domain.CalculateROI(netProfit, totalInvestment),
		})
	}

	return rows
}

// uniform sorteia um valor no intervalo [min, max)
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
