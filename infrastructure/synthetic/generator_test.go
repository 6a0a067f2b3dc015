package synthetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/client-insight-api/internal/config"
	"github.com/vfg2006/client-insight-api/internal/domain"
)

func testDataset() config.Dataset {
	return config.Dataset{
		Seed:           42,
		AgencyFee:      2500,
		CommissionRate: 0.20,
	}
}

func TestGenerator_Dataset_FormatoDaTabela(t *testing.T) {
	generator := NewGenerator(testDataset())

	records := generator.Dataset()

	// 20 clientes x 12 meses
	require.Len(t, records, len(DefaultClients)*12)

	// Cada cliente tem os MonthIndex exatamente {0..11}, sem buracos nem duplicatas
	seen := make(map[string]map[int]bool)
	for _, record := range records {
		if seen[record.ClientName] == nil {
			seen[record.ClientName] = make(map[int]bool)
		}
		assert.False(t, seen[record.ClientName][record.MonthIndex],
			"MonthIndex duplicado para %s", record.ClientName)
		seen[record.ClientName][record.MonthIndex] = true

		assert.GreaterOrEqual(t, record.MonthIndex, 0)
		assert.LessOrEqual(t, record.MonthIndex, 11)
		assert.Equal(t, domain.MonthLabels[record.MonthIndex], record.Month)
	}

	require.Len(t, seen, len(DefaultClients))
	for client, months := range seen {
		assert.Len(t, months, 12, "cliente %s não tem 12 meses", client)
	}
}

func TestGenerator_Dataset_IdentidadesContabeis(t *testing.T) {
	generator := NewGenerator(testDataset())

	for _, record := range generator.Dataset() {
		assert.Greater(t, record.GMV, 0.0)
		assert.Greater(t, record.BaselineGMV, 0.0)
		assert.Greater(t, record.AdSpend, 0.0)
		assert.Equal(t, 2500.0, record.AgencyFee)

		assert.InEpsilon(t, record.AdSpend+record.AgencyFee, record.TotalInvestment, 1e-9)
		assert.InEpsilon(t, 0.20*record.GMV, record.PlatformComm, 1e-9)

		expectedProfit := record.GMV - record.COGS - record.PlatformComm - record.TotalInvestment
		if expectedProfit != 0 {
			assert.InEpsilon(t, expectedProfit, record.NetProfit, 1e-9)
		}

		assert.Equal(t, domain.CalculateROI(record.NetProfit, record.TotalInvestment), record.ROI)
	}
}

func TestGenerator_Dataset_Memoizado(t *testing.T) {
	generator := NewGenerator(config.Dataset{AgencyFee: 2500, CommissionRate: 0.20})

	first := generator.Dataset()
	second := generator.Dataset()

	// Duas chamadas no mesmo processo retornam exatamente a mesma tabela
	assert.Equal(t, first, second)

	meta := generator.Meta()
	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, meta, generator.Meta())
	assert.Equal(t, len(first), meta.NumRecords)
}

func TestGenerator_SeedDeterminista(t *testing.T) {
	a := NewGenerator(testDataset()).Dataset()
	b := NewGenerator(testDataset()).Dataset()

	// A mesma semente produz a mesma tabela em geradores distintos
	assert.Equal(t, a, b)
}

func TestGenerator_ListaDeClientesCustomizada(t *testing.T) {
	dataset := testDataset()
	dataset.Clients = []string{"Loja A", "Loja B"}

	generator := NewGenerator(dataset)

	records := generator.Dataset()
	require.Len(t, records, 2*12)

	assert.Equal(t, []string{"Loja A", "Loja B"}, generator.ClientNames())

	byClient := generator.ByClient()
	require.Len(t, byClient, 2)
	assert.Len(t, byClient["Loja A"], 12)
	assert.Len(t, byClient["Loja B"], 12)
}
