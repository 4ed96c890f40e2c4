package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neoenergia/neoview/internal/hierarchy"
)

func newTestWalker() *Walker {
	return NewWalker(hierarchy.NewSeededStore())
}

func TestSearchRejectsShortQueries(t *testing.T) {
	walker := newTestWalker()

	assert.Nil(t, walker.Search(""))
	assert.Nil(t, walker.Search("d"))
	assert.Nil(t, walker.Search("  e  "))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	walker := newTestWalker()

	upper := walker.Search("DEC")
	lower := walker.Search("dec")
	require.NotEmpty(t, upper)
	assert.Equal(t, len(upper), len(lower))
}

func TestSearchDECReturnsIndicatorBeforeItsReports(t *testing.T) {
	walker := newTestWalker()

	results := walker.Search("DEC")
	// ind-dec lives under four Coelba branches, each contributing the
	// indicator hit plus its five DEC-named reports.
	require.Len(t, results, 24)

	first := results[0]
	assert.Equal(t, TypeIndicator, first.Type)
	assert.Equal(t, []string{
		"Coelba",
		"Superintendência Operação Centro Norte",
		"Gerência de Manutenção",
		"Eficiência de Rede",
		"DEC - Duração Equivalente por Consumidor",
	}, first.Path)
	assert.Equal(t, "coelba", first.CompanyID)
	assert.Equal(t, "sup-operacoes-ba", first.SuperintendenceID)
	assert.Equal(t, "ger-manutencao", first.ManagementID)
	assert.Equal(t, "proj-eficiencia-rede", first.ProjectID)

	second := results[1]
	require.Equal(t, TypeReport, second.Type)
	require.NotNil(t, second.Report)
	assert.Equal(t, "rep-1", second.Report.ID)
	assert.Equal(t, "Relatório DEC Q4 2024.pdf", second.Path[len(second.Path)-1])
	require.NotNil(t, second.Indicator)
	assert.Equal(t, "ind-dec", second.Indicator.ID)
}

func TestSearchMatchesAccentedNames(t *testing.T) {
	walker := newTestWalker()

	results := walker.Search("índice de cobertura")
	require.NotEmpty(t, results)
	assert.Equal(t, TypeIndicator, results[0].Type)
	assert.Equal(t, "sup-relacionamento-clientes", results[0].SuperintendenceID)
}

func TestSearchTermOnlyInReportNames(t *testing.T) {
	walker := newTestWalker()

	// Indicator descriptions are empty in the seed dataset, so a term that
	// only occurs in report names must come back as report hits.
	results := walker.Search("Smart Grid")
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, TypeReport, r.Type)
	}
}
