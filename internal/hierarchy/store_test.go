package hierarchy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededStoreCompanies(t *testing.T) {
	store := NewSeededStore()

	companies := store.Companies()
	require.Len(t, companies, 5)
	assert.Equal(t, "coelba", companies[0].ID)
	assert.Equal(t, "pernambuco", companies[4].ID)

	coelba, err := store.Company("coelba")
	require.NoError(t, err)
	assert.Equal(t, "Neoenergia Coelba", coelba.FullName)
	assert.Len(t, coelba.Superintendences, 6)
}

func TestCompanyNotFound(t *testing.T) {
	store := NewSeededStore()

	_, err := store.Company("celpe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestScopedLookups(t *testing.T) {
	store := NewSeededStore()

	sup, err := store.Superintendence("coelba", "sup-operacoes-ba")
	require.NoError(t, err)
	assert.Equal(t, "Superintendência Operação Centro Norte", sup.Name)

	mgmt, err := store.Management("coelba", "sup-operacoes-ba", "ger-manutencao")
	require.NoError(t, err)
	assert.Equal(t, "Gerência de Manutenção", mgmt.Name)

	proj, err := store.Project("coelba", "sup-operacoes-ba", "ger-manutencao", "proj-eficiencia-rede")
	require.NoError(t, err)
	assert.Equal(t, "Eficiência de Rede", proj.Name)

	ind, err := store.Indicator("coelba", "sup-operacoes-ba", "ger-manutencao", "proj-eficiencia-rede", "ind-dec")
	require.NoError(t, err)
	assert.Equal(t, "DEC - Duração Equivalente por Consumidor", ind.Name)
	assert.Len(t, ind.Reports, 5)

	_, err = store.Indicator("coelba", "sup-operacoes-ba", "ger-manutencao", "proj-eficiencia-rede", "ind-tma")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = store.Management("cosern", "sup-operacoes-ba", "ger-manutencao")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDuplicateIndicatorIDResolvesFirstInTraversalOrder(t *testing.T) {
	store := NewSeededStore()

	// ind-cobertura appears under several branches of Coelba and again under
	// Cosern; the bare-id lookup must return the earliest occurrence.
	ind, path, err := store.IndicatorByID("ind-cobertura")
	require.NoError(t, err)
	assert.Equal(t, "Índice de Cobertura", ind.Name)
	require.Len(t, path, 5)
	assert.Equal(t, "Coelba", path[0])
	assert.Equal(t, "Superintendência de Relacionamento com Clientes", path[1])
	assert.Equal(t, "Unidade Gestão Operacional Comercial", path[3])
}

func TestWalkIndicatorsStopsWhenCallbackReturnsFalse(t *testing.T) {
	store := NewSeededStore()

	visited := 0
	store.WalkIndicators(func(_ Company, _ Superintendence, _ Management, _ Project, _ *Indicator) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestAllReports(t *testing.T) {
	store := NewSeededStore()

	refs := store.AllReports()
	require.Len(t, refs, 121)

	first := refs[0]
	assert.Equal(t, "rep-7", first.Report.ID)
	assert.Equal(t, "coelba", first.CompanyID)
	assert.Equal(t, "ind-cobertura", first.IndicatorID)
	require.Len(t, first.Path, 6)
	assert.Equal(t, "Relatório Expansão 2024.pdf", first.Path[5])

	last := refs[len(refs)-1]
	assert.Equal(t, "rep-10d", last.Report.ID)
	assert.Equal(t, "pernambuco", last.CompanyID)
}
