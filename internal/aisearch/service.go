// File path: internal/aisearch/service.go

// Package aisearch implements the semantic search path: a natural-language
// query goes to the language model together with a fixed indicator table, and
// the model answers with the ids of the most relevant entries.
package aisearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/neoenergia/neoview/internal/common/telemetry"
	"github.com/neoenergia/neoview/internal/llm"
)

// IndicatorEntry is one row of the semantic search table. The table is fixed:
// it describes the indicators with the keyword hints the model matches
// against, including entries for areas not yet present in the browsable tree.
type IndicatorEntry struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Keywords          []string `json:"keywords"`
	CompanyID         string   `json:"company_id"`
	SuperintendenceID string   `json:"superintendence_id"`
	ManagementID      string   `json:"management_id"`
	ProjectID         string   `json:"project_id"`
	Path              []string `json:"path"`
}

// Response carries the matched entries together with the raw model answer.
type Response struct {
	Results    []IndicatorEntry `json:"results"`
	AIResponse string           `json:"ai_response"`
}

const systemPromptTemplate = `Você é um assistente de busca semântica para um sistema de indicadores de empresas de energia elétrica.
Dado uma consulta do usuário em linguagem natural, retorne os IDs dos indicadores mais relevantes.

Indicadores disponíveis:
%s

IMPORTANTE:
- Entenda a intenção do usuário mesmo que ele não use termos exatos
- "satisfação" deve retornar indicadores de satisfação do cliente
- "queda de luz" deve retornar indicadores de DEC/FEC
- Retorne apenas os IDs separados por vírgula, sem explicação
- Retorne no máximo 5 indicadores mais relevantes
- Se não encontrar nada relevante, retorne "none"`

// Service runs semantic queries through a language-model provider.
type Service struct {
	provider llm.Provider
	table    []IndicatorEntry
	prompt   string
}

func NewService(provider llm.Provider) *Service {
	table := indicatorTable()
	lines := make([]string, 0, len(table))
	for _, entry := range table {
		lines = append(lines, fmt.Sprintf("- %s (keywords: %s)", entry.Name, strings.Join(entry.Keywords, ", ")))
	}
	return &Service{
		provider: provider,
		table:    table,
		prompt:   fmt.Sprintf(systemPromptTemplate, strings.Join(lines, "\n")),
	}
}

// Search sends the query to the model and filters the indicator table by the
// ids it names. An answer of "none" yields an empty result set, not an error.
func (s *Service) Search(ctx context.Context, query string) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &Response{AIResponse: "none"}, nil
	}

	ctx, finish := telemetry.StartSpan(ctx, "aisearch.query")
	defer finish("query_length", len(query))

	answer, err := s.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: s.prompt},
		{Role: "user", Content: query},
	})
	if err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = "none"
	}

	return &Response{
		Results:    s.match(answer),
		AIResponse: answer,
	}, nil
}

func (s *Service) match(answer string) []IndicatorEntry {
	if strings.EqualFold(answer, "none") {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(strings.ToLower(answer), ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}

	var results []IndicatorEntry
	for _, entry := range s.table {
		for _, id := range ids {
			// Tolerates partial ids in either direction, e.g. "dec" for
			// "ind-dec" or a model answer with extra prefixes.
			if strings.Contains(entry.ID, id) || strings.Contains(id, entry.ID) {
				results = append(results, entry)
				break
			}
		}
	}
	return results
}

func indicatorTable() []IndicatorEntry {
	return []IndicatorEntry{
		{
			ID:                "ind-dec",
			Name:              "DEC - Duração Equivalente por Consumidor",
			Keywords:          []string{"duração", "interrupção", "queda", "falta de luz", "sem energia", "demora", "tempo sem luz"},
			CompanyID:         "coelba",
			SuperintendenceID: "sup-operacoes-ba",
			ManagementID:      "ger-manutencao",
			ProjectID:         "proj-eficiencia-rede",
			Path:              []string{"Coelba", "Superintendência de Operações", "Gerência de Manutenção", "Eficiência de Rede", "DEC - Duração Equivalente por Consumidor"},
		},
		{
			ID:                "ind-fec",
			Name:              "FEC - Frequência Equivalente por Consumidor",
			Keywords:          []string{"frequência", "interrupção", "vezes", "quantas vezes", "quedas", "apagão"},
			CompanyID:         "coelba",
			SuperintendenceID: "sup-operacoes-ba",
			ManagementID:      "ger-manutencao",
			ProjectID:         "proj-eficiencia-rede",
			Path:              []string{"Coelba", "Superintendência de Operações", "Gerência de Manutenção", "Eficiência de Rede", "FEC - Frequência Equivalente por Consumidor"},
		},
		{
			ID:                "ind-perdas",
			Name:              "Índice de Perdas Técnicas",
			Keywords:          []string{"perdas", "desperdício", "eficiência", "técnicas", "energia perdida"},
			CompanyID:         "coelba",
			SuperintendenceID: "sup-operacoes-ba",
			ManagementID:      "ger-manutencao",
			ProjectID:         "proj-reducao-perdas",
			Path:              []string{"Coelba", "Superintendência de Operações", "Gerência de Manutenção", "Redução de Perdas Técnicas", "Índice de Perdas Técnicas"},
		},
		{
			ID:                "ind-isqp",
			Name:              "ISQP - Índice de Satisfação",
			Keywords:          []string{"satisfação", "cliente", "consumidor", "feliz", "contente", "qualidade", "atendimento", "nota", "avaliação", "pesquisa", "opinião", "feedback"},
			CompanyID:         "coelba",
			SuperintendenceID: "sup-operacoes-ba",
			ManagementID:      "ger-qualidade",
			ProjectID:         "proj-satisfacao",
			Path:              []string{"Coelba", "Superintendência de Operações", "Gerência de Qualidade", "Satisfação do Cliente", "ISQP - Índice de Satisfação"},
		},
		{
			ID:                "ind-tma",
			Name:              "TMA - Tempo Médio de Atendimento",
			Keywords:          []string{"atendimento", "call center", "telefone", "tempo", "espera", "ligação", "chamada"},
			CompanyID:         "coelba",
			SuperintendenceID: "sup-comercial-ba",
			ManagementID:      "ger-atendimento",
			ProjectID:         "proj-call-center",
			Path:              []string{"Coelba", "Superintendência Comercial", "Gerência de Atendimento", "Melhoria Call Center", "TMA - Tempo Médio de Atendimento"},
		},
		{
			ID:                "ind-cobertura",
			Name:              "Índice de Cobertura",
			Keywords:          []string{"cobertura", "expansão", "rede", "alcance", "área", "abrangência"},
			CompanyID:         "cosern",
			SuperintendenceID: "sup-operacoes-rn",
			ManagementID:      "ger-distribuicao-rn",
			ProjectID:         "proj-expansao-rn",
			Path:              []string{"Cosern", "Superintendência de Operações", "Gerência de Distribuição", "Expansão da Rede", "Índice de Cobertura"},
		},
		{
			ID:                "ind-automacao",
			Name:              "Nível de Automação",
			Keywords:          []string{"automação", "smart grid", "inteligente", "tecnologia", "modernização", "digital"},
			CompanyID:         "brasilia",
			SuperintendenceID: "sup-operacoes-df",
			ManagementID:      "ger-tecnica-df",
			ProjectID:         "proj-smart-grid",
			Path:              []string{"Neoenergia Brasília", "Superintendência de Operações", "Gerência Técnica", "Smart Grid", "Nível de Automação"},
		},
		{
			ID:                "ind-disponibilidade",
			Name:              "Disponibilidade da Rede",
			Keywords:          []string{"disponibilidade", "manutenção", "preventiva", "rede", "funcionamento", "operação"},
			CompanyID:         "elektro",
			SuperintendenceID: "sup-operacoes-sp",
			ManagementID:      "ger-manutencao-sp",
			ProjectID:         "proj-preventiva",
			Path:              []string{"Elektro", "Superintendência de Operações", "Gerência de Manutenção", "Manutenção Preventiva", "Disponibilidade da Rede"},
		},
		{
			ID:                "ind-gd",
			Name:              "Conexões GD",
			Keywords:          []string{"solar", "geração distribuída", "energia solar", "renovável", "painéis", "fotovoltaico"},
			CompanyID:         "pernambuco",
			SuperintendenceID: "sup-operacoes-pe",
			ManagementID:      "ger-projetos-pe",
			ProjectID:         "proj-energia-solar",
			Path:              []string{"Neoenergia Pernambuco", "Superintendência de Operações", "Gerência de Projetos", "Energia Solar Distribuída", "Conexões GD"},
		},
		{
			ID:                "ind-sinergia",
			Name:              "Índice de Sinergia",
			Keywords:          []string{"sinergia", "integração", "unificação", "processos", "estratégia", "planejamento"},
			CompanyID:         "distribuicao",
			SuperintendenceID: "sup-planejamento",
			ManagementID:      "ger-estrategia",
			ProjectID:         "proj-integracao",
			Path:              []string{"Neoenergia Distribuição", "Superintendência de Planejamento", "Gerência de Estratégia", "Integração Operacional", "Índice de Sinergia"},
		},
	}
}
