// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"strings"
)

// LocalProvider answers without any network dependency. It carries canned
// answers for the best-known indicators so the assistant stays useful in
// development mode.
type LocalProvider struct{}

var _ Provider = (*LocalProvider)(nil)

func NewLocalProvider() *LocalProvider { return &LocalProvider{} }

func (p *LocalProvider) Name() string { return "local" }

var cannedAnswers = []struct {
	keyword string
	answer  string
}{
	{
		keyword: "dec",
		answer: "O DEC (Duração Equivalente de Interrupção por Unidade Consumidora) " +
			"mede o tempo médio que cada consumidor fica sem energia. O valor atual " +
			"da Coelba é 12.5 horas, com tendência de queda.",
	},
	{
		keyword: "fec",
		answer: "O FEC (Frequência Equivalente de Interrupção por Unidade Consumidora) " +
			"mede quantas vezes, em média, cada consumidor teve o fornecimento " +
			"interrompido. O valor atual é 8.2 interrupções, estável no período.",
	},
	{
		keyword: "perdas",
		answer: "O Índice de Perdas Técnicas mede a energia perdida na distribuição. " +
			"O valor atual é 6.8%, em queda graças ao programa de combate às perdas.",
	},
}

func (p *LocalProvider) Chat(_ context.Context, messages []Message) (string, error) {
	last := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if strings.EqualFold(messages[i].Role, "user") {
			last = messages[i].Content
			break
		}
	}
	lower := strings.ToLower(last)
	for _, canned := range cannedAnswers {
		if strings.Contains(lower, canned.keyword) {
			return canned.answer, nil
		}
	}
	return "Não encontrei uma resposta específica para essa pergunta. " +
		"Tente perguntar sobre indicadores como DEC, FEC ou perdas técnicas.", nil
}
