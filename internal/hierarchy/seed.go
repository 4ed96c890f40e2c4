// File path: internal/hierarchy/seed.go
package hierarchy

// seedCompanies returns the canonical Neoenergia dataset. Several branches of
// the tree share identical sub-structures (the same management appearing under
// multiple superintendences) and a handful of ids repeat on purpose; both
// quirks come from the source data and are preserved.
func seedCompanies() []Company {
	return []Company{
		{
			ID:       "coelba",
			Name:     "Coelba",
			FullName: "Neoenergia Coelba",
			Superintendences: []Superintendence{
				supRelacionamentoClientes(),
				{
					ID:   "sup-operacoes-ba",
					Name: "Superintendência Operação Centro Norte",
					Managements: []Management{
						gerManutencao(),
						gerQualidade(),
					},
				},
				{
					ID:   "sup-expancao-ba",
					Name: "Superintendência Expansão e Preservação",
					Managements: []Management{
						gerAtendimento(),
					},
				},
				{
					ID:   "sup-operacao-metropolitano-sul",
					Name: "Superintendência Operação Metropolitano Sul",
					Managements: []Management{
						gerQualidade(),
						gerManutencao(),
						gerAtendimento(),
					},
				},
				{
					ID:   "sup-operacao-sudoeste-oeste",
					Name: "Superintendência Operação Sudoeste Oeste",
					Managements: []Management{
						gerQualidade(),
						gerManutencao(),
						gerAtendimento(),
					},
				},
				{
					ID:   "sup-tecnica-coelba",
					Name: "Superintendência Técnica Coelba",
					Managements: []Management{
						gerQualidade(),
						gerManutencao(),
						gerAtendimento(),
					},
				},
			},
		},
		{
			ID:       "cosern",
			Name:     "Cosern",
			FullName: "Neoenergia Cosern",
			Superintendences: []Superintendence{
				{
					ID:   "sup-operacoes-rn",
					Name: "Superintendência de Operações",
					Managements: []Management{
						{
							ID:   "ger-distribuicao-rn",
							Name: "Gerência de Distribuição",
							Projects: []Project{
								{
									ID:          "proj-expansao-rn",
									Name:        "Expansão da Rede",
									Description: "Ampliação da cobertura de distribuição",
									Indicators:  []Indicator{indCobertura()},
								},
							},
						},
					},
				},
			},
		},
		{
			ID:       "brasilia",
			Name:     "Neoenergia Brasília",
			FullName: "Neoenergia Brasília",
			Superintendences: []Superintendence{
				{
					ID:   "sup-operacoes-df",
					Name: "Superintendência de Operações",
					Managements: []Management{
						{
							ID:   "ger-tecnica-df",
							Name: "Gerência Técnica",
							Projects: []Project{
								{
									ID:          "proj-smart-grid",
									Name:        "Smart Grid",
									Description: "Implementação de redes inteligentes",
									Indicators: []Indicator{
										{
											ID:    "ind-automacao",
											Name:  "Nível de Automação",
											Value: "45",
											Unit:  "%",
											Trend: TrendUp,
											Reports: []Report{
												{ID: "rep-8", Name: "Projeto Smart Grid.pdf", Date: "2024-11-28", Size: "5.2 MB"},
												{ID: "rep-8a", Name: "Arquitetura Smart Grid DF.pdf", Date: "2024-11-25", Size: "4.1 MB"},
												{ID: "rep-8b", Name: "ROI Automação de Rede.pdf", Date: "2024-11-20", Size: "2.3 MB"},
												{ID: "rep-8c", Name: "Cronograma Implantação 2025.pdf", Date: "2024-11-15", Size: "1.8 MB"},
												{ID: "rep-8d", Name: "Estudo Viabilidade Técnica.pdf", Date: "2024-11-10", Size: "3.6 MB"},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
		{
			ID:       "elektro",
			Name:     "Elektro",
			FullName: "Neoenergia Elektro",
			Superintendences: []Superintendence{
				{
					ID:   "sup-operacoes-sp",
					Name: "Superintendência de Operações",
					Managements: []Management{
						{
							ID:   "ger-manutencao-sp",
							Name: "Gerência de Manutenção",
							Projects: []Project{
								{
									ID:          "proj-preventiva",
									Name:        "Manutenção Preventiva",
									Description: "Programa de manutenção preventiva",
									Indicators: []Indicator{
										{
											ID:    "ind-disponibilidade",
											Name:  "Disponibilidade da Rede",
											Value: "99.7",
											Unit:  "%",
											Trend: TrendStable,
											Reports: []Report{
												{ID: "rep-9", Name: "Manutenção Preventiva 2024.pdf", Date: "2024-12-12", Size: "3.4 MB"},
												{ID: "rep-9a", Name: "Calendário Manutenções 2025.pdf", Date: "2024-12-10", Size: "1.9 MB"},
												{ID: "rep-9b", Name: "Indicadores MTBF MTTR.pdf", Date: "2024-12-05", Size: "2.1 MB"},
												{ID: "rep-9c", Name: "Análise Falhas Recorrentes.pdf", Date: "2024-12-01", Size: "2.8 MB"},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
		{
			ID:       "pernambuco",
			Name:     "Neoenergia Pernambuco",
			FullName: "Neoenergia Pernambuco",
			Superintendences: []Superintendence{
				{
					ID:   "sup-operacoes-pe",
					Name: "Superintendência de Operações",
					Managements: []Management{
						{
							ID:   "ger-projetos-pe",
							Name: "Gerência de Projetos",
							Projects: []Project{
								{
									ID:          "proj-energia-solar",
									Name:        "Energia Solar Distribuída",
									Description: "Integração de geração solar",
									Indicators: []Indicator{
										{
											ID:    "ind-gd",
											Name:  "Conexões GD",
											Value: "15420",
											Unit:  "unidades",
											Trend: TrendUp,
											Reports: []Report{
												{ID: "rep-10", Name: "Relatório GD 2024.pdf", Date: "2024-12-08", Size: "2.1 MB"},
												{ID: "rep-10a", Name: "Mapa Solar Pernambuco.pdf", Date: "2024-12-05", Size: "7.3 MB"},
												{ID: "rep-10b", Name: "Análise Impacto Rede GD.pdf", Date: "2024-12-01", Size: "3.2 MB"},
												{ID: "rep-10c", Name: "Projeção Conexões 2025.pdf", Date: "2024-11-28", Size: "1.8 MB"},
												{ID: "rep-10d", Name: "Regulamentação ANEEL GD.pdf", Date: "2024-11-20", Size: "2.4 MB"},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

// supRelacionamentoClientes is the one Coelba superintendence whose commercial
// units carry their own indicator variants (newer report dates than the
// operational branches).
func supRelacionamentoClientes() Superintendence {
	return Superintendence{
		ID:   "sup-relacionamento-clientes",
		Name: "Superintendência de Relacionamento com Clientes",
		Managements: []Management{
			{
				ID:   "ger-receita",
				Name: "Gerência da Gestão da Receita",
				Projects: []Project{
					{
						ID:          "uni-gestao-operacional-comercial",
						Name:        "Unidade Gestão Operacional Comercial",
						Description: "Gestão operacional das atividades comerciais (processos, SLA, indicadores e melhorias).",
						Indicators:  []Indicator{indCobertura()},
					},
					{
						ID:          "uni-recuperacao-energia",
						Name:        "Unidade Recuperação de Energia",
						Description: "Ações de recuperação de energia e combate a irregularidades em geração distribuída e consumo.",
						Indicators: []Indicator{
							{
								ID:    "ind-cobertura",
								Name:  "Índice de Cobertura",
								Value: "98.2",
								Unit:  "%",
								Trend: TrendUp,
								Reports: []Report{
									{ID: "rep-7", Name: "Relatório Expansão 2025.pdf", Date: "2026-01-07", Size: "2.8 MB"},
									{ID: "rep-7a", Name: "Mapa Cobertura BA 2025.pdf", Date: "2025-12-01", Size: "6.2 MB"},
									{ID: "rep-7b", Name: "Plano Expansão 2025-2027.pdf", Date: "2025-04-28", Size: "3.9 MB"},
									{ID: "rep-7c", Name: "Investimentos Infraestrutura.pdf", Date: "2024-07-20", Size: "2.5 MB"},
								},
							},
							{
								ID:    "ind-gd",
								Name:  "Conexões GD",
								Value: "15420",
								Unit:  "unidades",
								Trend: TrendUp,
								Reports: []Report{
									{ID: "rep-10", Name: "Relatório GD 2025.pdf", Date: "2025-10-08", Size: "2.1 MB"},
									{ID: "rep-10a", Name: "Mapa Solar Salvador.pdf", Date: "2025-07-05", Size: "7.3 MB"},
									{ID: "rep-10b", Name: "Análise Impacto Rede GD.pdf", Date: "2025-09-01", Size: "3.2 MB"},
									{ID: "rep-10c", Name: "Projeção Conexões 2025.pdf", Date: "2025-03-28", Size: "1.8 MB"},
									{ID: "rep-10d", Name: "Regulamentação ANEEL GD.pdf", Date: "2025-11-20", Size: "2.4 MB"},
								},
							},
							{
								ID:    "ind-automacao",
								Name:  "Nível de Automação",
								Value: "45",
								Unit:  "%",
								Trend: TrendUp,
								Reports: []Report{
									{ID: "rep-8", Name: "Projeto Smart Grid.pdf", Date: "2025-06-28", Size: "5.2 MB"},
									{ID: "rep-8a", Name: "Arquitetura Smart Grid DF.pdf", Date: "2025-08-25", Size: "4.1 MB"},
									{ID: "rep-8b", Name: "ROI Automação de Rede.pdf", Date: "2025-02-20", Size: "2.3 MB"},
									{ID: "rep-8c", Name: "Cronograma Implantação 2025.pdf", Date: "2025-04-15", Size: "1.8 MB"},
									{ID: "rep-8d", Name: "Estudo Viabilidade Técnica.pdf", Date: "2025-11-10", Size: "3.6 MB"},
									{ID: "rep-8d", Name: "Automação Envio Cartas.pdf", Date: "2025-08-10", Size: "4.6 MB"},
								},
							},
						},
					},
					{
						ID:          "uni-recuperacao-credito",
						Name:        "Unidade de Recuperação de Crédito",
						Description: "Estratégias e operações de cobrança e recuperação de crédito (inadimplência).",
						Indicators:  []Indicator{indCobertura()},
					},
				},
			},
			{
				ID:       "ger-grandes-clientes",
				Name:     "Gerência de Grandes Clientes",
				Projects: emptyCommercialUnits(),
			},
			{
				ID:       "ger-relacionamento-poder-publico",
				Name:     "Gerência de Relacionamento com o Poder Público",
				Projects: emptyCommercialUnits(),
			},
		},
	}
}

func emptyCommercialUnits() []Project {
	return []Project{
		{
			ID:          "uni-gestao-operacional-comercial",
			Name:        "Unidade Gestão Operacional Comercial",
			Description: "Gestão operacional das atividades comerciais (processos, SLA, indicadores e melhorias).",
			Indicators:  []Indicator{},
		},
		{
			ID:          "uni-recuperacao-energia",
			Name:        "Unidade Recuperação de Energia",
			Description: "Ações de recuperação de energia e combate a irregularidades em geração distribuída e consumo.",
			Indicators:  []Indicator{},
		},
		{
			ID:          "uni-recuperacao-credito",
			Name:        "Unidade de Recuperação de Crédito",
			Description: "Estratégias e operações de cobrança e recuperação de crédito (inadimplência).",
			Indicators:  []Indicator{},
		},
	}
}

func gerManutencao() Management {
	return Management{
		ID:   "ger-manutencao",
		Name: "Gerência de Manutenção",
		Projects: []Project{
			{
				ID:          "proj-eficiencia-rede",
				Name:        "Eficiência de Rede",
				Description: "Otimização da rede de distribuição",
				Indicators: []Indicator{
					{
						ID:    "ind-dec",
						Name:  "DEC - Duração Equivalente por Consumidor",
						Value: "12.5",
						Unit:  "horas",
						Trend: TrendDown,
						Reports: []Report{
							{ID: "rep-1", Name: "Relatório DEC Q4 2024.pdf", Date: "2024-12-15", Size: "2.4 MB"},
							{ID: "rep-2", Name: "Análise Comparativa DEC.pdf", Date: "2024-11-30", Size: "1.8 MB"},
							{ID: "rep-1a", Name: "DEC Mensal Dezembro 2024.pdf", Date: "2024-12-28", Size: "1.2 MB"},
							{ID: "rep-1b", Name: "DEC Histórico Anual 2024.pdf", Date: "2024-12-20", Size: "3.5 MB"},
							{ID: "rep-1c", Name: "Plano de Ação DEC 2025.pdf", Date: "2024-12-22", Size: "2.1 MB"},
						},
					},
					{
						ID:    "ind-fec",
						Name:  "FEC - Frequência Equivalente por Consumidor",
						Value: "8.2",
						Unit:  "interrupções",
						Trend: TrendStable,
						Reports: []Report{
							{ID: "rep-3", Name: "Relatório FEC Q4 2024.pdf", Date: "2024-12-15", Size: "1.9 MB"},
							{ID: "rep-3a", Name: "FEC por Região Bahia.pdf", Date: "2024-12-10", Size: "2.2 MB"},
							{ID: "rep-3b", Name: "Análise FEC vs Meta ANEEL.pdf", Date: "2024-12-05", Size: "1.6 MB"},
						},
					},
				},
			},
			{
				ID:          "proj-reducao-perdas",
				Name:        "Redução de Perdas Técnicas",
				Description: "Programa de combate às perdas técnicas",
				Indicators: []Indicator{
					{
						ID:    "ind-perdas",
						Name:  "Índice de Perdas Técnicas",
						Value: "6.8",
						Unit:  "%",
						Trend: TrendDown,
						Reports: []Report{
							{ID: "rep-4", Name: "Relatório Perdas Técnicas 2024.pdf", Date: "2024-12-01", Size: "3.2 MB"},
							{ID: "rep-4a", Name: "Mapeamento Perdas por Alimentador.pdf", Date: "2024-11-25", Size: "4.8 MB"},
							{ID: "rep-4b", Name: "Investimentos Redução Perdas.pdf", Date: "2024-11-20", Size: "2.3 MB"},
							{ID: "rep-4c", Name: "Benchmark Perdas Técnicas Brasil.pdf", Date: "2024-11-15", Size: "1.9 MB"},
						},
					},
				},
			},
		},
	}
}

func gerQualidade() Management {
	return Management{
		ID:   "ger-qualidade",
		Name: "Gerência de Qualidade",
		Projects: []Project{
			{
				ID:          "proj-satisfacao",
				Name:        "Satisfação do Cliente",
				Description: "Monitoramento da satisfação",
				Indicators: []Indicator{
					{
						ID:    "ind-isqp",
						Name:  "ISQP - Índice de Satisfação",
						Value: "78.5",
						Unit:  "%",
						Trend: TrendUp,
						Reports: []Report{
							{ID: "rep-5", Name: "Pesquisa Satisfação 2024.pdf", Date: "2024-12-10", Size: "4.1 MB"},
							{ID: "rep-5a", Name: "ISQP Detalhado por Município.pdf", Date: "2024-12-08", Size: "5.2 MB"},
							{ID: "rep-5b", Name: "Plano Melhoria Satisfação.pdf", Date: "2024-12-01", Size: "2.8 MB"},
							{ID: "rep-5c", Name: "Comparativo ISQP 2023-2024.pdf", Date: "2024-11-28", Size: "1.7 MB"},
						},
					},
				},
			},
		},
	}
}

func gerAtendimento() Management {
	return Management{
		ID:   "ger-atendimento",
		Name: "Gerência de Atendimento",
		Projects: []Project{
			{
				ID:          "proj-call-center",
				Name:        "Melhoria Call Center",
				Description: "Otimização do atendimento telefônico",
				Indicators: []Indicator{
					{
						ID:    "ind-tma",
						Name:  "TMA - Tempo Médio de Atendimento",
						Value: "180",
						Unit:  "segundos",
						Trend: TrendDown,
						Reports: []Report{
							{ID: "rep-6", Name: "Dashboard Call Center.pdf", Date: "2024-12-18", Size: "1.5 MB"},
							{ID: "rep-6a", Name: "TMA por Tipo de Chamada.pdf", Date: "2024-12-15", Size: "1.8 MB"},
							{ID: "rep-6b", Name: "Relatório Produtividade Agentes.pdf", Date: "2024-12-12", Size: "2.4 MB"},
							{ID: "rep-6c", Name: "Análise Picos de Demanda.pdf", Date: "2024-12-10", Size: "1.3 MB"},
						},
					},
				},
			},
		},
	}
}

func indCobertura() Indicator {
	return Indicator{
		ID:    "ind-cobertura",
		Name:  "Índice de Cobertura",
		Value: "98.2",
		Unit:  "%",
		Trend: TrendUp,
		Reports: []Report{
			{ID: "rep-7", Name: "Relatório Expansão 2024.pdf", Date: "2024-12-05", Size: "2.8 MB"},
			{ID: "rep-7a", Name: "Mapa Cobertura RN 2024.pdf", Date: "2024-12-01", Size: "6.2 MB"},
			{ID: "rep-7b", Name: "Plano Expansão 2025-2027.pdf", Date: "2024-11-28", Size: "3.9 MB"},
			{ID: "rep-7c", Name: "Investimentos Infraestrutura.pdf", Date: "2024-11-20", Size: "2.5 MB"},
		},
	}
}
