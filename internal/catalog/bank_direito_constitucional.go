package catalog

import "github.com/souconcursado/core/internal/models"

var diagnosisDireitoConstitucional = []models.DiagnosisQuestion{
	{
		ID:         31,
		Banca:      "VUNESP",
		Ano:        2023,
		Orgao:      "PC-SP",
		Cargo:      "Escrivão de Polícia",
		Assunto:    "Direitos Fundamentais (Art. 5º)",
		Difficulty: models.DifficultyFacil,
		Text:       "Segundo a Constituição Federal, a casa é asilo inviolável do indivíduo, ninguém nela podendo penetrar sem consentimento do morador, salvo em caso de:",
		Options: []string{
			"Flagrante delito ou desastre, ou para prestar socorro, ou, durante o dia, por determinação judicial.",
			"Qualquer horário, por determinação judicial ou policial.",
			"Flagrante delito, a qualquer hora do dia ou da noite, por ordem do delegado.",
			"Suspeita de crime, durante o dia, com autorização do Ministério Público.",
			"Qualquer crime, a qualquer hora, com ordem judicial.",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "Literalidade do Art. 5º, XI da CF/88. A entrada noturna só é permitida em caso de flagrante, desastre ou socorro. Ordem judicial somente durante o dia.",
	},
	{
		ID:         32,
		Banca:      "FGV",
		Ano:        2023,
		Orgao:      "TJ-RN",
		Cargo:      "Analista Judiciário",
		Assunto:    "Princípios Fundamentais",
		Difficulty: models.DifficultyFacil,
		Text:       "Quantos são os Poderes da União segundo a Constituição Federal?",
		Options: []string{
			"Dois",
			"Três",
			"Quatro",
			"Cinco",
			"Seis",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "Segundo o Art. 2º da CF/88, são três os Poderes da União: Executivo, Legislativo e Judiciário, independentes e harmônicos entre si.",
	},
	{
		ID:         33,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Direitos e Garantias Fundamentais",
		Difficulty: models.DifficultyFacil,
		Text:       "A Constituição Federal garante que \"ninguém será obrigado a fazer ou deixar de fazer alguma coisa senão em virtude de lei\". Este princípio é conhecido como:",
		Options: []string{
			"Princípio da legalidade",
			"Princípio da moralidade",
			"Princípio da impessoalidade",
			"Princípio da publicidade",
			"Princípio da eficiência",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "Este é o princípio da legalidade, previsto no Art. 5º, II da CF/88, que estabelece que ninguém será obrigado a fazer ou deixar de fazer algo senão em virtude de lei.",
	},
	{
		ID:         34,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Nacionalidade",
		Difficulty: models.DifficultyMedio,
		Text:       "João, brasileiro nato, naturalizou-se norte-americano apenas para poder exercer trabalho nos EUA (green card), sem renunciar à nacionalidade brasileira. Nesse caso:",
		Options: []string{
			"João perde a nacionalidade brasileira automaticamente.",
			"João torna-se apátrida.",
			"João mantém a nacionalidade brasileira, pois a naturalização foi para exercício de direitos civis.",
			"João deve escolher uma das duas nacionalidades ao completar 18 anos.",
			"João perde a nacionalidade brasileira após 5 anos.",
		},
		CorrectAnswerIndex: 2,
		Explanation:        "Não perde a nacionalidade quem adquire outra para reconhecimento de direitos civis ou condição de permanência no estrangeiro (Emenda Constitucional de Revisão nº 3/94 e jurisprudência do STF).",
	},
	{
		ID:         35,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Direitos Políticos",
		Difficulty: models.DifficultyMedio,
		Text:       "Segundo a Constituição Federal, são condições para o exercício dos direitos políticos, EXCETO:",
		Options: []string{
			"Nacionalidade brasileira",
			"Pleno exercício dos direitos políticos",
			"Alistamento eleitoral",
			"Domicílio eleitoral na circunscrição",
			"Idade mínima de 18 anos",
		},
		CorrectAnswerIndex: 4,
		Explanation:        "A idade mínima para votar é 16 anos (facultativo de 16 a 18 anos e acima de 70, obrigatório de 18 a 70). A alternativa E está incorreta, pois a idade mínima é 16 anos, não 18.",
	},
	{
		ID:         36,
		Banca:      "VUNESP",
		Ano:        2023,
		Orgao:      "PC-SP",
		Cargo:      "Escrivão de Polícia",
		Assunto:    "Organização do Estado",
		Difficulty: models.DifficultyMedio,
		Text:       "A União, os Estados, o Distrito Federal e os Municípios são entes da Federação brasileira. Esta organização é denominada:",
		Options: []string{
			"Estado unitário",
			"Estado federal",
			"Estado confederado",
			"Estado regional",
			"Estado simples",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "O Brasil adota a forma de Estado Federal (federação), caracterizada pela descentralização política, com autonomia dos entes federativos (União, Estados, DF e Municípios).",
	},
	{
		ID:         37,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Poder Executivo",
		Difficulty: models.DifficultyMedio,
		Text:       "O Presidente da República pode ser processado criminalmente durante o mandato?",
		Options: []string{
			"Não, possui imunidade total durante o mandato.",
			"Sim, apenas por crimes comuns.",
			"Sim, apenas por crimes de responsabilidade.",
			"Sim, por crimes comuns, mas apenas com autorização do Congresso Nacional.",
			"Não, possui foro privilegiado apenas para crimes de responsabilidade.",
		},
		CorrectAnswerIndex: 3,
		Explanation:        "O Presidente da República possui foro privilegiado (Art. 102, I, \"b\" da CF/88) e pode ser processado por crimes comuns, mas apenas com autorização de 2/3 da Câmara dos Deputados.",
	},
	{
		ID:         38,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Direitos Sociais",
		Difficulty: models.DifficultyMedio,
		Text:       "Segundo a Constituição Federal, a educação é direito de todos e dever do Estado e da família. Esta garantia está prevista no:",
		Options: []string{
			"Art. 5º (Direitos e Garantias Fundamentais)",
			"Art. 6º (Direitos Sociais)",
			"Art. 7º (Direitos dos Trabalhadores)",
			"Art. 8º (Organização Sindical)",
			"Art. 9º (Direito de Greve)",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "A educação como direito social está prevista no Art. 6º da CF/88, sendo detalhada no Art. 205 e seguintes do Capítulo III (Da Educação, da Cultura e do Desporto).",
	},
	{
		ID:         39,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Controle de Constitucionalidade",
		Difficulty: models.DifficultyDificil,
		Text:       "A ação direta de inconstitucionalidade (ADI) pode ser proposta por:",
		Options: []string{
			"Qualquer cidadão",
			"Apenas o Procurador-Geral da República",
			"Apenas partidos políticos",
			"Entidades e autoridades especificadas na Constituição",
			"Apenas o Presidente da República",
		},
		CorrectAnswerIndex: 3,
		Explanation:        "A ADI pode ser proposta por várias entidades e autoridades previstas no Art. 103 da CF/88, como: Presidente da República, Mesa do Senado/Câmara, Governadores, Procurador-Geral da República, partidos políticos, confederações sindicais, etc.",
	},
	{
		ID:         40,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Mandado de Segurança",
		Difficulty: models.DifficultyDificil,
		Text:       "O mandado de segurança pode ser impetrado contra ato de autoridade pública quando:",
		Options: []string{
			"Houver qualquer ilegalidade",
			"O ato violar direito líquido e certo, não amparado por habeas corpus ou habeas data",
			"O ato for praticado por qualquer servidor público",
			"Houver dano material comprovado",
			"O ato for praticado por autoridade de qualquer esfera",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "O mandado de segurança (Art. 5º, LXIX da CF/88) é concedido para proteger direito líquido e certo, não amparado por habeas corpus ou habeas data, quando o responsável pela ilegalidade ou abuso de poder for autoridade pública ou agente de pessoa jurídica no exercício de atribuições do Poder Público.",
	},
}
