package catalog

import "github.com/souconcursado/core/internal/models"

var diagnosisDireitoAdministrativo = []models.DiagnosisQuestion{
	{
		ID:         41,
		Banca:      "VUNESP",
		Ano:        2023,
		Orgao:      "PC-SP",
		Cargo:      "Escrivão de Polícia",
		Assunto:    "Conceitos Básicos",
		Difficulty: models.DifficultyFacil,
		Text:       "O que é um ato administrativo?",
		Options: []string{
			"Qualquer manifestação de vontade da administração pública",
			"Apenas decisões judiciais",
			"Leis aprovadas pelo Congresso",
			"Contratos privados",
			"Decisões de empresas públicas",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "Ato administrativo é toda manifestação unilateral de vontade da Administração Pública que, agindo nessa qualidade, tenha por fim imediato adquirir, resguardar, transferir, modificar, extinguir e declarar direitos, ou impor obrigações aos administrados ou a si própria.",
	},
	{
		ID:         42,
		Banca:      "FGV",
		Ano:        2023,
		Orgao:      "TJ-RN",
		Cargo:      "Analista Judiciário",
		Assunto:    "Princípios Administrativos",
		Difficulty: models.DifficultyFacil,
		Text:       "Qual dos seguintes NÃO é um princípio da Administração Pública?",
		Options: []string{
			"Legalidade",
			"Impessoalidade",
			"Moralidade",
			"Publicidade",
			"Privacidade",
		},
		CorrectAnswerIndex: 4,
		Explanation:        "Os princípios da Administração Pública estão previstos no Art. 37 da CF/88: legalidade, impessoalidade, moralidade, publicidade e eficiência. \"Privacidade\" não é um princípio administrativo.",
	},
	{
		ID:         43,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Servidores Públicos",
		Difficulty: models.DifficultyFacil,
		Text:       "O servidor público estável só pode perder o cargo mediante:",
		Options: []string{
			"Demissão a pedido",
			"Demissão por justa causa",
			"Processo administrativo em que lhe seja assegurada ampla defesa",
			"Decisão judicial",
			"Decisão do chefe imediato",
		},
		CorrectAnswerIndex: 2,
		Explanation:        "O servidor estável só pode perder o cargo mediante processo administrativo em que lhe seja assegurada ampla defesa (Art. 41, § 1º da CF/88).",
	},
	{
		ID:         44,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Poderes Administrativos",
		Difficulty: models.DifficultyMedio,
		Text:       "O poder de polícia administrativa é exercido:",
		Options: []string{
			"Apenas pela Polícia Federal",
			"Apenas pelo Poder Judiciário",
			"Por todos os órgãos da Administração Pública",
			"Apenas pelo Poder Executivo",
			"Apenas por autarquias",
		},
		CorrectAnswerIndex: 2,
		Explanation:        "O poder de polícia administrativa é exercido por todos os órgãos da Administração Pública (federal, estadual e municipal), não apenas pela polícia ou pelo Poder Executivo.",
	},
	{
		ID:         45,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Licitações",
		Difficulty: models.DifficultyMedio,
		Text:       "Qual modalidade de licitação é obrigatória para obras e serviços de engenharia acima de R$ 1.500.000,00?",
		Options: []string{
			"Pregão",
			"Tomada de Preços",
			"Concorrência",
			"Dispensa de Licitação",
			"Inexigibilidade",
		},
		CorrectAnswerIndex: 2,
		Explanation:        "A Concorrência é a modalidade obrigatória para obras e serviços de engenharia acima de R$ 1.500.000,00, conforme a Lei 8.666/93 (Lei de Licitações).",
	},
	{
		ID:         46,
		Banca:      "VUNESP",
		Ano:        2023,
		Orgao:      "PC-SP",
		Cargo:      "Escrivão de Polícia",
		Assunto:    "Contratos Administrativos",
		Difficulty: models.DifficultyMedio,
		Text:       "O contrato administrativo pode ser rescindido pela Administração quando:",
		Options: []string{
			"Apenas por descumprimento do contratado",
			"Apenas por interesse público",
			"Por descumprimento do contratado ou por interesse público",
			"Apenas com autorização judicial",
			"Nunca pode ser rescindido",
		},
		CorrectAnswerIndex: 2,
		Explanation:        "O contrato administrativo pode ser rescindido pela Administração tanto por descumprimento do contratado quanto por interesse público, conforme previsto na Lei 8.666/93.",
	},
	{
		ID:         47,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Bens Públicos",
		Difficulty: models.DifficultyMedio,
		Text:       "Os bens públicos de uso comum do povo são:",
		Options: []string{
			"Inalienáveis e imprescritíveis",
			"Alienáveis após autorização judicial",
			"Prescritíveis após 10 anos",
			"Alienáveis livremente",
			"Inalienáveis mas prescritíveis",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "Os bens públicos de uso comum do povo, de uso especial e dominicais são inalienáveis enquanto afetados a uma finalidade pública, e imprescritíveis (Art. 100 do Código Civil).",
	},
	{
		ID:         48,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Processo Administrativo",
		Difficulty: models.DifficultyMedio,
		Text:       "O processo administrativo deve observar o princípio do contraditório, que significa:",
		Options: []string{
			"Apenas o direito de defesa",
			"Apenas o direito de ser ouvido",
			"O direito de ser informado e de se manifestar",
			"O direito de recorrer",
			"O direito de não ser processado",
		},
		CorrectAnswerIndex: 2,
		Explanation:        "O contraditório no processo administrativo significa que o interessado tem o direito de ser informado sobre os atos e fatos que possam resultar em prejuízo e de se manifestar sobre eles (Lei 9.784/99).",
	},
	{
		ID:         49,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Responsabilidade Civil do Estado",
		Difficulty: models.DifficultyDificil,
		Text:       "A responsabilidade civil do Estado por danos causados a terceiros é:",
		Options: []string{
			"Subjetiva, exigindo dolo ou culpa",
			"Objetiva, independente de culpa",
			"Subjetiva apenas para atos comissivos",
			"Objetiva apenas para atos omissivos",
			"Não existe responsabilidade civil do Estado",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "A responsabilidade civil do Estado é objetiva (Art. 37, § 6º da CF/88), ou seja, independe de dolo ou culpa, bastando a existência do dano e do nexo causal.",
	},
	{
		ID:         50,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Desapropriação",
		Difficulty: models.DifficultyDificil,
		Text:       "A desapropriação por interesse social pode ser decretada:",
		Options: []string{
			"Apenas pela União",
			"Apenas pelos Estados",
			"Apenas pelos Municípios",
			"Por qualquer ente da Federação",
			"Apenas com autorização judicial",
		},
		CorrectAnswerIndex: 3,
		Explanation:        "A desapropriação por interesse social pode ser decretada por qualquer ente da Federação (União, Estados, DF e Municípios), desde que observados os requisitos legais e constitucionais.",
	},
}
