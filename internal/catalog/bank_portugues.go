package catalog

import "github.com/souconcursado/core/internal/models"

var diagnosisPortugues = []models.DiagnosisQuestion{
	{
		ID:         1,
		Banca:      "FGV",
		Ano:        2023,
		Orgao:      "TJ-RN",
		Cargo:      "Analista Judiciário",
		Assunto:    "Crase",
		Difficulty: models.DifficultyFacil,
		Text:       "Assinale a alternativa em que o uso do acento grave indicativo de crase é obrigatório.",
		Options: []string{
			"Entreguei o documento a ela.",
			"Fui à festa de formatura ontem.",
			"Ele começou a falar cedo.",
			"Caminhamos a pé até o centro.",
			"Estou disposto a ajudar.",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "Na alternativa B, quem vai, vai \"a\" algum lugar + a (artigo) festa = à festa. Nas outras: \"ela\" é pronome (não crase), \"falar\" é verbo (não crase), \"pé\" é masculino (não crase), \"ajudar\" é verbo (não crase).",
	},
	{
		ID:         2,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Concordância Verbal",
		Difficulty: models.DifficultyFacil,
		Text:       "Assinale a alternativa em que a concordância verbal está correta.",
		Options: []string{
			"Haviam muitos candidatos na sala.",
			"Fazem dois anos que estudo para concursos.",
			"É necessário que todos os documentos sejam entregues.",
			"Chegou ontem os novos editais.",
			"Existe várias oportunidades abertas.",
		},
		CorrectAnswerIndex: 2,
		Explanation:        "A alternativa C está correta. Com \"é necessário que\", o verbo \"ser\" concorda com o sujeito \"documentos\" (plural), e o infinitivo \"sejam entregues\" está no plural. As outras alternativas apresentam erros: \"Haviam\" deveria ser \"Havia\" (impessoal), \"Fazem\" deveria ser \"Faz\" (impessoal), \"Chegou\" deveria ser \"Chegaram\" (concordância com \"editais\"), \"Existe\" deveria ser \"Existem\" (concordância com \"oportunidades\").",
	},
	{
		ID:         3,
		Banca:      "VUNESP",
		Ano:        2023,
		Orgao:      "PC-SP",
		Cargo:      "Escrivão de Polícia",
		Assunto:    "Ortografia",
		Difficulty: models.DifficultyFacil,
		Text:       "Assinale a alternativa em que todas as palavras estão grafadas corretamente.",
		Options: []string{
			"Exceção, excessão, exceção",
			"Exceção, excesso, exceção",
			"Excessão, excesso, exceção",
			"Exceção, excesso, excessão",
			"Excessão, excessão, excesso",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "A alternativa B está correta. \"Exceção\" (ato de exceção) e \"excesso\" (quantidade além do normal) são palavras diferentes. \"Excessão\" não existe na língua portuguesa.",
	},
	{
		ID:         4,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Crase",
		Difficulty: models.DifficultyMedio,
		Text:       "Assinale a alternativa em que o uso do acento grave indicativo de crase está correto.",
		Options: []string{
			"Refiro-me àquela situação mencionada anteriormente.",
			"Vou à casa de meus pais no fim de semana.",
			"Ele chegou à tempo para a reunião.",
			"A resposta foi dada à ele pessoalmente.",
			"Todos compareceram à cerimônia de formatura.",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "A alternativa B está correta. \"Vou a\" (preposição) + \"a casa\" (artigo + substantivo feminino) = \"à casa\". Na alternativa A, \"àquela\" é pronome demonstrativo (não crase). Na C, \"à tempo\" está incorreto (deveria ser \"a tempo\"). Na D, \"à ele\" está incorreto (não se usa crase antes de pronome). Na E, \"à cerimônia\" está correto, mas a alternativa B é a única totalmente correta.",
	},
	{
		ID:         5,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Interpretação de Texto",
		Difficulty: models.DifficultyMedio,
		Text:       "No trecho \"A persistência da violência contra a mulher...\", a preposição \"contra\" introduz um complemento nominal que exprime o alvo da violência.",
		Options: []string{
			"Certo",
			"Errado",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "Correto. \"Contra a mulher\" completa o sentido do substantivo abstrato \"violência\", indicando o paciente (alvo) da ação, configurando-se como Complemento Nominal.",
	},
	{
		ID:         6,
		Banca:      "VUNESP",
		Ano:        2023,
		Orgao:      "PC-SP",
		Cargo:      "Escrivão de Polícia",
		Assunto:    "Regência Verbal",
		Difficulty: models.DifficultyMedio,
		Text:       "Assinale a alternativa em que a regência verbal está correta.",
		Options: []string{
			"O juiz assistiu o julgamento.",
			"O advogado assistiu o cliente durante a audiência.",
			"A testemunha assistiu ao crime.",
			"O réu assistiu a defesa do advogado.",
			"Todos assistiram o filme no cinema.",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "A alternativa B está correta. \"Assistir\" no sentido de \"ajudar, prestar assistência\" é transitivo direto (assistir + objeto direto). No sentido de \"ver, presenciar\", é transitivo indireto (assistir a + objeto indireto). Nas outras: A (deveria ser \"assistiu ao\"), C (deveria ser \"presenciou\" ou \"assistiu a\"), D (deveria ser \"assistiu à\"), E (deveria ser \"assistiram ao\").",
	},
	{
		ID:         7,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Colocação Pronominal",
		Difficulty: models.DifficultyMedio,
		Text:       "Assinale a alternativa em que a colocação pronominal está correta.",
		Options: []string{
			"Não se esqueça de entregar o documento.",
			"Se não esqueça de entregar o documento.",
			"Não esqueça-se de entregar o documento.",
			"Esqueça-se não de entregar o documento.",
			"Não esqueça de entregar-se o documento.",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "A alternativa A está correta. Com o advérbio negativo \"não\", o pronome oblíquo átono deve vir antes do verbo (próclise). As outras alternativas violam as regras de colocação pronominal.",
	},
	{
		ID:         8,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Pontuação",
		Difficulty: models.DifficultyMedio,
		Text:       "Assinale a alternativa em que a pontuação está correta.",
		Options: []string{
			"O delegado, que investigava o caso, chegou cedo.",
			"O delegado que investigava o caso, chegou cedo.",
			"O delegado, que investigava o caso chegou cedo.",
			"O delegado que investigava o caso chegou, cedo.",
			"O delegado, que investigava o caso chegou, cedo.",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "A alternativa A está correta. A oração \"que investigava o caso\" é explicativa (não restritiva), por isso deve vir entre vírgulas. Nas outras alternativas, há erros de pontuação.",
	},
	{
		ID:         9,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Análise Sintática",
		Difficulty: models.DifficultyDificil,
		Text:       "Na frase \"O juiz determinou que o processo fosse arquivado\", a oração \"que o processo fosse arquivado\" exerce a função de:",
		Options: []string{
			"Sujeito",
			"Objeto direto",
			"Objeto indireto",
			"Complemento nominal",
			"Predicativo do sujeito",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "A alternativa B está correta. A oração subordinada substantiva objetiva direta completa o sentido do verbo transitivo direto \"determinar\", respondendo à pergunta \"o que o juiz determinou?\".",
	},
	{
		ID:         10,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Interpretação de Texto",
		Difficulty: models.DifficultyDificil,
		Text:       "No trecho \"A persistência da violência contra a mulher...\", a preposição \"contra\" introduz um complemento nominal que exprime o alvo da violência.",
		Options: []string{
			"Certo",
			"Errado",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "Correto. \"Contra a mulher\" completa o sentido do substantivo abstrato \"violência\", indicando o paciente (alvo) da ação, configurando-se como Complemento Nominal.",
	},
}
