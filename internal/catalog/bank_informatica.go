package catalog

import "github.com/souconcursado/core/internal/models"

var diagnosisInformatica = []models.DiagnosisQuestion{
	{
		ID:         21,
		Banca:      "FGV",
		Ano:        2023,
		Orgao:      "TJ-RN",
		Cargo:      "Analista Judiciário",
		Assunto:    "Conceitos Básicos",
		Difficulty: models.DifficultyFacil,
		Text:       "O que significa a sigla HTTP?",
		Options: []string{
			"HyperText Transfer Protocol",
			"High Transfer Text Protocol",
			"HyperText Transmission Protocol",
			"High Text Transfer Protocol",
			"HyperText Transport Protocol",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "HTTP significa \"HyperText Transfer Protocol\" (Protocolo de Transferência de Hipertexto), o protocolo usado para transferir dados na World Wide Web.",
	},
	{
		ID:         22,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Sistema Operacional",
		Difficulty: models.DifficultyFacil,
		Text:       "Qual é a extensão padrão de um arquivo executável no Windows?",
		Options: []string{
			".exe",
			".bat",
			".com",
			".sys",
			".dll",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "A extensão .exe (executable) é a mais comum para arquivos executáveis no Windows. Outras extensões como .bat, .com também podem ser executáveis, mas .exe é a padrão.",
	},
	{
		ID:         23,
		Banca:      "VUNESP",
		Ano:        2023,
		Orgao:      "PC-SP",
		Cargo:      "Escrivão de Polícia",
		Assunto:    "Planilhas Eletrônicas",
		Difficulty: models.DifficultyFacil,
		Text:       "No Microsoft Excel, qual função é usada para somar um intervalo de células?",
		Options: []string{
			"SOMA",
			"SOMAR",
			"TOTAL",
			"ADICIONAR",
			"SOMATÓRIO",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "A função SOMA() é usada para somar um intervalo de células no Excel. Exemplo: =SOMA(A1:A10) soma os valores das células A1 até A10.",
	},
	{
		ID:         24,
		Banca:      "FGV",
		Ano:        2023,
		Orgao:      "TJ-RN",
		Cargo:      "Analista Judiciário",
		Assunto:    "Redes de Computadores",
		Difficulty: models.DifficultyMedio,
		Text:       "Qual é a diferença entre HTTP e HTTPS?",
		Options: []string{
			"HTTPS é mais rápido que HTTP",
			"HTTPS usa criptografia, HTTP não",
			"HTTP só funciona com navegadores modernos",
			"HTTPS não suporta imagens",
			"Não há diferença entre eles",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "HTTPS (HyperText Transfer Protocol Secure) é uma versão segura do HTTP que usa criptografia SSL/TLS para proteger os dados transmitidos entre o navegador e o servidor.",
	},
	{
		ID:         25,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Segurança da Informação",
		Difficulty: models.DifficultyMedio,
		Text:       "O que é um firewall?",
		Options: []string{
			"Um antivírus",
			"Um sistema de segurança que controla o tráfego de rede",
			"Um tipo de vírus",
			"Um programa de edição de texto",
			"Um navegador de internet",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "Firewall é um sistema de segurança que monitora e controla o tráfego de rede com base em regras de segurança definidas, bloqueando ou permitindo conexões.",
	},
	{
		ID:         26,
		Banca:      "VUNESP",
		Ano:        2023,
		Orgao:      "PC-SP",
		Cargo:      "Escrivão de Polícia",
		Assunto:    "Editores de Texto",
		Difficulty: models.DifficultyMedio,
		Text:       "No Microsoft Word, qual atalho de teclado é usado para salvar um documento?",
		Options: []string{
			"Ctrl + S",
			"Ctrl + A",
			"Ctrl + C",
			"Ctrl + V",
			"Ctrl + Z",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "Ctrl + S é o atalho padrão para salvar um documento no Microsoft Word (e na maioria dos programas). Ctrl + A (selecionar tudo), Ctrl + C (copiar), Ctrl + V (colar), Ctrl + Z (desfazer).",
	},
	{
		ID:         27,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Banco de Dados",
		Difficulty: models.DifficultyMedio,
		Text:       "O que significa a sigla SQL?",
		Options: []string{
			"Structured Query Language",
			"Simple Query Language",
			"Standard Query Language",
			"System Query Language",
			"Secure Query Language",
		},
		CorrectAnswerIndex: 0,
		Explanation:        "SQL significa \"Structured Query Language\" (Linguagem de Consulta Estruturada), usada para gerenciar e consultar bancos de dados relacionais.",
	},
	{
		ID:         28,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Navegadores",
		Difficulty: models.DifficultyMedio,
		Text:       "O que são cookies em navegadores web?",
		Options: []string{
			"Vírus que infectam o computador",
			"Arquivos temporários que armazenam informações do site",
			"Programas que aceleram a navegação",
			"Extensões do navegador",
			"Plugins de segurança",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "Cookies são pequenos arquivos de texto que os sites armazenam no navegador do usuário para lembrar informações como preferências, login e histórico de navegação.",
	},
	{
		ID:         29,
		Banca:      "FGV",
		Ano:        2022,
		Orgao:      "Senado Federal",
		Cargo:      "Analista Legislativo",
		Assunto:    "Arquitetura de Computadores",
		Difficulty: models.DifficultyDificil,
		Text:       "Qual é a diferença entre RAM e ROM?",
		Options: []string{
			"RAM é mais rápida que ROM",
			"RAM é volátil (perde dados sem energia), ROM é não volátil",
			"ROM é mais cara que RAM",
			"RAM só armazena dados temporários, ROM só programas",
			"Não há diferença significativa",
		},
		CorrectAnswerIndex: 1,
		Explanation:        "RAM (Random Access Memory) é volátil, ou seja, perde os dados quando o computador é desligado. ROM (Read-Only Memory) é não volátil, mantendo os dados mesmo sem energia.",
	},
	{
		ID:         30,
		Banca:      "CEBRASPE",
		Ano:        2024,
		Orgao:      "Polícia Federal",
		Cargo:      "Agente de Polícia",
		Assunto:    "Protocolos de Rede",
		Difficulty: models.DifficultyDificil,
		Text:       "Qual protocolo é usado para enviar emails?",
		Options: []string{
			"HTTP",
			"FTP",
			"SMTP",
			"TCP",
			"IP",
		},
		CorrectAnswerIndex: 2,
		Explanation:        "SMTP (Simple Mail Transfer Protocol) é o protocolo usado para enviar emails. HTTP é para navegação web, FTP para transferência de arquivos, TCP e IP são protocolos de transporte e rede, respectivamente.",
	},
}
