package catalog

import "github.com/souconcursado/core/internal/models"

// Profiles lists the six vocational archetypes. The slice order is the
// canonical enumeration order: the matcher resolves score ties in favor of
// the profile that appears first here.
var Profiles = []models.Profile{
	{
		ID:   models.ProfileEstrategistaAdmin,
		Name: "Estrategista Administrativo",
		Description: "Você possui habilidades de organização, planejamento e gestão. " +
			"Perfeito para cargos administrativos, de gestão pública e coordenação. " +
			"Seu perfil combina com concursos de nível superior em áreas como Administração Pública, " +
			"Gestão de Políticas Públicas e cargos de coordenação.",
		Icon: "briefcase",
	},
	{
		ID:   models.ProfileGuardiaoOperacional,
		Name: "Guardião Operacional",
		Description: "Você tem perfil para atividades que exigem ação, disciplina e comprometimento " +
			"com a segurança pública. Ideal para carreiras policiais, de segurança e operacionais. " +
			"Seu perfil se alinha com concursos de Polícia Civil, Militar, Federal e cargos de segurança.",
		Icon: "shield",
	},
	{
		ID:   models.ProfileAnalistaFiscal,
		Name: "Analista Fiscal e Controle",
		Description: "Você tem afinidade com números, análise e controle. Perfeito para cargos em " +
			"Receita Federal, Tribunais de Contas, Controladorias e áreas fiscais. Seu perfil combina " +
			"com concursos que exigem raciocínio lógico e conhecimento em contabilidade, economia ou " +
			"direito tributário.",
		Icon: "calculator",
	},
	{
		ID:   models.ProfileJuristaPublico,
		Name: "Jurista Público",
		Description: "Você tem interesse em questões jurídicas e legais. Ideal para carreiras jurídicas, " +
			"procuradorias, defensoria pública e tribunais. Seu perfil se alinha com concursos que exigem " +
			"formação em Direito e conhecimento jurídico aprofundado.",
		Icon: "scale-balance",
	},
	{
		ID:   models.ProfileServidorSocial,
		Name: "Servidor Social",
		Description: "Você tem vocação para áreas de assistência, saúde e educação pública. Perfeito para " +
			"cargos em secretarias de saúde, educação, assistência social e desenvolvimento. Seu perfil " +
			"combina com concursos que exigem formação específica nessas áreas e comprometimento com o " +
			"bem-estar social.",
		Icon: "heart",
	},
	{
		ID:   models.ProfilePlanejadorEstrategico,
		Name: "Planejador Estratégico",
		Description: "Você tem visão estratégica e interesse em políticas públicas de alto nível. Ideal " +
			"para cargos de planejamento, desenvolvimento e gestão estratégica. Seu perfil se alinha com " +
			"concursos de nível superior em áreas de planejamento urbano, desenvolvimento regional e " +
			"gestão de políticas públicas.",
		Icon: "chart-line",
	},
}

// ProfileByID returns the profile with the given id, or false when the id is
// not one of the six bundled profiles.
func ProfileByID(id models.ProfileID) (models.Profile, bool) {
	for _, p := range Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return models.Profile{}, false
}
