package models

// ProfileID identifies one of the six vocational archetypes.
type ProfileID string

const (
	ProfileEstrategistaAdmin     ProfileID = "estrategista_admin"
	ProfileGuardiaoOperacional   ProfileID = "guardiao_operacional"
	ProfileAnalistaFiscal        ProfileID = "analista_fiscal"
	ProfileJuristaPublico        ProfileID = "jurista_publico"
	ProfileServidorSocial        ProfileID = "servidor_social"
	ProfilePlanejadorEstrategico ProfileID = "planejador_estrategico"
)

var ValidProfileIDs = map[ProfileID]bool{
	ProfileEstrategistaAdmin:     true,
	ProfileGuardiaoOperacional:   true,
	ProfileAnalistaFiscal:        true,
	ProfileJuristaPublico:        true,
	ProfileServidorSocial:        true,
	ProfilePlanejadorEstrategico: true,
}

// Profile describes a public-sector career inclination. The six profiles are
// bundled data, read-only for the lifetime of the process.
type Profile struct {
	ID          ProfileID `json:"profileId"`
	Name        string    `json:"profileName"`
	Description string    `json:"profileDescription"`
	Icon        string    `json:"icon,omitempty"`
}
