package models

// Memorial is a published tribute page. Field names follow the backend wire
// contract, which speaks Portuguese.
type Memorial struct {
	ID             string   `json:"id"`
	Nome           string   `json:"nome"`
	Biografia      string   `json:"biografia"`
	Slug           string   `json:"slug"`
	FotoMainURL    string   `json:"fotoMainUrl"`
	CorPrincipal   string   `json:"corPrincipal"`
	GaleriaFotos   []string `json:"galeriaFotos"`
	GaleriaVideos  []string `json:"galeriaVideos,omitempty"`
	DataNascimento *string  `json:"dataNascimento,omitempty"`
	DataMorte      *string  `json:"dataMorte,omitempty"`
	CausaMorte     *string  `json:"causaMorte,omitempty"`
}

// MaxCausaMorteLen bounds the free-text cause-of-death field.
const MaxCausaMorteLen = 500

// Galeria returns the combined navigable sequence: photos first, then
// videos, each keeping its position within its own source list.
func (m *Memorial) Galeria() []MediaItem {
	items := make([]MediaItem, 0, len(m.GaleriaFotos)+len(m.GaleriaVideos))
	for i, url := range m.GaleriaFotos {
		items = append(items, MediaItem{URL: url, Kind: MediaTypePhoto, OriginalIndex: i})
	}
	for i, url := range m.GaleriaVideos {
		items = append(items, MediaItem{URL: url, Kind: MediaTypeVideo, OriginalIndex: i})
	}
	return items
}
