package dto

import "eterno_memorial/internal/domain/models"

// MemorialPayload is the request body for memorial create and update. Dates
// travel as YYYY-MM-DD strings, media as opaque URL-or-data-URI strings.
type MemorialPayload struct {
	Nome           string   `json:"nome"`
	Biografia      string   `json:"biografia"`
	Slug           string   `json:"slug"`
	FotoMainURL    string   `json:"fotoMainUrl"`
	CorPrincipal   string   `json:"corPrincipal"`
	GaleriaFotos   []string `json:"galeriaFotos"`
	GaleriaVideos  []string `json:"galeriaVideos"`
	DataNascimento *string  `json:"dataNascimento"`
	DataMorte      *string  `json:"dataMorte"`
	CausaMorte     *string  `json:"causaMorte"`
}

// MemorialResponse is the backend's memorial shape, checked explicitly at
// the boundary instead of trusting field presence.
type MemorialResponse struct {
	ID             string   `json:"id" validate:"required"`
	Nome           string   `json:"nome" validate:"required"`
	Biografia      string   `json:"biografia"`
	Slug           string   `json:"slug" validate:"required"`
	FotoMainURL    string   `json:"fotoMainUrl"`
	CorPrincipal   string   `json:"corPrincipal"`
	GaleriaFotos   []string `json:"galeriaFotos"`
	GaleriaVideos  []string `json:"galeriaVideos"`
	DataNascimento *string  `json:"dataNascimento"`
	DataMorte      *string  `json:"dataMorte"`
	CausaMorte     *string  `json:"causaMorte"`
}

func (r MemorialResponse) ToDomain() models.Memorial {
	m := models.Memorial{
		ID:             r.ID,
		Nome:           r.Nome,
		Biografia:      r.Biografia,
		Slug:           r.Slug,
		FotoMainURL:    r.FotoMainURL,
		CorPrincipal:   r.CorPrincipal,
		GaleriaFotos:   r.GaleriaFotos,
		GaleriaVideos:  r.GaleriaVideos,
		DataNascimento: r.DataNascimento,
		DataMorte:      r.DataMorte,
		CausaMorte:     r.CausaMorte,
	}
	if m.GaleriaFotos == nil {
		m.GaleriaFotos = []string{}
	}
	if m.GaleriaVideos == nil {
		m.GaleriaVideos = []string{}
	}
	return m
}
