package dto

import (
	"time"

	"eterno_memorial/internal/domain/models"
)

type ComentarioCreateRequest struct {
	Nome  string `json:"nome,omitempty"`
	Texto string `json:"texto" validate:"required"`
}

type ComentarioResponse struct {
	ID       string    `json:"id" validate:"required"`
	Nome     string    `json:"nome"`
	Texto    string    `json:"texto" validate:"required"`
	CriadoEm time.Time `json:"criadoEm"`
}

func (r ComentarioResponse) ToDomain() models.Comentario {
	return models.Comentario{
		ID:       r.ID,
		Nome:     r.Nome,
		Texto:    r.Texto,
		CriadoEm: r.CriadoEm,
	}
}

type ComentariosResponse struct {
	Comentarios  []ComentarioResponse `json:"comentarios"`
	Total        int                  `json:"total" validate:"min=0"`
	Pagina       int                  `json:"pagina" validate:"min=1"`
	PorPagina    int                  `json:"porPagina" validate:"min=1"`
	TotalPaginas int                  `json:"totalPaginas"`
}

// ToDomain re-derives the page count so the invariant
// totalPages == max(1, ceil(total/porPagina)) holds even when the backend
// sends something else.
func (r ComentariosResponse) ToDomain() models.ComentariosPage {
	page := models.ComentariosPage{
		Comentarios:  make([]models.Comentario, 0, len(r.Comentarios)),
		Pagina:       r.Pagina,
		PorPagina:    r.PorPagina,
		Total:        r.Total,
		TotalPaginas: models.TotalPages(r.Total, r.PorPagina),
	}
	for _, c := range r.Comentarios {
		page.Comentarios = append(page.Comentarios, c.ToDomain())
	}
	return page
}
