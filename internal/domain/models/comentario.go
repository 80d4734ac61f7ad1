package models

import (
	"math"
	"time"
)

// Comentario is a visitor-submitted guestbook message. Visitors are not
// authenticated and comments are never edited after creation.
type Comentario struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome,omitempty"`
	Texto    string    `json:"texto"`
	CriadoEm time.Time `json:"criadoEm"`
}

// DisplayName returns the author name shown on the page.
func (c Comentario) DisplayName() string {
	if c.Nome == "" {
		return "Anônimo"
	}
	return c.Nome
}

// ComentariosPage is one page of a memorial's comment thread.
type ComentariosPage struct {
	Comentarios  []Comentario
	Pagina       int
	PorPagina    int
	TotalPaginas int
	Total        int
}

// TotalPages computes the page count for a thread of total comments,
// never less than one so an empty thread still has a visible page.
func TotalPages(total, porPagina int) int {
	if total <= 0 || porPagina <= 0 {
		return 1
	}
	pages := int(math.Ceil(float64(total) / float64(porPagina)))
	if pages < 1 {
		return 1
	}
	return pages
}
