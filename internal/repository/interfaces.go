package repository

import (
	"context"

	"eterno_memorial/internal/domain/models"
)

// MemorialRepository is the sole boundary to the backend service. Mutating
// memorial calls require an operator session; reads and the comment
// operations are open to visitors. Failures surface as *models.RequestError.
type MemorialRepository interface {
	Login(ctx context.Context, email, senha string) (models.LoginResult, error)

	ListMemorials(ctx context.Context) ([]models.Memorial, error)
	GetMemorialBySlug(ctx context.Context, slug string) (models.Memorial, error)
	CreateMemorial(ctx context.Context, input MemorialInput) (models.Memorial, error)
	UpdateMemorial(ctx context.Context, slug string, input MemorialInput) (models.Memorial, error)
	DeleteMemorial(ctx context.Context, slug string) error

	ListComments(ctx context.Context, slug string, pagina, porPagina int) (models.ComentariosPage, error)
	CreateComment(ctx context.Context, slug, nome, texto string) (models.Comentario, error)
}

// MemorialInput is a memorial payload as accepted by create and update:
// everything but the server-assigned id. Media references are either plain
// URLs or inline data URIs produced by the ingestion pipeline; the backend
// stores both as opaque strings.
type MemorialInput struct {
	Nome           string
	Biografia      string
	Slug           string
	FotoMainURL    string
	CorPrincipal   string
	GaleriaFotos   []string
	GaleriaVideos  []string
	DataNascimento *string
	DataMorte      *string
	CausaMorte     *string
}
